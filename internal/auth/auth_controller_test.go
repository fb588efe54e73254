package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gambo-stadium/gambo-api/config"
	"github.com/gambo-stadium/gambo-api/internal/user"
)

type stubAuthRepo struct {
	getByEmail func(string) (*user.User, error)
	create     func(*user.User) error
}

func (s *stubAuthRepo) CreateUser(u *user.User) error { return s.create(u) }

func (s *stubAuthRepo) GetUserByEmail(email string) (*user.User, error) {
	return s.getByEmail(email)
}

func (s *stubAuthRepo) GetUserByID(id uint) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func postSignup(t *testing.T, repo AuthRepository, req SignupRequest) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.ExpiryHours = 24

	r := gin.New()
	r.POST("/signup", NewAuthController(repo, cfg).Signup)

	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshalling request: %v", err)
	}
	httpReq := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func TestSignupLookupFailureIsInternal(t *testing.T) {
	repo := &stubAuthRepo{
		getByEmail: func(string) (*user.User, error) {
			return nil, errors.New("connection reset")
		},
		create: func(*user.User) error {
			t.Fatal("create must not run when the lookup fails")
			return nil
		},
	}

	w := postSignup(t, repo, SignupRequest{Name: "Jo", Email: "jo@example.com", Password: "secret123"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("a failed lookup is not a conflict: expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSignupRacingDuplicateConflicts(t *testing.T) {
	// The lookup sees no account but the insert loses the race against a
	// concurrent signup and trips the unique index.
	repo := &stubAuthRepo{
		getByEmail: func(string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		create: func(*user.User) error {
			return gorm.ErrDuplicatedKey
		},
	}

	w := postSignup(t, repo, SignupRequest{Name: "Jo", Email: "jo@example.com", Password: "secret123"})
	if w.Code != http.StatusConflict {
		t.Fatalf("a duplicate-key insert is a conflict: expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSignupExistingEmailConflicts(t *testing.T) {
	repo := &stubAuthRepo{
		getByEmail: func(email string) (*user.User, error) {
			return &user.User{Email: email}, nil
		},
		create: func(*user.User) error {
			t.Fatal("create must not run for a taken email")
			return nil
		},
	}

	w := postSignup(t, repo, SignupRequest{Name: "Jo", Email: "jo@example.com", Password: "secret123"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}
