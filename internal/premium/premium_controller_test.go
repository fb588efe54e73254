package premium

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
)

type stubPremiumRepo struct {
	PremiumRepository
	getCoachByName func(string) (*Coach, error)
	createCoach    func(*Coach) error
}

func (s *stubPremiumRepo) GetCoachByName(name string) (*Coach, error) {
	return s.getCoachByName(name)
}

func (s *stubPremiumRepo) CreateCoach(c *Coach) error { return s.createCoach(c) }

func postCoach(t *testing.T, repo PremiumRepository, req CreateCoachRequest) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/coaches", NewPremiumController(repo, &config.Config{}).CreateCoach)

	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshalling request: %v", err)
	}
	httpReq := httptest.NewRequest(http.MethodPost, "/coaches", bytes.NewReader(payload))
	httpReq.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httpReq)
	return w
}

func TestCreateCoachLookupFailureIsInternal(t *testing.T) {
	repo := &stubPremiumRepo{
		getCoachByName: func(string) (*Coach, error) {
			return nil, errors.New("connection reset")
		},
		createCoach: func(*Coach) error {
			t.Fatal("create must not run when the lookup fails")
			return nil
		},
	}

	w := postCoach(t, repo, CreateCoachRequest{Name: "Carlos Mendez", Specialization: "Defense"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("a failed lookup is not a conflict: expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateCoachRacingDuplicateConflicts(t *testing.T) {
	repo := &stubPremiumRepo{
		getCoachByName: func(string) (*Coach, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createCoach: func(*Coach) error {
			return gorm.ErrDuplicatedKey
		},
	}

	w := postCoach(t, repo, CreateCoachRequest{Name: "Carlos Mendez", Specialization: "Defense"})
	if w.Code != http.StatusConflict {
		t.Fatalf("a duplicate-key insert is a conflict: expected 409, got %d: %s", w.Code, w.Body.String())
	}
}
