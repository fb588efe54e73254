package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gambo-stadium/gambo-api/internal/premium"
)

func enrollmentBody() map[string]any {
	return map[string]any{
		"coach":        "Carlos Mendez",
		"package":      "Elite Squad",
		"startDate":    "2025-06-01",
		"endDate":      "2025-08-31",
		"trainingDays": []string{"Monday", "Wednesday"},
		"players": []map[string]string{
			{"name": "Ana", "age": "12"},
			{"name": "Ben", "age": "13"},
		},
	}
}

func TestCreateEnrollment(t *testing.T) {
	r, _ := newTestEnv(t)

	jo := signupUser(t, r, "Jo", "jo@example.com", "secret123")

	w := perform(t, r, http.MethodPost, "/api/premiumTeams", jo.Token, enrollmentBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	team := decodeJSON[premium.PremiumTeam](t, w)
	if team.UserID != jo.User.ID {
		t.Errorf("enrollment must belong to the token's user, got %d", team.UserID)
	}
	if team.Status != premium.StatusActive {
		t.Errorf("new enrollments must start active, got %q", team.Status)
	}
	if len(team.Players) != 2 {
		t.Errorf("expected 2 players, got %d", len(team.Players))
	}
}

func TestCreateEnrollmentValidation(t *testing.T) {
	r, db := newTestEnv(t)

	jo := signupUser(t, r, "Jo", "jo@example.com", "secret123")

	tooManyDays := enrollmentBody()
	tooManyDays["trainingDays"] = []string{"Monday", "Tuesday", "Wednesday", "Thursday"}

	tooManyPlayers := enrollmentBody()
	roster := make([]map[string]string, 7)
	for i := range roster {
		roster[i] = map[string]string{"name": fmt.Sprintf("P%d", i), "age": "12"}
	}
	tooManyPlayers["players"] = roster

	noDays := enrollmentBody()
	noDays["trainingDays"] = []string{}

	unnamedPlayer := enrollmentBody()
	unnamedPlayer["players"] = []map[string]string{{"age": "12"}}

	cases := []struct {
		name string
		body map[string]any
	}{
		{"four training days", tooManyDays},
		{"seven players", tooManyPlayers},
		{"no training days", noDays},
		{"player without a name", unnamedPlayer},
	}
	for _, tc := range cases {
		w := perform(t, r, http.MethodPost, "/api/premiumTeams", jo.Token, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d: %s", tc.name, w.Code, w.Body.String())
		}
	}

	var count int64
	if err := db.Model(&premium.PremiumTeam{}).Count(&count).Error; err != nil {
		t.Fatalf("counting enrollments: %v", err)
	}
	if count != 0 {
		t.Errorf("rejected enrollments must not be persisted, found %d", count)
	}
}

func TestEnrollmentResolvesKnownCoach(t *testing.T) {
	r, db := newTestEnv(t)

	jo := signupUser(t, r, "Jo", "jo@example.com", "secret123")
	admin := signupAdmin(t, r, db, "admin@example.com")

	w := perform(t, r, http.MethodPost, "/api/admin/coaches", admin.Token, map[string]any{
		"name":           "Carlos Mendez",
		"specialization": "Youth development",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("creating coach failed with %d: %s", w.Code, w.Body.String())
	}
	coach := decodeJSON[premium.Coach](t, w)

	w = perform(t, r, http.MethodPost, "/api/premiumTeams", jo.Token, enrollmentBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("enrollment failed with %d: %s", w.Code, w.Body.String())
	}
	team := decodeJSON[premium.PremiumTeam](t, w)
	if team.CoachID == nil || *team.CoachID != coach.ID {
		t.Errorf("coach name should resolve to the stored coach id, got %v", team.CoachID)
	}
	if team.Coach != "Carlos Mendez" {
		t.Errorf("the display name stays authoritative, got %q", team.Coach)
	}
}

func TestOwnerCancelIsIdempotent(t *testing.T) {
	r, _ := newTestEnv(t)

	jo := signupUser(t, r, "Jo", "jo@example.com", "secret123")

	w := perform(t, r, http.MethodPost, "/api/premiumTeams", jo.Token, enrollmentBody())
	team := decodeJSON[premium.PremiumTeam](t, w)
	path := fmt.Sprintf("/api/premiumTeams/%d", team.ID)
	patch := map[string]any{"status": premium.StatusCancelled}

	w = perform(t, r, http.MethodPatch, path, jo.Token, patch)
	if w.Code != http.StatusOK {
		t.Fatalf("first cancel failed with %d: %s", w.Code, w.Body.String())
	}

	w = perform(t, r, http.MethodPatch, path, jo.Token, patch)
	if w.Code != http.StatusOK {
		t.Fatalf("re-cancelling must be a no-op, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeJSON[premium.PremiumTeam](t, w); got.Status != premium.StatusCancelled {
		t.Errorf("expected cancelled status, got %q", got.Status)
	}
}

func TestOwnerCannotReassignCoach(t *testing.T) {
	r, _ := newTestEnv(t)

	jo := signupUser(t, r, "Jo", "jo@example.com", "secret123")

	w := perform(t, r, http.MethodPost, "/api/premiumTeams", jo.Token, enrollmentBody())
	team := decodeJSON[premium.PremiumTeam](t, w)

	patch := map[string]any{"coach": "Someone Else"}
	w = perform(t, r, http.MethodPatch, fmt.Sprintf("/api/premiumTeams/%d", team.ID), jo.Token, patch)
	if w.Code != http.StatusForbidden {
		t.Fatalf("owners must not reassign coaches, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListAllEnrollmentsIsAdminOnly(t *testing.T) {
	r, db := newTestEnv(t)

	jo := signupUser(t, r, "Jo", "jo@example.com", "secret123")
	admin := signupAdmin(t, r, db, "admin@example.com")

	perform(t, r, http.MethodPost, "/api/premiumTeams", jo.Token, enrollmentBody())

	if w := perform(t, r, http.MethodGet, "/api/premiumTeams", jo.Token, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a regular user, got %d", w.Code)
	}

	w := perform(t, r, http.MethodGet, "/api/premiumTeams", admin.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin listing failed with %d: %s", w.Code, w.Body.String())
	}
	teams := decodeJSON[[]premium.PremiumTeam](t, w)
	if len(teams) != 1 {
		t.Fatalf("expected 1 enrollment, got %d", len(teams))
	}
	if teams[0].Status != premium.StatusActive {
		t.Errorf("listing must report the effective status, got %q", teams[0].Status)
	}
}

func TestReferenceCollections(t *testing.T) {
	r, db := newTestEnv(t)

	jo := signupUser(t, r, "Jo", "jo@example.com", "secret123")
	admin := signupAdmin(t, r, db, "admin@example.com")

	// Creation is admin-only.
	coachBody := map[string]any{"name": "Carlos Mendez", "specialization": "Defense"}
	if w := perform(t, r, http.MethodPost, "/api/admin/coaches", jo.Token, coachBody); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a regular user creating a coach, got %d", w.Code)
	}
	if w := perform(t, r, http.MethodPost, "/api/admin/coaches", admin.Token, coachBody); w.Code != http.StatusCreated {
		t.Fatalf("creating coach failed with %d: %s", w.Code, w.Body.String())
	}
	// Duplicate names conflict.
	if w := perform(t, r, http.MethodPost, "/api/admin/coaches", admin.Token, coachBody); w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate coach name, got %d", w.Code)
	}

	programBody := map[string]any{"name": "Elite Squad", "price": 199.0, "description": "Three sessions a week"}
	if w := perform(t, r, http.MethodPost, "/api/admin/programs", admin.Token, programBody); w.Code != http.StatusCreated {
		t.Fatalf("creating program failed with %d: %s", w.Code, w.Body.String())
	}

	// Reading is open to any authenticated user.
	w := perform(t, r, http.MethodGet, "/api/coaches", jo.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("listing coaches failed with %d: %s", w.Code, w.Body.String())
	}
	if got := decodeJSON[[]premium.Coach](t, w); len(got) != 1 {
		t.Errorf("expected 1 coach, got %d", len(got))
	}

	w = perform(t, r, http.MethodGet, "/api/programs", jo.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("listing programs failed with %d: %s", w.Code, w.Body.String())
	}
	if got := decodeJSON[[]premium.PremiumProgram](t, w); len(got) != 1 {
		t.Errorf("expected 1 program, got %d", len(got))
	}
}
