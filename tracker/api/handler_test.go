// tracker/api/handler_test.go
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/octofit/go-services/shared/api"
	"github.com/octofit/go-services/shared/models"
	"github.com/octofit/go-services/tracker/service"
	"github.com/octofit/go-services/tracker/store"
)

// newTestRouter wires the handlers over in-memory stores and returns the
// stores so tests can seed them directly.
func newTestRouter() (*mux.Router, *store.MemoryUserStore, *store.MemoryActivityStore, *store.MemoryLeaderboardStore, *store.MemoryWorkoutStore) {
	userStore := store.NewMemoryUserStore()
	teamStore := store.NewMemoryTeamStore()
	activityStore := store.NewMemoryActivityStore()
	leaderboardStore := store.NewMemoryLeaderboardStore()
	workoutStore := store.NewMemoryWorkoutStore()

	handlers := NewTrackerAPIHandlers(
		service.NewUserService(userStore),
		service.NewTeamService(teamStore, userStore),
		service.NewActivityService(activityStore),
		service.NewLeaderboardService(leaderboardStore, nil),
		service.NewWorkoutService(workoutStore),
	)

	router := mux.NewRouter()
	handlers.RegisterRoutes(router)
	return router, userStore, activityStore, leaderboardStore, workoutStore
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp api.JSONErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return resp.Message
}

func TestAPIRootListsCollections(t *testing.T) {
	router, _, _, _, _ := newTestRouter()

	rr := doRequest(router, http.MethodGet, "/api", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var index map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &index); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(index) != 5 {
		t.Fatalf("expected 5 collections got %d: %v", len(index), index)
	}
	for _, name := range []string{"users", "teams", "activities", "leaderboard", "workouts"} {
		if index[name] != "/api/"+name {
			t.Fatalf("expected %s to map to /api/%s, got %q", name, name, index[name])
		}
	}
}

func TestHealthz(t *testing.T) {
	router, _, _, _, _ := newTestRouter()

	rr := doRequest(router, http.MethodGet, "/healthz", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Fatalf("expected body %q got %q", "ok", rr.Body.String())
	}
}

func TestUserCRUD(t *testing.T) {
	router, _, _, _, _ := newTestRouter()

	rr := doRequest(router, http.MethodPost, "/api/users", `{"_id":1,"name":"Mara Voss","email":"mara@example.com"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}
	var created models.User
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.Role != models.DefaultUserRole {
		t.Fatalf("expected default role %q got %q", models.DefaultUserRole, created.Role)
	}

	rr = doRequest(router, http.MethodGet, "/api/users/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(router, http.MethodPut, "/api/users/1", `{"name":"Mara V."}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var updated models.User
	if err := json.Unmarshal(rr.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if updated.Name != "Mara V." {
		t.Fatalf("expected updated name got %q", updated.Name)
	}
	if updated.Email != "mara@example.com" {
		t.Fatalf("partial update touched email: %q", updated.Email)
	}

	rr = doRequest(router, http.MethodDelete, "/api/users/1", "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d: %s", rr.Code, rr.Body.String())
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body got %q", rr.Body.String())
	}

	rr = doRequest(router, http.MethodGet, "/api/users/1", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	if msg := errorMessage(t, rr); msg != "user not found" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	router, _, _, _, _ := newTestRouter()

	rr := doRequest(router, http.MethodPost, "/api/users", `{"_id":1,"name":"A","email":"same@example.com"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(router, http.MethodPost, "/api/users", `{"_id":2,"name":"B","email":"same@example.com"}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d: %s", rr.Code, rr.Body.String())
	}
	if msg := errorMessage(t, rr); msg != "user already exists" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestInvalidIDAndBody(t *testing.T) {
	router, _, _, _, _ := newTestRouter()

	rr := doRequest(router, http.MethodGet, "/api/users/abc", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if msg := errorMessage(t, rr); msg != "Invalid id parameter" {
		t.Fatalf("unexpected message %q", msg)
	}

	rr = doRequest(router, http.MethodPost, "/api/users", `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if msg := errorMessage(t, rr); msg != "Invalid request body" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestTeamMembers(t *testing.T) {
	router, userStore, _, _, _ := newTestRouter()

	teamID := 1
	seedUser := models.User{ID: 1, Name: "A", Email: "a@example.com", TeamID: &teamID, Role: "member"}
	if err := userStore.Insert(context.Background(), &seedUser); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	rr := doRequest(router, http.MethodGet, "/api/teams/1/members", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var members []models.User
	if err := json.Unmarshal(rr.Body.Bytes(), &members); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(members) != 1 || members[0].ID != 1 {
		t.Fatalf("unexpected members %v", members)
	}

	// Empty team renders [] rather than null.
	rr = doRequest(router, http.MethodGet, "/api/teams/2/members", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected [] got %q", rr.Body.String())
	}
}

func TestActivitiesByUser(t *testing.T) {
	router, _, activityStore, _, _ := newTestRouter()

	ctx := context.Background()
	seed := []models.Activity{
		{ID: 1, UserID: 7, ActivityType: "Running", Date: "2026-08-24"},
		{ID: 2, UserID: 7, ActivityType: "Cycling", Date: "2026-08-26"},
		{ID: 3, UserID: 8, ActivityType: "Swimming", Date: "2026-08-25"},
	}
	for i := range seed {
		if err := activityStore.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	rr := doRequest(router, http.MethodGet, "/api/activities/by_user?user_id=7", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var activities []models.Activity
	if err := json.Unmarshal(rr.Body.Bytes(), &activities); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities got %d", len(activities))
	}
	if activities[0].ID != 2 || activities[1].ID != 1 {
		t.Fatalf("expected date-descending order, got ids %d,%d", activities[0].ID, activities[1].ID)
	}

	rr = doRequest(router, http.MethodGet, "/api/activities/by_user", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if msg := errorMessage(t, rr); msg != "user_id parameter is required" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestLeaderboardByTeam(t *testing.T) {
	router, _, _, leaderboardStore, _ := newTestRouter()

	ctx := context.Background()
	seed := []models.Leaderboard{
		{ID: 1, UserID: 1, TeamID: 1, TotalPoints: 500, Rank: 3},
		{ID: 2, UserID: 2, TeamID: 2, TotalPoints: 900, Rank: 1},
		{ID: 3, UserID: 3, TeamID: 1, TotalPoints: 700, Rank: 2},
	}
	for i := range seed {
		if err := leaderboardStore.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	rr := doRequest(router, http.MethodGet, "/api/leaderboard/by_team?team_id=1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var entries []models.Leaderboard
	if err := json.Unmarshal(rr.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries got %d", len(entries))
	}
	if entries[0].Rank != 2 || entries[1].Rank != 3 {
		t.Fatalf("expected rank-ascending order, got ranks %d,%d", entries[0].Rank, entries[1].Rank)
	}

	rr = doRequest(router, http.MethodGet, "/api/leaderboard/by_team?team_id=first", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if msg := errorMessage(t, rr); msg != "team_id parameter is required" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestWorkoutsByDifficulty(t *testing.T) {
	router, _, _, _, workoutStore := newTestRouter()

	ctx := context.Background()
	seed := []models.Workout{
		{ID: 1, Name: "Hill Repeats", Difficulty: models.DifficultyHard, Duration: 40},
		{ID: 2, Name: "Mobility Flow", Difficulty: models.DifficultyEasy, Duration: 25},
	}
	for i := range seed {
		if err := workoutStore.Insert(ctx, &seed[i]); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	rr := doRequest(router, http.MethodGet, "/api/workouts/by_difficulty?difficulty=Hard", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
	var workouts []models.Workout
	if err := json.Unmarshal(rr.Body.Bytes(), &workouts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(workouts) != 1 || workouts[0].Name != "Hill Repeats" {
		t.Fatalf("unexpected workouts %v", workouts)
	}

	rr = doRequest(router, http.MethodGet, "/api/workouts/by_difficulty", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if msg := errorMessage(t, rr); msg != "difficulty parameter is required" {
		t.Fatalf("unexpected message %q", msg)
	}

	// The filter route must not be captured by the {id} route.
	rr = doRequest(router, http.MethodGet, "/api/workouts/by_difficulty?difficulty=Easy", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}
}
