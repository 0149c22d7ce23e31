// tracker/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/octofit/go-services/shared/api"
	"github.com/octofit/go-services/shared/models"
	"github.com/octofit/go-services/tracker/service"
)

// TrackerAPIHandlers holds references to the services that handle business logic.
type TrackerAPIHandlers struct {
	UserService        *service.UserService
	TeamService        *service.TeamService
	ActivityService    *service.ActivityService
	LeaderboardService *service.LeaderboardService
	WorkoutService     *service.WorkoutService
}

// NewTrackerAPIHandlers is the constructor for the API handlers.
func NewTrackerAPIHandlers(us *service.UserService, ts *service.TeamService, as *service.ActivityService, ls *service.LeaderboardService, ws *service.WorkoutService) *TrackerAPIHandlers {
	return &TrackerAPIHandlers{
		UserService:        us,
		TeamService:        ts,
		ActivityService:    as,
		LeaderboardService: ls,
		WorkoutService:     ws,
	}
}

const requestTimeout = 5 * time.Second

// parseIDVar extracts and parses the {id} path variable. On failure it writes
// a 400 response and reports false.
func parseIDVar(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		api.WriteBadRequest(w, "Invalid id parameter")
		return 0, false
	}
	return id, true
}

// writeServiceError maps service-layer errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error, entity string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		api.WriteNotFound(w, fmt.Sprintf("%s not found", entity))
	case errors.Is(err, service.ErrDuplicateEntry):
		api.WriteConflict(w, fmt.Sprintf("%s already exists", entity))
	default:
		log.Printf("ERROR: %s request failed: %v", entity, err)
		api.WriteInternalServerError(w, fmt.Sprintf("Failed to process %s request", entity))
	}
}

// --- Root discovery ---

// APIRootHandler lists the available collections, mirroring the API root of
// the original octofit backend.
// GET /api/
func (th *TrackerAPIHandlers) APIRootHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]string{
		"users":       "/api/users",
		"teams":       "/api/teams",
		"activities":  "/api/activities",
		"leaderboard": "/api/leaderboard",
		"workouts":    "/api/workouts",
	})
}

// HealthzHandler reports a simple OK status for container health checks.
// GET /healthz
func (th *TrackerAPIHandlers) HealthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// --- Users ---

// ListUsersHandler returns all users in default order.
// GET /api/users
func (th *TrackerAPIHandlers) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	users, err := th.UserService.List(ctx)
	if err != nil {
		writeServiceError(w, err, "users")
		return
	}
	api.WriteJSON(w, http.StatusOK, users)
}

// GetUserHandler returns a single user.
// GET /api/users/{id}
func (th *TrackerAPIHandlers) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := th.UserService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err, "user")
		return
	}
	api.WriteJSON(w, http.StatusOK, user)
}

// CreateUserHandler inserts a new user.
// POST /api/users
func (th *TrackerAPIHandlers) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := th.UserService.Create(ctx, &user)
	if err != nil {
		writeServiceError(w, err, "user")
		return
	}
	api.WriteJSON(w, http.StatusCreated, created)
}

// UpdateUserHandler applies a partial update.
// PUT /api/users/{id}
func (th *TrackerAPIHandlers) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	var upd models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	user, err := th.UserService.Update(ctx, id, upd)
	if err != nil {
		writeServiceError(w, err, "user")
		return
	}
	api.WriteJSON(w, http.StatusOK, user)
}

// DeleteUserHandler removes a user.
// DELETE /api/users/{id}
func (th *TrackerAPIHandlers) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := th.UserService.Delete(ctx, id); err != nil {
		writeServiceError(w, err, "user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Teams ---

// ListTeamsHandler returns all teams in default order.
// GET /api/teams
func (th *TrackerAPIHandlers) ListTeamsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	teams, err := th.TeamService.List(ctx)
	if err != nil {
		writeServiceError(w, err, "teams")
		return
	}
	api.WriteJSON(w, http.StatusOK, teams)
}

// GetTeamHandler returns a single team.
// GET /api/teams/{id}
func (th *TrackerAPIHandlers) GetTeamHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	team, err := th.TeamService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err, "team")
		return
	}
	api.WriteJSON(w, http.StatusOK, team)
}

// CreateTeamHandler inserts a new team.
// POST /api/teams
func (th *TrackerAPIHandlers) CreateTeamHandler(w http.ResponseWriter, r *http.Request) {
	var team models.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := th.TeamService.Create(ctx, &team)
	if err != nil {
		writeServiceError(w, err, "team")
		return
	}
	api.WriteJSON(w, http.StatusCreated, created)
}

// UpdateTeamHandler applies a partial update.
// PUT /api/teams/{id}
func (th *TrackerAPIHandlers) UpdateTeamHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	var upd models.TeamUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	team, err := th.TeamService.Update(ctx, id, upd)
	if err != nil {
		writeServiceError(w, err, "team")
		return
	}
	api.WriteJSON(w, http.StatusOK, team)
}

// DeleteTeamHandler removes a team. Members keep their team_id; no cascade.
// DELETE /api/teams/{id}
func (th *TrackerAPIHandlers) DeleteTeamHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := th.TeamService.Delete(ctx, id); err != nil {
		writeServiceError(w, err, "team")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TeamMembersHandler returns the users belonging to a team. An unknown team
// or a team with no members yields an empty list, not a 404.
// GET /api/teams/{id}/members
func (th *TrackerAPIHandlers) TeamMembersHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	members, err := th.TeamService.Members(ctx, id)
	if err != nil {
		writeServiceError(w, err, "team members")
		return
	}
	api.WriteJSON(w, http.StatusOK, members)
}

// --- Activities ---

// ListActivitiesHandler returns all activities, newest date first.
// GET /api/activities
func (th *TrackerAPIHandlers) ListActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	activities, err := th.ActivityService.List(ctx)
	if err != nil {
		writeServiceError(w, err, "activities")
		return
	}
	api.WriteJSON(w, http.StatusOK, activities)
}

// GetActivityHandler returns a single activity.
// GET /api/activities/{id}
func (th *TrackerAPIHandlers) GetActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	activity, err := th.ActivityService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err, "activity")
		return
	}
	api.WriteJSON(w, http.StatusOK, activity)
}

// CreateActivityHandler inserts a new activity.
// POST /api/activities
func (th *TrackerAPIHandlers) CreateActivityHandler(w http.ResponseWriter, r *http.Request) {
	var activity models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := th.ActivityService.Create(ctx, &activity)
	if err != nil {
		writeServiceError(w, err, "activity")
		return
	}
	api.WriteJSON(w, http.StatusCreated, created)
}

// UpdateActivityHandler applies a partial update.
// PUT /api/activities/{id}
func (th *TrackerAPIHandlers) UpdateActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	var upd models.ActivityUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	activity, err := th.ActivityService.Update(ctx, id, upd)
	if err != nil {
		writeServiceError(w, err, "activity")
		return
	}
	api.WriteJSON(w, http.StatusOK, activity)
}

// DeleteActivityHandler removes an activity.
// DELETE /api/activities/{id}
func (th *TrackerAPIHandlers) DeleteActivityHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := th.ActivityService.Delete(ctx, id); err != nil {
		writeServiceError(w, err, "activity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivitiesByUserHandler returns one user's activities, newest date first.
// GET /api/activities/by_user?user_id=N
func (th *TrackerAPIHandlers) ActivitiesByUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	activities, err := th.ActivityService.ByUser(ctx, r.URL.Query().Get("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidParameter) {
			api.WriteBadRequest(w, "user_id parameter is required")
			return
		}
		writeServiceError(w, err, "activities")
		return
	}
	api.WriteJSON(w, http.StatusOK, activities)
}

// --- Leaderboard ---

// ListLeaderboardHandler returns all entries, best rank first.
// GET /api/leaderboard
func (th *TrackerAPIHandlers) ListLeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	entries, err := th.LeaderboardService.List(ctx)
	if err != nil {
		writeServiceError(w, err, "leaderboard")
		return
	}
	api.WriteJSON(w, http.StatusOK, entries)
}

// GetLeaderboardEntryHandler returns a single entry.
// GET /api/leaderboard/{id}
func (th *TrackerAPIHandlers) GetLeaderboardEntryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	entry, err := th.LeaderboardService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err, "leaderboard entry")
		return
	}
	api.WriteJSON(w, http.StatusOK, entry)
}

// CreateLeaderboardEntryHandler inserts a new entry.
// POST /api/leaderboard
func (th *TrackerAPIHandlers) CreateLeaderboardEntryHandler(w http.ResponseWriter, r *http.Request) {
	var entry models.Leaderboard
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := th.LeaderboardService.Create(ctx, &entry)
	if err != nil {
		writeServiceError(w, err, "leaderboard entry")
		return
	}
	api.WriteJSON(w, http.StatusCreated, created)
}

// UpdateLeaderboardEntryHandler applies a partial update.
// PUT /api/leaderboard/{id}
func (th *TrackerAPIHandlers) UpdateLeaderboardEntryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	var upd models.LeaderboardUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	entry, err := th.LeaderboardService.Update(ctx, id, upd)
	if err != nil {
		writeServiceError(w, err, "leaderboard entry")
		return
	}
	api.WriteJSON(w, http.StatusOK, entry)
}

// DeleteLeaderboardEntryHandler removes an entry.
// DELETE /api/leaderboard/{id}
func (th *TrackerAPIHandlers) DeleteLeaderboardEntryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := th.LeaderboardService.Delete(ctx, id); err != nil {
		writeServiceError(w, err, "leaderboard entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LeaderboardByTeamHandler returns one team's entries, best rank first.
// GET /api/leaderboard/by_team?team_id=N
func (th *TrackerAPIHandlers) LeaderboardByTeamHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	entries, err := th.LeaderboardService.ByTeam(ctx, r.URL.Query().Get("team_id"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidParameter) {
			api.WriteBadRequest(w, "team_id parameter is required")
			return
		}
		writeServiceError(w, err, "leaderboard")
		return
	}
	api.WriteJSON(w, http.StatusOK, entries)
}

// --- Workouts ---

// ListWorkoutsHandler returns all workouts in default order.
// GET /api/workouts
func (th *TrackerAPIHandlers) ListWorkoutsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	workouts, err := th.WorkoutService.List(ctx)
	if err != nil {
		writeServiceError(w, err, "workouts")
		return
	}
	api.WriteJSON(w, http.StatusOK, workouts)
}

// GetWorkoutHandler returns a single workout.
// GET /api/workouts/{id}
func (th *TrackerAPIHandlers) GetWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	workout, err := th.WorkoutService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, err, "workout")
		return
	}
	api.WriteJSON(w, http.StatusOK, workout)
}

// CreateWorkoutHandler inserts a new workout.
// POST /api/workouts
func (th *TrackerAPIHandlers) CreateWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := th.WorkoutService.Create(ctx, &workout)
	if err != nil {
		writeServiceError(w, err, "workout")
		return
	}
	api.WriteJSON(w, http.StatusCreated, created)
}

// UpdateWorkoutHandler applies a partial update.
// PUT /api/workouts/{id}
func (th *TrackerAPIHandlers) UpdateWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	var upd models.WorkoutUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		api.WriteBadRequest(w, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	workout, err := th.WorkoutService.Update(ctx, id, upd)
	if err != nil {
		writeServiceError(w, err, "workout")
		return
	}
	api.WriteJSON(w, http.StatusOK, workout)
}

// DeleteWorkoutHandler removes a workout.
// DELETE /api/workouts/{id}
func (th *TrackerAPIHandlers) DeleteWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := th.WorkoutService.Delete(ctx, id); err != nil {
		writeServiceError(w, err, "workout")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WorkoutsByDifficultyHandler returns the workouts matching a difficulty.
// GET /api/workouts/by_difficulty?difficulty=S
func (th *TrackerAPIHandlers) WorkoutsByDifficultyHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	workouts, err := th.WorkoutService.ByDifficulty(ctx, r.URL.Query().Get("difficulty"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidParameter) {
			api.WriteBadRequest(w, "difficulty parameter is required")
			return
		}
		writeServiceError(w, err, "workouts")
		return
	}
	api.WriteJSON(w, http.StatusOK, workouts)
}

// RegisterRoutes registers all API endpoints for the tracker service.
// Filtered-query routes are registered before the {id} routes so that
// "by_user" and friends are never captured as an id.
func (th *TrackerAPIHandlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", th.HealthzHandler).Methods("GET")
	router.HandleFunc("/api", th.APIRootHandler).Methods("GET")
	router.HandleFunc("/api/", th.APIRootHandler).Methods("GET")

	router.HandleFunc("/api/users", th.ListUsersHandler).Methods("GET")
	router.HandleFunc("/api/users", th.CreateUserHandler).Methods("POST")
	router.HandleFunc("/api/users/{id}", th.GetUserHandler).Methods("GET")
	router.HandleFunc("/api/users/{id}", th.UpdateUserHandler).Methods("PUT")
	router.HandleFunc("/api/users/{id}", th.DeleteUserHandler).Methods("DELETE")

	router.HandleFunc("/api/teams", th.ListTeamsHandler).Methods("GET")
	router.HandleFunc("/api/teams", th.CreateTeamHandler).Methods("POST")
	router.HandleFunc("/api/teams/{id}", th.GetTeamHandler).Methods("GET")
	router.HandleFunc("/api/teams/{id}", th.UpdateTeamHandler).Methods("PUT")
	router.HandleFunc("/api/teams/{id}", th.DeleteTeamHandler).Methods("DELETE")
	router.HandleFunc("/api/teams/{id}/members", th.TeamMembersHandler).Methods("GET")

	router.HandleFunc("/api/activities", th.ListActivitiesHandler).Methods("GET")
	router.HandleFunc("/api/activities", th.CreateActivityHandler).Methods("POST")
	router.HandleFunc("/api/activities/by_user", th.ActivitiesByUserHandler).Methods("GET")
	router.HandleFunc("/api/activities/{id}", th.GetActivityHandler).Methods("GET")
	router.HandleFunc("/api/activities/{id}", th.UpdateActivityHandler).Methods("PUT")
	router.HandleFunc("/api/activities/{id}", th.DeleteActivityHandler).Methods("DELETE")

	router.HandleFunc("/api/leaderboard", th.ListLeaderboardHandler).Methods("GET")
	router.HandleFunc("/api/leaderboard", th.CreateLeaderboardEntryHandler).Methods("POST")
	router.HandleFunc("/api/leaderboard/by_team", th.LeaderboardByTeamHandler).Methods("GET")
	router.HandleFunc("/api/leaderboard/{id}", th.GetLeaderboardEntryHandler).Methods("GET")
	router.HandleFunc("/api/leaderboard/{id}", th.UpdateLeaderboardEntryHandler).Methods("PUT")
	router.HandleFunc("/api/leaderboard/{id}", th.DeleteLeaderboardEntryHandler).Methods("DELETE")

	router.HandleFunc("/api/workouts", th.ListWorkoutsHandler).Methods("GET")
	router.HandleFunc("/api/workouts", th.CreateWorkoutHandler).Methods("POST")
	router.HandleFunc("/api/workouts/by_difficulty", th.WorkoutsByDifficultyHandler).Methods("GET")
	router.HandleFunc("/api/workouts/{id}", th.GetWorkoutHandler).Methods("GET")
	router.HandleFunc("/api/workouts/{id}", th.UpdateWorkoutHandler).Methods("PUT")
	router.HandleFunc("/api/workouts/{id}", th.DeleteWorkoutHandler).Methods("DELETE")
}
