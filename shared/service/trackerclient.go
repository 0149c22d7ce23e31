// shared/service/trackerclient.go
package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/octofit/go-services/shared/api"
	"github.com/octofit/go-services/shared/models"
)

// TrackerClient is a typed Go client for the tracker HTTP API. It uses the
// shared api.Client, so api.ErrNotFound, api.ErrConflict and
// api.ErrBadRequest are reported for the matching status codes.
type TrackerClient struct {
	apiClient *api.Client
}

// NewTrackerClient creates a new tracker API client for the given base URL
// (e.g. "http://tracker-service:8080").
func NewTrackerClient(baseURL string) *TrackerClient {
	return &TrackerClient{
		apiClient: api.NewClient(baseURL, api.NewDefaultHTTPClient()),
	}
}

// --- Users ---

func (tc *TrackerClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := tc.apiClient.Get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (tc *TrackerClient) GetUser(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	if err := tc.apiClient.Get(ctx, fmt.Sprintf("/api/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (tc *TrackerClient) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	var created models.User
	if err := tc.apiClient.Post(ctx, "/api/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (tc *TrackerClient) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	var updated models.User
	if err := tc.apiClient.Put(ctx, fmt.Sprintf("/api/users/%d", id), upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (tc *TrackerClient) DeleteUser(ctx context.Context, id int) error {
	return tc.apiClient.Delete(ctx, fmt.Sprintf("/api/users/%d", id))
}

// --- Teams ---

func (tc *TrackerClient) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := tc.apiClient.Get(ctx, "/api/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (tc *TrackerClient) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	var team models.Team
	if err := tc.apiClient.Get(ctx, fmt.Sprintf("/api/teams/%d", id), &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (tc *TrackerClient) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	var created models.Team
	if err := tc.apiClient.Post(ctx, "/api/teams", team, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (tc *TrackerClient) UpdateTeam(ctx context.Context, id int, upd models.TeamUpdate) (*models.Team, error) {
	var updated models.Team
	if err := tc.apiClient.Put(ctx, fmt.Sprintf("/api/teams/%d", id), upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (tc *TrackerClient) DeleteTeam(ctx context.Context, id int) error {
	return tc.apiClient.Delete(ctx, fmt.Sprintf("/api/teams/%d", id))
}

// TeamMembers returns the users belonging to a team.
func (tc *TrackerClient) TeamMembers(ctx context.Context, teamID int) ([]models.User, error) {
	var members []models.User
	if err := tc.apiClient.Get(ctx, fmt.Sprintf("/api/teams/%d/members", teamID), &members); err != nil {
		return nil, err
	}
	return members, nil
}

// --- Activities ---

func (tc *TrackerClient) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := tc.apiClient.Get(ctx, "/api/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (tc *TrackerClient) GetActivity(ctx context.Context, id int) (*models.Activity, error) {
	var activity models.Activity
	if err := tc.apiClient.Get(ctx, fmt.Sprintf("/api/activities/%d", id), &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (tc *TrackerClient) CreateActivity(ctx context.Context, activity models.Activity) (*models.Activity, error) {
	var created models.Activity
	if err := tc.apiClient.Post(ctx, "/api/activities", activity, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (tc *TrackerClient) UpdateActivity(ctx context.Context, id int, upd models.ActivityUpdate) (*models.Activity, error) {
	var updated models.Activity
	if err := tc.apiClient.Put(ctx, fmt.Sprintf("/api/activities/%d", id), upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (tc *TrackerClient) DeleteActivity(ctx context.Context, id int) error {
	return tc.apiClient.Delete(ctx, fmt.Sprintf("/api/activities/%d", id))
}

// ActivitiesByUser returns one user's activities, newest date first.
func (tc *TrackerClient) ActivitiesByUser(ctx context.Context, userID int) ([]models.Activity, error) {
	var activities []models.Activity
	path := fmt.Sprintf("/api/activities/by_user?user_id=%d", userID)
	if err := tc.apiClient.Get(ctx, path, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// --- Leaderboard ---

func (tc *TrackerClient) ListLeaderboard(ctx context.Context) ([]models.Leaderboard, error) {
	var entries []models.Leaderboard
	if err := tc.apiClient.Get(ctx, "/api/leaderboard", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (tc *TrackerClient) GetLeaderboardEntry(ctx context.Context, id int) (*models.Leaderboard, error) {
	var entry models.Leaderboard
	if err := tc.apiClient.Get(ctx, fmt.Sprintf("/api/leaderboard/%d", id), &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (tc *TrackerClient) CreateLeaderboardEntry(ctx context.Context, entry models.Leaderboard) (*models.Leaderboard, error) {
	var created models.Leaderboard
	if err := tc.apiClient.Post(ctx, "/api/leaderboard", entry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (tc *TrackerClient) UpdateLeaderboardEntry(ctx context.Context, id int, upd models.LeaderboardUpdate) (*models.Leaderboard, error) {
	var updated models.Leaderboard
	if err := tc.apiClient.Put(ctx, fmt.Sprintf("/api/leaderboard/%d", id), upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (tc *TrackerClient) DeleteLeaderboardEntry(ctx context.Context, id int) error {
	return tc.apiClient.Delete(ctx, fmt.Sprintf("/api/leaderboard/%d", id))
}

// LeaderboardByTeam returns one team's entries, best rank first.
func (tc *TrackerClient) LeaderboardByTeam(ctx context.Context, teamID int) ([]models.Leaderboard, error) {
	var entries []models.Leaderboard
	path := fmt.Sprintf("/api/leaderboard/by_team?team_id=%d", teamID)
	if err := tc.apiClient.Get(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// --- Workouts ---

func (tc *TrackerClient) ListWorkouts(ctx context.Context) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := tc.apiClient.Get(ctx, "/api/workouts", &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (tc *TrackerClient) GetWorkout(ctx context.Context, id int) (*models.Workout, error) {
	var workout models.Workout
	if err := tc.apiClient.Get(ctx, fmt.Sprintf("/api/workouts/%d", id), &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (tc *TrackerClient) CreateWorkout(ctx context.Context, workout models.Workout) (*models.Workout, error) {
	var created models.Workout
	if err := tc.apiClient.Post(ctx, "/api/workouts", workout, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (tc *TrackerClient) UpdateWorkout(ctx context.Context, id int, upd models.WorkoutUpdate) (*models.Workout, error) {
	var updated models.Workout
	if err := tc.apiClient.Put(ctx, fmt.Sprintf("/api/workouts/%d", id), upd, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (tc *TrackerClient) DeleteWorkout(ctx context.Context, id int) error {
	return tc.apiClient.Delete(ctx, fmt.Sprintf("/api/workouts/%d", id))
}

// WorkoutsByDifficulty returns the workouts matching a difficulty.
func (tc *TrackerClient) WorkoutsByDifficulty(ctx context.Context, difficulty string) ([]models.Workout, error) {
	var workouts []models.Workout
	path := "/api/workouts/by_difficulty?difficulty=" + url.QueryEscape(difficulty)
	if err := tc.apiClient.Get(ctx, path, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}
