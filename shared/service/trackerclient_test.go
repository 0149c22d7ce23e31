// shared/service/trackerclient_test.go
package service

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/octofit/go-services/shared/api"
	"github.com/octofit/go-services/shared/models"
	trackerapi "github.com/octofit/go-services/tracker/api"
	trackersvc "github.com/octofit/go-services/tracker/service"
	"github.com/octofit/go-services/tracker/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	userStore := store.NewMemoryUserStore()
	handlers := trackerapi.NewTrackerAPIHandlers(
		trackersvc.NewUserService(userStore),
		trackersvc.NewTeamService(store.NewMemoryTeamStore(), userStore),
		trackersvc.NewActivityService(store.NewMemoryActivityStore()),
		trackersvc.NewLeaderboardService(store.NewMemoryLeaderboardStore(), nil),
		trackersvc.NewWorkoutService(store.NewMemoryWorkoutStore()),
	)
	router := mux.NewRouter()
	handlers.RegisterRoutes(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestTrackerClientUserLifecycle(t *testing.T) {
	srv := newTestServer(t)
	client := NewTrackerClient(srv.URL)
	ctx := context.Background()

	created, err := client.CreateUser(ctx, models.User{ID: 1, Name: "Mara Voss", Email: "mara@example.com"})
	require.NoError(t, err)
	require.Equal(t, models.DefaultUserRole, created.Role)

	got, err := client.GetUser(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Mara Voss", got.Name)

	name := "Mara V."
	updated, err := client.UpdateUser(ctx, 1, models.UserUpdate{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Mara V.", updated.Name)
	require.Equal(t, "mara@example.com", updated.Email)

	users, err := client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	require.NoError(t, client.DeleteUser(ctx, 1))

	_, err = client.GetUser(ctx, 1)
	require.ErrorIs(t, err, api.ErrNotFound)
}

func TestTrackerClientConflict(t *testing.T) {
	srv := newTestServer(t)
	client := NewTrackerClient(srv.URL)
	ctx := context.Background()

	_, err := client.CreateUser(ctx, models.User{ID: 1, Name: "A", Email: "same@example.com"})
	require.NoError(t, err)

	_, err = client.CreateUser(ctx, models.User{ID: 2, Name: "B", Email: "same@example.com"})
	require.ErrorIs(t, err, api.ErrConflict)
}

func TestTrackerClientFilteredQueries(t *testing.T) {
	srv := newTestServer(t)
	client := NewTrackerClient(srv.URL)
	ctx := context.Background()

	_, err := client.CreateActivity(ctx, models.Activity{ID: 1, UserID: 7, ActivityType: "Running", Duration: 45, Distance: 8.5, Calories: 640, Date: "2026-08-24"})
	require.NoError(t, err)
	_, err = client.CreateActivity(ctx, models.Activity{ID: 2, UserID: 7, ActivityType: "Cycling", Duration: 60, Distance: 24, Calories: 780, Date: "2026-08-26"})
	require.NoError(t, err)

	activities, err := client.ActivitiesByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, "2026-08-26", activities[0].Date)

	_, err = client.CreateLeaderboardEntry(ctx, models.Leaderboard{ID: 1, UserID: 7, TeamID: 3, TotalPoints: 640, Rank: 2})
	require.NoError(t, err)

	entries, err := client.LeaderboardByTeam(ctx, 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	_, err = client.CreateWorkout(ctx, models.Workout{ID: 1, Name: "Hill Repeats", Difficulty: models.DifficultyHard, Duration: 40})
	require.NoError(t, err)

	workouts, err := client.WorkoutsByDifficulty(ctx, models.DifficultyHard)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	require.Equal(t, "Hill Repeats", workouts[0].Name)
}
