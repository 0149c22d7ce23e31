// tracker/service/service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octofit/go-services/shared/models"
	"github.com/octofit/go-services/tracker/store"
)

func intPtr(v int) *int { return &v }

func TestUserServiceCreateDefaultsRole(t *testing.T) {
	ctx := context.Background()
	us := NewUserService(store.NewMemoryUserStore())

	created, err := us.Create(ctx, &models.User{ID: 1, Name: "Mara Voss", Email: "mara@example.com"})
	require.NoError(t, err)
	require.Equal(t, models.DefaultUserRole, created.Role)

	// An explicit role is kept as sent.
	created, err = us.Create(ctx, &models.User{ID: 2, Name: "Deniz Aydin", Email: "deniz@example.com", Role: "coach"})
	require.NoError(t, err)
	require.Equal(t, "coach", created.Role)
}

func TestUserServiceDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	us := NewUserService(store.NewMemoryUserStore())

	_, err := us.Create(ctx, &models.User{ID: 1, Name: "A", Email: "same@example.com"})
	require.NoError(t, err)

	_, err = us.Create(ctx, &models.User{ID: 2, Name: "B", Email: "same@example.com"})
	require.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestUserServiceGetNotFound(t *testing.T) {
	ctx := context.Background()
	us := NewUserService(store.NewMemoryUserStore())

	_, err := us.Get(ctx, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTeamServiceMembers(t *testing.T) {
	ctx := context.Background()
	userStore := store.NewMemoryUserStore()
	ts := NewTeamService(store.NewMemoryTeamStore(), userStore)

	require.NoError(t, userStore.Insert(ctx, &models.User{ID: 1, Name: "A", Email: "a@example.com", TeamID: intPtr(1)}))
	require.NoError(t, userStore.Insert(ctx, &models.User{ID: 2, Name: "B", Email: "b@example.com", TeamID: intPtr(2)}))
	require.NoError(t, userStore.Insert(ctx, &models.User{ID: 3, Name: "C", Email: "c@example.com", TeamID: intPtr(1)}))

	members, err := ts.Members(ctx, 1)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, 1, members[0].ID)
	require.Equal(t, 3, members[1].ID)

	// A team nobody belongs to yields an empty slice, not an error.
	members, err = ts.Members(ctx, 99)
	require.NoError(t, err)
	require.NotNil(t, members)
	require.Empty(t, members)
}

func TestActivityServiceByUser(t *testing.T) {
	ctx := context.Background()
	activityStore := store.NewMemoryActivityStore()
	as := NewActivityService(activityStore)

	require.NoError(t, activityStore.Insert(ctx, &models.Activity{ID: 1, UserID: 7, ActivityType: "Running", Date: "2026-08-24"}))
	require.NoError(t, activityStore.Insert(ctx, &models.Activity{ID: 2, UserID: 7, ActivityType: "Cycling", Date: "2026-08-26"}))
	require.NoError(t, activityStore.Insert(ctx, &models.Activity{ID: 3, UserID: 8, ActivityType: "Swimming", Date: "2026-08-25"}))

	activities, err := as.ByUser(ctx, "7")
	require.NoError(t, err)
	require.Len(t, activities, 2)
	// Date descending.
	require.Equal(t, 2, activities[0].ID)
	require.Equal(t, 1, activities[1].ID)
}

func TestActivityServiceByUserValidation(t *testing.T) {
	ctx := context.Background()
	as := NewActivityService(store.NewMemoryActivityStore())

	_, err := as.ByUser(ctx, "")
	require.ErrorIs(t, err, ErrUserIDRequired)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = as.ByUser(ctx, "not-a-number")
	require.ErrorIs(t, err, ErrUserIDRequired)
}

func TestLeaderboardServiceByTeam(t *testing.T) {
	ctx := context.Background()
	leaderboardStore := store.NewMemoryLeaderboardStore()
	ls := NewLeaderboardService(leaderboardStore, nil)

	require.NoError(t, leaderboardStore.Insert(ctx, &models.Leaderboard{ID: 1, UserID: 1, TeamID: 1, TotalPoints: 500, Rank: 3}))
	require.NoError(t, leaderboardStore.Insert(ctx, &models.Leaderboard{ID: 2, UserID: 2, TeamID: 2, TotalPoints: 900, Rank: 1}))
	require.NoError(t, leaderboardStore.Insert(ctx, &models.Leaderboard{ID: 3, UserID: 3, TeamID: 1, TotalPoints: 700, Rank: 2}))

	entries, err := ls.ByTeam(ctx, "1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Rank ascending.
	require.Equal(t, 3, entries[0].ID)
	require.Equal(t, 1, entries[1].ID)
}

func TestLeaderboardServiceByTeamValidation(t *testing.T) {
	ctx := context.Background()
	ls := NewLeaderboardService(store.NewMemoryLeaderboardStore(), nil)

	_, err := ls.ByTeam(ctx, "")
	require.ErrorIs(t, err, ErrTeamIDRequired)

	_, err = ls.ByTeam(ctx, "one")
	require.ErrorIs(t, err, ErrTeamIDRequired)
}

func TestLeaderboardServiceWritesWithoutCache(t *testing.T) {
	ctx := context.Background()
	ls := NewLeaderboardService(store.NewMemoryLeaderboardStore(), nil)

	created, err := ls.Create(ctx, &models.Leaderboard{ID: 1, UserID: 1, TeamID: 1, TotalPoints: 100, Rank: 1})
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)

	updated, err := ls.Update(ctx, 1, models.LeaderboardUpdate{TotalPoints: intPtr(250), TeamID: intPtr(2)})
	require.NoError(t, err)
	require.Equal(t, 250, updated.TotalPoints)
	require.Equal(t, 2, updated.TeamID)

	require.NoError(t, ls.Delete(ctx, 1))
	require.ErrorIs(t, ls.Delete(ctx, 1), ErrNotFound)
}

func TestWorkoutServiceByDifficulty(t *testing.T) {
	ctx := context.Background()
	workoutStore := store.NewMemoryWorkoutStore()
	ws := NewWorkoutService(workoutStore)

	require.NoError(t, workoutStore.Insert(ctx, &models.Workout{ID: 1, Name: "Hill Repeats", Difficulty: models.DifficultyHard, Duration: 40}))
	require.NoError(t, workoutStore.Insert(ctx, &models.Workout{ID: 2, Name: "Mobility Flow", Difficulty: models.DifficultyEasy, Duration: 25}))

	hard, err := ws.ByDifficulty(ctx, models.DifficultyHard)
	require.NoError(t, err)
	require.Len(t, hard, 1)
	require.Equal(t, "Hill Repeats", hard[0].Name)

	_, err = ws.ByDifficulty(ctx, "")
	require.ErrorIs(t, err, ErrDifficultyRequired)
}
