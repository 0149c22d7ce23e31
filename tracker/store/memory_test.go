// tracker/store/memory_test.go
package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octofit/go-services/shared/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestMemoryUserStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	us := NewMemoryUserStore()

	user := &models.User{ID: 1, Name: "Mara Voss", Email: "mara@example.com", TeamID: intPtr(1), Role: "member"}
	require.NoError(t, us.Insert(ctx, user))

	got, err := us.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Mara Voss", got.Name)
	require.Equal(t, "mara@example.com", got.Email)
	require.NotNil(t, got.TeamID)
	require.Equal(t, 1, *got.TeamID)
}

func TestMemoryUserStoreDuplicateID(t *testing.T) {
	ctx := context.Background()
	us := NewMemoryUserStore()

	require.NoError(t, us.Insert(ctx, &models.User{ID: 1, Name: "A", Email: "a@example.com"}))
	err := us.Insert(ctx, &models.User{ID: 1, Name: "B", Email: "b@example.com"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryUserStoreDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	us := NewMemoryUserStore()

	require.NoError(t, us.Insert(ctx, &models.User{ID: 1, Name: "A", Email: "same@example.com"}))
	err := us.Insert(ctx, &models.User{ID: 2, Name: "B", Email: "same@example.com"})
	require.ErrorIs(t, err, ErrDuplicate)

	// Updating a user onto another user's email must also fail.
	require.NoError(t, us.Insert(ctx, &models.User{ID: 3, Name: "C", Email: "c@example.com"}))
	_, err = us.Update(ctx, 3, models.UserUpdate{Email: strPtr("same@example.com")})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryUserStoreOrderingAndTeamFilter(t *testing.T) {
	ctx := context.Background()
	us := NewMemoryUserStore()

	require.NoError(t, us.Insert(ctx, &models.User{ID: 3, Name: "C", Email: "c@example.com", TeamID: intPtr(2)}))
	require.NoError(t, us.Insert(ctx, &models.User{ID: 1, Name: "A", Email: "a@example.com", TeamID: intPtr(1)}))
	require.NoError(t, us.Insert(ctx, &models.User{ID: 2, Name: "B", Email: "b@example.com", TeamID: intPtr(1)}))

	all, err := us.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})

	team1, err := us.FindByTeamID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, team1, 2)
	require.Equal(t, 1, team1[0].ID)
	require.Equal(t, 2, team1[1].ID)

	team9, err := us.FindByTeamID(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, team9)
	require.Empty(t, team9)
}

func TestMemoryUserStorePartialUpdate(t *testing.T) {
	ctx := context.Background()
	us := NewMemoryUserStore()

	require.NoError(t, us.Insert(ctx, &models.User{ID: 1, Name: "Old Name", Email: "old@example.com", Role: "member"}))

	updated, err := us.Update(ctx, 1, models.UserUpdate{Name: strPtr("New Name")})
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)
	// Untouched fields keep their values.
	require.Equal(t, "old@example.com", updated.Email)
	require.Equal(t, "member", updated.Role)

	// Empty update is a no-op read.
	same, err := us.Update(ctx, 1, models.UserUpdate{})
	require.NoError(t, err)
	require.Equal(t, updated, same)

	_, err = us.Update(ctx, 99, models.UserUpdate{Name: strPtr("X")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUserStoreDelete(t *testing.T) {
	ctx := context.Background()
	us := NewMemoryUserStore()

	require.NoError(t, us.Insert(ctx, &models.User{ID: 1, Name: "A", Email: "a@example.com"}))
	require.NoError(t, us.Delete(ctx, 1))

	_, err := us.FindByID(ctx, 1)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, us.Delete(ctx, 1), ErrNotFound)
}

func TestMemoryActivityStoreOrdering(t *testing.T) {
	ctx := context.Background()
	as := NewMemoryActivityStore()

	require.NoError(t, as.Insert(ctx, &models.Activity{ID: 2, UserID: 1, ActivityType: "Running", Date: "2026-08-24"}))
	require.NoError(t, as.Insert(ctx, &models.Activity{ID: 1, UserID: 1, ActivityType: "Cycling", Date: "2026-08-26"}))
	require.NoError(t, as.Insert(ctx, &models.Activity{ID: 3, UserID: 2, ActivityType: "Swimming", Date: "2026-08-26"}))

	// Newest date first; id ascending breaks ties.
	all, err := as.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []int{1, 3, 2}, []int{all[0].ID, all[1].ID, all[2].ID})

	mine, err := as.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "2026-08-26", mine[0].Date)
	require.Equal(t, "2026-08-24", mine[1].Date)
}

func TestMemoryLeaderboardStoreRankOrdering(t *testing.T) {
	ctx := context.Background()
	ls := NewMemoryLeaderboardStore()

	require.NoError(t, ls.Insert(ctx, &models.Leaderboard{ID: 1, UserID: 1, TeamID: 1, TotalPoints: 500, Rank: 3}))
	require.NoError(t, ls.Insert(ctx, &models.Leaderboard{ID: 2, UserID: 2, TeamID: 2, TotalPoints: 900, Rank: 1}))
	require.NoError(t, ls.Insert(ctx, &models.Leaderboard{ID: 3, UserID: 3, TeamID: 1, TotalPoints: 700, Rank: 2}))

	all, err := ls.FindAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 1}, []int{all[0].ID, all[1].ID, all[2].ID})

	team1, err := ls.FindByTeamID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, team1, 2)
	require.Equal(t, 2, team1[0].Rank)
	require.Equal(t, 3, team1[1].Rank)
}

func TestMemoryWorkoutStoreDifficultyFilter(t *testing.T) {
	ctx := context.Background()
	ws := NewMemoryWorkoutStore()

	require.NoError(t, ws.Insert(ctx, &models.Workout{ID: 1, Name: "Hill Repeats", Difficulty: models.DifficultyHard, Duration: 40}))
	require.NoError(t, ws.Insert(ctx, &models.Workout{ID: 2, Name: "Mobility Flow", Difficulty: models.DifficultyEasy, Duration: 25}))
	require.NoError(t, ws.Insert(ctx, &models.Workout{ID: 3, Name: "Sprint Pyramid", Difficulty: models.DifficultyHard, Duration: 20}))

	hard, err := ws.FindByDifficulty(ctx, models.DifficultyHard)
	require.NoError(t, err)
	require.Len(t, hard, 2)
	require.Equal(t, 1, hard[0].ID)
	require.Equal(t, 3, hard[1].ID)

	// An unknown difficulty is not an error, just an empty result.
	none, err := ws.FindByDifficulty(ctx, "Brutal")
	require.NoError(t, err)
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestMemoryTeamStoreDeleteAll(t *testing.T) {
	ctx := context.Background()
	ts := NewMemoryTeamStore()

	require.NoError(t, ts.Insert(ctx, &models.Team{ID: 1, Name: "Harbor Striders"}))
	require.NoError(t, ts.Insert(ctx, &models.Team{ID: 2, Name: "Summit Circuit"}))
	require.NoError(t, ts.DeleteAll(ctx))

	all, err := ts.FindAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
