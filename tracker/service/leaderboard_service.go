// tracker/service/leaderboard_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/octofit/go-services/shared/models"
	"github.com/octofit/go-services/tracker/cache"
	"github.com/octofit/go-services/tracker/store"
)

// LeaderboardService encapsulates the business logic for leaderboard entries.
// The cache is optional; with a nil cache every read goes to the store.
type LeaderboardService struct {
	leaderboardStore store.LeaderboardStore
	cache            *cache.LeaderboardCache
}

// NewLeaderboardService creates a new LeaderboardService instance.
func NewLeaderboardService(ls store.LeaderboardStore, lc *cache.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{
		leaderboardStore: ls,
		cache:            lc,
	}
}

// List returns every entry in default order (rank ascending).
func (ls *LeaderboardService) List(ctx context.Context) ([]models.Leaderboard, error) {
	entries, err := ls.leaderboardStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service failed to list leaderboard entries: %w", err)
	}
	return entries, nil
}

// Get retrieves a single entry by id.
func (ls *LeaderboardService) Get(ctx context.Context, id int) (*models.Leaderboard, error) {
	entry, err := ls.leaderboardStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service failed to get leaderboard entry: %w", err)
	}
	return entry, nil
}

// Create inserts a new entry with a caller-assigned id and rank. Ranks are
// stored as given, never recomputed.
func (ls *LeaderboardService) Create(ctx context.Context, entry *models.Leaderboard) (*models.Leaderboard, error) {
	if err := ls.leaderboardStore.Insert(ctx, entry); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("service failed to create leaderboard entry: %w", err)
	}
	ls.invalidate(ctx, entry.TeamID)
	return entry, nil
}

// Update applies a partial update and returns the updated entry. When the
// entry moves between teams both sides of the move are invalidated.
func (ls *LeaderboardService) Update(ctx context.Context, id int, upd models.LeaderboardUpdate) (*models.Leaderboard, error) {
	previousTeamID := 0
	if existing, err := ls.leaderboardStore.FindByID(ctx, id); err == nil {
		previousTeamID = existing.TeamID
	}

	entry, err := ls.leaderboardStore.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service failed to update leaderboard entry: %w", err)
	}

	ls.invalidate(ctx, entry.TeamID)
	if previousTeamID != 0 && previousTeamID != entry.TeamID {
		ls.invalidate(ctx, previousTeamID)
	}
	return entry, nil
}

// Delete removes an entry by id.
func (ls *LeaderboardService) Delete(ctx context.Context, id int) error {
	entry, err := ls.leaderboardStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service failed to delete leaderboard entry: %w", err)
	}

	if err := ls.leaderboardStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service failed to delete leaderboard entry: %w", err)
	}
	ls.invalidate(ctx, entry.TeamID)
	return nil
}

// ByTeam returns one team's entries, rank ascending, serving from the cache
// when warm. The raw query value is validated here: a missing or non-integer
// team_id reports ErrTeamIDRequired.
func (ls *LeaderboardService) ByTeam(ctx context.Context, teamIDParam string) ([]models.Leaderboard, error) {
	if teamIDParam == "" {
		return nil, ErrTeamIDRequired
	}
	teamID, err := strconv.Atoi(teamIDParam)
	if err != nil {
		return nil, ErrTeamIDRequired
	}

	if ls.cache != nil {
		if entries, ok := ls.cache.GetTeam(ctx, teamID); ok {
			return entries, nil
		}
	}

	entries, err := ls.leaderboardStore.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("service failed to list leaderboard for team %d: %w", teamID, err)
	}
	if ls.cache != nil {
		ls.cache.SetTeam(ctx, teamID, entries)
	}
	return entries, nil
}

func (ls *LeaderboardService) invalidate(ctx context.Context, teamID int) {
	if ls.cache != nil {
		ls.cache.InvalidateTeam(ctx, teamID)
	}
}
