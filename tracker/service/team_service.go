// tracker/service/team_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/octofit/go-services/shared/models"
	"github.com/octofit/go-services/tracker/store"
)

// TeamService encapsulates the business logic for teams. It also owns the
// members query, which reads from the user store since membership lives on
// User.TeamID.
type TeamService struct {
	teamStore store.TeamStore
	userStore store.UserStore
}

// NewTeamService creates a new TeamService instance.
func NewTeamService(ts store.TeamStore, us store.UserStore) *TeamService {
	return &TeamService{
		teamStore: ts,
		userStore: us,
	}
}

// List returns every team in default order (_id ascending).
func (ts *TeamService) List(ctx context.Context) ([]models.Team, error) {
	teams, err := ts.teamStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service failed to list teams: %w", err)
	}
	return teams, nil
}

// Get retrieves a single team by id.
func (ts *TeamService) Get(ctx context.Context, id int) (*models.Team, error) {
	team, err := ts.teamStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service failed to get team: %w", err)
	}
	return team, nil
}

// Create inserts a new team with a caller-assigned id.
func (ts *TeamService) Create(ctx context.Context, team *models.Team) (*models.Team, error) {
	if err := ts.teamStore.Insert(ctx, team); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("service failed to create team: %w", err)
	}
	return team, nil
}

// Update applies a partial update and returns the updated team.
func (ts *TeamService) Update(ctx context.Context, id int, upd models.TeamUpdate) (*models.Team, error) {
	team, err := ts.teamStore.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service failed to update team: %w", err)
	}
	return team, nil
}

// Delete removes a team by id. Members are left untouched; their team_id
// becomes a dangling soft reference, matching the original behavior.
func (ts *TeamService) Delete(ctx context.Context, id int) error {
	if err := ts.teamStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service failed to delete team: %w", err)
	}
	return nil
}

// Members returns every user whose team_id equals teamID, in the users'
// default order. A team with no members, or an id that matches no team,
// yields an empty slice rather than an error.
func (ts *TeamService) Members(ctx context.Context, teamID int) ([]models.User, error) {
	members, err := ts.userStore.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("service failed to list members of team %d: %w", teamID, err)
	}
	return members, nil
}
