// tracker/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/octofit/go-services/shared/models"
)

// Sentinel errors shared by every store implementation. Callers check them
// with errors.Is; the wrapped message carries the entity detail.
var (
	// ErrNotFound is returned when no record exists for the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update collides with an
	// existing _id or a unique field (users.email).
	ErrDuplicate = errors.New("duplicate key")
)

// UserStore is the storage contract for the "users" collection.
// Default ordering for FindAll and FindByTeamID is _id ascending.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByTeamID(ctx context.Context, teamID int) ([]models.User, error)
	Update(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

// TeamStore is the storage contract for the "teams" collection.
// Default ordering is _id ascending.
type TeamStore interface {
	Insert(ctx context.Context, team *models.Team) error
	FindAll(ctx context.Context) ([]models.Team, error)
	FindByID(ctx context.Context, id int) (*models.Team, error)
	Update(ctx context.Context, id int, upd models.TeamUpdate) (*models.Team, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

// ActivityStore is the storage contract for the "activities" collection.
// Default ordering is date descending with _id ascending as tie-break.
type ActivityStore interface {
	Insert(ctx context.Context, activity *models.Activity) error
	FindAll(ctx context.Context) ([]models.Activity, error)
	FindByID(ctx context.Context, id int) (*models.Activity, error)
	FindByUserID(ctx context.Context, userID int) ([]models.Activity, error)
	Update(ctx context.Context, id int, upd models.ActivityUpdate) (*models.Activity, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

// LeaderboardStore is the storage contract for the "leaderboard" collection.
// Default ordering is rank ascending.
type LeaderboardStore interface {
	Insert(ctx context.Context, entry *models.Leaderboard) error
	FindAll(ctx context.Context) ([]models.Leaderboard, error)
	FindByID(ctx context.Context, id int) (*models.Leaderboard, error)
	FindByTeamID(ctx context.Context, teamID int) ([]models.Leaderboard, error)
	Update(ctx context.Context, id int, upd models.LeaderboardUpdate) (*models.Leaderboard, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

// WorkoutStore is the storage contract for the "workouts" collection.
// Default ordering is _id ascending.
type WorkoutStore interface {
	Insert(ctx context.Context, workout *models.Workout) error
	FindAll(ctx context.Context) ([]models.Workout, error)
	FindByID(ctx context.Context, id int) (*models.Workout, error)
	FindByDifficulty(ctx context.Context, difficulty string) ([]models.Workout, error)
	Update(ctx context.Context, id int, upd models.WorkoutUpdate) (*models.Workout, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}
