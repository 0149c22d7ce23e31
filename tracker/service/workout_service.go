// tracker/service/workout_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/octofit/go-services/shared/models"
	"github.com/octofit/go-services/tracker/store"
)

// WorkoutService encapsulates the business logic for workouts.
type WorkoutService struct {
	workoutStore store.WorkoutStore
}

// NewWorkoutService creates a new WorkoutService instance.
func NewWorkoutService(ws store.WorkoutStore) *WorkoutService {
	return &WorkoutService{workoutStore: ws}
}

// List returns every workout in default order (_id ascending).
func (ws *WorkoutService) List(ctx context.Context) ([]models.Workout, error) {
	workouts, err := ws.workoutStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service failed to list workouts: %w", err)
	}
	return workouts, nil
}

// Get retrieves a single workout by id.
func (ws *WorkoutService) Get(ctx context.Context, id int) (*models.Workout, error) {
	workout, err := ws.workoutStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service failed to get workout: %w", err)
	}
	return workout, nil
}

// Create inserts a new workout with a caller-assigned id. Difficulty is
// accepted as-is; it is a free string, not an enum.
func (ws *WorkoutService) Create(ctx context.Context, workout *models.Workout) (*models.Workout, error) {
	if err := ws.workoutStore.Insert(ctx, workout); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("service failed to create workout: %w", err)
	}
	return workout, nil
}

// Update applies a partial update and returns the updated workout.
func (ws *WorkoutService) Update(ctx context.Context, id int, upd models.WorkoutUpdate) (*models.Workout, error) {
	workout, err := ws.workoutStore.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service failed to update workout: %w", err)
	}
	return workout, nil
}

// Delete removes a workout by id.
func (ws *WorkoutService) Delete(ctx context.Context, id int) error {
	if err := ws.workoutStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service failed to delete workout: %w", err)
	}
	return nil
}

// ByDifficulty returns the workouts tagged with the given difficulty, in the
// workouts' default order. An empty difficulty reports ErrDifficultyRequired.
func (ws *WorkoutService) ByDifficulty(ctx context.Context, difficulty string) ([]models.Workout, error) {
	if difficulty == "" {
		return nil, ErrDifficultyRequired
	}

	workouts, err := ws.workoutStore.FindByDifficulty(ctx, difficulty)
	if err != nil {
		return nil, fmt.Errorf("service failed to list workouts with difficulty %q: %w", difficulty, err)
	}
	return workouts, nil
}
