// tracker/service/activity_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/octofit/go-services/shared/models"
	"github.com/octofit/go-services/tracker/store"
)

// ActivityService encapsulates the business logic for activities.
type ActivityService struct {
	activityStore store.ActivityStore
}

// NewActivityService creates a new ActivityService instance.
func NewActivityService(as store.ActivityStore) *ActivityService {
	return &ActivityService{activityStore: as}
}

// List returns every activity in default order (date descending).
func (as *ActivityService) List(ctx context.Context) ([]models.Activity, error) {
	activities, err := as.activityStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service failed to list activities: %w", err)
	}
	return activities, nil
}

// Get retrieves a single activity by id.
func (as *ActivityService) Get(ctx context.Context, id int) (*models.Activity, error) {
	activity, err := as.activityStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service failed to get activity: %w", err)
	}
	return activity, nil
}

// Create inserts a new activity with a caller-assigned id. The user_id is a
// soft reference; it is not checked against the users collection.
func (as *ActivityService) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	if err := as.activityStore.Insert(ctx, activity); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("service failed to create activity: %w", err)
	}
	return activity, nil
}

// Update applies a partial update and returns the updated activity.
func (as *ActivityService) Update(ctx context.Context, id int, upd models.ActivityUpdate) (*models.Activity, error) {
	activity, err := as.activityStore.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service failed to update activity: %w", err)
	}
	return activity, nil
}

// Delete removes an activity by id.
func (as *ActivityService) Delete(ctx context.Context, id int) error {
	if err := as.activityStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service failed to delete activity: %w", err)
	}
	return nil
}

// ByUser returns one user's activities, date descending. The raw query value
// is validated here: a missing or non-integer user_id reports
// ErrUserIDRequired.
func (as *ActivityService) ByUser(ctx context.Context, userIDParam string) ([]models.Activity, error) {
	if userIDParam == "" {
		return nil, ErrUserIDRequired
	}
	userID, err := strconv.Atoi(userIDParam)
	if err != nil {
		return nil, ErrUserIDRequired
	}

	activities, err := as.activityStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service failed to list activities for user %d: %w", userID, err)
	}
	return activities, nil
}
