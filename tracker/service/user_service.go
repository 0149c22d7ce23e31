// tracker/service/user_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/octofit/go-services/shared/models"
	"github.com/octofit/go-services/tracker/store"
)

// UserService encapsulates the business logic for users.
type UserService struct {
	userStore store.UserStore
}

// NewUserService creates a new UserService instance.
func NewUserService(us store.UserStore) *UserService {
	return &UserService{userStore: us}
}

// List returns every user in default order (_id ascending).
func (us *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := us.userStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service failed to list users: %w", err)
	}
	return users, nil
}

// Get retrieves a single user by id.
func (us *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	user, err := us.userStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service failed to get user: %w", err)
	}
	return user, nil
}

// Create inserts a new user with a caller-assigned id, defaulting the role
// to "member" when absent. Duplicate ids and emails report ErrDuplicateEntry.
func (us *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.Role == "" {
		user.Role = models.DefaultUserRole
	}
	if err := us.userStore.Insert(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("service failed to create user: %w", err)
	}
	return user, nil
}

// Update applies a partial update and returns the updated user.
func (us *UserService) Update(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	user, err := us.userStore.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("service failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes a user by id.
func (us *UserService) Delete(ctx context.Context, id int) error {
	if err := us.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service failed to delete user: %w", err)
	}
	return nil
}
