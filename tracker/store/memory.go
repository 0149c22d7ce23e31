// tracker/store/memory.go
//
// In-memory implementations of the store interfaces. They honor the same
// ordering, uniqueness and error contracts as the Mongo stores and back the
// package tests plus local runs without a database.
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/octofit/go-services/shared/models"
)

// MemoryUserStore stores users in a mutex-guarded map.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[int]models.User
}

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[int]models.User)}
}

func (us *MemoryUserStore) Insert(ctx context.Context, user *models.User) error {
	us.mu.Lock()
	defer us.mu.Unlock()

	if _, exists := us.users[user.ID]; exists {
		return fmt.Errorf("insert user %d: %w", user.ID, ErrDuplicate)
	}
	for _, existing := range us.users {
		if existing.Email == user.Email {
			return fmt.Errorf("insert user %d: %w", user.ID, ErrDuplicate)
		}
	}
	us.users[user.ID] = *user
	return nil
}

func (us *MemoryUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	us.mu.RLock()
	defer us.mu.RUnlock()
	return us.collect(func(models.User) bool { return true }), nil
}

func (us *MemoryUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	us.mu.RLock()
	defer us.mu.RUnlock()

	user, ok := us.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return &user, nil
}

func (us *MemoryUserStore) FindByTeamID(ctx context.Context, teamID int) ([]models.User, error) {
	us.mu.RLock()
	defer us.mu.RUnlock()
	return us.collect(func(u models.User) bool {
		return u.TeamID != nil && *u.TeamID == teamID
	}), nil
}

func (us *MemoryUserStore) Update(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	us.mu.Lock()
	defer us.mu.Unlock()

	user, ok := us.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if upd.Email != nil {
		for otherID, other := range us.users {
			if otherID != id && other.Email == *upd.Email {
				return nil, fmt.Errorf("update user %d: %w", id, ErrDuplicate)
			}
		}
		user.Email = *upd.Email
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.TeamID != nil {
		teamID := *upd.TeamID
		user.TeamID = &teamID
	}
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	us.users[id] = user
	return &user, nil
}

func (us *MemoryUserStore) Delete(ctx context.Context, id int) error {
	us.mu.Lock()
	defer us.mu.Unlock()

	if _, ok := us.users[id]; !ok {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	delete(us.users, id)
	return nil
}

func (us *MemoryUserStore) DeleteAll(ctx context.Context) error {
	us.mu.Lock()
	defer us.mu.Unlock()
	us.users = make(map[int]models.User)
	return nil
}

func (us *MemoryUserStore) collect(keep func(models.User) bool) []models.User {
	users := []models.User{}
	for _, user := range us.users {
		if keep(user) {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

// MemoryTeamStore stores teams in a mutex-guarded map.
type MemoryTeamStore struct {
	mu    sync.RWMutex
	teams map[int]models.Team
}

// NewMemoryTeamStore creates an empty MemoryTeamStore.
func NewMemoryTeamStore() *MemoryTeamStore {
	return &MemoryTeamStore{teams: make(map[int]models.Team)}
}

func (ts *MemoryTeamStore) Insert(ctx context.Context, team *models.Team) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.teams[team.ID]; exists {
		return fmt.Errorf("insert team %d: %w", team.ID, ErrDuplicate)
	}
	ts.teams[team.ID] = *team
	return nil
}

func (ts *MemoryTeamStore) FindAll(ctx context.Context) ([]models.Team, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	teams := []models.Team{}
	for _, team := range ts.teams {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })
	return teams, nil
}

func (ts *MemoryTeamStore) FindByID(ctx context.Context, id int) (*models.Team, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	team, ok := ts.teams[id]
	if !ok {
		return nil, fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	return &team, nil
}

func (ts *MemoryTeamStore) Update(ctx context.Context, id int, upd models.TeamUpdate) (*models.Team, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	team, ok := ts.teams[id]
	if !ok {
		return nil, fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	if upd.Name != nil {
		team.Name = *upd.Name
	}
	if upd.Description != nil {
		team.Description = *upd.Description
	}
	ts.teams[id] = team
	return &team, nil
}

func (ts *MemoryTeamStore) Delete(ctx context.Context, id int) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.teams[id]; !ok {
		return fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	delete(ts.teams, id)
	return nil
}

func (ts *MemoryTeamStore) DeleteAll(ctx context.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.teams = make(map[int]models.Team)
	return nil
}

// MemoryActivityStore stores activities in a mutex-guarded map.
type MemoryActivityStore struct {
	mu         sync.RWMutex
	activities map[int]models.Activity
}

// NewMemoryActivityStore creates an empty MemoryActivityStore.
func NewMemoryActivityStore() *MemoryActivityStore {
	return &MemoryActivityStore{activities: make(map[int]models.Activity)}
}

func (as *MemoryActivityStore) Insert(ctx context.Context, activity *models.Activity) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	if _, exists := as.activities[activity.ID]; exists {
		return fmt.Errorf("insert activity %d: %w", activity.ID, ErrDuplicate)
	}
	as.activities[activity.ID] = *activity
	return nil
}

func (as *MemoryActivityStore) FindAll(ctx context.Context) ([]models.Activity, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return as.collect(func(models.Activity) bool { return true }), nil
}

func (as *MemoryActivityStore) FindByID(ctx context.Context, id int) (*models.Activity, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()

	activity, ok := as.activities[id]
	if !ok {
		return nil, fmt.Errorf("activity %d: %w", id, ErrNotFound)
	}
	return &activity, nil
}

func (as *MemoryActivityStore) FindByUserID(ctx context.Context, userID int) ([]models.Activity, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return as.collect(func(a models.Activity) bool { return a.UserID == userID }), nil
}

func (as *MemoryActivityStore) Update(ctx context.Context, id int, upd models.ActivityUpdate) (*models.Activity, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	activity, ok := as.activities[id]
	if !ok {
		return nil, fmt.Errorf("activity %d: %w", id, ErrNotFound)
	}
	if upd.UserID != nil {
		activity.UserID = *upd.UserID
	}
	if upd.ActivityType != nil {
		activity.ActivityType = *upd.ActivityType
	}
	if upd.Duration != nil {
		activity.Duration = *upd.Duration
	}
	if upd.Distance != nil {
		activity.Distance = *upd.Distance
	}
	if upd.Calories != nil {
		activity.Calories = *upd.Calories
	}
	if upd.Date != nil {
		activity.Date = *upd.Date
	}
	as.activities[id] = activity
	return &activity, nil
}

func (as *MemoryActivityStore) Delete(ctx context.Context, id int) error {
	as.mu.Lock()
	defer as.mu.Unlock()

	if _, ok := as.activities[id]; !ok {
		return fmt.Errorf("activity %d: %w", id, ErrNotFound)
	}
	delete(as.activities, id)
	return nil
}

func (as *MemoryActivityStore) DeleteAll(ctx context.Context) error {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.activities = make(map[int]models.Activity)
	return nil
}

func (as *MemoryActivityStore) collect(keep func(models.Activity) bool) []models.Activity {
	activities := []models.Activity{}
	for _, activity := range as.activities {
		if keep(activity) {
			activities = append(activities, activity)
		}
	}
	// ISO dates compare lexicographically; newest day first, _id breaks ties.
	sort.Slice(activities, func(i, j int) bool {
		if activities[i].Date != activities[j].Date {
			return activities[i].Date > activities[j].Date
		}
		return activities[i].ID < activities[j].ID
	})
	return activities
}

// MemoryLeaderboardStore stores leaderboard entries in a mutex-guarded map.
type MemoryLeaderboardStore struct {
	mu      sync.RWMutex
	entries map[int]models.Leaderboard
}

// NewMemoryLeaderboardStore creates an empty MemoryLeaderboardStore.
func NewMemoryLeaderboardStore() *MemoryLeaderboardStore {
	return &MemoryLeaderboardStore{entries: make(map[int]models.Leaderboard)}
}

func (ls *MemoryLeaderboardStore) Insert(ctx context.Context, entry *models.Leaderboard) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if _, exists := ls.entries[entry.ID]; exists {
		return fmt.Errorf("insert leaderboard entry %d: %w", entry.ID, ErrDuplicate)
	}
	ls.entries[entry.ID] = *entry
	return nil
}

func (ls *MemoryLeaderboardStore) FindAll(ctx context.Context) ([]models.Leaderboard, error) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	return ls.collect(func(models.Leaderboard) bool { return true }), nil
}

func (ls *MemoryLeaderboardStore) FindByID(ctx context.Context, id int) (*models.Leaderboard, error) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()

	entry, ok := ls.entries[id]
	if !ok {
		return nil, fmt.Errorf("leaderboard entry %d: %w", id, ErrNotFound)
	}
	return &entry, nil
}

func (ls *MemoryLeaderboardStore) FindByTeamID(ctx context.Context, teamID int) ([]models.Leaderboard, error) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	return ls.collect(func(e models.Leaderboard) bool { return e.TeamID == teamID }), nil
}

func (ls *MemoryLeaderboardStore) Update(ctx context.Context, id int, upd models.LeaderboardUpdate) (*models.Leaderboard, error) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	entry, ok := ls.entries[id]
	if !ok {
		return nil, fmt.Errorf("leaderboard entry %d: %w", id, ErrNotFound)
	}
	if upd.UserID != nil {
		entry.UserID = *upd.UserID
	}
	if upd.TeamID != nil {
		entry.TeamID = *upd.TeamID
	}
	if upd.TotalPoints != nil {
		entry.TotalPoints = *upd.TotalPoints
	}
	if upd.Rank != nil {
		entry.Rank = *upd.Rank
	}
	ls.entries[id] = entry
	return &entry, nil
}

func (ls *MemoryLeaderboardStore) Delete(ctx context.Context, id int) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if _, ok := ls.entries[id]; !ok {
		return fmt.Errorf("leaderboard entry %d: %w", id, ErrNotFound)
	}
	delete(ls.entries, id)
	return nil
}

func (ls *MemoryLeaderboardStore) DeleteAll(ctx context.Context) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.entries = make(map[int]models.Leaderboard)
	return nil
}

func (ls *MemoryLeaderboardStore) collect(keep func(models.Leaderboard) bool) []models.Leaderboard {
	entries := []models.Leaderboard{}
	for _, entry := range ls.entries {
		if keep(entry) {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Rank < entries[j].Rank })
	return entries
}

// MemoryWorkoutStore stores workouts in a mutex-guarded map.
type MemoryWorkoutStore struct {
	mu       sync.RWMutex
	workouts map[int]models.Workout
}

// NewMemoryWorkoutStore creates an empty MemoryWorkoutStore.
func NewMemoryWorkoutStore() *MemoryWorkoutStore {
	return &MemoryWorkoutStore{workouts: make(map[int]models.Workout)}
}

func (ws *MemoryWorkoutStore) Insert(ctx context.Context, workout *models.Workout) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if _, exists := ws.workouts[workout.ID]; exists {
		return fmt.Errorf("insert workout %d: %w", workout.ID, ErrDuplicate)
	}
	ws.workouts[workout.ID] = *workout
	return nil
}

func (ws *MemoryWorkoutStore) FindAll(ctx context.Context) ([]models.Workout, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.collect(func(models.Workout) bool { return true }), nil
}

func (ws *MemoryWorkoutStore) FindByID(ctx context.Context, id int) (*models.Workout, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	workout, ok := ws.workouts[id]
	if !ok {
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	return &workout, nil
}

func (ws *MemoryWorkoutStore) FindByDifficulty(ctx context.Context, difficulty string) ([]models.Workout, error) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.collect(func(w models.Workout) bool { return w.Difficulty == difficulty }), nil
}

func (ws *MemoryWorkoutStore) Update(ctx context.Context, id int, upd models.WorkoutUpdate) (*models.Workout, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	workout, ok := ws.workouts[id]
	if !ok {
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	if upd.Name != nil {
		workout.Name = *upd.Name
	}
	if upd.Description != nil {
		workout.Description = *upd.Description
	}
	if upd.Difficulty != nil {
		workout.Difficulty = *upd.Difficulty
	}
	if upd.Duration != nil {
		workout.Duration = *upd.Duration
	}
	ws.workouts[id] = workout
	return &workout, nil
}

func (ws *MemoryWorkoutStore) Delete(ctx context.Context, id int) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if _, ok := ws.workouts[id]; !ok {
		return fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	delete(ws.workouts, id)
	return nil
}

func (ws *MemoryWorkoutStore) DeleteAll(ctx context.Context) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.workouts = make(map[int]models.Workout)
	return nil
}

func (ws *MemoryWorkoutStore) collect(keep func(models.Workout) bool) []models.Workout {
	workouts := []models.Workout{}
	for _, workout := range ws.workouts {
		if keep(workout) {
			workouts = append(workouts, workout)
		}
	}
	sort.Slice(workouts, func(i, j int) bool { return workouts[i].ID < workouts[j].ID })
	return workouts
}

// Interface conformance for both implementations.
var (
	_ UserStore        = (*MongoUserStore)(nil)
	_ UserStore        = (*MemoryUserStore)(nil)
	_ TeamStore        = (*MongoTeamStore)(nil)
	_ TeamStore        = (*MemoryTeamStore)(nil)
	_ ActivityStore    = (*MongoActivityStore)(nil)
	_ ActivityStore    = (*MemoryActivityStore)(nil)
	_ LeaderboardStore = (*MongoLeaderboardStore)(nil)
	_ LeaderboardStore = (*MemoryLeaderboardStore)(nil)
	_ WorkoutStore     = (*MongoWorkoutStore)(nil)
	_ WorkoutStore     = (*MemoryWorkoutStore)(nil)
)
