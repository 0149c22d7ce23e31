package models

// Conventional difficulty values. Difficulty is stored as a free string and
// is not validated against this set; these constants exist for fixtures and
// callers that want the usual three levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Workout represents a suggested workout plan in the "workouts" collection.
type Workout struct {
	ID          int    `bson:"_id" json:"_id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
	Difficulty  string `bson:"difficulty" json:"difficulty"`
	Duration    int    `bson:"duration" json:"duration"` // minutes
}

// WorkoutUpdate carries a partial update; nil fields are left untouched.
type WorkoutUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Difficulty  *string `json:"difficulty"`
	Duration    *int    `json:"duration"`
}
