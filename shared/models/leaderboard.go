package models

// Leaderboard represents one ranked entry in the "leaderboard" collection,
// conceptually one per user per team. Points and rank are assigned by the
// seeding tooling, never computed from activities.
type Leaderboard struct {
	ID          int `bson:"_id" json:"_id"`
	UserID      int `bson:"user_id" json:"user_id"`
	TeamID      int `bson:"team_id" json:"team_id"`
	TotalPoints int `bson:"total_points" json:"total_points"`
	Rank        int `bson:"rank" json:"rank"`
}

// LeaderboardUpdate carries a partial update; nil fields are left untouched.
type LeaderboardUpdate struct {
	UserID      *int `json:"user_id"`
	TeamID      *int `json:"team_id"`
	TotalPoints *int `json:"total_points"`
	Rank        *int `json:"rank"`
}
