package models

// Team represents a team stored in the "teams" collection. Membership lives
// on the User side (User.TeamID); deleting a team does not touch its users.
type Team struct {
	ID          int    `bson:"_id" json:"_id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

// TeamUpdate carries a partial update; nil fields are left untouched.
type TeamUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
