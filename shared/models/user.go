package models

// DefaultUserRole is assigned when a user is created without an explicit role.
const DefaultUserRole = "member"

// User represents a tracked athlete stored in the "users" collection.
// TeamID is a soft reference to a Team; it is nil for unaffiliated users and
// nothing enforces that the referenced team exists.
type User struct {
	ID     int    `bson:"_id" json:"_id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	TeamID *int   `bson:"team_id" json:"team_id"`
	Role   string `bson:"role" json:"role"`
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	TeamID *int    `json:"team_id"`
	Role   *string `json:"role"`
}
