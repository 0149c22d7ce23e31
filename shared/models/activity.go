package models

// Activity represents a single logged workout session in the "activities"
// collection. UserID is a soft reference to a User. Date is a calendar day in
// YYYY-MM-DD form; the ISO layout keeps lexicographic order chronological, so
// the date-descending default sort is a plain field sort.
type Activity struct {
	ID           int     `bson:"_id" json:"_id"`
	UserID       int     `bson:"user_id" json:"user_id"`
	ActivityType string  `bson:"activity_type" json:"activity_type"`
	Duration     int     `bson:"duration" json:"duration"` // minutes
	Distance     float64 `bson:"distance" json:"distance"`
	Calories     int     `bson:"calories" json:"calories"`
	Date         string  `bson:"date" json:"date"`
}

// ActivityUpdate carries a partial update; nil fields are left untouched.
type ActivityUpdate struct {
	UserID       *int     `json:"user_id"`
	ActivityType *string  `json:"activity_type"`
	Duration     *int     `json:"duration"`
	Distance     *float64 `json:"distance"`
	Calories     *int     `json:"calories"`
	Date         *string  `json:"date"`
}
