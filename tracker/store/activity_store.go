// tracker/store/activity_store.go
package store

import (
	"context"
	"fmt"

	"github.com/octofit/go-services/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// activitySort orders newest day first; _id breaks ties within a day.
var activitySort = bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: 1}}

// MongoActivityStore represents the MongoDB data store for activities.
type MongoActivityStore struct {
	collection *mongo.Collection
}

// NewMongoActivityStore creates a new MongoActivityStore instance.
func NewMongoActivityStore(collection *mongo.Collection) *MongoActivityStore {
	return &MongoActivityStore{collection: collection}
}

// Insert adds a new activity document with a caller-assigned _id.
func (as *MongoActivityStore) Insert(ctx context.Context, activity *models.Activity) error {
	_, err := as.collection.InsertOne(ctx, activity)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert activity %d: %w", activity.ID, ErrDuplicate)
		}
		return fmt.Errorf("failed to insert activity %d: %w", activity.ID, err)
	}
	return nil
}

// FindAll retrieves every activity, date descending.
func (as *MongoActivityStore) FindAll(ctx context.Context) ([]models.Activity, error) {
	return as.findMany(ctx, bson.M{})
}

// FindByID retrieves an activity by id.
func (as *MongoActivityStore) FindByID(ctx context.Context, id int) (*models.Activity, error) {
	var activity models.Activity
	err := as.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&activity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("activity %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find activity %d: %w", id, err)
	}
	return &activity, nil
}

// FindByUserID retrieves the activities logged by one user, date descending.
func (as *MongoActivityStore) FindByUserID(ctx context.Context, userID int) ([]models.Activity, error) {
	return as.findMany(ctx, bson.M{"user_id": userID})
}

// Update applies the non-nil fields of upd and returns the updated document.
func (as *MongoActivityStore) Update(ctx context.Context, id int, upd models.ActivityUpdate) (*models.Activity, error) {
	fields := bson.M{}
	if upd.UserID != nil {
		fields["user_id"] = *upd.UserID
	}
	if upd.ActivityType != nil {
		fields["activity_type"] = *upd.ActivityType
	}
	if upd.Duration != nil {
		fields["duration"] = *upd.Duration
	}
	if upd.Distance != nil {
		fields["distance"] = *upd.Distance
	}
	if upd.Calories != nil {
		fields["calories"] = *upd.Calories
	}
	if upd.Date != nil {
		fields["date"] = *upd.Date
	}
	if len(fields) == 0 {
		return as.FindByID(ctx, id)
	}

	res, err := as.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update activity %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("activity %d: %w", id, ErrNotFound)
	}
	return as.FindByID(ctx, id)
}

// Delete removes an activity by id.
func (as *MongoActivityStore) Delete(ctx context.Context, id int) error {
	res, err := as.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete activity %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("activity %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAll clears the collection. Used by seed tooling only.
func (as *MongoActivityStore) DeleteAll(ctx context.Context) error {
	if _, err := as.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear activities collection: %w", err)
	}
	return nil
}

func (as *MongoActivityStore) findMany(ctx context.Context, filter bson.M) ([]models.Activity, error) {
	cursor, err := as.collection.Find(ctx, filter, options.Find().SetSort(activitySort))
	if err != nil {
		return nil, fmt.Errorf("failed to find activities: %w", err)
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}
