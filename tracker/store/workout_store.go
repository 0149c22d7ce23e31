// tracker/store/workout_store.go
package store

import (
	"context"
	"fmt"

	"github.com/octofit/go-services/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWorkoutStore represents the MongoDB data store for workouts.
type MongoWorkoutStore struct {
	collection *mongo.Collection
}

// NewMongoWorkoutStore creates a new MongoWorkoutStore instance.
func NewMongoWorkoutStore(collection *mongo.Collection) *MongoWorkoutStore {
	return &MongoWorkoutStore{collection: collection}
}

// Insert adds a new workout document with a caller-assigned _id.
func (ws *MongoWorkoutStore) Insert(ctx context.Context, workout *models.Workout) error {
	_, err := ws.collection.InsertOne(ctx, workout)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert workout %d: %w", workout.ID, ErrDuplicate)
		}
		return fmt.Errorf("failed to insert workout %d: %w", workout.ID, err)
	}
	return nil
}

// FindAll retrieves every workout ordered by _id ascending.
func (ws *MongoWorkoutStore) FindAll(ctx context.Context) ([]models.Workout, error) {
	return ws.findMany(ctx, bson.M{})
}

// FindByID retrieves a workout by id.
func (ws *MongoWorkoutStore) FindByID(ctx context.Context, id int) (*models.Workout, error) {
	var workout models.Workout
	err := ws.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workout)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find workout %d: %w", id, err)
	}
	return &workout, nil
}

// FindByDifficulty retrieves the workouts tagged with the given difficulty.
// Difficulty matching is exact; it is a free string, not an enum.
func (ws *MongoWorkoutStore) FindByDifficulty(ctx context.Context, difficulty string) ([]models.Workout, error) {
	return ws.findMany(ctx, bson.M{"difficulty": difficulty})
}

// Update applies the non-nil fields of upd and returns the updated document.
func (ws *MongoWorkoutStore) Update(ctx context.Context, id int, upd models.WorkoutUpdate) (*models.Workout, error) {
	fields := bson.M{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Difficulty != nil {
		fields["difficulty"] = *upd.Difficulty
	}
	if upd.Duration != nil {
		fields["duration"] = *upd.Duration
	}
	if len(fields) == 0 {
		return ws.FindByID(ctx, id)
	}

	res, err := ws.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update workout %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	return ws.FindByID(ctx, id)
}

// Delete removes a workout by id.
func (ws *MongoWorkoutStore) Delete(ctx context.Context, id int) error {
	res, err := ws.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete workout %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("workout %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAll clears the collection. Used by seed tooling only.
func (ws *MongoWorkoutStore) DeleteAll(ctx context.Context) error {
	if _, err := ws.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear workouts collection: %w", err)
	}
	return nil
}

func (ws *MongoWorkoutStore) findMany(ctx context.Context, filter bson.M) ([]models.Workout, error) {
	cursor, err := ws.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find workouts: %w", err)
	}
	defer cursor.Close(ctx)

	workouts := []models.Workout{}
	if err := cursor.All(ctx, &workouts); err != nil {
		return nil, fmt.Errorf("failed to decode workouts: %w", err)
	}
	return workouts, nil
}
