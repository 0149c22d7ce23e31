// tracker/store/team_store.go
package store

import (
	"context"
	"fmt"

	"github.com/octofit/go-services/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTeamStore represents the MongoDB data store for teams.
type MongoTeamStore struct {
	collection *mongo.Collection
}

// NewMongoTeamStore creates a new MongoTeamStore instance.
func NewMongoTeamStore(collection *mongo.Collection) *MongoTeamStore {
	return &MongoTeamStore{collection: collection}
}

// Insert adds a new team document with a caller-assigned _id.
func (ts *MongoTeamStore) Insert(ctx context.Context, team *models.Team) error {
	_, err := ts.collection.InsertOne(ctx, team)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert team %d: %w", team.ID, ErrDuplicate)
		}
		return fmt.Errorf("failed to insert team %d: %w", team.ID, err)
	}
	return nil
}

// FindAll retrieves every team ordered by _id ascending.
func (ts *MongoTeamStore) FindAll(ctx context.Context) ([]models.Team, error) {
	cursor, err := ts.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find teams: %w", err)
	}
	defer cursor.Close(ctx)

	teams := []models.Team{}
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("failed to decode teams: %w", err)
	}
	return teams, nil
}

// FindByID retrieves a team by id.
func (ts *MongoTeamStore) FindByID(ctx context.Context, id int) (*models.Team, error) {
	var team models.Team
	err := ts.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&team)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("team %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find team %d: %w", id, err)
	}
	return &team, nil
}

// Update applies the non-nil fields of upd and returns the updated document.
func (ts *MongoTeamStore) Update(ctx context.Context, id int, upd models.TeamUpdate) (*models.Team, error) {
	fields := bson.M{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if len(fields) == 0 {
		return ts.FindByID(ctx, id)
	}

	res, err := ts.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	return ts.FindByID(ctx, id)
}

// Delete removes a team by id. Users referencing the team keep their team_id;
// there is no cascade.
func (ts *MongoTeamStore) Delete(ctx context.Context, id int) error {
	res, err := ts.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("team %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAll clears the collection. Used by seed tooling only.
func (ts *MongoTeamStore) DeleteAll(ctx context.Context) error {
	if _, err := ts.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear teams collection: %w", err)
	}
	return nil
}
