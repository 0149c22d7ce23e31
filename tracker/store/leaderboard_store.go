// tracker/store/leaderboard_store.go
package store

import (
	"context"
	"fmt"

	"github.com/octofit/go-services/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoLeaderboardStore represents the MongoDB data store for leaderboard entries.
type MongoLeaderboardStore struct {
	collection *mongo.Collection
}

// NewMongoLeaderboardStore creates a new MongoLeaderboardStore instance.
func NewMongoLeaderboardStore(collection *mongo.Collection) *MongoLeaderboardStore {
	return &MongoLeaderboardStore{collection: collection}
}

// Insert adds a new leaderboard entry with a caller-assigned _id.
func (ls *MongoLeaderboardStore) Insert(ctx context.Context, entry *models.Leaderboard) error {
	_, err := ls.collection.InsertOne(ctx, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert leaderboard entry %d: %w", entry.ID, ErrDuplicate)
		}
		return fmt.Errorf("failed to insert leaderboard entry %d: %w", entry.ID, err)
	}
	return nil
}

// FindAll retrieves every entry ordered by rank ascending.
func (ls *MongoLeaderboardStore) FindAll(ctx context.Context) ([]models.Leaderboard, error) {
	return ls.findMany(ctx, bson.M{})
}

// FindByID retrieves an entry by id.
func (ls *MongoLeaderboardStore) FindByID(ctx context.Context, id int) (*models.Leaderboard, error) {
	var entry models.Leaderboard
	err := ls.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("leaderboard entry %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find leaderboard entry %d: %w", id, err)
	}
	return &entry, nil
}

// FindByTeamID retrieves a team's entries ordered by rank ascending.
func (ls *MongoLeaderboardStore) FindByTeamID(ctx context.Context, teamID int) ([]models.Leaderboard, error) {
	return ls.findMany(ctx, bson.M{"team_id": teamID})
}

// Update applies the non-nil fields of upd and returns the updated document.
func (ls *MongoLeaderboardStore) Update(ctx context.Context, id int, upd models.LeaderboardUpdate) (*models.Leaderboard, error) {
	fields := bson.M{}
	if upd.UserID != nil {
		fields["user_id"] = *upd.UserID
	}
	if upd.TeamID != nil {
		fields["team_id"] = *upd.TeamID
	}
	if upd.TotalPoints != nil {
		fields["total_points"] = *upd.TotalPoints
	}
	if upd.Rank != nil {
		fields["rank"] = *upd.Rank
	}
	if len(fields) == 0 {
		return ls.FindByID(ctx, id)
	}

	res, err := ls.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update leaderboard entry %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("leaderboard entry %d: %w", id, ErrNotFound)
	}
	return ls.FindByID(ctx, id)
}

// Delete removes an entry by id.
func (ls *MongoLeaderboardStore) Delete(ctx context.Context, id int) error {
	res, err := ls.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete leaderboard entry %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("leaderboard entry %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAll clears the collection. Used by seed tooling only.
func (ls *MongoLeaderboardStore) DeleteAll(ctx context.Context) error {
	if _, err := ls.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear leaderboard collection: %w", err)
	}
	return nil
}

func (ls *MongoLeaderboardStore) findMany(ctx context.Context, filter bson.M) ([]models.Leaderboard, error) {
	cursor, err := ls.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "rank", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find leaderboard entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.Leaderboard{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode leaderboard entries: %w", err)
	}
	return entries, nil
}
