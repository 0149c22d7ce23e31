// tracker/store/user_store.go
package store

import (
	"context"
	"fmt"

	"github.com/octofit/go-services/shared/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserStore represents the MongoDB data store for users.
type MongoUserStore struct {
	collection *mongo.Collection
}

// NewMongoUserStore creates a new MongoUserStore instance.
func NewMongoUserStore(collection *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{collection: collection}
}

// Insert adds a new user document. The _id is caller-assigned; a colliding
// _id or email reports ErrDuplicate via the collection's unique indexes.
func (us *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	_, err := us.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert user %d: %w", user.ID, ErrDuplicate)
		}
		return fmt.Errorf("failed to insert user %d: %w", user.ID, err)
	}
	return nil
}

// FindAll retrieves every user ordered by _id ascending.
func (us *MongoUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	return us.findMany(ctx, bson.M{})
}

// FindByID retrieves a user by id.
func (us *MongoUserStore) FindByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := us.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find user %d: %w", id, err)
	}
	return &user, nil
}

// FindByTeamID retrieves the users whose team_id matches, ordered by _id.
func (us *MongoUserStore) FindByTeamID(ctx context.Context, teamID int) ([]models.User, error) {
	return us.findMany(ctx, bson.M{"team_id": teamID})
}

// Update applies the non-nil fields of upd to the user and returns the
// updated document. An email collision reports ErrDuplicate.
func (us *MongoUserStore) Update(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	fields := bson.M{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Email != nil {
		fields["email"] = *upd.Email
	}
	if upd.TeamID != nil {
		fields["team_id"] = *upd.TeamID
	}
	if upd.Role != nil {
		fields["role"] = *upd.Role
	}
	if len(fields) == 0 {
		return us.FindByID(ctx, id)
	}

	res, err := us.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("update user %d: %w", id, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return us.FindByID(ctx, id)
}

// Delete removes a user by id.
func (us *MongoUserStore) Delete(ctx context.Context, id int) error {
	res, err := us.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteAll clears the collection. Used by seed tooling only.
func (us *MongoUserStore) DeleteAll(ctx context.Context) error {
	if _, err := us.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear users collection: %w", err)
	}
	return nil
}

func (us *MongoUserStore) findMany(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := us.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
