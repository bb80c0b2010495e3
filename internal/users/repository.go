package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/articret/coffee-shop-server/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines persistence operations for users.
// Updates keyed by email never upsert; a missing email reports zero matches.
type UserRepository interface {
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, u *models.User) (*models.InsertResult, error)
	SetLastSignIn(ctx context.Context, email string, at *string) (*models.UpdateResult, error)
	SetProfile(ctx context.Context, email string, name, photo *string) (*models.UpdateResult, error)
}

// MongoUserRepository implements UserRepository using MongoDB
type MongoUserRepository struct {
	col *mongo.Collection
}

// NewMongoUserRepository creates a new repository for the given collection
func NewMongoUserRepository(col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{col: col}
}

// EnsureIndexes creates a non-unique index on email for the PATCH lookups.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}
	if _, err := r.col.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]*models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	out := []*models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return out, nil
}

func (r *MongoUserRepository) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user %s: %w", id.Hex(), err)
	}
	return &u, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, u *models.User) (*models.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	u.ID = id
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (r *MongoUserRepository) SetLastSignIn(ctx context.Context, email string, at *string) (*models.UpdateResult, error) {
	return r.setByEmail(ctx, email, bson.M{"lastSignInTime": at})
}

func (r *MongoUserRepository) SetProfile(ctx context.Context, email string, name, photo *string) (*models.UpdateResult, error) {
	return r.setByEmail(ctx, email, bson.M{"name": name, "photo": photo})
}

func (r *MongoUserRepository) setByEmail(ctx context.Context, email string, set bson.M) (*models.UpdateResult, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", email, err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}
