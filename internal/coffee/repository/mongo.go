package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/articret/coffee-shop-server/internal/coffee"
	"github.com/articret/coffee-shop-server/internal/models"
	"github.com/articret/coffee-shop-server/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository over the coffees collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

// EnsureIndexes creates the non-unique email index used by filtered listing.
func (m *MongoRepo) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}}
	if _, err := m.col.Indexes().CreateOne(ctx, idx); err != nil {
		return fmt.Errorf("create coffees email index: %w", err)
	}
	return nil
}

func (m *MongoRepo) List(ctx context.Context, email string) ([]*coffee.Coffee, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	cur, err := m.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find coffees: %w", err)
	}
	defer cur.Close(ctx)
	out := []*coffee.Coffee{}
	for cur.Next(ctx) {
		var c coffee.Coffee
		if err := cur.Decode(&c); err != nil {
			// undecodable documents are skipped, never fatal to the listing
			logger.Warnf("skipping coffee %v: %v", cur.Current.Lookup("_id"), err)
			continue
		}
		out = append(out, &c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate coffees: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) Get(ctx context.Context, id primitive.ObjectID) (*coffee.Coffee, error) {
	var c coffee.Coffee
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find coffee %s: %w", id.Hex(), err)
	}
	return &c, nil
}

func (m *MongoRepo) Insert(ctx context.Context, c *coffee.Coffee) (*models.InsertResult, error) {
	res, err := m.col.InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("insert coffee: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert coffee: unexpected id type %T", res.InsertedID)
	}
	c.ID = id
	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (m *MongoRepo) Replace(ctx context.Context, id primitive.ObjectID, r coffee.Replacement) (*models.UpdateResult, error) {
	set := bson.M{
		"name":     r.Name,
		"quantity": r.Quantity,
		"supplier": r.Supplier,
		"taste":    r.Taste,
		"price":    r.Price,
		"details":  r.Details,
		"photo":    r.Photo,
	}
	opts := options.Update().SetUpsert(true)
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts)
	if err != nil {
		return nil, fmt.Errorf("update coffee %s: %w", id.Hex(), err)
	}
	return updateResult(res), nil
}

func (m *MongoRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("delete coffee %s: %w", id.Hex(), err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func updateResult(res *mongo.UpdateResult) *models.UpdateResult {
	out := &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = &id
	}
	return out
}
