package repository

import (
	"context"

	"github.com/articret/coffee-shop-server/internal/coffee"
	"github.com/articret/coffee-shop-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository issues exactly one store operation per call.
// Get returns (nil, nil) when no coffee has the identifier.
type Repository interface {
	List(ctx context.Context, email string) ([]*coffee.Coffee, error)
	Get(ctx context.Context, id primitive.ObjectID) (*coffee.Coffee, error)
	Insert(ctx context.Context, c *coffee.Coffee) (*models.InsertResult, error)
	Replace(ctx context.Context, id primitive.ObjectID, r coffee.Replacement) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}
