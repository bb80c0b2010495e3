package service

import (
	"context"
	"strings"

	"github.com/articret/coffee-shop-server/internal/coffee"
	"github.com/articret/coffee-shop-server/internal/coffee/repository"
	"github.com/articret/coffee-shop-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines the coffee operations used by the handler layer.
type Service interface {
	List(ctx context.Context, email string) ([]*coffee.Coffee, error)
	Get(ctx context.Context, id primitive.ObjectID) (*coffee.Coffee, error)
	Create(ctx context.Context, req coffee.NewCoffee) (*models.InsertResult, error)
	Replace(ctx context.Context, id primitive.ObjectID, req coffee.Replacement) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// New returns a Service over any repository.
func New(repo repository.Repository) Service {
	return &service{repo: repo}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return New(repository.NewMemoryRepo())
}

type service struct {
	repo repository.Repository
}

func (s *service) List(ctx context.Context, email string) ([]*coffee.Coffee, error) {
	return s.repo.List(ctx, strings.TrimSpace(email))
}

func (s *service) Get(ctx context.Context, id primitive.ObjectID) (*coffee.Coffee, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, req coffee.NewCoffee) (*models.InsertResult, error) {
	return s.repo.Insert(ctx, req.Coffee())
}

func (s *service) Replace(ctx context.Context, id primitive.ObjectID, req coffee.Replacement) (*models.UpdateResult, error) {
	return s.repo.Replace(ctx, id, req)
}

func (s *service) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
