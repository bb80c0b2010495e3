package users

import (
	"context"
	"strings"

	"github.com/articret/coffee-shop-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service encapsulates user-related operations
type Service struct {
	repo UserRepository
}

func NewService(r UserRepository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req models.NewUser) (*models.InsertResult, error) {
	return s.repo.Insert(ctx, req.User())
}

// RecordSignIn sets only lastSignInTime on the user with the given email.
func (s *Service) RecordSignIn(ctx context.Context, req models.SignIn) (*models.UpdateResult, error) {
	return s.repo.SetLastSignIn(ctx, strings.TrimSpace(req.Email), req.LastSignInTime)
}

// UpdateProfile sets only name and photo on the user with the given email.
func (s *Service) UpdateProfile(ctx context.Context, req models.Profile) (*models.UpdateResult, error) {
	return s.repo.SetProfile(ctx, strings.TrimSpace(req.Email), req.Name, req.Photo)
}
