package users

import (
	"context"
	"sync"

	"github.com/articret/coffee-shop-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserRepository keeps users in insertion order.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	items []*models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) List(context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.User, 0, len(r.items))
	for _, u := range r.items {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemoryUserRepository) Get(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) Insert(_ context.Context, u *models.User) (*models.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	cp := *u
	r.items = append(r.items, &cp)
	return &models.InsertResult{Acknowledged: true, InsertedID: u.ID}, nil
}

func (r *MemoryUserRepository) SetLastSignIn(_ context.Context, email string, at *string) (*models.UpdateResult, error) {
	return r.updateFirst(email, func(u *models.User) {
		u.LastSignInTime = deref(at)
	}), nil
}

func (r *MemoryUserRepository) SetProfile(_ context.Context, email string, name, photo *string) (*models.UpdateResult, error) {
	return r.updateFirst(email, func(u *models.User) {
		u.Name = deref(name)
		u.Photo = deref(photo)
	}), nil
}

// updateFirst applies fn to the first user with the email, like updateOne.
func (r *MemoryUserRepository) updateFirst(email string, fn func(*models.User)) *models.UpdateResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := &models.UpdateResult{Acknowledged: true}
	for i, u := range r.items {
		if u.Email != email {
			continue
		}
		next := *u
		fn(&next)
		res.MatchedCount = 1
		if next != *u {
			res.ModifiedCount = 1
			r.items[i] = &next
		}
		break
	}
	return res
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
