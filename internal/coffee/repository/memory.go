package repository

import (
	"context"
	"reflect"
	"sync"

	"github.com/articret/coffee-shop-server/internal/coffee"
	"github.com/articret/coffee-shop-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo keeps coffees in insertion order. It backs unit tests and the
// fallback mode used when MongoDB is not reachable at startup.
type MemoryRepo struct {
	mu    sync.RWMutex
	items []*coffee.Coffee
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) indexOf(id primitive.ObjectID) int {
	for i, c := range m.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (m *MemoryRepo) List(_ context.Context, email string) ([]*coffee.Coffee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*coffee.Coffee, 0, len(m.items))
	for _, c := range m.items {
		if email != "" && c.Email != email {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Get(_ context.Context, id primitive.ObjectID) (*coffee.Coffee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexOf(id); i >= 0 {
		cp := *m.items[i]
		return &cp, nil
	}
	return nil, nil
}

func (m *MemoryRepo) Insert(_ context.Context, c *coffee.Coffee) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	cp := *c
	m.items = append(m.items, &cp)
	return &models.InsertResult{Acknowledged: true, InsertedID: c.ID}, nil
}

func (m *MemoryRepo) Replace(_ context.Context, id primitive.ObjectID, r coffee.Replacement) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		c := &coffee.Coffee{ID: id}
		r.Apply(c)
		m.items = append(m.items, c)
		upserted := id
		return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &upserted}, nil
	}
	next := *m.items[i]
	r.Apply(&next)
	res := &models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if !reflect.DeepEqual(&next, m.items[i]) {
		res.ModifiedCount = 1
		m.items[i] = &next
	}
	return res, nil
}

func (m *MemoryRepo) Delete(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}
