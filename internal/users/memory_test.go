package users

import (
	"context"
	"testing"

	"github.com/articret/coffee-shop-server/internal/models"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func str(s string) *string { return &s }

func TestMemoryUserRepository(t *testing.T) {
	r := NewMemoryUserRepository()
	ctx := context.Background()

	ins, err := r.Insert(ctx, &models.User{Email: "a@b.com", Name: "Ann", Photo: "http://p/1"})
	require.NoError(t, err)
	_, err = r.Insert(ctx, &models.User{Email: "c@d.com", Name: "Cid"})
	require.NoError(t, err)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Ann", list[0].Name)

	res, err := r.SetLastSignIn(ctx, "a@b.com", str("T1"))
	require.NoError(t, err)
	require.EqualValues(t, 1, res.MatchedCount)
	require.EqualValues(t, 1, res.ModifiedCount)

	got, err := r.Get(ctx, ins.InsertedID)
	require.NoError(t, err)
	require.Equal(t, "T1", got.LastSignInTime)
	require.Equal(t, "Ann", got.Name)
	require.Equal(t, "http://p/1", got.Photo)

	// same value again: matched but not modified
	res, err = r.SetLastSignIn(ctx, "a@b.com", str("T1"))
	require.NoError(t, err)
	require.EqualValues(t, 1, res.MatchedCount)
	require.EqualValues(t, 0, res.ModifiedCount)

	res, err = r.SetProfile(ctx, "a@b.com", str("Anna"), nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, res.ModifiedCount)
	got, err = r.Get(ctx, ins.InsertedID)
	require.NoError(t, err)
	require.Equal(t, "Anna", got.Name)
	require.Empty(t, got.Photo)
	require.Equal(t, "T1", got.LastSignInTime)

	// unknown email never inserts
	res, err = r.SetProfile(ctx, "ghost@b.com", str("Ghost"), nil)
	require.NoError(t, err)
	require.EqualValues(t, 0, res.MatchedCount)
	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	missing, err := r.Get(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	require.Nil(t, missing)
}
