package repository

import (
	"context"
	"testing"

	"github.com/articret/coffee-shop-server/internal/coffee"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list decodes every document", func(mt *mtest.T) {
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns(mt), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: a}, {Key: "name", Value: "Mocha"}, {Key: "email", Value: "a@b.com"}},
				bson.D{{Key: "_id", Value: b}, {Key: "name", Value: "Latte"}, {Key: "price", Value: 3.5}},
			),
			mtest.CreateCursorResponse(0, ns(mt), mtest.NextBatch),
		)

		list, err := NewMongoRepo(mt.Coll).List(ctx, "")
		require.NoError(mt, err)
		require.Len(mt, list, 2)
		require.Equal(mt, a, list[0].ID)
		require.Equal(mt, "a@b.com", list[0].Email)
		require.Equal(mt, coffee.Number(3.5), *list[1].Price)
	})

	mt.Run("list reads legacy numeric encodings", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns(mt), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "quantity", Value: "5"}, {Key: "price", Value: " 4.25 "}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "quantity", Value: 2.5}, {Key: "price", Value: int32(3)}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "quantity", Value: int64(7)}, {Key: "price", Value: nil}},
			),
			mtest.CreateCursorResponse(0, ns(mt), mtest.NextBatch),
		)

		list, err := NewMongoRepo(mt.Coll).List(ctx, "")
		require.NoError(mt, err)
		require.Len(mt, list, 3)
		require.Equal(mt, coffee.Number(5), *list[0].Quantity)
		require.Equal(mt, coffee.Number(4.25), *list[0].Price)
		require.Equal(mt, coffee.Number(2.5), *list[1].Quantity)
		require.Equal(mt, coffee.Number(3), *list[1].Price)
		require.Equal(mt, coffee.Number(7), *list[2].Quantity)
		require.Nil(mt, list[2].Price)
	})

	mt.Run("list skips documents that cannot be decoded", func(mt *mtest.T) {
		good := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns(mt), mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "quantity", Value: "plenty"}},
				bson.D{{Key: "_id", Value: good}, {Key: "name", Value: "Ristretto"}},
			),
			mtest.CreateCursorResponse(0, ns(mt), mtest.NextBatch),
		)

		list, err := NewMongoRepo(mt.Coll).List(ctx, "")
		require.NoError(mt, err)
		require.Len(mt, list, 1)
		require.Equal(mt, good, list[0].ID)
	})

	mt.Run("get reads a fractional quantity", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "quantity", Value: 1.5}},
		))

		got, err := NewMongoRepo(mt.Coll).Get(ctx, id)
		require.NoError(mt, err)
		require.Equal(mt, coffee.Number(1.5), *got.Quantity)
	})

	mt.Run("list of empty collection is non-nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		list, err := NewMongoRepo(mt.Coll).List(ctx, "nobody@b.com")
		require.NoError(mt, err)
		require.NotNil(mt, list)
		require.Empty(mt, list)
	})

	mt.Run("get returns nil when missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		got, err := NewMongoRepo(mt.Coll).Get(ctx, primitive.NewObjectID())
		require.NoError(mt, err)
		require.Nil(mt, got)
	})

	mt.Run("get wraps store failures", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))

		_, err := NewMongoRepo(mt.Coll).Get(ctx, primitive.NewObjectID())
		require.Error(mt, err)
		require.Contains(mt, err.Error(), "find coffee")
	})

	mt.Run("insert reports generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c := &coffee.Coffee{Name: "Macchiato"}
		res, err := NewMongoRepo(mt.Coll).Insert(ctx, c)
		require.NoError(mt, err)
		require.True(mt, res.Acknowledged)
		require.False(mt, res.InsertedID.IsZero())
		require.Equal(mt, res.InsertedID, c.ID)
	})

	mt.Run("replace maps counts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := NewMongoRepo(mt.Coll).Replace(ctx, primitive.NewObjectID(), coffee.Replacement{})
		require.NoError(mt, err)
		require.EqualValues(mt, 1, res.MatchedCount)
		require.EqualValues(mt, 1, res.ModifiedCount)
		require.Nil(mt, res.UpsertedID)
	})

	mt.Run("replace reports upserted id", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: id}}}},
		))

		res, err := NewMongoRepo(mt.Coll).Replace(ctx, id, coffee.Replacement{})
		require.NoError(mt, err)
		require.EqualValues(mt, 1, res.UpsertedCount)
		require.NotNil(mt, res.UpsertedID)
		require.Equal(mt, id, *res.UpsertedID)
	})

	mt.Run("delete maps count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := NewMongoRepo(mt.Coll).Delete(ctx, primitive.NewObjectID())
		require.NoError(mt, err)
		require.EqualValues(mt, 1, res.DeletedCount)
	})
}
