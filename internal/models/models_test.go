package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := ParseID(want.Hex())
	require.NoError(t, err)
	require.Equal(t, want, got)

	for _, bad := range []string{"not-an-id", "", "123", want.Hex() + "00", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(bad)
		require.ErrorIs(t, err, ErrInvalidID, "input %q", bad)
	}
}

func TestUpdateResultJSON(t *testing.T) {
	b, err := json.Marshal(UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1})
	require.NoError(t, err)
	require.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedCount":0,"upsertedId":null}`, string(b))
}

func TestUserJSONUsesUnderscoreID(t *testing.T) {
	id := primitive.NewObjectID()
	b, err := json.Marshal(User{ID: id, Email: "a@b.com"})
	require.NoError(t, err)
	require.JSONEq(t, `{"_id":"`+id.Hex()+`","email":"a@b.com"}`, string(b))
}
