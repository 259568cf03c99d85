package repository

import (
	"testing"

	"inventify-hub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestParseObjectID(t *testing.T) {
	id := primitive.NewObjectID()

	got, err := parseObjectID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, bad := range []string{"", "xyz", "64b00000000000000000000"} {
		_, err := parseObjectID(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidID, bad)
	}
}

func TestInsertedIDHex(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id.Hex(), insertedIDHex(&mongo.InsertOneResult{InsertedID: id}))
	assert.Equal(t, "custom", insertedIDHex(&mongo.InsertOneResult{InsertedID: "custom"}))
}

func TestToUpdateResult(t *testing.T) {
	got := toUpdateResult(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 0})
	assert.Equal(t, &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}, got)

	upserted := primitive.NewObjectID()
	got = toUpdateResult(&mongo.UpdateResult{UpsertedCount: 1, UpsertedID: upserted})
	require.NotNil(t, got.UpsertedID)
	assert.Equal(t, upserted.Hex(), *got.UpsertedID)
}

func TestToDeleteResult(t *testing.T) {
	assert.Equal(t,
		&domain.DeleteResult{Acknowledged: true, DeletedCount: 2},
		toDeleteResult(&mongo.DeleteResult{DeletedCount: 2}),
	)
}
