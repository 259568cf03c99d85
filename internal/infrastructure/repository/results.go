package repository

import (
	"fmt"

	"inventify-hub/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names in the inventifyHub database
const (
	UsersCollection    = "users"
	ShopsCollection    = "shops"
	ProductsCollection = "products"
)

func parseObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return objID, nil
}

func insertedIDHex(result *mongo.InsertOneResult) string {
	if objID, ok := result.InsertedID.(primitive.ObjectID); ok {
		return objID.Hex()
	}
	return fmt.Sprint(result.InsertedID)
}

func toUpdateResult(result *mongo.UpdateResult) *domain.UpdateResult {
	out := &domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
		UpsertedCount: result.UpsertedCount,
	}
	if objID, ok := result.UpsertedID.(primitive.ObjectID); ok {
		hex := objID.Hex()
		out.UpsertedID = &hex
	}
	return out
}

func toDeleteResult(result *mongo.DeleteResult) *domain.DeleteResult {
	return &domain.DeleteResult{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}
}
