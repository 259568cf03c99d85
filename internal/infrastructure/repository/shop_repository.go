package repository

import (
	"context"
	"fmt"

	"inventify-hub/internal/domain"
	"inventify-hub/internal/infrastructure/repository/entity"
	"inventify-hub/internal/ports"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoShopRepository implements ShopRepository using MongoDB
type MongoShopRepository struct {
	collection *mongo.Collection
}

// NewMongoShopRepository creates a new MongoDB shop repository
func NewMongoShopRepository(db *mongo.Database) ports.ShopRepository {
	return &MongoShopRepository{
		collection: db.Collection(ShopsCollection),
	}
}

// Create inserts a new shop
func (r *MongoShopRepository) Create(ctx context.Context, shop domain.Shop) (string, error) {
	doc := entity.NewMongoDocument(shop)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create shop: %w", err)
	}

	return insertedIDHex(result), nil
}

// List retrieves all shops
func (r *MongoShopRepository) List(ctx context.Context) ([]domain.Shop, error) {
	return r.find(ctx, bson.M{})
}

// ListByOwner retrieves the shops whose ownerEmail matches
func (r *MongoShopRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]domain.Shop, error) {
	return r.find(ctx, bson.M{domain.FieldOwnerEmail: ownerEmail})
}

func (r *MongoShopRepository) find(ctx context.Context, filter bson.M) ([]domain.Shop, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer cursor.Close(ctx)

	shops := []domain.Shop{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode shop: %w", err)
		}
		shops = append(shops, domain.Shop(doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return shops, nil
}
