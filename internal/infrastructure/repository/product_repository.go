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

// MongoProductRepository implements ProductRepository using MongoDB
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new MongoDB product repository
func NewMongoProductRepository(db *mongo.Database) ports.ProductRepository {
	return &MongoProductRepository{
		collection: db.Collection(ProductsCollection),
	}
}

// Create inserts a new product
func (r *MongoProductRepository) Create(ctx context.Context, product domain.Product) (string, error) {
	doc := entity.NewMongoDocument(product)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	return insertedIDHex(result), nil
}

// ListByOwner retrieves the products whose email matches
func (r *MongoProductRepository) ListByOwner(ctx context.Context, email string) ([]domain.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{domain.FieldEmail: email})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, domain.Product(doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return products, nil
}

// Get retrieves a product by id
func (r *MongoProductRepository) Get(ctx context.Context, id string) (domain.Product, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = r.collection.FindOne(ctx, bson.M{domain.FieldID: objID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return domain.Product(doc), nil
}

// Update overwrites the mutable fields of a product with the values given
func (r *MongoProductRepository) Update(ctx context.Context, id string, update domain.ProductUpdate) (*domain.UpdateResult, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": objID}
	doc := bson.M{"$set": entity.ProductUpdateSet(update)}

	result, err := r.collection.UpdateOne(ctx, filter, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return toUpdateResult(result), nil
}

// Delete deletes a product by id
func (r *MongoProductRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return toDeleteResult(result), nil
}
