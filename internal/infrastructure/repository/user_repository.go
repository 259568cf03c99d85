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

// MongoUserRepository implements UserRepository using MongoDB
type MongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new MongoDB user repository
func NewMongoUserRepository(db *mongo.Database) ports.UserRepository {
	return &MongoUserRepository{
		collection: db.Collection(UsersCollection),
	}
}

// List retrieves all users
func (r *MongoUserRepository) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []domain.User{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, domain.User(doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return users, nil
}

// GetByEmail retrieves a user by email
func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc bson.M
	filter := bson.M{domain.FieldEmail: email}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return domain.User(doc), nil
}

// Create inserts a new user
func (r *MongoUserRepository) Create(ctx context.Context, user domain.User) (string, error) {
	doc := entity.NewMongoDocument(user)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return insertedIDHex(result), nil
}

// SetRole sets the role of a user by id
func (r *MongoUserRepository) SetRole(ctx context.Context, id string, role string) (*domain.UpdateResult, error) {
	objID, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	filter := bson.M{"_id": objID}
	update := bson.M{"$set": bson.M{domain.FieldRole: role}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to set user role: %w", err)
	}

	return toUpdateResult(result), nil
}
