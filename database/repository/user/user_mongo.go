package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lensbook/database"
	"lensbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrUserNotFound is returned when no user matches the ID.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the narrow directory interface used to resolve
// notification recipients.
type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*models.User, error)
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo() *MongoUserRepo {
	db := database.MongoClient.Database("lensbook")
	return &MongoUserRepo{
		coll: db.Collection("users"),
	}
}

// FindByID retrieves a user by ID.
func (repo *MongoUserRepo) FindByID(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := repo.coll.FindOne(ctx, bson.M{"id": userID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user %s: %w", userID, err)
	}
	return &user, nil
}
