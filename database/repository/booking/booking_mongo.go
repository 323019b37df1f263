package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"lensbook/database"
	"lensbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() *MongoBookingRepo {
	db := database.MongoClient.Database("lensbook")
	return &MongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a non-deleted booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": bookingID, "is_deleted": false}
	if err := repo.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// Update replaces an existing booking document.
func (repo *MongoBookingRepo) Update(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": booking.ID}
	update := bson.M{"$set": booking}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", booking.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// SoftDelete marks a booking deleted without removing the document.
func (repo *MongoBookingRepo) SoftDelete(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error soft-deleting booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// MarkReminderSent flips the reminder flag for a booking.
func (repo *MongoBookingRepo) MarkReminderSent(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID}
	update := bson.M{"$set": bson.M{"reminder_sent": true, "updated_at": time.Now()}}
	if _, err := repo.coll.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("error marking reminder sent for booking %s: %w", bookingID, err)
	}
	return nil
}
