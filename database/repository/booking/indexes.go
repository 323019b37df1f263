package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Conflict query pattern: professional + date + status.
		{
			Keys:    bson.D{{Key: "professional_id", Value: 1}, {Key: "booking_date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("professional_date_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "client_id", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("client_created_idx"),
		},
		// Reminder sweep pattern: status + reminder flag + date window.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "reminder_sent", Value: 1}, {Key: "booking_date", Value: 1}},
			Options: options.Index().SetName("reminder_sweep_idx"),
		},
	}

	_, err := repo.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
