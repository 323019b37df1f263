package professionalRepo

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

// ErrProfessionalNotFound is returned when no professional matches the ID.
var ErrProfessionalNotFound = errors.New("professional not found")

// ProfessionalRepository is the narrow directory interface the booking engine
// consumes: status lookup and stat updates only.
type ProfessionalRepository interface {
	FindByID(ctx context.Context, professionalID string) (*models.Professional, error)
	FindApproved(ctx context.Context) ([]models.Professional, error)
	IncrementBookingCount(ctx context.Context, professionalID string) error
}

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new instance of MongoProfessionalRepo.
func NewMongoProfessionalRepo() *MongoProfessionalRepo {
	db := database.MongoClient.Database("lensbook")
	return &MongoProfessionalRepo{
		coll: db.Collection("professionals"),
	}
}

// FindByID retrieves a professional by ID.
func (repo *MongoProfessionalRepo) FindByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prof models.Professional
	if err := repo.coll.FindOne(ctx, bson.M{"id": professionalID}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfessionalNotFound
		}
		return nil, fmt.Errorf("error fetching professional %s: %w", professionalID, err)
	}
	return &prof, nil
}

// FindApproved lists all approved professionals, used when ranking candidates
// for an unassigned booking.
func (repo *MongoProfessionalRepo) FindApproved(ctx context.Context) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"status": models.ProfessionalStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("error finding approved professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var pros []models.Professional
	if err := cursor.All(ctx, &pros); err != nil {
		return nil, fmt.Errorf("error decoding professionals: %w", err)
	}
	return pros, nil
}

// IncrementBookingCount bumps the professional's completed-booking stat.
func (repo *MongoProfessionalRepo) IncrementBookingCount(ctx context.Context, professionalID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"total_bookings": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": professionalID}, update)
	if err != nil {
		return fmt.Errorf("error incrementing booking count for professional %s: %w", professionalID, err)
	}
	if res.MatchedCount == 0 {
		return ErrProfessionalNotFound
	}
	return nil
}
