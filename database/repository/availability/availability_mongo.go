package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"lensbook/database"
	"lensbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() *MongoAvailabilityRepo {
	db := database.MongoClient.Database("lensbook")
	return &MongoAvailabilityRepo{
		coll: db.Collection("availability"),
		now:  time.Now,
	}
}

// GetOrCreate fetches the availability document for a professional, inserting
// the default document on first access.
func (repo *MongoAvailabilityRepo) GetOrCreate(ctx context.Context, professionalID string) (*models.Availability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var avail models.Availability
	err := repo.coll.FindOne(ctx, bson.M{"professional_id": professionalID}).Decode(&avail)
	if err == nil {
		return &avail, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("error fetching availability for professional %s: %w", professionalID, err)
	}

	fresh := models.NewAvailability(professionalID, repo.now())
	if _, err := repo.coll.InsertOne(ctx, fresh); err != nil {
		// A concurrent first access may have inserted it already.
		if mongo.IsDuplicateKeyError(err) {
			if ferr := repo.coll.FindOne(ctx, bson.M{"professional_id": professionalID}).Decode(&avail); ferr == nil {
				return &avail, nil
			}
		}
		return nil, fmt.Errorf("error creating availability for professional %s: %w", professionalID, err)
	}
	return fresh, nil
}

// UpdateWeeklySchedule replaces the recurring weekly schedule.
func (repo *MongoAvailabilityRepo) UpdateWeeklySchedule(ctx context.Context, professionalID string, schedule map[string]models.DaySchedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"weekly_schedule": schedule,
		"updated_at":      repo.now(),
	}}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"professional_id": professionalID}, update); err != nil {
		return fmt.Errorf("error updating weekly schedule for professional %s: %w", professionalID, err)
	}
	return nil
}

// AddBlockedDate records a blocked date. The push is guarded so the same date
// cannot be blocked twice.
func (repo *MongoAvailabilityRepo) AddBlockedDate(ctx context.Context, professionalID string, blocked models.BlockedDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id":    professionalID,
		"blocked_dates.date": bson.M{"$ne": blocked.Date},
	}
	update := bson.M{
		"$push": bson.M{"blocked_dates": blocked},
		"$set":  bson.M{"updated_at": repo.now()},
	}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error adding blocked date for professional %s: %w", professionalID, err)
	}
	if res.MatchedCount == 0 {
		return ErrDateAlreadyBlocked
	}
	return nil
}

// RemoveBlockedDate clears a blocked date.
func (repo *MongoAvailabilityRepo) RemoveBlockedDate(ctx context.Context, professionalID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"blocked_dates": bson.M{"date": date}},
		"$set":  bson.M{"updated_at": repo.now()},
	}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"professional_id": professionalID}, update); err != nil {
		return fmt.Errorf("error removing blocked date for professional %s: %w", professionalID, err)
	}
	return nil
}

// SetSpecialDate adds a special date, replacing any existing entry for the
// same calendar date.
func (repo *MongoAvailabilityRepo) SetSpecialDate(ctx context.Context, professionalID string, special models.SpecialDate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pull := bson.M{
		"$pull": bson.M{"special_dates": bson.M{"date": special.Date}},
	}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"professional_id": professionalID}, pull); err != nil {
		return fmt.Errorf("error replacing special date for professional %s: %w", professionalID, err)
	}
	push := bson.M{
		"$push": bson.M{"special_dates": special},
		"$set":  bson.M{"updated_at": repo.now()},
	}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"professional_id": professionalID}, push); err != nil {
		return fmt.Errorf("error adding special date for professional %s: %w", professionalID, err)
	}
	return nil
}

// RemoveSpecialDate clears a special date.
func (repo *MongoAvailabilityRepo) RemoveSpecialDate(ctx context.Context, professionalID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"special_dates": bson.M{"date": date}},
		"$set":  bson.M{"updated_at": repo.now()},
	}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"professional_id": professionalID}, update); err != nil {
		return fmt.Errorf("error removing special date for professional %s: %w", professionalID, err)
	}
	return nil
}

// UpdateSettings applies new buffer/notice/window settings.
func (repo *MongoAvailabilityRepo) UpdateSettings(ctx context.Context, professionalID string, settings models.AvailabilitySettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"buffer_time":          settings.BufferTime,
		"advance_booking_days": settings.AdvanceBookingDays,
		"min_booking_notice":   settings.MinBookingNotice,
		"timezone":             settings.Timezone,
		"updated_at":           repo.now(),
	}}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"professional_id": professionalID}, update); err != nil {
		return fmt.Errorf("error updating settings for professional %s: %w", professionalID, err)
	}
	return nil
}
