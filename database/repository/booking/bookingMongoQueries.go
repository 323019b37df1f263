package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"lensbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindActiveByProfessionalAndDate returns a professional's bookings for a date
// whose status counts toward conflicts, optionally excluding one booking.
func (repo *MongoBookingRepo) FindActiveByProfessionalAndDate(ctx context.Context, professionalID, date, excludeBookingID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"booking_date":    date,
		"status":          bson.M{"$in": models.ActiveStatuses()},
		"is_deleted":      false,
	}
	if excludeBookingID != "" {
		filter["id"] = bson.M{"$ne": excludeBookingID}
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding active bookings for professional %s on %s: %w", professionalID, date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding active bookings: %w", err)
	}
	return bookings, nil
}

// FindByDateRange returns a professional's non-deleted bookings with
// booking_date in [from, to] inclusive.
func (repo *MongoBookingRepo) FindByDateRange(ctx context.Context, professionalID, from, to string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"booking_date":    bson.M{"$gte": from, "$lte": to},
		"is_deleted":      false,
	}
	opts := options.Find().SetSort(bson.D{{Key: "booking_date", Value: 1}, {Key: "start_time", Value: 1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings for professional %s in [%s, %s]: %w", professionalID, from, to, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// CountByDay aggregates per-day booking counts for a professional over a date range.
func (repo *MongoBookingRepo) CountByDay(ctx context.Context, professionalID, from, to string) (map[string]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{
			"professional_id": professionalID,
			"booking_date":    bson.M{"$gte": from, "$lte": to},
			"is_deleted":      false,
		}},
		{"$group": bson.M{
			"_id":   "$booking_date",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating booking counts for professional %s: %w", professionalID, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Date  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding booking counts: %w", err)
	}

	counts := make(map[string]int, len(results))
	for _, r := range results {
		counts[r.Date] = r.Count
	}
	return counts, nil
}

// FindDueReminders returns confirmed, non-deleted, un-reminded bookings whose
// booking date falls within [now, now+hoursAhead].
func (repo *MongoBookingRepo) FindDueReminders(ctx context.Context, now time.Time, hoursAhead int) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	from := now.Format("2006-01-02")
	to := now.Add(time.Duration(hoursAhead) * time.Hour).Format("2006-01-02")

	filter := bson.M{
		"status":        models.StatusConfirmed,
		"is_deleted":    false,
		"reminder_sent": false,
		"booking_date":  bson.M{"$gte": from, "$lte": to},
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding due reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding due reminders: %w", err)
	}
	return bookings, nil
}

// FindByClient lists a client's bookings, newest first, optionally filtered by status.
func (repo *MongoBookingRepo) FindByClient(ctx context.Context, clientID string, status models.Status) ([]models.Booking, error) {
	filter := bson.M{"client_id": clientID, "is_deleted": false}
	if status != "" {
		filter["status"] = status
	}
	return repo.findSorted(ctx, filter)
}

// FindByProfessional lists a professional's bookings, newest first, optionally
// filtered by status.
func (repo *MongoBookingRepo) FindByProfessional(ctx context.Context, professionalID string, status models.Status) ([]models.Booking, error) {
	filter := bson.M{"professional_id": professionalID, "is_deleted": false}
	if status != "" {
		filter["status"] = status
	}
	return repo.findSorted(ctx, filter)
}

// FindUnassigned lists pending bookings that have no professional yet.
func (repo *MongoBookingRepo) FindUnassigned(ctx context.Context) ([]models.Booking, error) {
	filter := bson.M{
		"status":     models.StatusPending,
		"is_deleted": false,
		"$or": []bson.M{
			{"professional_id": ""},
			{"professional_id": bson.M{"$exists": false}},
		},
	}
	return repo.findSorted(ctx, filter)
}

func (repo *MongoBookingRepo) findSorted(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
