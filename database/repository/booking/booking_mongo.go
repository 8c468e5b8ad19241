package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"dentora/database"
	"dentora/models"
	"dentora/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		bookingColl: db.Collection("appointments"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create appointment indexes", zap.Error(err))
	}
	return repo
}

// GetBookedAppointments fetches the provider's appointments for a date,
// excluding cancelled records.
func (repo *MongoBookingRepo) GetBookedAppointments(providerID, date string) ([]models.BookedAppointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": providerID,
		"date":        date,
		"status":      bson.M{"$ne": models.StatusCancelled},
	}
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching booked appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.BookedAppointment
	for cursor.Next(ctx) {
		var a models.BookedAppointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return appointments, nil
}

// GetBookingByID retrieves a single appointment by its ID.
func (repo *MongoBookingRepo) GetBookingByID(appointmentID string) (*models.BookedAppointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var appointment models.BookedAppointment
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": appointmentID}).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("error fetching appointment %s: %w", appointmentID, err)
	}
	return &appointment, nil
}

// CreateBooking inserts the appointment. The unique partial index on
// provider+date+start_time rejects a second non-cancelled record for the same
// slot, which surfaces here as ErrDuplicateSlot.
func (repo *MongoBookingRepo) CreateBooking(appointment *models.BookedAppointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	if _, err := repo.bookingColl.InsertOne(ctx, appointment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// UpdateBookingTime moves an appointment to a new slot.
func (repo *MongoBookingRepo) UpdateBookingTime(appointmentID, newDate, newStartTime, newEndTime string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date":       newDate,
		"start_time": newStartTime,
		"end_time":   newEndTime,
		"updated_at": time.Now(),
	}}
	res, err := repo.bookingColl.UpdateOne(ctx, bson.M{"id": appointmentID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("error moving appointment %s: %w", appointmentID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", appointmentID)
	}
	return nil
}

// CancelBooking marks the appointment cancelled, freeing its slot.
func (repo *MongoBookingRepo) CancelBooking(appointmentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     models.StatusCancelled,
		"updated_at": time.Now(),
	}}
	res, err := repo.bookingColl.UpdateOne(ctx, bson.M{"id": appointmentID}, update)
	if err != nil {
		return fmt.Errorf("error cancelling appointment %s: %w", appointmentID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", appointmentID)
	}
	return nil
}
