package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"dentora/database"
	"dentora/models"
	"dentora/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoScheduleRepo implements ScheduleRepository using MongoDB.
type MongoScheduleRepo struct {
	scheduleColl *mongo.Collection
	blockedColl  *mongo.Collection
}

// NewMongoScheduleRepo constructs a new instance of MongoScheduleRepo.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.DB()
	repo := &MongoScheduleRepo{
		scheduleColl: db.Collection("weekly_schedules"),
		blockedColl:  db.Collection("blocked_intervals"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Error("failed to create schedule indexes", zap.Error(err))
	}
	return repo
}

// GetWeeklySchedule retrieves a provider's recurring weekly schedule.
func (repo *MongoScheduleRepo) GetWeeklySchedule(providerID string) (*models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var schedule models.WeeklySchedule
	filter := bson.M{"provider_id": providerID}
	if err := repo.scheduleColl.FindOne(ctx, filter).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("error fetching weekly schedule for provider %s: %w", providerID, err)
	}
	return &schedule, nil
}

// UpsertWeeklySchedule replaces the provider's weekly schedule document.
func (repo *MongoScheduleRepo) UpsertWeeklySchedule(schedule *models.WeeklySchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	schedule.UpdatedAt = time.Now()
	filter := bson.M{"provider_id": schedule.ProviderID}
	opts := options.Replace().SetUpsert(true)
	if _, err := repo.scheduleColl.ReplaceOne(ctx, filter, schedule, opts); err != nil {
		return fmt.Errorf("error upserting weekly schedule for provider %s: %w", schedule.ProviderID, err)
	}
	return nil
}

// GetBlockedIntervals retrieves blocked intervals for a provider whose inclusive
// date range intersects [fromDate, toDate]. ISO dates compare lexicographically.
func (repo *MongoScheduleRepo) GetBlockedIntervals(providerID, fromDate, toDate string) ([]models.BlockedInterval, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id": providerID,
		"start_date":  bson.M{"$lte": toDate},
		"end_date":    bson.M{"$gte": fromDate},
	}
	cursor, err := repo.blockedColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching blocked intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var blocked []models.BlockedInterval
	for cursor.Next(ctx) {
		var b models.BlockedInterval
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding blocked interval: %w", err)
		}
		blocked = append(blocked, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return blocked, nil
}

// ListBlockedIntervals retrieves every blocked interval owned by the provider.
func (repo *MongoScheduleRepo) ListBlockedIntervals(providerID string) ([]models.BlockedInterval, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.blockedColl.Find(ctx, bson.M{"provider_id": providerID})
	if err != nil {
		return nil, fmt.Errorf("error listing blocked intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var blocked []models.BlockedInterval
	if err := cursor.All(ctx, &blocked); err != nil {
		return nil, fmt.Errorf("error decoding blocked intervals: %w", err)
	}
	return blocked, nil
}

// CreateBlockedInterval inserts a new blocked interval.
func (repo *MongoScheduleRepo) CreateBlockedInterval(block *models.BlockedInterval) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	block.CreatedAt = time.Now()
	if _, err := repo.blockedColl.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("error creating blocked interval: %w", err)
	}
	return nil
}

// DeleteBlockedInterval removes a blocked interval by ID, scoped to its owner.
func (repo *MongoScheduleRepo) DeleteBlockedInterval(providerID, blockID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.blockedColl.DeleteOne(ctx, bson.M{"provider_id": providerID, "id": blockID})
	if err != nil {
		return fmt.Errorf("error deleting blocked interval %s: %w", blockID, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("blocked interval %s not found for provider %s", blockID, providerID)
	}
	return nil
}
