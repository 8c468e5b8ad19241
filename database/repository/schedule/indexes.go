// FILE: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the schedule collections.
func (repo *MongoScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scheduleIndexes := []mongo.IndexModel{
		// One weekly schedule document per provider.
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_provider_schedule"),
		},
	}
	if _, err := repo.scheduleColl.Indexes().CreateMany(ctx, scheduleIndexes); err != nil {
		return fmt.Errorf("failed to create weekly schedule indexes: %w", err)
	}

	blockedIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_block_id"),
		},
		// Primary query pattern: provider + date-range intersection.
		{
			Keys:    bson.D{{Key: "provider_id", Value: 1}, {Key: "start_date", Value: 1}, {Key: "end_date", Value: 1}},
			Options: options.Index().SetName("provider_date_range_idx"),
		},
	}
	if _, err := repo.blockedColl.Indexes().CreateMany(ctx, blockedIndexes); err != nil {
		return fmt.Errorf("failed to create blocked interval indexes: %w", err)
	}
	return nil
}
