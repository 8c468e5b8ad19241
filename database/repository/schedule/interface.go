package scheduleRepo

import "dentora/models"

// ScheduleRepository supplies a provider's recurring weekly availability and
// blocked-interval list. The scheduling engine only reads snapshots from it;
// mutations come from the provider-facing endpoints.
type ScheduleRepository interface {
	GetWeeklySchedule(providerID string) (*models.WeeklySchedule, error)
	UpsertWeeklySchedule(schedule *models.WeeklySchedule) error

	GetBlockedIntervals(providerID, fromDate, toDate string) ([]models.BlockedInterval, error)
	ListBlockedIntervals(providerID string) ([]models.BlockedInterval, error)
	CreateBlockedInterval(block *models.BlockedInterval) error
	DeleteBlockedInterval(providerID, blockID string) error
}
