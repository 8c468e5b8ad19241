package models

import "time"

// BlockKind distinguishes full-day closures from intra-day blocks.
type BlockKind string

const (
	BlockFullDay   BlockKind = "full_day"
	BlockTimeRange BlockKind = "time_range"
)

// BlockedInterval removes availability for a full day or a sub-range of a day.
// The [StartDate, EndDate] range is inclusive on both ends; StartTime/EndTime
// are required iff Kind is time_range.
type BlockedInterval struct {
	ID         string    `bson:"id" json:"id"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	Kind       BlockKind `bson:"kind" json:"kind"`
	StartDate  string    `bson:"start_date" json:"startDate"` // "2025-02-25"
	EndDate    string    `bson:"end_date" json:"endDate"`
	StartTime  string    `bson:"start_time,omitempty" json:"startTime,omitempty"` // "HH:MM"
	EndTime    string    `bson:"end_time,omitempty" json:"endTime,omitempty"`
	Reason     string    `bson:"reason" json:"reason"` // e.g., "Nghỉ", "Staff training"
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// CreateBlockedIntervalRequest defines the payload for adding a blocked interval.
type CreateBlockedIntervalRequest struct {
	Kind      BlockKind `json:"kind" binding:"required"`
	StartDate string    `json:"startDate" binding:"required"`
	EndDate   string    `json:"endDate" binding:"required"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Reason    string    `json:"reason"`
}
