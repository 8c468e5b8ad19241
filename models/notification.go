package models

import "time"

// Notification is a persisted message for a patient or provider, written by
// the async worker after booking and reschedule events.
type Notification struct {
	ID          string         `bson:"id" json:"id"`
	RecipientID string         `bson:"recipient_id" json:"recipientId"`
	Role        string         `bson:"role" json:"role"` // "patient" or "provider"
	Type        string         `bson:"type" json:"type"` // e.g., "booking:confirmed", "booking:rescheduled"
	Title       string         `bson:"title" json:"title"`
	Message     string         `bson:"message" json:"message"`
	Data        map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt   time.Time      `bson:"created_at" json:"createdAt"`
	Read        bool           `bson:"read" json:"read"`
}
