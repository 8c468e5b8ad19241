// File: utils/constants.go
package utils

// BookingSessionPrefix is the prefix used for Redis booking session keys.
const BookingSessionPrefix = "bksession:"

// DateLayout is the calendar-date wire format used across the service.
const DateLayout = "2006-01-02"

// ClockLayout is the time-of-day wire format (24-hour clock).
const ClockLayout = "15:04"
