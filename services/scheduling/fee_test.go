package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testFeePolicy() FeePolicy {
	return FeePolicy{
		Window:   30 * time.Minute,
		Amount:   50000,
		Currency: "VND",
	}
}

func TestFeeChargedInsideWindow(t *testing.T) {
	now := time.Date(2025, 2, 24, 8, 45, 0, 0, time.UTC)
	oldStart := time.Date(2025, 2, 24, 9, 0, 0, 0, time.UTC) // 15 minutes out

	d := testFeePolicy().EvaluateReschedule(oldStart, now)
	assert.True(t, d.FeeCharged)
	assert.Equal(t, int64(50000), d.Amount)
	assert.Equal(t, "VND", d.Currency)
}

func TestNoFeeOutsideWindow(t *testing.T) {
	now := time.Date(2025, 2, 24, 8, 15, 0, 0, time.UTC)
	oldStart := time.Date(2025, 2, 24, 9, 0, 0, 0, time.UTC) // 45 minutes out

	d := testFeePolicy().EvaluateReschedule(oldStart, now)
	assert.False(t, d.FeeCharged)
	assert.Zero(t, d.Amount)
}

func TestNoFeeAtExactWindowBoundary(t *testing.T) {
	now := time.Date(2025, 2, 24, 8, 30, 0, 0, time.UTC)
	oldStart := time.Date(2025, 2, 24, 9, 0, 0, 0, time.UTC) // exactly 30 minutes

	d := testFeePolicy().EvaluateReschedule(oldStart, now)
	assert.False(t, d.FeeCharged)
}

func TestFeeJustInsideBoundary(t *testing.T) {
	now := time.Date(2025, 2, 24, 8, 30, 1, 0, time.UTC)
	oldStart := time.Date(2025, 2, 24, 9, 0, 0, 0, time.UTC)

	d := testFeePolicy().EvaluateReschedule(oldStart, now)
	assert.True(t, d.FeeCharged)
}

func TestNoFeeAfterSlotStart(t *testing.T) {
	now := time.Date(2025, 2, 24, 9, 10, 0, 0, time.UTC)
	oldStart := time.Date(2025, 2, 24, 9, 0, 0, 0, time.UTC)

	d := testFeePolicy().EvaluateReschedule(oldStart, now)
	assert.False(t, d.FeeCharged)
}

func TestNoFeeAtSlotStart(t *testing.T) {
	at := time.Date(2025, 2, 24, 9, 0, 0, 0, time.UTC)
	d := testFeePolicy().EvaluateReschedule(at, at)
	assert.False(t, d.FeeCharged)
}
