package slots

import (
	"clinicdesk-service/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDaySlots_FullDayAvailable(t *testing.T) {
	schedule := &responses.Schedule{
		StartTime: "09:00:00",
		EndTime:   "10:00:00",
	}

	result, err := BuildDaySlots(schedule, nil)
	require.NoError(t, err)

	require.Len(t, result, 4)
	assert.Equal(t, "09:00:00", result[0].Time)
	assert.Equal(t, "09:15:00", result[1].Time)
	assert.Equal(t, "09:30:00", result[2].Time)
	assert.Equal(t, "09:45:00", result[3].Time)
	for _, slot := range result {
		assert.Equal(t, responses.SlotStatusAvailable, slot.Status)
	}
}

func TestBuildDaySlots_EndTimeExcluded(t *testing.T) {
	schedule := &responses.Schedule{
		StartTime: "09:00:00",
		EndTime:   "09:30:00",
	}

	result, err := BuildDaySlots(schedule, nil)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, "09:15:00", result[1].Time)
}

func TestBuildDaySlots_BreakWindow(t *testing.T) {
	schedule := &responses.Schedule{
		StartTime:  "09:00:00",
		EndTime:    "11:00:00",
		BreakStart: "10:00:00",
		BreakEnd:   "10:30:00",
	}

	result, err := BuildDaySlots(schedule, nil)
	require.NoError(t, err)
	require.Len(t, result, 8)

	statusByTime := make(map[string]responses.SlotStatus)
	for _, slot := range result {
		statusByTime[slot.Time] = slot.Status
	}

	assert.Equal(t, responses.SlotStatusAvailable, statusByTime["09:45:00"])
	assert.Equal(t, responses.SlotStatusBreak, statusByTime["10:00:00"])
	assert.Equal(t, responses.SlotStatusBreak, statusByTime["10:15:00"])
	// break_end is exclusive
	assert.Equal(t, responses.SlotStatusAvailable, statusByTime["10:30:00"])
}

func TestBuildDaySlots_BookedTimes(t *testing.T) {
	schedule := &responses.Schedule{
		StartTime: "14:00:00",
		EndTime:   "15:00:00",
	}
	booked := map[string]struct{}{
		"14:30:00": {},
	}

	result, err := BuildDaySlots(schedule, booked)
	require.NoError(t, err)

	assert.Equal(t, responses.SlotStatusAvailable, result[0].Status)
	assert.Equal(t, responses.SlotStatusBooked, result[2].Status)
	assert.Equal(t, responses.SlotStatusAvailable, result[3].Status)
}

func TestBuildDaySlots_InvalidTimeRejected(t *testing.T) {
	schedule := &responses.Schedule{
		StartTime: "not-a-time",
		EndTime:   "15:00:00",
	}

	_, err := BuildDaySlots(schedule, nil)
	assert.Error(t, err)
}

func TestMarkElapsedSlots_SameDayPastTimesUnavailable(t *testing.T) {
	slots := []responses.Slot{
		{Time: "09:00:00", Status: responses.SlotStatusAvailable},
		{Time: "09:15:00", Status: responses.SlotStatusBooked},
		{Time: "09:30:00", Status: responses.SlotStatusAvailable},
		{Time: "09:45:00", Status: responses.SlotStatusAvailable},
	}
	now := time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC)

	result := MarkElapsedSlots(slots, "2026-09-10", now)

	assert.Equal(t, responses.SlotStatusUnavailable, result[0].Status)
	// Booked slots keep their status even in the past.
	assert.Equal(t, responses.SlotStatusBooked, result[1].Status)
	// A slot starting exactly now has already begun.
	assert.Equal(t, responses.SlotStatusUnavailable, result[2].Status)
	assert.Equal(t, responses.SlotStatusAvailable, result[3].Status)
}

func TestMarkElapsedSlots_FutureDateUntouched(t *testing.T) {
	slots := []responses.Slot{
		{Time: "09:00:00", Status: responses.SlotStatusAvailable},
	}
	now := time.Date(2026, 9, 10, 23, 0, 0, 0, time.UTC)

	result := MarkElapsedSlots(slots, "2026-09-11", now)

	assert.Equal(t, responses.SlotStatusAvailable, result[0].Status)
}

func TestMarkElapsedSlots_PastDateFullyUnavailable(t *testing.T) {
	slots := []responses.Slot{
		{Time: "09:00:00", Status: responses.SlotStatusAvailable},
		{Time: "12:00:00", Status: responses.SlotStatusBreak},
	}
	now := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)

	result := MarkElapsedSlots(slots, "2026-09-09", now)

	assert.Equal(t, responses.SlotStatusUnavailable, result[0].Status)
	assert.Equal(t, responses.SlotStatusBreak, result[1].Status)
}
