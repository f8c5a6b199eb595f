package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTimeForAPI(t *testing.T) {
	assert.Equal(t, "09:30:00", NormalizeTimeForAPI("09:30"))
	assert.Equal(t, "09:30:00", NormalizeTimeForAPI("09:30:00"))
	assert.Equal(t, "", NormalizeTimeForAPI(""))
}

func TestParseClockTime_AcceptsBothLayouts(t *testing.T) {
	withSeconds, err := ParseClockTime("14:45:00")
	assert.NoError(t, err)
	withoutSeconds, err2 := ParseClockTime("14:45")
	assert.NoError(t, err2)
	assert.True(t, withSeconds.Equal(withoutSeconds))

	_, err = ParseClockTime("25:00")
	assert.Error(t, err)
}

func TestIsTimeRangeValid(t *testing.T) {
	assert.True(t, IsTimeRangeValid("09:00", "17:00"))
	assert.False(t, IsTimeRangeValid("09:00", "09:00"))
	assert.False(t, IsTimeRangeValid("17:00", "09:00"))
	assert.False(t, IsTimeRangeValid("bad", "17:00"))
}

func TestFormatTimeDisplay(t *testing.T) {
	assert.Equal(t, "02:30 PM", FormatTimeDisplay("14:30:00"))
	assert.Equal(t, "09:00 AM", FormatTimeDisplay("09:00"))
	// unparseable values pass through untouched
	assert.Equal(t, "oops", FormatTimeDisplay("oops"))
}

func TestFormatDateDisplay(t *testing.T) {
	assert.Equal(t, "05-01-2024", FormatDateDisplay("2024-01-05"))
	assert.Equal(t, "not-a-date", FormatDateDisplay("not-a-date"))
}
