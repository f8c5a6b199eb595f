package schedules

import (
	"clinicdesk-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatesInRange_InclusiveBothEnds(t *testing.T) {
	dates, err := DatesInRange("2024-01-01", "2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01", "2024-01-02", "2024-01-03"}, dates)
}

func TestDatesInRange_EmptyEndCollapsesToStart(t *testing.T) {
	dates, err := DatesInRange("2024-06-15", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-15"}, dates)
}

func TestDatesInRange_SameDayRange(t *testing.T) {
	dates, err := DatesInRange("2024-06-15", "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-06-15"}, dates)
}

func TestDatesInRange_CrossesMonthBoundary(t *testing.T) {
	dates, err := DatesInRange("2024-01-30", "2024-02-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}, dates)
}

func TestDatesInRange_EndBeforeStartRejected(t *testing.T) {
	_, err := DatesInRange("2024-01-03", "2024-01-01")
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 400, customErr.StatusCode)
}

func TestDatesInRange_MalformedDateRejected(t *testing.T) {
	_, err := DatesInRange("01-01-2024", "")
	assert.Error(t, err)
}

func TestValidateWindows(t *testing.T) {
	testCases := []struct {
		name       string
		startTime  string
		endTime    string
		breakStart string
		breakEnd   string
		wantErr    bool
	}{
		{name: "valid without break", startTime: "09:00", endTime: "17:00"},
		{name: "valid with break", startTime: "09:00", endTime: "17:00", breakStart: "12:00", breakEnd: "13:00"},
		{name: "start equals end", startTime: "09:00", endTime: "09:00", wantErr: true},
		{name: "start after end", startTime: "17:00", endTime: "09:00", wantErr: true},
		{name: "break start without end", startTime: "09:00", endTime: "17:00", breakStart: "12:00", wantErr: true},
		{name: "break reversed", startTime: "09:00", endTime: "17:00", breakStart: "13:00", breakEnd: "12:00", wantErr: true},
		{name: "break before working hours", startTime: "09:00", endTime: "17:00", breakStart: "08:00", breakEnd: "10:00", wantErr: true},
		{name: "break past working hours", startTime: "09:00", endTime: "17:00", breakStart: "16:30", breakEnd: "17:30", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateWindows(tc.startTime, tc.endTime, tc.breakStart, tc.breakEnd)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
