package schedules

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubScheduleBackend struct {
	failDates map[string]bool
	created   []string
	nextID    int64
}

func (s *stubScheduleBackend) FindSchedulesByDoctorID(ctx context.Context, doctorID int64) ([]responses.Schedule, error) {
	return nil, nil
}

func (s *stubScheduleBackend) CreateSchedule(ctx context.Context, payload *contracts.CreateSchedulePayload) (*responses.Schedule, error) {
	if s.failDates[payload.AvailableDate] {
		return nil, exceptions.ErrBackendReportedFailure(409, "Schedule", "schedule already exists for this date")
	}
	s.nextID++
	s.created = append(s.created, payload.AvailableDate)
	return &responses.Schedule{
		ID:            s.nextID,
		DoctorID:      payload.DoctorID,
		AvailableDate: payload.AvailableDate,
		StartTime:     payload.StartTime,
		EndTime:       payload.EndTime,
	}, nil
}

func (s *stubScheduleBackend) UpdateSchedule(ctx context.Context, scheduleID int64, payload *contracts.CreateSchedulePayload) (*responses.Schedule, error) {
	return &responses.Schedule{ID: scheduleID, StartTime: payload.StartTime, EndTime: payload.EndTime}, nil
}

func (s *stubScheduleBackend) DeleteSchedule(ctx context.Context, scheduleID int64) error {
	return nil
}

func TestScheduleUsecaseCreate_RangeExpandsSequentially(t *testing.T) {
	backend := &stubScheduleBackend{}
	uc := NewScheduleUsecase(backend, zap.NewNop())

	result, err := uc.Create(context.Background(), &requests.CreateSchedule{
		DoctorID:      7,
		AvailableDate: "2024-03-01",
		EndDate:       "2024-03-03",
		StartTime:     "09:00",
		EndTime:       "17:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.CreatedCount)
	assert.Equal(t, []string{"2024-03-01", "2024-03-02", "2024-03-03"}, backend.created)
	assert.Empty(t, result.Failures)
	// times reach the backend normalized
	assert.Equal(t, "09:00:00", result.Created[0].StartTime)
}

func TestScheduleUsecaseCreate_PartialFailureContinues(t *testing.T) {
	backend := &stubScheduleBackend{failDates: map[string]bool{"2024-03-02": true}}
	uc := NewScheduleUsecase(backend, zap.NewNop())

	result, err := uc.Create(context.Background(), &requests.CreateSchedule{
		DoctorID:      7,
		AvailableDate: "2024-03-01",
		EndDate:       "2024-03-03",
		StartTime:     "09:00",
		EndTime:       "17:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.CreatedCount)
	assert.Equal(t, []string{"2024-03-01", "2024-03-03"}, backend.created)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "2024-03-02", result.Failures[0].Date)
}

func TestScheduleUsecaseCreate_AllDatesFailing(t *testing.T) {
	backend := &stubScheduleBackend{failDates: map[string]bool{
		"2024-03-01": true,
		"2024-03-02": true,
	}}
	uc := NewScheduleUsecase(backend, zap.NewNop())

	_, err := uc.Create(context.Background(), &requests.CreateSchedule{
		DoctorID:      7,
		AvailableDate: "2024-03-01",
		EndDate:       "2024-03-02",
		StartTime:     "09:00",
		EndTime:       "17:00",
	})
	require.Error(t, err)

	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, 422, customErr.StatusCode)
}

func TestScheduleUsecaseCreate_FailureReportCapped(t *testing.T) {
	backend := &stubScheduleBackend{failDates: map[string]bool{
		"2024-03-01": true,
		"2024-03-02": true,
		"2024-03-03": true,
		"2024-03-04": true,
	}}
	uc := NewScheduleUsecase(backend, zap.NewNop())

	result, err := uc.Create(context.Background(), &requests.CreateSchedule{
		DoctorID:      7,
		AvailableDate: "2024-03-01",
		EndDate:       "2024-03-05",
		StartTime:     "09:00",
		EndTime:       "17:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.CreatedCount)
	assert.Len(t, result.Failures, maxReportedFailures)
	assert.Equal(t, "1 more date(s) failed", result.FailureNote)
}

func TestScheduleUsecaseCreate_InvalidWindowRejectedBeforeAnyWrite(t *testing.T) {
	backend := &stubScheduleBackend{}
	uc := NewScheduleUsecase(backend, zap.NewNop())

	_, err := uc.Create(context.Background(), &requests.CreateSchedule{
		DoctorID:      7,
		AvailableDate: "2024-03-01",
		StartTime:     "17:00",
		EndTime:       "09:00",
	})
	require.Error(t, err)
	assert.Empty(t, backend.created)
}
