package schedules

import (
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type ScheduleUsecase interface {
	FindByDoctorID(ctx context.Context, doctorID int64) ([]responses.Schedule, error)
	// Create expands a date range into individual dates and creates them
	// sequentially; one date failing never aborts the rest. The error is
	// non-nil only when every date fails.
	Create(ctx context.Context, request *requests.CreateSchedule) (*responses.ScheduleBatchResult, error)
	Update(ctx context.Context, scheduleID int64, request *requests.UpdateSchedule) (*responses.Schedule, error)
	Delete(ctx context.Context, scheduleID int64) error
}
