package contracts

import (
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

// CreateSchedulePayload is the single-date record shape the backend stores;
// date-range requests are expanded into one payload per date before send.
type CreateSchedulePayload struct {
	DoctorID      int64  `json:"doctor_id"`
	AvailableDate string `json:"available_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakStart    string `json:"break_start,omitempty"`
	BreakEnd      string `json:"break_end,omitempty"`
}

type ScheduleBackendClient interface {
	FindSchedulesByDoctorID(ctx context.Context, doctorID int64) ([]responses.Schedule, error)
	CreateSchedule(ctx context.Context, payload *CreateSchedulePayload) (*responses.Schedule, error)
	UpdateSchedule(ctx context.Context, scheduleID int64, payload *CreateSchedulePayload) (*responses.Schedule, error)
	DeleteSchedule(ctx context.Context, scheduleID int64) error
}
