package appointments

import (
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	// List applies the view filters in a fixed order, computes status
	// counts over the filtered set, then windows the result.
	List(ctx context.Context, filter *requests.AppointmentFilter) (*responses.AppointmentList, *responses.Pagination, error)
	Book(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID int64, status string) (*responses.Appointment, error)
	Delete(ctx context.Context, appointmentID int64) error
}
