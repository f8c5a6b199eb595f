package contracts

import (
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentBackendClient interface {
	FindAllAppointments(ctx context.Context) ([]responses.Appointment, error)
	FindAppointmentsByDoctorID(ctx context.Context, doctorID int64) ([]responses.Appointment, error)
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID int64) error
}
