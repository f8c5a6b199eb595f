package contracts

import (
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type DoctorBackendClient interface {
	FindAllDoctors(ctx context.Context) ([]responses.Doctor, error)
	FindDoctorByID(ctx context.Context, doctorID int64) (*responses.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID int64, request *requests.UpdateDoctor) (*responses.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID int64) error
}
