package doctors

import (
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]responses.Doctor, error)
	FindByID(ctx context.Context, doctorID int64) (*responses.Doctor, error)
	// Directory returns the doctor list keyed by ID, served from the
	// cache when warm. List views use it to stamp doctor names onto
	// appointments.
	Directory(ctx context.Context) (map[int64]responses.Doctor, error)
	Create(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	Update(ctx context.Context, doctorID int64, request *requests.UpdateDoctor) (*responses.Doctor, error)
	Delete(ctx context.Context, doctorID int64) error
	UploadProfileImage(ctx context.Context, request *requests.UploadProfileImage) (string, error)
}
