package doctors

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"mime"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedProfileImageFormats = []string{".jpg", ".jpe", ".jpeg", ".png", ".webp"}

type doctorUsecase struct {
	DoctorBackendClient contracts.DoctorBackendClient
	RedisRepository     contracts.RedisRepository
	ObjectStorage       contracts.ObjectStorage
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewDoctorUsecase(
	doctorBackendClient contracts.DoctorBackendClient,
	redisRepository contracts.RedisRepository,
	objectStorage contracts.ObjectStorage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) DoctorUsecase {
	return &doctorUsecase{
		DoctorBackendClient: doctorBackendClient,
		RedisRepository:     redisRepository,
		ObjectStorage:       objectStorage,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

// FindAll serves the doctor directory, caching the backend list so the
// public pages do not hammer the upstream. Cache trouble degrades to a
// direct backend read.
func (uc *doctorUsecase) FindAll(ctx context.Context) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, constvars.CacheKeyDoctorDirectory)
	if err != nil {
		uc.Log.Warn("doctorUsecase.FindAll cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var doctors []responses.Doctor
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			return doctors, nil
		}
		uc.Log.Warn("doctorUsecase.FindAll cache payload unreadable, refetching",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}

	doctors, err := uc.DoctorBackendClient.FindAllDoctors(ctx)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.DoctorCacheTTLInMinute) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.CacheKeyDoctorDirectory, doctors, ttl); err != nil {
		uc.Log.Warn("doctorUsecase.FindAll cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return doctors, nil
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID int64) (*responses.Doctor, error) {
	return uc.DoctorBackendClient.FindDoctorByID(ctx, doctorID)
}

func (uc *doctorUsecase) Directory(ctx context.Context) (map[int64]responses.Doctor, error) {
	doctors, err := uc.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	directory := make(map[int64]responses.Doctor, len(doctors))
	for _, doctor := range doctors {
		directory[doctor.ID] = doctor
	}
	return directory, nil
}

func (uc *doctorUsecase) Create(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	doctor, err := uc.DoctorBackendClient.CreateDoctor(ctx, request)
	if err != nil {
		return nil, err
	}
	uc.invalidateDirectory(ctx)
	return doctor, nil
}

func (uc *doctorUsecase) Update(ctx context.Context, doctorID int64, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	doctor, err := uc.DoctorBackendClient.UpdateDoctor(ctx, doctorID, request)
	if err != nil {
		return nil, err
	}
	uc.invalidateDirectory(ctx)
	return doctor, nil
}

func (uc *doctorUsecase) Delete(ctx context.Context, doctorID int64) error {
	if err := uc.DoctorBackendClient.DeleteDoctor(ctx, doctorID); err != nil {
		return err
	}
	uc.invalidateDirectory(ctx)
	return nil
}

func (uc *doctorUsecase) UploadProfileImage(ctx context.Context, request *requests.UploadProfileImage) (string, error) {
	data, ext, err := utils.DecodeBase64Image(request.Image)
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageFormat(ext, allowedProfileImageFormats); err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	if err := utils.ValidateImageSize(data, uc.InternalConfig.App.MinioProfilePictureMaxUploadSizeInMB); err != nil {
		return "", exceptions.ErrImageValidation(err)
	}

	objectName := "doctor-profile/" + uuid.NewString() + ext
	return uc.ObjectStorage.UploadProfileImage(ctx, objectName, data, mime.TypeByExtension(ext))
}

// Doctor writes go straight to the backend, so the cached directory is
// stale the moment they succeed.
func (uc *doctorUsecase) invalidateDirectory(ctx context.Context) {
	if err := uc.RedisRepository.Delete(ctx, constvars.CacheKeyDoctorDirectory); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("doctorUsecase cache invalidation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
