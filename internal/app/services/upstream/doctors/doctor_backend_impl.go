package doctors

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/services/upstream/backendrest"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	doctorBackendClientInstance contracts.DoctorBackendClient
	onceDoctorBackendClient     sync.Once
)

type doctorBackendClient struct {
	Rest *backendrest.Client
	Log  *zap.Logger
}

func NewDoctorBackendClient(rest *backendrest.Client, logger *zap.Logger) contracts.DoctorBackendClient {
	onceDoctorBackendClient.Do(func() {
		doctorBackendClientInstance = &doctorBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return doctorBackendClientInstance
}

func (c *doctorBackendClient) FindAllDoctors(ctx context.Context) ([]responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.FindAllDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var doctors []responses.Doctor
	err := c.Rest.Do(ctx, constvars.MethodGet, "/api/allDoctors", nil, &doctors, constvars.ResourceDoctor)
	if err != nil {
		c.Log.Error("doctorBackendClient.FindAllDoctors failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return doctors, nil
}

func (c *doctorBackendClient) FindDoctorByID(ctx context.Context, doctorID int64) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.FindDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor := new(responses.Doctor)
	err := c.Rest.Do(ctx, constvars.MethodGet, fmt.Sprintf("/api/doctor/%d", doctorID), nil, doctor, constvars.ResourceDoctor)
	if err != nil {
		c.Log.Error("doctorBackendClient.FindDoctorByID failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	return doctor, nil
}

func (c *doctorBackendClient) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctor := new(responses.Doctor)
	err := c.Rest.Do(ctx, constvars.MethodPost, "/api/createDoctor", request, doctor, constvars.ResourceDoctor)
	if err != nil {
		c.Log.Error("doctorBackendClient.CreateDoctor failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("doctorBackendClient.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	return doctor, nil
}

func (c *doctorBackendClient) UpdateDoctor(ctx context.Context, doctorID int64, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor := new(responses.Doctor)
	err := c.Rest.Do(ctx, constvars.MethodPut, fmt.Sprintf("/api/updateDoctor/%d", doctorID), request, doctor, constvars.ResourceDoctor)
	if err != nil {
		c.Log.Error("doctorBackendClient.UpdateDoctor failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	return doctor, nil
}

func (c *doctorBackendClient) DeleteDoctor(ctx context.Context, doctorID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("doctorBackendClient.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)

	err := c.Rest.Do(ctx, constvars.MethodDelete, fmt.Sprintf("/api/deleteDoctor/%d", doctorID), nil, nil, constvars.ResourceDoctor)
	if err != nil {
		c.Log.Error("doctorBackendClient.DeleteDoctor failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
