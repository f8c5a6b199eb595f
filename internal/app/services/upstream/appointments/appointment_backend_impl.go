package appointments

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
	appointmentBackendClientInstance contracts.AppointmentBackendClient
	onceAppointmentBackendClient     sync.Once
)

type appointmentBackendClient struct {
	Rest *backendrest.Client
	Log  *zap.Logger
}

func NewAppointmentBackendClient(rest *backendrest.Client, logger *zap.Logger) contracts.AppointmentBackendClient {
	onceAppointmentBackendClient.Do(func() {
		appointmentBackendClientInstance = &appointmentBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return appointmentBackendClientInstance
}

func (c *appointmentBackendClient) FindAllAppointments(ctx context.Context) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.FindAllAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var appointments []responses.Appointment
	err := c.Rest.Do(ctx, constvars.MethodGet, "/api/appointments", nil, &appointments, constvars.ResourceAppointment)
	if err != nil {
		c.Log.Error("appointmentBackendClient.FindAllAppointments failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentBackendClient) FindAppointmentsByDoctorID(ctx context.Context, doctorID int64) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.FindAppointmentsByDoctorID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)

	var appointments []responses.Appointment
	err := c.Rest.Do(ctx, constvars.MethodGet, fmt.Sprintf("/api/appointments/doctor/%d", doctorID), nil, &appointments, constvars.ResourceAppointment)
	if err != nil {
		c.Log.Error("appointmentBackendClient.FindAppointmentsByDoctorID failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	return appointments, nil
}

func (c *appointmentBackendClient) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	// Every booking starts life Pending; the backend does not default it.
	payload := struct {
		*requests.BookAppointment
		Status string `json:"status"`
	}{request, constvars.AppointmentStatusPending}

	appointment := new(responses.Appointment)
	err := c.Rest.Do(ctx, constvars.MethodPost, "/api/book", payload, appointment, constvars.ResourceAppointment)
	if err != nil {
		c.Log.Error("appointmentBackendClient.BookAppointment failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("appointmentBackendClient.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (c *appointmentBackendClient) UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, status),
	)

	payload := map[string]string{"status": status}
	appointment := new(responses.Appointment)
	err := c.Rest.Do(ctx, constvars.MethodPut, fmt.Sprintf("/api/appointments/%d", appointmentID), payload, appointment, constvars.ResourceAppointment)
	if err != nil {
		c.Log.Error("appointmentBackendClient.UpdateAppointmentStatus failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	return appointment, nil
}

func (c *appointmentBackendClient) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("appointmentBackendClient.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := c.Rest.Do(ctx, constvars.MethodDelete, fmt.Sprintf("/api/appointments/%d", appointmentID), nil, nil, constvars.ResourceAppointment)
	if err != nil {
		c.Log.Error("appointmentBackendClient.DeleteAppointment failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
