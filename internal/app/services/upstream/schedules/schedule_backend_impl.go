package schedules

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/services/upstream/backendrest"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	scheduleBackendClientInstance contracts.ScheduleBackendClient
	onceScheduleBackendClient     sync.Once
)

type scheduleBackendClient struct {
	Rest *backendrest.Client
	Log  *zap.Logger
}

func NewScheduleBackendClient(rest *backendrest.Client, logger *zap.Logger) contracts.ScheduleBackendClient {
	onceScheduleBackendClient.Do(func() {
		scheduleBackendClientInstance = &scheduleBackendClient{
			Rest: rest,
			Log:  logger,
		}
	})
	return scheduleBackendClientInstance
}

func (c *scheduleBackendClient) FindSchedulesByDoctorID(ctx context.Context, doctorID int64) ([]responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleBackendClient.FindSchedulesByDoctorID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
	)

	var schedules []responses.Schedule
	err := c.Rest.Do(ctx, constvars.MethodGet, fmt.Sprintf("/api/getDoctorAvailability/%d", doctorID), nil, &schedules, constvars.ResourceSchedule)
	if err != nil {
		c.Log.Error("scheduleBackendClient.FindSchedulesByDoctorID failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}
	return schedules, nil
}

func (c *scheduleBackendClient) CreateSchedule(ctx context.Context, payload *contracts.CreateSchedulePayload) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleBackendClient.CreateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingDoctorIDKey, payload.DoctorID),
		zap.String(constvars.LoggingDateKey, payload.AvailableDate),
	)

	schedule := new(responses.Schedule)
	err := c.Rest.Do(ctx, constvars.MethodPost, "/api/createNewSchedule", payload, schedule, constvars.ResourceSchedule)
	if err != nil {
		c.Log.Error("scheduleBackendClient.CreateSchedule failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, payload.AvailableDate),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("scheduleBackendClient.CreateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingScheduleIDKey, schedule.ID),
	)
	return schedule, nil
}

func (c *scheduleBackendClient) UpdateSchedule(ctx context.Context, scheduleID int64, payload *contracts.CreateSchedulePayload) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleBackendClient.UpdateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingScheduleIDKey, scheduleID),
	)

	schedule := new(responses.Schedule)
	err := c.Rest.Do(ctx, constvars.MethodPut, fmt.Sprintf("/api/updateSchedule/%d", scheduleID), payload, schedule, constvars.ResourceSchedule)
	if err != nil {
		c.Log.Error("scheduleBackendClient.UpdateSchedule failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingScheduleIDKey, scheduleID),
			zap.Error(err),
		)
		return nil, err
	}
	return schedule, nil
}

func (c *scheduleBackendClient) DeleteSchedule(ctx context.Context, scheduleID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("scheduleBackendClient.DeleteSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingScheduleIDKey, scheduleID),
	)

	err := c.Rest.Do(ctx, constvars.MethodDelete, fmt.Sprintf("/api/deleteSchedule/%d", scheduleID), nil, nil, constvars.ResourceSchedule)
	if err != nil {
		c.Log.Error("scheduleBackendClient.DeleteSchedule failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingScheduleIDKey, scheduleID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
