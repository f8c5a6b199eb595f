package schedules

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// maxReportedFailures caps how many per-date failures the batch summary
// spells out; the rest are only counted.
const maxReportedFailures = 3

type scheduleUsecase struct {
	ScheduleBackendClient contracts.ScheduleBackendClient
	Log                   *zap.Logger
}

func NewScheduleUsecase(
	scheduleBackendClient contracts.ScheduleBackendClient,
	logger *zap.Logger,
) ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleBackendClient: scheduleBackendClient,
		Log:                   logger,
	}
}

func (uc *scheduleUsecase) FindByDoctorID(ctx context.Context, doctorID int64) ([]responses.Schedule, error) {
	return uc.ScheduleBackendClient.FindSchedulesByDoctorID(ctx, doctorID)
}

func (uc *scheduleUsecase) Create(ctx context.Context, request *requests.CreateSchedule) (*responses.ScheduleBatchResult, error) {
	if err := validateWindows(request.StartTime, request.EndTime, request.BreakStart, request.BreakEnd); err != nil {
		return nil, err
	}

	dates, err := DatesInRange(request.AvailableDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	result := &responses.ScheduleBatchResult{Created: []responses.Schedule{}}
	failedCount := 0
	for _, date := range dates {
		payload := &contracts.CreateSchedulePayload{
			DoctorID:      request.DoctorID,
			AvailableDate: date,
			StartTime:     utils.NormalizeTimeForAPI(request.StartTime),
			EndTime:       utils.NormalizeTimeForAPI(request.EndTime),
			BreakStart:    utils.NormalizeTimeForAPI(request.BreakStart),
			BreakEnd:      utils.NormalizeTimeForAPI(request.BreakEnd),
		}

		created, err := uc.ScheduleBackendClient.CreateSchedule(ctx, payload)
		if err != nil {
			failedCount++
			uc.Log.Warn("scheduleUsecase.Create date failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDateKey, date),
				zap.Error(err),
			)
			if len(result.Failures) < maxReportedFailures {
				result.Failures = append(result.Failures, responses.ScheduleDateFailure{
					Date:    date,
					Message: failureMessage(err),
				})
			}
			continue
		}
		result.Created = append(result.Created, *created)
	}

	result.CreatedCount = len(result.Created)
	if failedCount > len(result.Failures) {
		result.FailureNote = fmt.Sprintf("%d more date(s) failed", failedCount-len(result.Failures))
	}

	if result.CreatedCount == 0 {
		return nil, exceptions.ErrScheduleBatchAllFailed(fmt.Errorf("all %d date(s) failed: %s", failedCount, summarizeFailures(result.Failures)))
	}
	return result, nil
}

func (uc *scheduleUsecase) Update(ctx context.Context, scheduleID int64, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	if err := validateWindows(request.StartTime, request.EndTime, request.BreakStart, request.BreakEnd); err != nil {
		return nil, err
	}

	payload := &contracts.CreateSchedulePayload{
		StartTime:  utils.NormalizeTimeForAPI(request.StartTime),
		EndTime:    utils.NormalizeTimeForAPI(request.EndTime),
		BreakStart: utils.NormalizeTimeForAPI(request.BreakStart),
		BreakEnd:   utils.NormalizeTimeForAPI(request.BreakEnd),
	}
	return uc.ScheduleBackendClient.UpdateSchedule(ctx, scheduleID, payload)
}

func (uc *scheduleUsecase) Delete(ctx context.Context, scheduleID int64) error {
	return uc.ScheduleBackendClient.DeleteSchedule(ctx, scheduleID)
}

func failureMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}

func summarizeFailures(failures []responses.ScheduleDateFailure) string {
	parts := make([]string, len(failures))
	for i, f := range failures {
		parts[i] = f.Date + ": " + f.Message
	}
	return strings.Join(parts, "; ")
}
