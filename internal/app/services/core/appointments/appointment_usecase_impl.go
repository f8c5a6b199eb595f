package appointments

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/services/core/doctors"
	"clinicdesk-service/internal/pkg/collection"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	DoctorUsecase            doctors.DoctorUsecase
	QueueNotifier            contracts.QueueNotifier
	InternalConfig           *config.InternalConfig
	Log                      *zap.Logger
}

func NewAppointmentUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	doctorUsecase doctors.DoctorUsecase,
	queueNotifier contracts.QueueNotifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentBackendClient: appointmentBackendClient,
		DoctorUsecase:            doctorUsecase,
		QueueNotifier:            queueNotifier,
		InternalConfig:           internalConfig,
		Log:                      logger,
	}
}

func (uc *appointmentUsecase) List(ctx context.Context, filter *requests.AppointmentFilter) (*responses.AppointmentList, *responses.Pagination, error) {
	appointments, err := uc.AppointmentBackendClient.FindAllAppointments(ctx)
	if err != nil {
		return nil, nil, err
	}

	directory, err := uc.DoctorUsecase.Directory(ctx)
	if err != nil {
		return nil, nil, err
	}
	for i := range appointments {
		if doctor, ok := directory[appointments[i].DoctorID]; ok {
			appointments[i].DoctorName = doctor.FullName
			appointments[i].DoctorSpecialization = doctor.Specialization
		}
	}

	filtered := collection.Filter(appointments, buildPredicates(filter)...)

	stats := responses.AppointmentStats{Total: len(filtered)}
	for _, appt := range filtered {
		switch appt.Status {
		case constvars.AppointmentStatusPending:
			stats.Pending++
		case constvars.AppointmentStatusConfirmed:
			stats.Confirmed++
		case constvars.AppointmentStatusCancelled:
			stats.Cancelled++
		case constvars.AppointmentStatusRejected:
			stats.Rejected++
		}
	}

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = uc.InternalConfig.App.DefaultPageSize
	}
	page := collection.Paginate(filtered, filter.Page, pageSize)

	pagination := utils.BuildPaginationResponse(
		page.Total,
		page.Page,
		page.PageSize,
		page.TotalPages,
		uc.InternalConfig.App.BaseUrl+"/appointments",
	)

	result := &responses.AppointmentList{
		Appointments: page.Items,
		Stats:        stats,
	}
	return result, pagination, nil
}

func (uc *appointmentUsecase) Book(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error) {
	request.AppointmentTime = utils.NormalizeTimeForAPI(request.AppointmentTime)

	appointment, err := uc.AppointmentBackendClient.BookAppointment(ctx, request)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, &contracts.NotificationMessage{
		Kind:      "appointment_booked",
		Subject:   "Appointment request received",
		Recipient: appointment.PatientEmail,
		Body: fmt.Sprintf("Hi %s, your appointment request for %s at %s has been received and is pending confirmation.",
			appointment.PatientName,
			utils.FormatDateDisplay(appointment.AppointmentDate),
			utils.FormatTimeDisplay(appointment.AppointmentTime),
		),
	})
	return appointment, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID int64, status string) (*responses.Appointment, error) {
	appointments, err := uc.AppointmentBackendClient.FindAllAppointments(ctx)
	if err != nil {
		return nil, err
	}

	var current *responses.Appointment
	for i := range appointments {
		if appointments[i].ID == appointmentID {
			current = &appointments[i]
			break
		}
	}
	if current == nil {
		return nil, exceptions.ErrBackendReportedFailure(constvars.StatusNotFound, constvars.ResourceAppointment, "appointment not found")
	}

	// Only a pending appointment can be decided; everything else is final.
	if current.Status != constvars.AppointmentStatusPending {
		return nil, exceptions.ErrStatusTransitionNotAllowed(
			fmt.Errorf("cannot move appointment %d from %s to %s", appointmentID, current.Status, status))
	}

	updated, err := uc.AppointmentBackendClient.UpdateAppointmentStatus(ctx, appointmentID, status)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, &contracts.NotificationMessage{
		Kind:      "appointment_" + status,
		Subject:   fmt.Sprintf("Appointment %s", status),
		Recipient: updated.PatientEmail,
		Body: fmt.Sprintf("Hi %s, your appointment on %s at %s has been %s.",
			updated.PatientName,
			utils.FormatDateDisplay(updated.AppointmentDate),
			utils.FormatTimeDisplay(updated.AppointmentTime),
			status,
		),
	})
	return updated, nil
}

func (uc *appointmentUsecase) Delete(ctx context.Context, appointmentID int64) error {
	return uc.AppointmentBackendClient.DeleteAppointment(ctx, appointmentID)
}

// notify publishes fire-and-forget; a broker outage never blocks the
// clinical flow.
func (uc *appointmentUsecase) notify(ctx context.Context, message *contracts.NotificationMessage) {
	message.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	if err := uc.QueueNotifier.Publish(ctx, message); err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("appointmentUsecase notification publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func buildPredicates(filter *requests.AppointmentFilter) []collection.Predicate[responses.Appointment] {
	var predicates []collection.Predicate[responses.Appointment]

	if filter.Status != "" && filter.Status != "all" {
		predicates = append(predicates, func(a responses.Appointment) bool {
			return a.Status == filter.Status
		})
	}
	if filter.DoctorID > 0 {
		predicates = append(predicates, func(a responses.Appointment) bool {
			return a.DoctorID == filter.DoctorID
		})
	}
	if filter.Date != "" {
		predicates = append(predicates, func(a responses.Appointment) bool {
			return a.AppointmentDate == filter.Date
		})
	}
	if filter.SearchTerm != "" {
		predicates = append(predicates, func(a responses.Appointment) bool {
			return collection.MatchesSearchTerm(filter.SearchTerm, a.PatientName, a.PatientEmail, a.PatientPhone)
		})
	}
	return predicates
}
