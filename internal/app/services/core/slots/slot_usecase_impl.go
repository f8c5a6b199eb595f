package slots

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/utils"
	"context"
	"time"
)

type slotUsecase struct {
	ScheduleBackendClient    contracts.ScheduleBackendClient
	AppointmentBackendClient contracts.AppointmentBackendClient
}

func NewSlotUsecase(
	scheduleBackendClient contracts.ScheduleBackendClient,
	appointmentBackendClient contracts.AppointmentBackendClient,
) SlotUsecase {
	return &slotUsecase{
		ScheduleBackendClient:    scheduleBackendClient,
		AppointmentBackendClient: appointmentBackendClient,
	}
}

func (uc *slotUsecase) FindDoctorSlots(ctx context.Context, doctorID int64, date string) ([]responses.Slot, bool, error) {
	schedules, err := uc.ScheduleBackendClient.FindSchedulesByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, false, err
	}

	var schedule *responses.Schedule
	for i := range schedules {
		if schedules[i].AvailableDate == date {
			schedule = &schedules[i]
			break
		}
	}
	if schedule == nil {
		return []responses.Slot{}, false, nil
	}

	appointments, err := uc.AppointmentBackendClient.FindAppointmentsByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, false, err
	}

	// Cancelled and rejected bookings release their slot.
	bookedTimes := make(map[string]struct{})
	for _, appt := range appointments {
		if appt.AppointmentDate != date {
			continue
		}
		if appt.Status == constvars.AppointmentStatusCancelled || appt.Status == constvars.AppointmentStatusRejected {
			continue
		}
		bookedTimes[utils.NormalizeTimeForAPI(appt.AppointmentTime)] = struct{}{}
	}

	result, err := BuildDaySlots(schedule, bookedTimes)
	if err != nil {
		return nil, false, err
	}
	return MarkElapsedSlots(result, date, time.Now()), true, nil
}
