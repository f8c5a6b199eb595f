package dashboard

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/services/core/doctors"
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type dashboardUsecase struct {
	DoctorUsecase            doctors.DoctorUsecase
	AppointmentBackendClient contracts.AppointmentBackendClient
	EnquiryBackendClient     contracts.EnquiryBackendClient
}

func NewDashboardUsecase(
	doctorUsecase doctors.DoctorUsecase,
	appointmentBackendClient contracts.AppointmentBackendClient,
	enquiryBackendClient contracts.EnquiryBackendClient,
) DashboardUsecase {
	return &dashboardUsecase{
		DoctorUsecase:            doctorUsecase,
		AppointmentBackendClient: appointmentBackendClient,
		EnquiryBackendClient:     enquiryBackendClient,
	}
}

func (uc *dashboardUsecase) GetStats(ctx context.Context) (*responses.DashboardStats, error) {
	doctorList, err := uc.DoctorUsecase.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.AppointmentBackendClient.FindAllAppointments(ctx)
	if err != nil {
		return nil, err
	}

	enquiries, err := uc.EnquiryBackendClient.FindAllEnquiries(ctx)
	if err != nil {
		return nil, err
	}

	stats := &responses.DashboardStats{
		Doctors:   len(doctorList),
		Enquiries: len(enquiries),
	}
	for _, doctor := range doctorList {
		if doctor.Status == constvars.DoctorStatusActive {
			stats.ActiveDoctors++
		}
	}

	stats.Appointments.Total = len(appointments)
	for _, appt := range appointments {
		switch appt.Status {
		case constvars.AppointmentStatusPending:
			stats.Appointments.Pending++
		case constvars.AppointmentStatusConfirmed:
			stats.Appointments.Confirmed++
		case constvars.AppointmentStatusCancelled:
			stats.Appointments.Cancelled++
		case constvars.AppointmentStatusRejected:
			stats.Appointments.Rejected++
		}
	}
	return stats, nil
}
