package utils

import (
	"clinicdesk-service/internal/pkg/dto/requests"
	"clinicdesk-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBooking() *requests.BookAppointment {
	return &requests.BookAppointment{
		PatientName:     "Ravi Kumar",
		PatientAge:      "31-45",
		PatientPhone:    "+91 98765 43210",
		PatientEmail:    "ravi@example.com",
		DoctorID:        3,
		AppointmentDate: "2024-05-12",
		AppointmentTime: "10:30",
		Reason:          "routine checkup",
	}
}

func TestValidateStruct_ValidBookingPasses(t *testing.T) {
	assert.NoError(t, ValidateStruct(validBooking()))
}

func TestValidateStruct_FieldSpecificMessages(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(b *requests.BookAppointment)
		message string
	}{
		{
			name:    "missing reason",
			mutate:  func(b *requests.BookAppointment) { b.Reason = "" },
			message: "reason is required",
		},
		{
			name:    "missing name",
			mutate:  func(b *requests.BookAppointment) { b.PatientName = "" },
			message: "patient_name is required",
		},
		{
			name:    "bad age bracket",
			mutate:  func(b *requests.BookAppointment) { b.PatientAge = "200" },
			message: "patient_age must be one of the supported age brackets",
		},
		{
			name:    "bad phone",
			mutate:  func(b *requests.BookAppointment) { b.PatientPhone = "abc" },
			message: "patient_phone must be a valid phone number",
		},
		{
			name:    "bad email",
			mutate:  func(b *requests.BookAppointment) { b.PatientEmail = "nope" },
			message: "patient_email must be a valid email",
		},
		{
			name:    "bad date",
			mutate:  func(b *requests.BookAppointment) { b.AppointmentDate = "12-05-2024" },
			message: "appointment_date must be a valid date in YYYY-MM-DD format",
		},
		{
			name:    "bad time",
			mutate:  func(b *requests.BookAppointment) { b.AppointmentTime = "10:75" },
			message: "appointment_time must be a valid time in HH:MM or HH:MM:SS format",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			booking := validBooking()
			tc.mutate(booking)

			err := ValidateStruct(booking)
			require.Error(t, err)
			assert.Equal(t, tc.message, exceptions.FormatFirstValidationError(err))
		})
	}
}

func TestValidateStruct_StatusUpdateAllowsOnlyDecisions(t *testing.T) {
	assert.NoError(t, ValidateStruct(&requests.UpdateAppointmentStatus{Status: "Confirmed"}))
	assert.NoError(t, ValidateStruct(&requests.UpdateAppointmentStatus{Status: "Rejected"}))

	err := ValidateStruct(&requests.UpdateAppointmentStatus{Status: "Cancelled"})
	require.Error(t, err)
	assert.Equal(t, "status must be one of [Confirmed, Rejected]", exceptions.FormatFirstValidationError(err))
}

func TestValidateStruct_AcceptedAgeBrackets(t *testing.T) {
	for _, bracket := range []string{"0-18", "19-30", "31-45", "46-60", "61+"} {
		booking := validBooking()
		booking.PatientAge = bracket
		assert.NoError(t, ValidateStruct(booking), bracket)
	}
}
