package requests

// BookAppointment is the public booking payload. Every field is required;
// the first missing field blocks submission with a field-specific message.
type BookAppointment struct {
	PatientName     string `json:"patient_name" validate:"required"`
	PatientAge      string `json:"patient_age" validate:"required,age_bracket"`
	PatientPhone    string `json:"patient_phone" validate:"required,phone_number"`
	PatientEmail    string `json:"patient_email" validate:"required,email"`
	DoctorID        int64  `json:"doctor_id" validate:"required,gt=0"`
	AppointmentDate string `json:"appointment_date" validate:"required,iso_date"`
	AppointmentTime string `json:"appointment_time" validate:"required,clock_time"`
	Reason          string `json:"reason" validate:"required"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=Confirmed Rejected"`
}

// AppointmentFilter carries the list-view filters. Zero values mean
// "no filter"; Status "all" is treated the same as empty.
type AppointmentFilter struct {
	Status     string
	DoctorID   int64
	Date       string
	SearchTerm string
	Page       int
	PageSize   int
}
