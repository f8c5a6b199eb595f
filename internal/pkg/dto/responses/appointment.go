package responses

// Appointment mirrors the backend record, enriched with the doctor's name
// and specialization from the directory cache so list views do not need a
// second lookup.
type Appointment struct {
	ID                   int64  `json:"id"`
	PatientName          string `json:"patient_name"`
	PatientEmail         string `json:"patient_email"`
	PatientPhone         string `json:"patient_phone"`
	PatientAge           string `json:"patient_age,omitempty"`
	DoctorID             int64  `json:"doctor_id"`
	DoctorName           string `json:"doctor_name,omitempty"`
	DoctorSpecialization string `json:"doctor_specialization,omitempty"`
	AppointmentDate      string `json:"appointment_date"`
	AppointmentTime      string `json:"appointment_time"`
	Status               string `json:"status"`
	Reason               string `json:"reason,omitempty"`
}

// AppointmentStats counts the filtered set by status.
type AppointmentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Rejected  int `json:"rejected"`
}

type AppointmentList struct {
	Appointments []Appointment    `json:"appointments"`
	Stats        AppointmentStats `json:"stats"`
}
