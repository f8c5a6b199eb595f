package responses

type DashboardStats struct {
	Doctors       int              `json:"doctors"`
	ActiveDoctors int              `json:"active_doctors"`
	Appointments  AppointmentStats `json:"appointments"`
	Enquiries     int              `json:"enquiries"`
}
