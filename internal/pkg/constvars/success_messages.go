package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Doctor messages
	GetDoctorsSuccess    = "doctors fetched successfully"
	GetDoctorSuccess     = "doctor fetched successfully"
	CreateDoctorSuccess  = "doctor created successfully"
	UpdateDoctorSuccess  = "doctor updated successfully"
	DeleteDoctorSuccess  = "doctor deleted successfully"
	UploadProfileSuccess = "profile image uploaded successfully"

	// Appointment messages
	GetAppointmentsSuccess         = "appointments fetched successfully"
	BookAppointmentSuccess         = "appointment booked successfully"
	UpdateAppointmentStatusSuccess = "appointment %s successfully"
	DeleteAppointmentSuccess       = "appointment deleted successfully"

	// Schedule messages
	GetSchedulesSuccess    = "schedules fetched successfully"
	CreateScheduleSuccess  = "created %d schedule(s)"
	UpdateScheduleSuccess  = "schedule updated successfully"
	DeleteScheduleSuccess  = "schedule deleted successfully"
	GetSlotsSuccess        = "available slots fetched successfully"
	GetSlotsNoSchedule     = "no available slots for this date"
	GetDashboardSuccess    = "dashboard statistics fetched successfully"
	GetEnquiriesSuccess    = "enquiries fetched successfully"
	CreateEnquirySuccess   = "thank you for contacting us, we will get back to you soon"
)
