package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              contextKey = "session"
)

// Roles carried by the session token.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// Appointment lifecycle statuses, fixed by the backend contract.
const (
	AppointmentStatusPending   = "Pending"
	AppointmentStatusConfirmed = "Confirmed"
	AppointmentStatusCancelled = "Cancelled"
	AppointmentStatusRejected  = "Rejected"
)

// Doctor directory statuses.
const (
	DoctorStatusActive   = "Active"
	DoctorStatusInactive = "Inactive"
)

// Wire formats shared with the backend: dates travel as YYYY-MM-DD,
// times as HH:MM:SS.
const (
	DateLayoutISO    = "2006-01-02"
	TimeLayoutAPI    = "15:04:05"
	TimeLayoutShort  = "15:04"
	DateLayoutHuman  = "02-01-2006"
	TimeLayoutTwelve = "03:04 PM"
)

// Backend resource names used in error reporting.
const (
	ResourceDoctor      = "Doctor"
	ResourceAppointment = "Appointment"
	ResourceSchedule    = "Schedule"
	ResourceSlot        = "Slot"
	ResourceEnquiry     = "Enquiry"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPageSize     = 5
)

// Route parameter names.
const (
	URLParamDoctorID      = "doctorID"
	URLParamAppointmentID = "appointmentID"
	URLParamScheduleID    = "scheduleID"
)

// Redis cache keys.
const (
	CacheKeyDoctorDirectory = "clinicdesk:doctors:directory"
)
