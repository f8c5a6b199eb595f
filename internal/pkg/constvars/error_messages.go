package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "Your session is invalid or has expired, please log in again"
	ErrClientBackendRejected               = "The clinic service rejected the request"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientScheduleNotFound              = "Schedule not found"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientNoAvailableSlots              = "No available slots for this date"
	ErrClientEndDateBeforeStartDate        = "End date cannot be before start date"
	ErrClientStartTimeNotBeforeEndTime     = "Start time must be before end time"
	ErrClientBreakOutsideWorkingHours      = "Break time must fall within working hours"
	ErrClientStatusTransitionNotAllowed    = "Only pending appointments can be confirmed or rejected"
	ErrClientScheduleBatchAllFailed        = "No schedules could be created for the selected dates"
	ErrClientInvalidImageFormat            = "Invalid image, please upload a jpg, jpeg or png file"
)

// Dev-facing messages
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevURLParamIDValidationFailed = "invalid url parameter: %s"
	ErrDevBuildRequest               = "failed to build request payload"
	ErrDevCannotParseJSON            = "failed to parse JSON payload"
	ErrDevCannotParseDate            = "failed to parse date value"
	ErrDevCannotParseTime            = "failed to parse time value"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON payload"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request to backend"
	ErrDevDecodeResponse             = "failed to decode backend response for resource: %s"
	ErrDevBackendReportedFailure     = "backend reported failure for resource %s: %s"
	ErrDevServerDeadlineExceeded     = "deadline exceeded while waiting for backend"
	ErrDevAuthTokenMissing           = "authorization token missing from request"
	ErrDevAuthTokenInvalidOrExpired  = "authorization token invalid or expired"
	ErrDevRoleTypeDoesntMatch        = "session role does not permit this action"
	ErrDevImageValidationFailed      = "profile image validation failed"
	ErrDevRedisSet                   = "failed to set value in redis"
	ErrDevRedisGet                   = "failed to get value from redis for key: %s"
	ErrDevRedisDelete                = "failed to delete key from redis"
	ErrDevQueuePublish               = "failed to publish message to notification queue"
	ErrDevStorageUpload              = "failed to upload object to storage"
	ErrDevEndDateBeforeStartDate     = "end date is earlier than start date"
	ErrDevInvalidTimeWindow          = "start time is not strictly before end time"
	ErrDevInvalidBreakWindow         = "break window falls outside the schedule window"
	ErrDevStatusTransitionRejected   = "appointment status transition from non-pending state"
	ErrDevScheduleBatchAllFailed     = "all dates in the schedule batch failed"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"url":          "must be a valid URL",
	"base64":       "must be a valid base64 string",
	"phone_number": "must be a valid phone number",
	"age_bracket":  "must be one of the supported age brackets",
	"clock_time":   "must be a valid time in HH:MM or HH:MM:SS format",
	"iso_date":     "must be a valid date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}
