package requests

// CreateSchedule declares working hours for one date or, when EndDate is
// set, for every date in [AvailableDate, EndDate]. Times arrive as HH:MM
// or HH:MM:SS and are normalized before being sent to the backend. For
// doctor-role callers DoctorID is stamped from the session before
// validation; admins must supply it.
type CreateSchedule struct {
	DoctorID      int64  `json:"doctor_id" validate:"required,gt=0"`
	AvailableDate string `json:"available_date" validate:"required,iso_date"`
	EndDate       string `json:"end_date" validate:"omitempty,iso_date"`
	StartTime     string `json:"start_time" validate:"required,clock_time"`
	EndTime       string `json:"end_time" validate:"required,clock_time"`
	BreakStart    string `json:"break_start" validate:"omitempty,clock_time"`
	BreakEnd      string `json:"break_end" validate:"omitempty,clock_time"`
}

// UpdateSchedule edits a single schedule's times; the date is immutable.
type UpdateSchedule struct {
	StartTime  string `json:"start_time" validate:"required,clock_time"`
	EndTime    string `json:"end_time" validate:"required,clock_time"`
	BreakStart string `json:"break_start" validate:"omitempty,clock_time"`
	BreakEnd   string `json:"break_end" validate:"omitempty,clock_time"`
}
