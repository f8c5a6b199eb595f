package responses

type Schedule struct {
	ID            int64  `json:"id"`
	DoctorID      int64  `json:"doctor_id"`
	AvailableDate string `json:"available_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	BreakStart    string `json:"break_start,omitempty"`
	BreakEnd      string `json:"break_end,omitempty"`
}

// ScheduleBatchResult reports a date-range creation: each date succeeds or
// fails independently and failures never abort the remaining dates.
type ScheduleBatchResult struct {
	Created      []Schedule            `json:"created"`
	CreatedCount int                   `json:"created_count"`
	Failures     []ScheduleDateFailure `json:"failures,omitempty"`
	FailureNote  string                `json:"failure_note,omitempty"`
}

type ScheduleDateFailure struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}
