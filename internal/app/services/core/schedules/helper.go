package schedules

import (
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/exceptions"
	"clinicdesk-service/internal/pkg/utils"
	"errors"
)

// DatesInRange expands [start, end] into every calendar date, inclusive on
// both ends and ascending. An empty end collapses to the single start date.
func DatesInRange(start, end string) ([]string, error) {
	startDate, err := utils.ParseISODate(start)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	if end == "" {
		return []string{start}, nil
	}

	endDate, err := utils.ParseISODate(end)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if endDate.Before(startDate) {
		return nil, exceptions.ErrEndDateBeforeStartDate(errors.New("end date " + end + " precedes start date " + start))
	}

	var dates []string
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(constvars.DateLayoutISO))
	}
	return dates, nil
}

// validateWindows enforces start < end for working hours and, when a break
// is declared, break_start < break_end with the whole break inside working
// hours. A break needs both bounds.
func validateWindows(startTime, endTime, breakStart, breakEnd string) error {
	if !utils.IsTimeRangeValid(startTime, endTime) {
		return exceptions.ErrInvalidTimeWindow(errors.New("start_time must be before end_time"))
	}

	hasBreakStart := breakStart != ""
	hasBreakEnd := breakEnd != ""
	if hasBreakStart != hasBreakEnd {
		return exceptions.ErrInvalidBreakWindow(errors.New("break_start and break_end must be set together"))
	}
	if !hasBreakStart {
		return nil
	}

	if !utils.IsTimeRangeValid(breakStart, breakEnd) {
		return exceptions.ErrInvalidBreakWindow(errors.New("break_start must be before break_end"))
	}

	start, _ := utils.ParseClockTime(startTime)
	end, _ := utils.ParseClockTime(endTime)
	bs, _ := utils.ParseClockTime(breakStart)
	be, _ := utils.ParseClockTime(breakEnd)
	if bs.Before(start) || be.After(end) {
		return exceptions.ErrInvalidBreakWindow(errors.New("break window must sit inside working hours"))
	}
	return nil
}
