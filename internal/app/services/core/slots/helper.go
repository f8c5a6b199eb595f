package slots

import (
	"clinicdesk-service/internal/pkg/constvars"
	"clinicdesk-service/internal/pkg/dto/responses"
	"clinicdesk-service/internal/pkg/utils"
	"time"
)

// SlotInterval is the clinic-wide consultation length. Slot boundaries,
// booking times and break windows all align to it.
const SlotInterval = 15 * time.Minute

// BuildDaySlots derives the slot grid for one schedule. Slots start at the
// schedule's start time and step by SlotInterval up to, but not including,
// the end time. A slot inside [break_start, break_end) is a break; a slot
// whose time appears in bookedTimes is booked; everything else is available.
// Booked wins over break when both apply.
func BuildDaySlots(schedule *responses.Schedule, bookedTimes map[string]struct{}) ([]responses.Slot, error) {
	start, err := utils.ParseClockTime(schedule.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.ParseClockTime(schedule.EndTime)
	if err != nil {
		return nil, err
	}

	var breakStart, breakEnd time.Time
	hasBreak := schedule.BreakStart != "" && schedule.BreakEnd != ""
	if hasBreak {
		breakStart, err = utils.ParseClockTime(schedule.BreakStart)
		if err != nil {
			return nil, err
		}
		breakEnd, err = utils.ParseClockTime(schedule.BreakEnd)
		if err != nil {
			return nil, err
		}
	}

	result := []responses.Slot{}
	for t := start; t.Before(end); t = t.Add(SlotInterval) {
		slotTime := t.Format(constvars.TimeLayoutAPI)

		status := responses.SlotStatusAvailable
		if hasBreak && !t.Before(breakStart) && t.Before(breakEnd) {
			status = responses.SlotStatusBreak
		}
		if _, booked := bookedTimes[slotTime]; booked {
			status = responses.SlotStatusBooked
		}

		result = append(result, responses.Slot{Time: slotTime, Status: status})
	}
	return result, nil
}

// MarkElapsedSlots downgrades available slots whose start has already
// passed relative to now, so the booking page cannot offer them. Booked
// and break slots keep their status for display.
func MarkElapsedSlots(slots []responses.Slot, date string, now time.Time) []responses.Slot {
	for i := range slots {
		if slots[i].Status != responses.SlotStatusAvailable {
			continue
		}
		slotStart, err := time.ParseInLocation(
			constvars.DateLayoutISO+" "+constvars.TimeLayoutAPI,
			date+" "+slots[i].Time,
			now.Location(),
		)
		if err != nil {
			continue
		}
		if !slotStart.After(now) {
			slots[i].Status = responses.SlotStatusUnavailable
		}
	}
	return slots
}
