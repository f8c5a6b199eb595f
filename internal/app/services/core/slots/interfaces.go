package slots

import (
	"clinicdesk-service/internal/pkg/dto/responses"
	"context"
)

type SlotUsecase interface {
	// FindDoctorSlots returns the slot grid for one doctor and date. A
	// doctor with no schedule on the date yields an empty grid and a
	// false second return.
	FindDoctorSlots(ctx context.Context, doctorID int64, date string) ([]responses.Slot, bool, error)
}
