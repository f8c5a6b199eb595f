package responses

type SlotStatus string

const (
	SlotStatusAvailable   SlotStatus = "available"
	SlotStatusBooked      SlotStatus = "booked"
	SlotStatusBreak       SlotStatus = "break"
	SlotStatusUnavailable SlotStatus = "unavailable"
)

// Slot is derived per (doctor, date) and never persisted.
type Slot struct {
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
}
