package models

// AvailableSlot is one bookable window offered to a client.
type AvailableSlot struct {
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"` // minutes
}

// AvailableSlotsResult is the outcome of a slot lookup for a single date.
type AvailableSlotsResult struct {
	Available bool            `json:"available"`
	Slots     []AvailableSlot `json:"slots"`
	Reason    string          `json:"reason,omitempty"` // set when Available is false
}

// CalendarDay summarizes one calendar day for the monthly availability view.
type CalendarDay struct {
	Date          string       `json:"date"` // "YYYY-MM-DD"
	IsAvailable   bool         `json:"isAvailable"`
	IsBlocked     bool         `json:"isBlocked"`
	BookingsCount int          `json:"bookingsCount"`
	Slots         []SlotWindow `json:"slots"`
}
