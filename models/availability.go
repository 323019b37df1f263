package models

import "time"

// SlotWindow is a contiguous time-of-day interval [Start, End) during which a
// professional is nominally available.
type SlotWindow struct {
	Start string `bson:"start" json:"start"` // "HH:MM"
	End   string `bson:"end" json:"end"`     // "HH:MM", Start < End
}

// DaySchedule is one weekday's entry in the recurring weekly schedule.
type DaySchedule struct {
	IsAvailable bool         `bson:"is_available" json:"isAvailable"`
	Slots       []SlotWindow `bson:"slots,omitempty" json:"slots,omitempty"`
}

// BlockedDate makes an entire calendar day unbookable regardless of the
// weekly schedule. At most one entry per date.
type BlockedDate struct {
	Date   string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Reason string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// SpecialDate overrides the weekly schedule for a single calendar date.
// At most one entry per date; setting a new one for an existing date replaces it.
type SpecialDate struct {
	Date   string       `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slots  []SlotWindow `bson:"slots" json:"slots"`
	Reason string       `bson:"reason,omitempty" json:"reason,omitempty"`
}

// Availability is the per-professional scheduling document.
type Availability struct {
	ProfessionalID string                 `bson:"professional_id" json:"professionalId"`
	WeeklySchedule map[string]DaySchedule `bson:"weekly_schedule" json:"weeklySchedule"` // keyed by lowercase weekday name
	BlockedDates   []BlockedDate          `bson:"blocked_dates,omitempty" json:"blockedDates,omitempty"`
	SpecialDates   []SpecialDate          `bson:"special_dates,omitempty" json:"specialDates,omitempty"`

	BufferTime         int    `bson:"buffer_time" json:"bufferTime"`                  // minutes kept free around existing bookings
	AdvanceBookingDays int    `bson:"advance_booking_days" json:"advanceBookingDays"` // how far ahead bookings may be placed
	MinBookingNotice   int    `bson:"min_booking_notice" json:"minBookingNotice"`     // hours of lead time required
	Timezone           string `bson:"timezone" json:"timezone"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// AvailabilitySettings carries the tunable scheduling parameters.
type AvailabilitySettings struct {
	BufferTime         int    `json:"bufferTime"`
	AdvanceBookingDays int    `json:"advanceBookingDays"`
	MinBookingNotice   int    `json:"minBookingNotice"`
	Timezone           string `json:"timezone"`
}

const (
	DefaultBufferTime         = 30
	DefaultAdvanceBookingDays = 60
	DefaultMinBookingNotice   = 24
	DefaultTimezone           = "UTC"
)

// DefaultWeeklySchedule builds the standard weekly setup: Mon-Fri with a
// morning and an afternoon slot, weekends off.
func DefaultWeeklySchedule() map[string]DaySchedule {
	workday := DaySchedule{
		IsAvailable: true,
		Slots: []SlotWindow{
			{Start: "09:00", End: "12:00"},
			{Start: "14:00", End: "18:00"},
		},
	}
	return map[string]DaySchedule{
		"monday":    workday,
		"tuesday":   workday,
		"wednesday": workday,
		"thursday":  workday,
		"friday":    workday,
		"saturday":  {IsAvailable: false},
		"sunday":    {IsAvailable: false},
	}
}

// NewAvailability constructs the lazily-created availability document with
// default schedule and settings.
func NewAvailability(professionalID string, now time.Time) *Availability {
	return &Availability{
		ProfessionalID:     professionalID,
		WeeklySchedule:     DefaultWeeklySchedule(),
		BufferTime:         DefaultBufferTime,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
		MinBookingNotice:   DefaultMinBookingNotice,
		Timezone:           DefaultTimezone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
