package models

// BookingInput is the payload for creating a booking. ProfessionalID may be
// empty; the booking then waits for admin assignment.
type BookingInput struct {
	ProfessionalID string  `json:"professionalId"`
	BookingDate    string  `json:"bookingDate" binding:"required"` // "YYYY-MM-DD"
	StartTime      string  `json:"startTime" binding:"required"`   // "HH:MM"
	Duration       int     `json:"duration" binding:"required"`    // minutes
	EventType      string  `json:"eventType" binding:"required"`
	Location       string  `json:"location"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Pincode        string  `json:"pincode"`
	Pricing        Pricing `json:"pricing"`
}

// RescheduleInput is the payload for moving a booking to a new window.
type RescheduleInput struct {
	BookingDate string `json:"bookingDate" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
}
