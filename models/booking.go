package models

import "time"

// Status enumerates the booking lifecycle states.
type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusProcessing  Status = "processing"
	StatusRejected    Status = "rejected"
	StatusCancelled   Status = "cancelled"
	StatusCompleted   Status = "completed"
	StatusRescheduled Status = "rescheduled"
)

// ActiveStatuses are the states that count toward time-slot conflicts.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusProcessing}
}

// IsActive reports whether the status counts toward conflicts.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusProcessing
}

// Booking represents a client's booking of a professional.
type Booking struct {
	ID             string     `bson:"id" json:"id"`
	ClientID       string     `bson:"client_id" json:"clientId"`
	ProfessionalID string     `bson:"professional_id,omitempty" json:"professionalId,omitempty"` // empty until admin-assigned
	BookingDate    string     `bson:"booking_date" json:"bookingDate"`                           // "YYYY-MM-DD"
	StartTime      string     `bson:"start_time" json:"startTime"`                               // "HH:MM"
	EndTime        string     `bson:"end_time" json:"endTime"`                                   // always StartTime + Duration
	Duration       int        `bson:"duration" json:"duration"`                                  // minutes
	EventType      string     `bson:"event_type" json:"eventType"`                               // e.g. "wedding", "portrait"
	Location       string     `bson:"location" json:"location"`
	City           string     `bson:"city,omitempty" json:"city,omitempty"`
	State          string     `bson:"state,omitempty" json:"state,omitempty"`
	Pincode        string     `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Pricing        Pricing    `bson:"pricing" json:"pricing"`
	Status         Status     `bson:"status" json:"status"`
	StatusReason   string     `bson:"status_reason,omitempty" json:"statusReason,omitempty"`
	HasReview      bool       `bson:"has_review" json:"hasReview"`
	ReminderSent   bool       `bson:"reminder_sent" json:"reminderSent"`
	IsDeleted      bool       `bson:"is_deleted" json:"isDeleted"`
	CreatedAt      time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updated_at" json:"updatedAt"`
	ConfirmedAt    *time.Time `bson:"confirmed_at,omitempty" json:"confirmedAt,omitempty"`
	RejectedAt     *time.Time `bson:"rejected_at,omitempty" json:"rejectedAt,omitempty"`
	CancelledAt    *time.Time `bson:"cancelled_at,omitempty" json:"cancelledAt,omitempty"`
	CompletedAt    *time.Time `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	RescheduledAt  *time.Time `bson:"rescheduled_at,omitempty" json:"rescheduledAt,omitempty"`
}

// Pricing breaks a booking's cost down into its components.
type Pricing struct {
	BaseAmount        float64      `bson:"base_amount" json:"baseAmount"`
	AdditionalCharges []PriceEntry `bson:"additional_charges,omitempty" json:"additionalCharges,omitempty"`
	Discounts         []PriceEntry `bson:"discounts,omitempty" json:"discounts,omitempty"`
	TravelFee         float64      `bson:"travel_fee" json:"travelFee"`
	TotalAmount       float64      `bson:"total_amount" json:"totalAmount"` // max(0, base + charges - discounts + travel)
}

// PriceEntry is a labelled charge or discount line.
type PriceEntry struct {
	Label  string  `bson:"label" json:"label"`
	Amount float64 `bson:"amount" json:"amount"`
}

// StatusChange couples a target status with its timestamp and optional reason,
// so the status and its matching *At field can never drift apart.
type StatusChange struct {
	Status Status
	At     time.Time
	Reason string
}

// Apply sets the booking's status, reason and the timestamp that belongs to
// the new status in one step.
func (b *Booking) Apply(sc StatusChange) {
	b.Status = sc.Status
	if sc.Reason != "" {
		b.StatusReason = sc.Reason
	}
	b.UpdatedAt = sc.At
	at := sc.At
	switch sc.Status {
	case StatusConfirmed:
		b.ConfirmedAt = &at
	case StatusRejected:
		b.RejectedAt = &at
	case StatusCancelled:
		b.CancelledAt = &at
	case StatusCompleted:
		b.CompletedAt = &at
	case StatusRescheduled:
		b.RescheduledAt = &at
	}
}
