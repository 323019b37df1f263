package models

import "time"

// Professional lifecycle states as managed by the (out-of-scope) admin surface.
const (
	ProfessionalStatusPending   = "pending"
	ProfessionalStatusApproved  = "approved"
	ProfessionalStatusSuspended = "suspended"
)

// Professional is a photography/videography service provider.
type Professional struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"userId"` // account used for notifications
	Name          string    `bson:"name" json:"name"`
	Status        string    `bson:"status" json:"status"` // only "approved" professionals are bookable
	ServiceTypes  []string  `bson:"service_types,omitempty" json:"serviceTypes,omitempty"`
	City          string    `bson:"city,omitempty" json:"city,omitempty"`
	State         string    `bson:"state,omitempty" json:"state,omitempty"`
	Pincode       string    `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Rating        float64   `bson:"rating" json:"rating"`
	TotalBookings int       `bson:"total_bookings" json:"totalBookings"`
	FCMToken      string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsApproved reports whether the professional may receive bookings.
func (p *Professional) IsApproved() bool {
	return p.Status == ProfessionalStatusApproved
}
