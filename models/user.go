package models

import "time"

// User is a client account, used here only to resolve notification recipients.
type User struct {
	ID          string    `bson:"id" json:"id"`
	Username    string    `bson:"username" json:"username"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	FCMToken    string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
