package models

// NotificationChannel names a delivery route for a notification.
const (
	ChannelPush  = "push"
	ChannelEmail = "email"
)

// Notification is the payload handed to the notification channel.
type Notification struct {
	Type     string            `json:"type"` // e.g. "booking_confirmed", "booking_reminder"
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
	Channels []string          `json:"channels,omitempty"`
}
