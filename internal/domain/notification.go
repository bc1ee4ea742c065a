package domain

import "time"

type NotificationType string

const (
	NotificationTypePaymentReceived  NotificationType = "payment_received"
	NotificationTypePaymentConfirmed NotificationType = "payment_confirmed"
	NotificationTypeContractExpired  NotificationType = "contract_expired"
	NotificationTypeRatingRevealed   NotificationType = "rating_revealed"
)

// Notification is a fire-and-forget message to a user. The lifecycle core
// never depends on delivery success.
type Notification struct {
	ID        int32             `json:"id"`
	UserID    int32             `json:"user_id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data"`
	IsRead    bool              `json:"is_read"`
	CreatedOn time.Time         `json:"created_on"`
}
