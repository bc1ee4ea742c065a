package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentMethodWallet       PaymentMethod = "jeeb_wallet"
	PaymentMethodKareemiBank  PaymentMethod = "kareemi_bank"
	PaymentMethodKakBank      PaymentMethod = "kak_bank"
	PaymentMethodOneCash      PaymentMethod = "one_cash"
	PaymentMethodYKBank       PaymentMethod = "yemen_kuwait_bank"
)

// Payment records one payment attempt for a rental request. At most one
// paid payment and at most one outstanding pending payment exist per
// request.
type Payment struct {
	ID              int32         `json:"id"`
	RentalRequestID int32         `json:"rental_request_id"`
	UserID          int32         `json:"user_id"` // payer
	ListingID       int32         `json:"post_id"`
	Amount          int64         `json:"amount"`
	Status          PaymentStatus `json:"status"`
	Method          PaymentMethod `json:"payment_method"`
	TransactionID   string        `json:"transaction_id"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	CreatedOn       time.Time     `json:"created_on"`
	UpdatedOn       time.Time     `json:"updated_on"`
}
