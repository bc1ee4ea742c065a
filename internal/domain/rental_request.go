package domain

import "time"

type RentalRequestStatus string

const (
	RentalRequestStatusPending         RentalRequestStatus = "pending"
	RentalRequestStatusApproved        RentalRequestStatus = "approved"
	RentalRequestStatusRejected        RentalRequestStatus = "rejected"
	RentalRequestStatusAwaitingPayment RentalRequestStatus = "awaiting_payment"
	RentalRequestStatusPaymentReceived RentalRequestStatus = "payment_received"
	RentalRequestStatusContractSigning RentalRequestStatus = "contract_signing"
	RentalRequestStatusContractSigned  RentalRequestStatus = "contract_signed"
	RentalRequestStatusExpired         RentalRequestStatus = "expired"
)

// RentalRequest is a renter's booking request for a listing. The request
// flow itself lives outside the lifecycle core; payment confirmation and
// contract creation are the only mutators here.
type RentalRequest struct {
	ID                 int32               `json:"id"`
	UserID             int32               `json:"user_id"` // requester
	ListingID          int32               `json:"post_id"`
	Status             RentalRequestStatus `json:"status"`
	Message            string              `json:"message"`
	DurationUnit       DurationUnit        `json:"duration_type"`
	DurationMultiplier int32               `json:"duration_multiplier"`
	RequestedStartDate *time.Time          `json:"requested_start_date,omitempty"`
	RequestedEndDate   *time.Time          `json:"requested_end_date,omitempty"`
	CreatedOn          time.Time           `json:"created_on"`
	UpdatedOn          time.Time           `json:"updated_on"`
}
