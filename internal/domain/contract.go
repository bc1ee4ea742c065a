package domain

import "time"

type ContractStatus string

const (
	ContractStatusPending        ContractStatus = "pending"
	ContractStatusActive         ContractStatus = "active"
	ContractStatusSigned         ContractStatus = "signed"
	ContractStatusPendingSigning ContractStatus = "pending_signing"
	ContractStatusExpired        ContractStatus = "expired"
	ContractStatusCancelled      ContractStatus = "cancelled"
)

// NonTerminalContractStatuses are the statuses that occupy a listing for
// overlap and expiry purposes. pending_signing is treated identically to
// pending.
var NonTerminalContractStatuses = []ContractStatus{
	ContractStatusPending,
	ContractStatusActive,
	ContractStatusSigned,
	ContractStatusPendingSigning,
}

// IsTerminal reports whether the status can never transition again.
func (s ContractStatus) IsTerminal() bool {
	switch s {
	case ContractStatusExpired, ContractStatusCancelled:
		return true
	case ContractStatusPending, ContractStatusActive, ContractStatusSigned, ContractStatusPendingSigning:
		return false
	}
	return false
}

// Contract is a confirmed, time-bounded rental agreement between a
// listing's owner and a renter. StartDate and EndDate form an inclusive
// date range; StartDate <= EndDate always holds after creation.
type Contract struct {
	ID              int32          `json:"id"`
	RentalRequestID int32          `json:"rental_request_id"`
	PaymentID       int32          `json:"payment_id"`
	UserID          int32          `json:"user_id"` // renter
	ListingID       int32          `json:"post_id"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`
	MonthlyRent     int64          `json:"monthly_rent"`
	Status          ContractStatus `json:"status"`
	Terms           string         `json:"terms"`
	CreatedOn       time.Time      `json:"created_on"`
	UpdatedOn       time.Time      `json:"updated_on"`
}

// IsStayCompleted reports whether the rental period is over, regardless of
// how the contract reached expired.
func (c *Contract) IsStayCompleted() bool {
	return c.Status == ContractStatusExpired
}
