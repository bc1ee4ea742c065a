package repository

import (
	"context"
	"time"

	"rentnest-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id int32) (*domain.Listing, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ListingStatus) error

	// Duration prices (one per (listing, unit))
	UpsertDurationPrice(ctx context.Context, price *domain.DurationPrice) error
	GetDurationPrice(ctx context.Context, listingID int32, unit domain.DurationUnit) (*domain.DurationPrice, error)
	ListDurationPrices(ctx context.Context, listingID int32) ([]domain.DurationPrice, error)
}

type RentalRequestRepository interface {
	Create(ctx context.Context, req *domain.RentalRequest) error
	GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error)
	UpdateStatus(ctx context.Context, id int32, status domain.RentalRequestStatus) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	GetByRequestAndStatus(ctx context.Context, requestID int32, status domain.PaymentStatus) (*domain.Payment, error)
	// MarkPaid flips a pending payment to paid. Returns domain.ErrConflict
	// when the payment is no longer pending, so two confirmations racing
	// for the same request settle on exactly one winner.
	MarkPaid(ctx context.Context, id int32, transactionID string, paidAt time.Time) error
}

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	GetByID(ctx context.Context, id int32) (*domain.Contract, error)
	GetByPaymentID(ctx context.Context, paymentID int32) (*domain.Contract, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error
	// ListNonTerminalByListing returns the contracts occupying the listing
	// for overlap purposes.
	ListNonTerminalByListing(ctx context.Context, listingID int32) ([]domain.Contract, error)
	// ListDueForExpiry returns non-terminal contracts whose end_date has
	// passed as of the given date.
	ListDueForExpiry(ctx context.Context, asOf time.Time) ([]domain.Contract, error)
	ListExpiredByParty(ctx context.Context, userID int32) ([]domain.Contract, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id int32) (*domain.Review, error)
	GetByContractAndRater(ctx context.Context, contractID, raterID int32) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id int32) error
	ListHiddenByContract(ctx context.Context, contractID int32) ([]domain.Review, error)
	ListByContract(ctx context.Context, contractID int32) ([]domain.Review, error)
	// RevealHiddenByContract flips every hidden review on the contract to
	// revealed in one statement and returns the number revealed.
	RevealHiddenByContract(ctx context.Context, contractID int32, revealedAt time.Time) (int32, error)
	// ListContractIDsWithHidden returns the distinct contracts that still
	// have at least one hidden review, for the reveal sweep.
	ListContractIDsWithHidden(ctx context.Context) ([]int32, error)
	ListRevealedByRatedUser(ctx context.Context, ratedUserID int32) ([]domain.Review, error)
	GetReputation(ctx context.Context, ratedUserID int32) (*domain.Reputation, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
