package service

import (
	"context"
	"time"

	"rentnest-backend/internal/domain"
)

type AvailabilityService interface {
	// HasOverlap reports whether [start, end] intersects any non-terminal
	// contract on the listing. excludeContractID of 0 excludes nothing.
	HasOverlap(ctx context.Context, listingID int32, start, end time.Time, excludeContractID int32) (bool, error)
	// NextAvailableStart returns the day after the latest end date among
	// non-terminal, not-yet-ended contracts, or today if there are none.
	NextAvailableStart(ctx context.Context, listingID int32, today time.Time) (time.Time, error)
}

type ContractService interface {
	// CreateFromPayment turns a paid payment into a contract, defending
	// against date drift via the overlap resolver. Accelerated test
	// durations produce a contract that is already expired.
	CreateFromPayment(ctx context.Context, payment *domain.Payment, request *domain.RentalRequest, now time.Time) (*domain.Contract, error)
	// ExpireDueContracts flips every non-terminal contract whose end date
	// has passed to expired and frees its listing. Idempotent; one
	// contract's failure never aborts the batch. Returns the number of
	// contracts transitioned.
	ExpireDueContracts(ctx context.Context, asOf time.Time) (int32, error)
	GetContract(ctx context.Context, userID, contractID int32) (*domain.Contract, error)
	// Parties resolves the owner and renter of a contract.
	Parties(ctx context.Context, contract *domain.Contract) (owner, renter *domain.User, err error)
}

type PaymentService interface {
	// Initiate creates a pending payment for an approved rental request.
	Initiate(ctx context.Context, userID, requestID int32, method domain.PaymentMethod) (*domain.Payment, error)
	// Confirm marks a pending payment paid and creates the contract.
	// Gateway integration is simulated; transactionID may be empty.
	Confirm(ctx context.Context, paymentID int32, transactionID string, now time.Time) (*domain.Payment, *domain.Contract, error)
}

type RatingService interface {
	Submit(ctx context.Context, raterID, contractID, rating int32, comment string, now time.Time) (*domain.Review, error)
	Edit(ctx context.Context, raterID, reviewID int32, rating *int32, comment *string, now time.Time) (*domain.Review, error)
	Delete(ctx context.Context, raterID, reviewID int32, now time.Time) error
	// CheckAndReveal applies the reveal policy for one contract: both
	// hidden reviews present, or 14 days since end date. Returns the
	// number of reviews revealed.
	CheckAndReveal(ctx context.Context, contractID int32, now time.Time) (int32, error)
	// RevealDueRatings is the sweep variant over every contract with an
	// outstanding hidden review.
	RevealDueRatings(ctx context.Context, now time.Time) (int32, error)
	ContractReviews(ctx context.Context, viewerID, contractID int32) ([]domain.Review, error)
	UserReviews(ctx context.Context, ratedUserID int32) ([]domain.Review, error)
	Reputation(ctx context.Context, userID int32) (*domain.Reputation, error)
	EligibleContracts(ctx context.Context, userID int32) ([]domain.EligibleContract, error)
}

type NotificationService interface {
	// Notify is fire-and-forget; callers never depend on delivery.
	Notify(ctx context.Context, userID int32, nType domain.NotificationType, title, message string, data map[string]string)
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendPaymentConfirmedNotification(ctx context.Context, email, name, listingTitle string) error
	SendStayCompletedNotification(ctx context.Context, email, name, listingTitle string) error
	SendRatingRevealedNotification(ctx context.Context, email, name string) error
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
