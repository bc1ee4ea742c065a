package unit

import (
	"context"
	"time"

	"rentnest-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockListingRepo
type MockListingRepo struct {
	mock.Mock
}

func (m *MockListingRepo) Create(ctx context.Context, listing *domain.Listing) error {
	args := m.Called(ctx, listing)
	return args.Error(0)
}
func (m *MockListingRepo) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}
func (m *MockListingRepo) UpdateStatus(ctx context.Context, id int32, status domain.ListingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockListingRepo) UpsertDurationPrice(ctx context.Context, price *domain.DurationPrice) error {
	args := m.Called(ctx, price)
	return args.Error(0)
}
func (m *MockListingRepo) GetDurationPrice(ctx context.Context, listingID int32, unit domain.DurationUnit) (*domain.DurationPrice, error) {
	args := m.Called(ctx, listingID, unit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DurationPrice), args.Error(1)
}
func (m *MockListingRepo) ListDurationPrices(ctx context.Context, listingID int32) ([]domain.DurationPrice, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]domain.DurationPrice), args.Error(1)
}

// MockRentalRequestRepo
type MockRentalRequestRepo struct {
	mock.Mock
}

func (m *MockRentalRequestRepo) Create(ctx context.Context, req *domain.RentalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRentalRequestRepo) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestRepo) UpdateStatus(ctx context.Context, id int32, status domain.RentalRequestStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) GetByRequestAndStatus(ctx context.Context, requestID int32, status domain.PaymentStatus) (*domain.Payment, error) {
	args := m.Called(ctx, requestID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) MarkPaid(ctx context.Context, id int32, transactionID string, paidAt time.Time) error {
	args := m.Called(ctx, id, transactionID, paidAt)
	return args.Error(0)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, contract *domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) GetByPaymentID(ctx context.Context, paymentID int32) (*domain.Contract, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractRepo) UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockContractRepo) ListNonTerminalByListing(ctx context.Context, listingID int32) ([]domain.Contract, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListDueForExpiry(ctx context.Context, asOf time.Time) ([]domain.Contract, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.Contract), args.Error(1)
}
func (m *MockContractRepo) ListExpiredByParty(ctx context.Context, userID int32) ([]domain.Contract, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Contract), args.Error(1)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) GetByID(ctx context.Context, id int32) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewRepo) GetByContractAndRater(ctx context.Context, contractID, raterID int32) (*domain.Review, error) {
	args := m.Called(ctx, contractID, raterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}
func (m *MockReviewRepo) Update(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockReviewRepo) ListHiddenByContract(ctx context.Context, contractID int32) ([]domain.Review, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) ListByContract(ctx context.Context, contractID int32) ([]domain.Review, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) RevealHiddenByContract(ctx context.Context, contractID int32, revealedAt time.Time) (int32, error) {
	args := m.Called(ctx, contractID, revealedAt)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReviewRepo) ListContractIDsWithHidden(ctx context.Context) ([]int32, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int32), args.Error(1)
}
func (m *MockReviewRepo) ListRevealedByRatedUser(ctx context.Context, ratedUserID int32) ([]domain.Review, error) {
	args := m.Called(ctx, ratedUserID)
	return args.Get(0).([]domain.Review), args.Error(1)
}
func (m *MockReviewRepo) GetReputation(ctx context.Context, ratedUserID int32) (*domain.Reputation, error) {
	args := m.Called(ctx, ratedUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reputation), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockContractService
type MockContractService struct {
	mock.Mock
}

func (m *MockContractService) CreateFromPayment(ctx context.Context, payment *domain.Payment, request *domain.RentalRequest, now time.Time) (*domain.Contract, error) {
	args := m.Called(ctx, payment, request, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) ExpireDueContracts(ctx context.Context, asOf time.Time) (int32, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockContractService) GetContract(ctx context.Context, userID, contractID int32) (*domain.Contract, error) {
	args := m.Called(ctx, userID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}
func (m *MockContractService) Parties(ctx context.Context, contract *domain.Contract) (*domain.User, *domain.User, error) {
	args := m.Called(ctx, contract)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Get(1).(*domain.User), args.Error(2)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, userID int32, nType domain.NotificationType, title, message string, data map[string]string) {
	m.Called(ctx, userID, nType, title, message, data)
}
func (m *MockNotificationService) GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID, notificationID int32) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPaymentConfirmedNotification(ctx context.Context, email, name, listingTitle string) error {
	args := m.Called(ctx, email, name, listingTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendStayCompletedNotification(ctx context.Context, email, name, listingTitle string) error {
	args := m.Called(ctx, email, name, listingTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendRatingRevealedNotification(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
