package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/logger"
	"rentnest-backend/internal/repository"

	"github.com/google/uuid"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	requestRepo repository.RentalRequestRepository
	listingRepo repository.ListingRepository
	contractSvc ContractService
	notifier    NotificationService
	emailSvc    EmailService
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	requestRepo repository.RentalRequestRepository,
	listingRepo repository.ListingRepository,
	contractSvc ContractService,
	notifier NotificationService,
	emailSvc EmailService,
) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		requestRepo: requestRepo,
		listingRepo: listingRepo,
		contractSvc: contractSvc,
		notifier:    notifier,
		emailSvc:    emailSvc,
	}
}

func (s *paymentService) Initiate(ctx context.Context, userID, requestID int32, method domain.PaymentMethod) (*domain.Payment, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.UserID != userID {
		return nil, fmt.Errorf("request %d does not belong to user %d: %w", requestID, userID, domain.ErrForbidden)
	}
	if request.Status != domain.RentalRequestStatusApproved {
		return nil, fmt.Errorf("only approved booking requests can proceed to payment (status %q): %w",
			request.Status, domain.ErrConflict)
	}

	if paid, err := s.paymentRepo.GetByRequestAndStatus(ctx, requestID, domain.PaymentStatusPaid); err == nil && paid != nil {
		return nil, fmt.Errorf("payment already completed for request %d: %w", requestID, domain.ErrConflict)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if pending, err := s.paymentRepo.GetByRequestAndStatus(ctx, requestID, domain.PaymentStatusPending); err == nil && pending != nil {
		return nil, fmt.Errorf("a payment is already pending for request %d: %w", requestID, domain.ErrConflict)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	listing, err := s.listingRepo.GetByID(ctx, request.ListingID)
	if err != nil {
		return nil, err
	}

	// Price the selected duration when the owner set one, otherwise fall
	// back to the listing's monthly rent.
	amount := listing.MonthlyRent
	if request.DurationUnit != "" && !request.DurationUnit.IsAccelerated() {
		if price, err := s.listingRepo.GetDurationPrice(ctx, listing.ID, request.DurationUnit); err == nil {
			amount = price.Price * int64(request.DurationMultiplier)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	payment := &domain.Payment{
		RentalRequestID: requestID,
		UserID:          userID,
		ListingID:       request.ListingID,
		Amount:          amount,
		Status:          domain.PaymentStatusPending,
		Method:          method,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	// Gateway integration is simulated: the payment sits pending until
	// Confirm is called, standing in for the gateway webhook.
	logger.Info("Payment initiated", "payment_id", payment.ID, "request_id", requestID, "amount", amount)
	return payment, nil
}

func (s *paymentService) Confirm(ctx context.Context, paymentID int32, transactionID string, now time.Time) (*domain.Payment, *domain.Contract, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, nil, err
	}
	if payment.Status == domain.PaymentStatusPaid {
		return nil, nil, fmt.Errorf("payment %d already confirmed: %w", paymentID, domain.ErrConflict)
	}

	if transactionID == "" {
		transactionID = "TXN-" + uuid.NewString()
	}

	// MarkPaid is guarded on the pending status, so two confirmations
	// racing for the same request settle on exactly one contract.
	if err := s.paymentRepo.MarkPaid(ctx, paymentID, transactionID, now); err != nil {
		return nil, nil, fmt.Errorf("confirm payment %d: %w", paymentID, err)
	}
	payment.Status = domain.PaymentStatusPaid
	payment.TransactionID = transactionID
	payment.PaidAt = &now

	request, err := s.requestRepo.GetByID(ctx, payment.RentalRequestID)
	if err != nil {
		return nil, nil, err
	}

	contract, err := s.contractSvc.CreateFromPayment(ctx, payment, request, now)
	if err != nil {
		return nil, nil, err
	}

	s.notifyParties(ctx, payment, contract, request)
	return payment, contract, nil
}

func (s *paymentService) notifyParties(ctx context.Context, payment *domain.Payment, contract *domain.Contract, request *domain.RentalRequest) {
	listing, err := s.listingRepo.GetByID(ctx, payment.ListingID)
	if err != nil {
		logger.Error("Failed to load listing for payment notifications", "payment_id", payment.ID, "error", err)
		return
	}

	data := map[string]string{
		"payment_id":  fmt.Sprintf("%d", payment.ID),
		"contract_id": fmt.Sprintf("%d", contract.ID),
		"post_id":     fmt.Sprintf("%d", payment.ListingID),
	}

	if request.DurationUnit.IsAccelerated() {
		// The test contract is already complete; both sides can rate now.
		s.notifier.Notify(ctx, listing.OwnerID, domain.NotificationTypeContractExpired,
			"Contract Completed - Rate Your Experience",
			fmt.Sprintf("The test rental contract for %s has been completed. You can now rate the renter.", listing.Title),
			data)
		s.notifier.Notify(ctx, payment.UserID, domain.NotificationTypeContractExpired,
			"Contract Completed - Rate Your Experience",
			fmt.Sprintf("Your test rental contract for %s has been completed. You can now rate the owner.", listing.Title),
			data)

		owner, renter, err := s.contractSvc.Parties(ctx, contract)
		if err != nil {
			logger.Error("Failed to resolve parties for completion email", "contract_id", contract.ID, "error", err)
			return
		}
		if err := s.emailSvc.SendStayCompletedNotification(ctx, owner.Email, owner.Name, listing.Title); err != nil {
			logger.Warn("Failed to send completion email", "user_id", owner.ID, "error", err)
		}
		if err := s.emailSvc.SendStayCompletedNotification(ctx, renter.Email, renter.Name, listing.Title); err != nil {
			logger.Warn("Failed to send completion email", "user_id", renter.ID, "error", err)
		}
		return
	}

	s.notifier.Notify(ctx, listing.OwnerID, domain.NotificationTypePaymentReceived,
		"Payment Received - Confirm Receipt",
		fmt.Sprintf("Payment of %d has been received for %s. Please confirm receipt of payment to proceed with contract signing.",
			payment.Amount, listing.Title),
		data)
	s.notifier.Notify(ctx, payment.UserID, domain.NotificationTypePaymentConfirmed,
		"Payment Confirmed",
		"Your payment has been confirmed. Please review and sign the contract.",
		data)

	owner, renter, err := s.contractSvc.Parties(ctx, contract)
	if err != nil {
		logger.Error("Failed to resolve parties for payment email", "contract_id", contract.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendPaymentConfirmedNotification(ctx, renter.Email, renter.Name, listing.Title); err != nil {
		logger.Warn("Failed to send payment email", "user_id", renter.ID, "error", err)
	}
	if err := s.emailSvc.SendPaymentConfirmedNotification(ctx, owner.Email, owner.Name, listing.Title); err != nil {
		logger.Warn("Failed to send payment email", "user_id", owner.ID, "error", err)
	}
}
