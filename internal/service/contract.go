package service

import (
	"context"
	"fmt"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/logger"
	"rentnest-backend/internal/repository"
	"rentnest-backend/internal/utils"
)

type contractService struct {
	contractRepo repository.ContractRepository
	listingRepo  repository.ListingRepository
	requestRepo  repository.RentalRequestRepository
	userRepo     repository.UserRepository
	availability AvailabilityService
}

func NewContractService(
	contractRepo repository.ContractRepository,
	listingRepo repository.ListingRepository,
	requestRepo repository.RentalRequestRepository,
	userRepo repository.UserRepository,
	availability AvailabilityService,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		listingRepo:  listingRepo,
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		availability: availability,
	}
}

func (s *contractService) CreateFromPayment(ctx context.Context, payment *domain.Payment, request *domain.RentalRequest, now time.Time) (*domain.Contract, error) {
	listing, err := s.listingRepo.GetByID(ctx, payment.ListingID)
	if err != nil {
		return nil, err
	}

	// Dates were chosen at request-approval time; default when absent.
	start := now.AddDate(0, 0, 7)
	end := now.AddDate(0, 12, 0)
	if request.RequestedStartDate != nil {
		start = *request.RequestedStartDate
	}
	if request.RequestedEndDate != nil {
		end = *request.RequestedEndDate
	}

	// Defend against drift from payments confirmed concurrently on the
	// same listing since approval.
	overlap, err := s.availability.HasOverlap(ctx, payment.ListingID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		start, err = s.availability.NextAvailableStart(ctx, payment.ListingID, now)
		if err != nil {
			return nil, err
		}
		if request.DurationUnit != "" && request.DurationMultiplier > 0 {
			end = utils.EndDate(start, request.DurationUnit, int(request.DurationMultiplier))
		} else {
			end = start.AddDate(0, 12, 0)
		}
		logger.Warn("Rental dates recomputed after overlap",
			"listing_id", payment.ListingID, "request_id", request.ID,
			"start_date", start.Format("2006-01-02"), "end_date", end.Format("2006-01-02"))
	}

	// Accelerated test durations produce a contract that has already run
	// its course, so the rating flow can be exercised immediately.
	status := domain.ContractStatusPending
	if request.DurationUnit.IsAccelerated() {
		start = now.AddDate(0, 0, -2)
		end = now.AddDate(0, 0, -1)
		status = domain.ContractStatusExpired
	}

	contract := &domain.Contract{
		RentalRequestID: request.ID,
		PaymentID:       payment.ID,
		UserID:          payment.UserID,
		ListingID:       payment.ListingID,
		StartDate:       start,
		EndDate:         end,
		MonthlyRent:     payment.Amount,
		Status:          status,
		Terms:           generateContractTerms(listing),
	}
	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	// The listing was marked rented at booking approval; an already
	// expired test contract hands it straight back.
	if status == domain.ContractStatusExpired && listing.Status == domain.ListingStatusRented {
		if err := s.listingRepo.UpdateStatus(ctx, listing.ID, domain.ListingStatusActive); err != nil {
			logger.Error("Failed to release listing for test contract",
				"listing_id", listing.ID, "contract_id", contract.ID, "error", err)
		}
	}

	requestStatus := domain.RentalRequestStatusPaymentReceived
	if status == domain.ContractStatusExpired {
		requestStatus = domain.RentalRequestStatusContractSigned
	}
	if err := s.requestRepo.UpdateStatus(ctx, request.ID, requestStatus); err != nil {
		logger.Error("Failed to update rental request status",
			"request_id", request.ID, "status", requestStatus, "error", err)
	}

	return contract, nil
}

func (s *contractService) ExpireDueContracts(ctx context.Context, asOf time.Time) (int32, error) {
	due, err := s.contractRepo.ListDueForExpiry(ctx, asOf)
	if err != nil {
		return 0, err
	}

	var expired int32
	for _, c := range due {
		if err := s.contractRepo.UpdateStatus(ctx, c.ID, domain.ContractStatusExpired); err != nil {
			logger.Error("Failed to expire contract", "contract_id", c.ID, "error", err)
			continue
		}
		expired++

		listing, err := s.listingRepo.GetByID(ctx, c.ListingID)
		if err != nil {
			logger.Error("Failed to load listing for expired contract",
				"contract_id", c.ID, "listing_id", c.ListingID, "error", err)
			continue
		}
		if listing.Status == domain.ListingStatusRented {
			if err := s.listingRepo.UpdateStatus(ctx, listing.ID, domain.ListingStatusActive); err != nil {
				logger.Error("Failed to release listing",
					"listing_id", listing.ID, "contract_id", c.ID, "error", err)
			}
		}

		// The linked rental request is deliberately left untouched:
		// availability is the guaranteed side effect, request-status
		// bookkeeping is a manual admin concern.
	}
	return expired, nil
}

func (s *contractService) GetContract(ctx context.Context, userID, contractID int32) (*domain.Contract, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	owner, renter, err := s.Parties(ctx, contract)
	if err != nil {
		return nil, err
	}
	if userID != owner.ID && userID != renter.ID {
		return nil, fmt.Errorf("user %d is not a party to contract %d: %w", userID, contractID, domain.ErrForbidden)
	}
	return contract, nil
}

func (s *contractService) Parties(ctx context.Context, contract *domain.Contract) (*domain.User, *domain.User, error) {
	listing, err := s.listingRepo.GetByID(ctx, contract.ListingID)
	if err != nil {
		return nil, nil, err
	}
	owner, err := s.userRepo.GetByID(ctx, listing.OwnerID)
	if err != nil {
		return nil, nil, err
	}
	renter, err := s.userRepo.GetByID(ctx, contract.UserID)
	if err != nil {
		return nil, nil, err
	}
	return owner, renter, nil
}

func generateContractTerms(listing *domain.Listing) string {
	return fmt.Sprintf("This is a rental contract for the apartment located at %s. The monthly rent is %d. Please review all terms before signing.",
		listing.Address, listing.MonthlyRent)
}
