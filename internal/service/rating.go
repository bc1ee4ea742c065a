package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/logger"
	"rentnest-backend/internal/repository"
)

// revealWindow is how long a single-sided rating stays sealed after the
// stay ends before it is revealed anyway.
const revealWindow = 14 * 24 * time.Hour

type ratingService struct {
	reviewRepo   repository.ReviewRepository
	contractRepo repository.ContractRepository
	listingRepo  repository.ListingRepository
	userRepo     repository.UserRepository
	notifier     NotificationService
	emailSvc     EmailService
}

func NewRatingService(
	reviewRepo repository.ReviewRepository,
	contractRepo repository.ContractRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	notifier NotificationService,
	emailSvc EmailService,
) RatingService {
	return &ratingService{
		reviewRepo:   reviewRepo,
		contractRepo: contractRepo,
		listingRepo:  listingRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		emailSvc:     emailSvc,
	}
}

func (s *ratingService) Submit(ctx context.Context, raterID, contractID, rating int32, comment string, now time.Time) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}

	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if !contract.IsStayCompleted() {
		return nil, fmt.Errorf("contract %d: %w", contractID, domain.ErrNotEligible)
	}

	listing, err := s.listingRepo.GetByID(ctx, contract.ListingID)
	if err != nil {
		return nil, err
	}
	ownerID := listing.OwnerID
	renterID := contract.UserID

	var ratedID int32
	switch raterID {
	case ownerID:
		ratedID = renterID
	case renterID:
		ratedID = ownerID
	default:
		return nil, fmt.Errorf("user %d is not a party to contract %d: %w", raterID, contractID, domain.ErrForbidden)
	}

	if existing, err := s.reviewRepo.GetByContractAndRater(ctx, contractID, raterID); err == nil && existing != nil {
		return nil, fmt.Errorf("user %d already rated contract %d: %w", raterID, contractID, domain.ErrConflict)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if raterID == ratedID {
		return nil, fmt.Errorf("contract %d: %w", contractID, domain.ErrSelfReferential)
	}

	review := &domain.Review{
		ContractID:  contractID,
		RaterUserID: raterID,
		RatedUserID: ratedID,
		Rating:      rating,
		Comment:     comment,
		Status:      domain.ReviewStatusHidden,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Every write re-evaluates the reveal policy so dual submission
	// reveals without waiting for the sweep.
	if _, err := s.checkAndReveal(ctx, contract, now); err != nil {
		logger.Error("Reveal check failed after submit", "contract_id", contractID, "error", err)
	}

	return review, nil
}

func (s *ratingService) Edit(ctx context.Context, raterID, reviewID int32, rating *int32, comment *string, now time.Time) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.RaterUserID != raterID {
		return nil, fmt.Errorf("review %d does not belong to user %d: %w", reviewID, raterID, domain.ErrForbidden)
	}
	if review.IsImmutable() {
		return nil, fmt.Errorf("review %d: %w", reviewID, domain.ErrImmutable)
	}

	if rating != nil {
		if *rating < 1 || *rating > 5 {
			return nil, fmt.Errorf("rating must be between 1 and 5, got %d", *rating)
		}
		review.Rating = *rating
	}
	if comment != nil {
		review.Comment = *comment
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	if _, err := s.CheckAndReveal(ctx, review.ContractID, now); err != nil {
		logger.Error("Reveal check failed after edit", "contract_id", review.ContractID, "error", err)
	}
	return review, nil
}

func (s *ratingService) Delete(ctx context.Context, raterID, reviewID int32, now time.Time) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.RaterUserID != raterID {
		return fmt.Errorf("review %d does not belong to user %d: %w", reviewID, raterID, domain.ErrForbidden)
	}
	if review.IsImmutable() {
		return fmt.Errorf("review %d: %w", reviewID, domain.ErrImmutable)
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}

	if _, err := s.CheckAndReveal(ctx, review.ContractID, now); err != nil {
		logger.Error("Reveal check failed after delete", "contract_id", review.ContractID, "error", err)
	}
	return nil
}

func (s *ratingService) CheckAndReveal(ctx context.Context, contractID int32, now time.Time) (int32, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return 0, err
	}
	return s.checkAndReveal(ctx, contract, now)
}

// checkAndReveal enforces the double-blind policy: reveal when both
// parties have submitted, or when the 14-day window since the stay ended
// has elapsed with at least one submission outstanding. The window runs
// from end_date, independent of when the status flipped to expired.
func (s *ratingService) checkAndReveal(ctx context.Context, contract *domain.Contract, now time.Time) (int32, error) {
	hidden, err := s.reviewRepo.ListHiddenByContract(ctx, contract.ID)
	if err != nil {
		return 0, err
	}
	if len(hidden) == 0 {
		return 0, nil
	}

	bothSubmitted := len(hidden) == 2
	windowElapsed := now.Sub(contract.EndDate) >= revealWindow
	if !bothSubmitted && !windowElapsed {
		return 0, nil
	}

	revealed, err := s.reviewRepo.RevealHiddenByContract(ctx, contract.ID, now)
	if err != nil {
		return 0, err
	}
	if revealed > 0 {
		logger.Info("Ratings revealed", "contract_id", contract.ID, "count", revealed,
			"both_submitted", bothSubmitted)
		for _, rv := range hidden {
			s.notifier.Notify(ctx, rv.RatedUserID, domain.NotificationTypeRatingRevealed,
				"New Rating Revealed",
				"A rating from your completed stay is now visible on your profile.",
				map[string]string{"contract_id": fmt.Sprintf("%d", contract.ID)})

			rated, err := s.userRepo.GetByID(ctx, rv.RatedUserID)
			if err != nil {
				logger.Warn("Failed to load user for reveal email", "user_id", rv.RatedUserID, "error", err)
				continue
			}
			if err := s.emailSvc.SendRatingRevealedNotification(ctx, rated.Email, rated.Name); err != nil {
				logger.Warn("Failed to send reveal email", "user_id", rated.ID, "error", err)
			}
		}
	}
	return revealed, nil
}

func (s *ratingService) RevealDueRatings(ctx context.Context, now time.Time) (int32, error) {
	contractIDs, err := s.reviewRepo.ListContractIDsWithHidden(ctx)
	if err != nil {
		return 0, err
	}

	var total int32
	for _, id := range contractIDs {
		revealed, err := s.CheckAndReveal(ctx, id, now)
		if err != nil {
			logger.Error("Reveal sweep failed for contract", "contract_id", id, "error", err)
			continue
		}
		total += revealed
	}
	return total, nil
}

func (s *ratingService) ContractReviews(ctx context.Context, viewerID, contractID int32) ([]domain.Review, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	listing, err := s.listingRepo.GetByID(ctx, contract.ListingID)
	if err != nil {
		return nil, err
	}
	if viewerID != listing.OwnerID && viewerID != contract.UserID {
		return nil, fmt.Errorf("user %d is not a party to contract %d: %w", viewerID, contractID, domain.ErrForbidden)
	}

	all, err := s.reviewRepo.ListByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	visible := make([]domain.Review, 0, len(all))
	for _, rv := range all {
		if rv.VisibleTo(viewerID) {
			visible = append(visible, rv)
		}
	}
	return visible, nil
}

func (s *ratingService) UserReviews(ctx context.Context, ratedUserID int32) ([]domain.Review, error) {
	return s.reviewRepo.ListRevealedByRatedUser(ctx, ratedUserID)
}

func (s *ratingService) Reputation(ctx context.Context, userID int32) (*domain.Reputation, error) {
	return s.reviewRepo.GetReputation(ctx, userID)
}

func (s *ratingService) EligibleContracts(ctx context.Context, userID int32) ([]domain.EligibleContract, error) {
	contracts, err := s.contractRepo.ListExpiredByParty(ctx, userID)
	if err != nil {
		return nil, err
	}

	eligible := make([]domain.EligibleContract, 0, len(contracts))
	for _, c := range contracts {
		listing, err := s.listingRepo.GetByID(ctx, c.ListingID)
		if err != nil {
			logger.Error("Failed to load listing for eligible contract", "contract_id", c.ID, "error", err)
			continue
		}

		otherPartyID := listing.OwnerID
		if userID == listing.OwnerID {
			otherPartyID = c.UserID
		}
		otherParty, err := s.userRepo.GetByID(ctx, otherPartyID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}

		entry := domain.EligibleContract{Contract: c, OtherParty: otherParty}
		if review, err := s.reviewRepo.GetByContractAndRater(ctx, c.ID, userID); err == nil && review != nil {
			entry.HasRated = true
			entry.UserReview = review
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		eligible = append(eligible, entry)
	}
	return eligible, nil
}
