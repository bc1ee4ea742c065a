package service

import (
	"context"
	"time"

	"rentnest-backend/internal/repository"
	"rentnest-backend/internal/utils"
)

type availabilityService struct {
	contractRepo repository.ContractRepository
}

func NewAvailabilityService(contractRepo repository.ContractRepository) AvailabilityService {
	return &availabilityService{contractRepo: contractRepo}
}

func (s *availabilityService) HasOverlap(ctx context.Context, listingID int32, start, end time.Time, excludeContractID int32) (bool, error) {
	contracts, err := s.contractRepo.ListNonTerminalByListing(ctx, listingID)
	if err != nil {
		return false, err
	}

	for _, c := range contracts {
		if excludeContractID != 0 && c.ID == excludeContractID {
			continue
		}
		// Closed-interval intersection at date granularity:
		// existing.start <= end AND existing.end >= start.
		if utils.SameOrBefore(c.StartDate, end) && utils.SameOrBefore(start, c.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

func (s *availabilityService) NextAvailableStart(ctx context.Context, listingID int32, today time.Time) (time.Time, error) {
	contracts, err := s.contractRepo.ListNonTerminalByListing(ctx, listingID)
	if err != nil {
		return time.Time{}, err
	}

	today = utils.DateOnly(today)
	var latestEnd time.Time
	for _, c := range contracts {
		if utils.SameOrBefore(today, c.EndDate) && c.EndDate.After(latestEnd) {
			latestEnd = c.EndDate
		}
	}

	if latestEnd.IsZero() {
		return today, nil
	}
	return utils.DateOnly(latestEnd).AddDate(0, 0, 1), nil
}
