package jobs

import (
	"context"
	"time"

	"rentnest-backend/internal/logger"
)

// RevealEligibleRatings is the safety net for contracts where only one
// party rated: it reveals hidden reviews once the 14-day window after the
// stay has elapsed (dual submissions reveal synchronously on write).
func (jr *JobRunner) RevealEligibleRatings() {
	jr.runWithRecovery("RevealEligibleRatings", func() {
		ctx := context.Background()

		count, err := jr.services.Rating.RevealDueRatings(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to reveal eligible ratings", "error", err)
			return
		}
		logger.Info("Revealed ratings past the reveal window", "count", count)
	})
}
