package jobs

import (
	"context"
	"time"

	"rentnest-backend/internal/logger"
)

// ExpireOverdueContracts flips contracts past their end date to expired
// and releases their listings. Idempotent: a second run with the same day
// finds nothing left to do.
func (jr *JobRunner) ExpireOverdueContracts() {
	jr.runWithRecovery("ExpireOverdueContracts", func() {
		ctx := context.Background()

		count, err := jr.services.Contract.ExpireDueContracts(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to expire overdue contracts", "error", err)
			return
		}
		logger.Info("Expired rental contracts", "count", count)
	})
}
