package postgres

import (
	"database/sql"
	"errors"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ListingRepository
	repository.RentalRequestRepository
	repository.PaymentRepository
	repository.ContractRepository
	repository.ReviewRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		ListingRepository:       NewListingRepository(db),
		RentalRequestRepository: NewRentalRequestRepository(db),
		PaymentRepository:       NewPaymentRepository(db),
		ContractRepository:      NewContractRepository(db),
		ReviewRepository:        NewReviewRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
	}
}

// mapNotFound converts sql.ErrNoRows into the shared domain sentinel so
// services and handlers can test with errors.Is.
func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
