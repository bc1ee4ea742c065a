package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/repository"
)

type rentalRequestRepository struct {
	db *sql.DB
}

func NewRentalRequestRepository(db *sql.DB) repository.RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

func (r *rentalRequestRepository) Create(ctx context.Context, req *domain.RentalRequest) error {
	query := `INSERT INTO rental_requests (user_id, post_id, status, message, duration_type, duration_multiplier, requested_start_date, requested_end_date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, req.UserID, req.ListingID, req.Status, req.Message,
		req.DurationUnit, req.DurationMultiplier, req.RequestedStartDate, req.RequestedEndDate,
		time.Now(), time.Now()).Scan(&req.ID)
}

func (r *rentalRequestRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	req := &domain.RentalRequest{}
	query := `SELECT id, user_id, post_id, status, message, duration_type, duration_multiplier, requested_start_date, requested_end_date, created_on, updated_on
	          FROM rental_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.UserID, &req.ListingID,
		&req.Status, &req.Message, &req.DurationUnit, &req.DurationMultiplier,
		&req.RequestedStartDate, &req.RequestedEndDate, &req.CreatedOn, &req.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return req, nil
}

func (r *rentalRequestRepository) UpdateStatus(ctx context.Context, id int32, status domain.RentalRequestStatus) error {
	query := `UPDATE rental_requests SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}
