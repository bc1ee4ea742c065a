package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, rental_request_id, user_id, post_id, amount, status, payment_method, transaction_id, paid_at, created_on, updated_on`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(&p.ID, &p.RentalRequestID, &p.UserID, &p.ListingID, &p.Amount,
		&p.Status, &p.Method, &p.TransactionID, &p.PaidAt, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (rental_request_id, user_id, post_id, amount, status, payment_method, transaction_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.RentalRequestID, p.UserID, p.ListingID,
		p.Amount, p.Status, p.Method, p.TransactionID, time.Now(), time.Now()).Scan(&p.ID)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return scanPayment(r.db.QueryRowContext(ctx, query, id))
}

func (r *paymentRepository) GetByRequestAndStatus(ctx context.Context, requestID int32, status domain.PaymentStatus) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE rental_request_id = $1 AND status = $2 LIMIT 1`
	return scanPayment(r.db.QueryRowContext(ctx, query, requestID, status))
}

// MarkPaid is the atomic check-then-act for payment confirmation: the
// status predicate in the UPDATE guarantees at most one confirmation wins
// even when two race for the same payment.
func (r *paymentRepository) MarkPaid(ctx context.Context, id int32, transactionID string, paidAt time.Time) error {
	query := `UPDATE payments SET status='paid', transaction_id=$1, paid_at=$2, updated_on=$2 WHERE id=$3 AND status='pending'`
	res, err := r.db.ExecContext(ctx, query, transactionID, paidAt, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrConflict
	}
	return nil
}
