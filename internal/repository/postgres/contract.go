package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/repository"

	"github.com/lib/pq"
)

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, rental_request_id, payment_id, user_id, post_id, start_date, end_date, monthly_rent, status, terms, created_on, updated_on`

func scanContract(row interface{ Scan(...any) error }) (*domain.Contract, error) {
	c := &domain.Contract{}
	err := row.Scan(&c.ID, &c.RentalRequestID, &c.PaymentID, &c.UserID, &c.ListingID,
		&c.StartDate, &c.EndDate, &c.MonthlyRent, &c.Status, &c.Terms, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func nonTerminalStatuses() []string {
	statuses := make([]string, len(domain.NonTerminalContractStatuses))
	for i, s := range domain.NonTerminalContractStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	query := `INSERT INTO contracts (rental_request_id, payment_id, user_id, post_id, start_date, end_date, monthly_rent, status, terms, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.RentalRequestID, c.PaymentID, c.UserID, c.ListingID,
		c.StartDate, c.EndDate, c.MonthlyRent, c.Status, c.Terms, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	return scanContract(r.db.QueryRowContext(ctx, query, id))
}

func (r *contractRepository) GetByPaymentID(ctx context.Context, paymentID int32) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE payment_id = $1`
	return scanContract(r.db.QueryRowContext(ctx, query, paymentID))
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id int32, status domain.ContractStatus) error {
	query := `UPDATE contracts SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *contractRepository) ListNonTerminalByListing(ctx context.Context, listingID int32) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts
	          WHERE post_id = $1 AND status = ANY($2) ORDER BY end_date DESC`
	rows, err := r.db.QueryContext(ctx, query, listingID, pq.Array(nonTerminalStatuses()))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContracts(rows)
}

func (r *contractRepository) ListDueForExpiry(ctx context.Context, asOf time.Time) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts
	          WHERE status = ANY($1) AND end_date < $2 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(nonTerminalStatuses()), asOf.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContracts(rows)
}

func (r *contractRepository) ListExpiredByParty(ctx context.Context, userID int32) ([]domain.Contract, error) {
	// A user is a party either as the renter on the contract or as the
	// owner of the listing.
	query := `SELECT c.id, c.rental_request_id, c.payment_id, c.user_id, c.post_id, c.start_date, c.end_date, c.monthly_rent, c.status, c.terms, c.created_on, c.updated_on
	          FROM contracts c JOIN posts p ON p.id = c.post_id
	          WHERE c.status = 'expired' AND (c.user_id = $1 OR p.user_id = $1)
	          ORDER BY c.end_date DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContracts(rows)
}

func collectContracts(rows *sql.Rows) ([]domain.Contract, error) {
	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}
