package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/repository"
)

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO posts (user_id, title, address, price, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, l.OwnerID, l.Title, l.Address, l.MonthlyRent,
		l.Status, time.Now(), time.Now()).Scan(&l.ID)
}

func (r *listingRepository) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	l := &domain.Listing{}
	query := `SELECT id, user_id, title, address, price, status, created_on, updated_on FROM posts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.OwnerID, &l.Title, &l.Address,
		&l.MonthlyRent, &l.Status, &l.CreatedOn, &l.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return l, nil
}

func (r *listingRepository) UpdateStatus(ctx context.Context, id int32, status domain.ListingStatus) error {
	query := `UPDATE posts SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *listingRepository) UpsertDurationPrice(ctx context.Context, p *domain.DurationPrice) error {
	query := `INSERT INTO post_duration_prices (post_id, duration_type, price)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (post_id, duration_type) DO UPDATE SET price = EXCLUDED.price
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.ListingID, p.Unit, p.Price).Scan(&p.ID)
}

func (r *listingRepository) GetDurationPrice(ctx context.Context, listingID int32, unit domain.DurationUnit) (*domain.DurationPrice, error) {
	p := &domain.DurationPrice{}
	query := `SELECT id, post_id, duration_type, price FROM post_duration_prices WHERE post_id = $1 AND duration_type = $2`
	err := r.db.QueryRowContext(ctx, query, listingID, unit).Scan(&p.ID, &p.ListingID, &p.Unit, &p.Price)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (r *listingRepository) ListDurationPrices(ctx context.Context, listingID int32) ([]domain.DurationPrice, error) {
	query := `SELECT id, post_id, duration_type, price FROM post_duration_prices WHERE post_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prices []domain.DurationPrice
	for rows.Next() {
		var p domain.DurationPrice
		if err := rows.Scan(&p.ID, &p.ListingID, &p.Unit, &p.Price); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}
