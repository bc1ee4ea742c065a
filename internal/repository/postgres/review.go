package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `id, contract_id, rater_user_id, rated_user_id, rating, comment, status, revealed_at, created_on, updated_on`

func scanReview(row interface{ Scan(...any) error }) (*domain.Review, error) {
	rv := &domain.Review{}
	err := row.Scan(&rv.ID, &rv.ContractID, &rv.RaterUserID, &rv.RatedUserID,
		&rv.Rating, &rv.Comment, &rv.Status, &rv.RevealedAt, &rv.CreatedOn, &rv.UpdatedOn)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return rv, nil
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	query := `INSERT INTO reviews (contract_id, rater_user_id, rated_user_id, rating, comment, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rv.ContractID, rv.RaterUserID, rv.RatedUserID,
		rv.Rating, rv.Comment, rv.Status, time.Now(), time.Now()).Scan(&rv.ID)
}

func (r *reviewRepository) GetByID(ctx context.Context, id int32) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`
	return scanReview(r.db.QueryRowContext(ctx, query, id))
}

func (r *reviewRepository) GetByContractAndRater(ctx context.Context, contractID, raterID int32) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE contract_id = $1 AND rater_user_id = $2`
	return scanReview(r.db.QueryRowContext(ctx, query, contractID, raterID))
}

func (r *reviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	// Only hidden reviews are ever updated; reveal goes through
	// RevealHiddenByContract.
	query := `UPDATE reviews SET rating=$1, comment=$2, updated_on=$3 WHERE id=$4 AND status='hidden'`
	_, err := r.db.ExecContext(ctx, query, rv.Rating, rv.Comment, time.Now(), rv.ID)
	return err
}

func (r *reviewRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM reviews WHERE id=$1 AND status='hidden'`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *reviewRepository) ListHiddenByContract(ctx context.Context, contractID int32) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE contract_id = $1 AND status = 'hidden' ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (r *reviewRepository) ListByContract(ctx context.Context, contractID int32) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE contract_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (r *reviewRepository) RevealHiddenByContract(ctx context.Context, contractID int32, revealedAt time.Time) (int32, error) {
	query := `UPDATE reviews SET status='revealed', revealed_at=$1, updated_on=$1 WHERE contract_id=$2 AND status='hidden'`
	res, err := r.db.ExecContext(ctx, query, revealedAt, contractID)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	return int32(affected), err
}

func (r *reviewRepository) ListContractIDsWithHidden(ctx context.Context) ([]int32, error) {
	query := `SELECT DISTINCT contract_id FROM reviews WHERE status = 'hidden' ORDER BY contract_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *reviewRepository) ListRevealedByRatedUser(ctx context.Context, ratedUserID int32) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews
	          WHERE rated_user_id = $1 AND status = 'revealed' ORDER BY revealed_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ratedUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReviews(rows)
}

func (r *reviewRepository) GetReputation(ctx context.Context, ratedUserID int32) (*domain.Reputation, error) {
	rep := &domain.Reputation{UserID: ratedUserID}
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE rated_user_id = $1 AND status = 'revealed'`
	err := r.db.QueryRowContext(ctx, query, ratedUserID).Scan(&rep.AverageRating, &rep.TotalReviews)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

func collectReviews(rows *sql.Rows) ([]domain.Review, error) {
	var reviews []domain.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *rv)
	}
	return reviews, rows.Err()
}
