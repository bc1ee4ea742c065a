package repos

import (
	"context"
	"testing"
	"time"

	"rentnest-backend/internal/domain"
	"rentnest-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestReviewRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		review := &domain.Review{
			ContractID:  4,
			RaterUserID: 1,
			RatedUserID: 10,
			Rating:      5,
			Comment:     "great landlord",
			Status:      domain.ReviewStatusHidden,
		}

		mock.ExpectQuery("INSERT INTO reviews").
			WithArgs(review.ContractID, review.RaterUserID, review.RatedUserID, review.Rating, review.Comment, review.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, review)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), review.ID)
	})
}

func TestReviewRepository_GetByContractAndRater(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "contract_id", "rater_user_id", "rated_user_id", "rating", "comment", "status", "revealed_at", "created_on", "updated_on"}).
			AddRow(1, 4, 1, 10, 5, "great landlord", "hidden", nil, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM reviews WHERE contract_id = \\$1 AND rater_user_id = \\$2").
			WithArgs(int32(4), int32(1)).
			WillReturnRows(rows)

		review, err := repo.GetByContractAndRater(ctx, 4, 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.ReviewStatusHidden, review.Status)
		assert.Nil(t, review.RevealedAt)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reviews WHERE contract_id = \\$1 AND rater_user_id = \\$2").
			WithArgs(int32(4), int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		review, err := repo.GetByContractAndRater(ctx, 4, 99)
		assert.Nil(t, review)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestReviewRepository_RevealHiddenByContract(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()
	revealedAt := time.Date(2025, 3, 14, 0, 30, 0, 0, time.UTC)

	t.Run("Reveals Both Sides", func(t *testing.T) {
		mock.ExpectExec("UPDATE reviews SET status='revealed'").
			WithArgs(revealedAt, int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		count, err := repo.RevealHiddenByContract(ctx, 4, revealedAt)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), count)
	})

	t.Run("Already Revealed Is A Noop", func(t *testing.T) {
		mock.ExpectExec("UPDATE reviews SET status='revealed'").
			WithArgs(revealedAt, int32(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		count, err := repo.RevealHiddenByContract(ctx, 4, revealedAt)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), count)
	})
}

func TestReviewRepository_GetReputation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReviewRepository(db)
	ctx := context.Background()

	t.Run("Averages Revealed Reviews", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(AVG\\(rating\\), 0\\), COUNT\\(\\*\\) FROM reviews").
			WithArgs(int32(10)).
			WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))

		rep, err := repo.GetReputation(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, 4.5, rep.AverageRating)
		assert.Equal(t, int32(2), rep.TotalReviews)
	})

	t.Run("No Reviews Yields Zero", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(AVG\\(rating\\), 0\\), COUNT\\(\\*\\) FROM reviews").
			WithArgs(int32(11)).
			WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(0, 0))

		rep, err := repo.GetReputation(ctx, 11)
		assert.NoError(t, err)
		assert.Equal(t, float64(0), rep.AverageRating)
		assert.Equal(t, int32(0), rep.TotalReviews)
	})
}
