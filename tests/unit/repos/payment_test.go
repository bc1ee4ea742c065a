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

func TestPaymentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		payment := &domain.Payment{
			RentalRequestID: 5,
			UserID:          1,
			ListingID:       7,
			Amount:          1500,
			Status:          domain.PaymentStatusPending,
			Method:          domain.PaymentMethodWallet,
		}

		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(payment.RentalRequestID, payment.UserID, payment.ListingID, payment.Amount, payment.Status, payment.Method, payment.TransactionID, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		err := repo.Create(ctx, payment)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), payment.ID)
	})
}

func TestPaymentRepository_MarkPaid(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()
	paidAt := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Pending Payment Wins", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments SET status='paid'").
			WithArgs("TXN-1", paidAt, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.MarkPaid(ctx, 3, "TXN-1", paidAt)
		assert.NoError(t, err)
	})

	t.Run("Already Paid Loses The Race", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments SET status='paid'").
			WithArgs("TXN-2", paidAt, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkPaid(ctx, 3, "TXN-2", paidAt)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestPaymentRepository_GetByRequestAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM payments WHERE rental_request_id = \\$1 AND status = \\$2").
			WithArgs(int32(5), domain.PaymentStatusPaid).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		payment, err := repo.GetByRequestAndStatus(ctx, 5, domain.PaymentStatusPaid)
		assert.Nil(t, payment)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
