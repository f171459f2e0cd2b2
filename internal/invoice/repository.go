package invoice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrInvalidTransition = errors.New("only unpaid invoices can change status")
)

const invoiceColumns = `id, booking_id, user_id, amount_cents, currency, status, issued_at, paid_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts the invoice, returning the existing one when the booking
// was already invoiced.
func (r *repository) Create(ctx context.Context, inv *Invoice) (*Invoice, error) {
	query := `
		INSERT INTO invoices (booking_id, user_id, amount_cents, currency, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (booking_id) DO NOTHING
		RETURNING ` + invoiceColumns

	var created Invoice
	err := r.db.GetContext(ctx, &created, query, inv.BookingID, inv.UserID, inv.AmountCents, inv.Currency, inv.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return r.GetByBooking(ctx, inv.BookingID)
	}
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Invoice, error) {
	var inv Invoice
	err := r.db.GetContext(ctx, &inv, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repository) GetByBooking(ctx context.Context, bookingID int) (*Invoice, error) {
	var inv Invoice
	err := r.db.GetContext(ctx, &inv, `SELECT `+invoiceColumns+` FROM invoices WHERE booking_id = $1`, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Invoice, error) {
	invoices := []Invoice{}
	err := r.db.SelectContext(ctx, &invoices, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE user_id = $1
		ORDER BY issued_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *repository) List(ctx context.Context, status string) ([]Invoice, error) {
	invoices := []Invoice{}
	err := r.db.SelectContext(ctx, &invoices, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE ($1 = '' OR status = $1)
		ORDER BY issued_at DESC
	`, status)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// SetStatus moves an unpaid invoice to status under a row lock.
func (r *repository) SetStatus(ctx context.Context, id int, status string) (*Invoice, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current Invoice
	err = tx.QueryRowxContext(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`,
		id,
	).StructScan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	if current.Status != StatusUnpaid {
		return nil, ErrInvalidTransition
	}

	var updated Invoice
	err = tx.QueryRowxContext(ctx, `
		UPDATE invoices
		SET status = $1,
		    paid_at = CASE WHEN $1 = 'paid' THEN NOW() ELSE paid_at END,
		    updated_at = NOW()
		WHERE id = $2
		RETURNING `+invoiceColumns,
		status, id,
	).StructScan(&updated)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) CancelUnpaidForBooking(ctx context.Context, bookingID int) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE invoices
		SET status = 'cancelled', updated_at = NOW()
		WHERE booking_id = $1 AND status = 'unpaid'
	`, bookingID)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
