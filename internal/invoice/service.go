package invoice

import (
	"context"
	"errors"
	"fmt"

	"arena/internal/logger"
	"arena/internal/metrics"
)

var ErrForbidden = errors.New("invoice belongs to another user")

type Service interface {
	IssueForBooking(ctx context.Context, req IssueRequest) (*Invoice, error)
	CancelForBooking(ctx context.Context, bookingID int) error
	Get(ctx context.Context, id, userID int, isAdmin bool) (*Invoice, error)
	ListMine(ctx context.Context, userID int) ([]Invoice, error)
	List(ctx context.Context, status string) ([]Invoice, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Invoice, error)
}

type service struct {
	repo     Repository
	currency string
}

func NewService(repo Repository) Service {
	return &service{repo: repo, currency: defaultCurrency}
}

// IssueForBooking raises an unpaid invoice for an approved booking. Free
// resources produce no invoice.
func (s *service) IssueForBooking(ctx context.Context, req IssueRequest) (*Invoice, error) {
	amount := AmountFor(req.PricePerHourCents, req.Start, req.End)
	if amount == 0 {
		return nil, nil
	}

	inv, err := s.repo.Create(ctx, &Invoice{
		BookingID:   req.BookingID,
		UserID:      req.UserID,
		AmountCents: amount,
		Currency:    s.currency,
		Status:      StatusUnpaid,
	})
	if err != nil {
		return nil, fmt.Errorf("issue invoice for booking %d: %w", req.BookingID, err)
	}

	metrics.RecordInvoice(StatusUnpaid, amount)
	logger.Info("Invoice issued", "invoice_id", inv.ID, "booking_id", req.BookingID, "amount_cents", amount)
	return inv, nil
}

func (s *service) CancelForBooking(ctx context.Context, bookingID int) error {
	cancelled, err := s.repo.CancelUnpaidForBooking(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("cancel invoice for booking %d: %w", bookingID, err)
	}
	if cancelled {
		metrics.RecordInvoice(StatusCancelled, 0)
		logger.Info("Invoice cancelled with booking", "booking_id", bookingID)
	}
	return nil
}

func (s *service) Get(ctx context.Context, id, userID int, isAdmin bool) (*Invoice, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && inv.UserID != userID {
		return nil, ErrForbidden
	}
	return inv, nil
}

func (s *service) ListMine(ctx context.Context, userID int) ([]Invoice, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) List(ctx context.Context, status string) ([]Invoice, error) {
	return s.repo.List(ctx, status)
}

func (s *service) UpdateStatus(ctx context.Context, id int, status string) (*Invoice, error) {
	inv, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.RecordInvoice(status, inv.AmountCents)
	logger.Info("Invoice status changed", "invoice_id", id, "status", status)
	return inv, nil
}
