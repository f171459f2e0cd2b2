package invoice

import "context"

type Repository interface {
	Create(ctx context.Context, inv *Invoice) (*Invoice, error)
	GetByID(ctx context.Context, id int) (*Invoice, error)
	GetByBooking(ctx context.Context, bookingID int) (*Invoice, error)
	ListByUser(ctx context.Context, userID int) ([]Invoice, error)
	List(ctx context.Context, status string) ([]Invoice, error)
	SetStatus(ctx context.Context, id int, status string) (*Invoice, error)
	CancelUnpaidForBooking(ctx context.Context, bookingID int) (bool, error)
}
