package booking

import (
	"context"
	"time"

	"arena/internal/availability"
)

type Repository interface {
	// CreateSeries inserts all occurrences atomically after re-checking
	// them against the bookings already stored for the resource.
	CreateSeries(ctx context.Context, cfg availability.Config, h *availability.Hierarchy, series []Booking) ([]Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	GetSeries(ctx context.Context, seriesID int) ([]Booking, error)
	List(ctx context.Context, filter ListFilter) ([]BookingWithDetails, error)
	ActiveInWindow(ctx context.Context, resourceID int, from, to time.Time) ([]Booking, error)
	UpdateStatus(ctx context.Context, ids []int, from []availability.Status, to availability.Status, reason string) ([]Booking, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error)
	StatsByResource(ctx context.Context, from, to time.Time) ([]ResourceStat, error)
}
