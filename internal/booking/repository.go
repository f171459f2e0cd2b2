package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"arena/internal/availability"
	"arena/internal/db"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("time is not available")
)

// ConflictError names the stored bookings an occurrence collided with.
type ConflictError struct {
	Start      time.Time
	BookingIDs []int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("occurrence at %s conflicts with bookings %v", e.Start.Format(time.RFC3339), e.BookingIDs)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

const bookingColumns = `id, user_id, resource_id, part_id, title, start_time, end_time, status, status_reason,
		is_recurring, parent_booking_id, created_at, updated_at`

const defaultListLimit = 200

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func seriesWindow(series []Booking) (time.Time, time.Time) {
	from, to := series[0].StartTime, series[0].EndTime
	for _, b := range series[1:] {
		if b.StartTime.Before(from) {
			from = b.StartTime
		}
		if b.EndTime.After(to) {
			to = b.EndTime
		}
	}
	return from, to
}

func (r *repository) CreateSeries(ctx context.Context, cfg availability.Config, h *availability.Hierarchy, series []Booking) ([]Booking, error) {
	if len(series) == 0 {
		return nil, nil
	}
	resourceID := series[0].ResourceID
	from, to := seriesWindow(series)

	insert := `
		INSERT INTO bookings (user_id, resource_id, part_id, title, start_time, end_time, status, is_recurring, parent_booking_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + bookingColumns

	created := make([]Booking, 0, len(series))
	err := db.WithTx(ctx, r.db, db.Serializable, func(tx *sqlx.Tx) error {
		var locked int
		err := tx.GetContext(ctx, &locked, `SELECT id FROM resources WHERE id = $1 FOR UPDATE`, resourceID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrResourceNotFound
			}
			return err
		}

		var stored []Booking
		err = tx.SelectContext(ctx, &stored, `SELECT `+bookingColumns+` FROM bookings
			WHERE resource_id = $1 AND status IN ('pending', 'approved') AND start_time < $3 AND end_time > $2`,
			resourceID, from, to)
		if err != nil {
			return err
		}
		existing := EngineBookings(stored)

		var parentID *int
		for _, b := range series {
			if hits := availability.Conflicts(cfg, h, existing, b.Engine()); len(hits) > 0 {
				ids := make([]int, 0, len(hits))
				for _, hit := range hits {
					ids = append(ids, hit.ID)
				}
				return &ConflictError{Start: b.StartTime, BookingIDs: ids}
			}

			var row Booking
			err := tx.GetContext(ctx, &row, insert,
				b.UserID,
				b.ResourceID,
				b.PartID,
				b.Title,
				b.StartTime,
				b.EndTime,
				b.Status,
				b.IsRecurring,
				parentID,
			)
			if err != nil {
				return err
			}
			if parentID == nil {
				id := row.ID
				parentID = &id
			}

			created = append(created, row)
			existing = append(existing, row.Engine())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) GetSeries(ctx context.Context, seriesID int) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE id = $1 OR parent_booking_id = $1
		ORDER BY start_time ASC`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, seriesID); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]BookingWithDetails, error) {
	q := psql.Select(
		"b.id", "b.user_id", "b.resource_id", "b.part_id", "b.title", "b.start_time", "b.end_time",
		"b.status", "b.status_reason", "b.is_recurring", "b.parent_booking_id", "b.created_at", "b.updated_at",
		"r.name AS resource_name",
		"p.name AS part_name",
		"u.name AS user_name",
		"u.email AS user_email",
	).
		From("bookings b").
		Join("resources r ON r.id = b.resource_id").
		Join("users u ON u.id = b.user_id").
		LeftJoin("resource_parts p ON p.id = b.part_id")

	if filter.ResourceID > 0 {
		q = q.Where(squirrel.Eq{"b.resource_id": filter.ResourceID})
	}
	if filter.UserID > 0 {
		q = q.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.Status != "" {
		q = q.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if !filter.From.IsZero() {
		q = q.Where(squirrel.Gt{"b.end_time": filter.From})
	}
	if !filter.To.IsZero() {
		q = q.Where(squirrel.Lt{"b.start_time": filter.To})
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	query, args, err := q.OrderBy("b.start_time ASC", "b.id ASC").Limit(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking list query: %w", err)
	}

	bookings := []BookingWithDetails{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ActiveInWindow(ctx context.Context, resourceID int, from, to time.Time) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE resource_id = $1 AND status IN ('pending', 'approved') AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC, id ASC`

	bookings := []Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, resourceID, from, to); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus moves the bookings among ids that are currently in one of the
// from statuses and returns the rows it changed.
func (r *repository) UpdateStatus(ctx context.Context, ids []int, from []availability.Status, to availability.Status, reason string) ([]Booking, error) {
	if len(ids) == 0 {
		return []Booking{}, nil
	}

	query, args, err := psql.Update("bookings").
		Set("status", to).
		Set("status_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"status": from}).
		Suffix("RETURNING " + bookingColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking status update: %w", err)
	}

	updated := []Booking{}
	if err := r.db.SelectContext(ctx, &updated, query, args...); err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *repository) StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error) {
	query := `
		SELECT date_trunc('day', start_time) AS day,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'approved') AS approved,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled
		FROM bookings
		WHERE start_time >= $1 AND start_time < $2
		GROUP BY day
		ORDER BY day ASC
	`

	stats := []DayStat{}
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *repository) StatsByResource(ctx context.Context, from, to time.Time) ([]ResourceStat, error) {
	query := `
		SELECT r.id AS resource_id, r.name AS resource_name,
			COUNT(b.id) AS total,
			COALESCE(SUM(EXTRACT(EPOCH FROM (b.end_time - b.start_time))) / 3600, 0) AS hours
		FROM resources r
		LEFT JOIN bookings b ON b.resource_id = r.id
			AND b.status IN ('pending', 'approved')
			AND b.start_time >= $1 AND b.start_time < $2
		GROUP BY r.id, r.name
		ORDER BY total DESC, r.name ASC
	`

	stats := []ResourceStat{}
	if err := r.db.SelectContext(ctx, &stats, query, from, to); err != nil {
		return nil, err
	}
	return stats, nil
}
