package resource

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrPartNotDeleted = errors.New("part not found")
	// ErrPartInUse is returned when bookings still reference the part.
	ErrPartInUse = errors.New("part has bookings")
)

const foreignKeyViolation = "23503"

const resourceColumns = `id, name, description, color, allow_whole_booking, block_parts_when_whole_booked,
		block_whole_when_part_booked, requires_approval, price_per_hour_cents, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateResource(ctx context.Context, res *Resource) (*Resource, error) {
	query := `
		INSERT INTO resources (name, description, color, allow_whole_booking, block_parts_when_whole_booked,
		block_whole_when_part_booked, requires_approval, price_per_hour_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + resourceColumns

	var created Resource
	err := r.db.GetContext(ctx, &created, query,
		res.Name,
		res.Description,
		res.Color,
		res.AllowWholeBooking,
		res.BlockPartsWhenWholeBooked,
		res.BlockWholeWhenPartBooked,
		res.RequiresApproval,
		res.PricePerHourCents,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetAllResources(ctx context.Context) ([]Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources ORDER BY name ASC`

	resources := []Resource{}
	if err := r.db.SelectContext(ctx, &resources, query); err != nil {
		return nil, err
	}

	return resources, nil
}

func (r *repository) GetResourceByID(ctx context.Context, id int) (*Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = $1`

	var res Resource
	if err := r.db.GetContext(ctx, &res, query, id); err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *repository) UpdateResource(ctx context.Context, res *Resource) (*Resource, error) {
	query := `
		UPDATE resources
		SET allow_whole_booking = $1, block_parts_when_whole_booked = $2, block_whole_when_part_booked = $3,
		requires_approval = $4, price_per_hour_cents = $5
		WHERE id = $6
		RETURNING ` + resourceColumns

	var updated Resource
	err := r.db.GetContext(ctx, &updated, query,
		res.AllowWholeBooking,
		res.BlockPartsWhenWholeBooked,
		res.BlockWholeWhenPartBooked,
		res.RequiresApproval,
		res.PricePerHourCents,
		res.ID,
	)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *repository) CreatePart(ctx context.Context, resourceID int, name string, parentID *int) (*Part, error) {
	query := `
		INSERT INTO resource_parts (resource_id, name, parent_id)
		VALUES ($1, $2, $3)
		RETURNING id, resource_id, name, parent_id, created_at
	`

	var part Part
	if err := r.db.GetContext(ctx, &part, query, resourceID, name, parentID); err != nil {
		return nil, err
	}

	return &part, nil
}

func (r *repository) GetPartsByResource(ctx context.Context, resourceID int) ([]Part, error) {
	query := `
		SELECT id, resource_id, name, parent_id, created_at
		FROM resource_parts
		WHERE resource_id = $1
		ORDER BY id ASC
	`

	parts := []Part{}
	if err := r.db.SelectContext(ctx, &parts, query, resourceID); err != nil {
		return nil, err
	}

	return parts, nil
}

func (r *repository) GetPartByID(ctx context.Context, id int) (*Part, error) {
	query := `SELECT id, resource_id, name, parent_id, created_at FROM resource_parts WHERE id = $1`

	var part Part
	if err := r.db.GetContext(ctx, &part, query, id); err != nil {
		return nil, err
	}

	return &part, nil
}

func (r *repository) CountChildParts(ctx context.Context, partID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM resource_parts WHERE parent_id = $1`, partID)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) DeletePart(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resource_parts WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return ErrPartInUse
		}
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPartNotDeleted
	}

	return nil
}
