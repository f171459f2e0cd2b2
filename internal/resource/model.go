package resource

import (
	"time"

	"arena/internal/availability"
)

type Resource struct {
	ID                        int       `db:"id" json:"id"`
	Name                      string    `db:"name" json:"name"`
	Description               string    `db:"description" json:"description"`
	Color                     string    `db:"color" json:"color"`
	AllowWholeBooking         bool      `db:"allow_whole_booking" json:"allow_whole_booking"`
	BlockPartsWhenWholeBooked bool      `db:"block_parts_when_whole_booked" json:"block_parts_when_whole_booked"`
	BlockWholeWhenPartBooked  bool      `db:"block_whole_when_part_booked" json:"block_whole_when_part_booked"`
	RequiresApproval          bool      `db:"requires_approval" json:"requires_approval"`
	PricePerHourCents         int64     `db:"price_per_hour_cents" json:"price_per_hour_cents"`
	CreatedAt                 time.Time `db:"created_at" json:"created_at"`
}

// Config returns the booking rules the availability engine works with.
func (r *Resource) Config() availability.Config {
	return availability.Config{
		AllowWholeBooking:         r.AllowWholeBooking,
		BlockPartsWhenWholeBooked: r.BlockPartsWhenWholeBooked,
		BlockWholeWhenPartBooked:  r.BlockWholeWhenPartBooked,
	}
}

type Part struct {
	ID         int       `db:"id" json:"id"`
	ResourceID int       `db:"resource_id" json:"resource_id"`
	Name       string    `db:"name" json:"name"`
	ParentID   *int      `db:"parent_id" json:"parent_id,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Hierarchy builds the engine view over the given parts of r.
func (r *Resource) Hierarchy(parts []Part) *availability.Hierarchy {
	out := make([]availability.Part, 0, len(parts))
	for _, p := range parts {
		out = append(out, availability.Part{
			ID:         p.ID,
			ResourceID: p.ResourceID,
			Name:       p.Name,
			ParentID:   p.ParentID,
		})
	}
	return availability.NewHierarchy(r.ID, out)
}

// ResourceWithParts is the detail view of a resource.
type ResourceWithParts struct {
	Resource
	Parts []Part `json:"parts"`
}

type CreateResourceRequest struct {
	Name                      string `json:"name" binding:"required,max=120"`
	Description               string `json:"description" binding:"max=2000"`
	Color                     string `json:"color" binding:"omitempty,hexcolor"`
	AllowWholeBooking         *bool  `json:"allow_whole_booking"`
	BlockPartsWhenWholeBooked *bool  `json:"block_parts_when_whole_booked"`
	BlockWholeWhenPartBooked  *bool  `json:"block_whole_when_part_booked"`
	RequiresApproval          *bool  `json:"requires_approval"`
	PricePerHourCents         int64  `json:"price_per_hour_cents" binding:"gte=0"`
}

// UpdateRulesRequest changes only the fields that are present.
type UpdateRulesRequest struct {
	AllowWholeBooking         *bool  `json:"allow_whole_booking"`
	BlockPartsWhenWholeBooked *bool  `json:"block_parts_when_whole_booked"`
	BlockWholeWhenPartBooked  *bool  `json:"block_whole_when_part_booked"`
	RequiresApproval          *bool  `json:"requires_approval"`
	PricePerHourCents         *int64 `json:"price_per_hour_cents" binding:"omitempty,gte=0"`
}

type CreatePartRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	ParentID *int   `json:"parent_id"`
}

const defaultColor = "#3b82f6"
