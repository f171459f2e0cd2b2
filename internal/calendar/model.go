package calendar

import (
	"time"

	"arena/internal/availability"
	"arena/internal/booking"
	"arena/internal/resource"
)

// Row is one timeline line of the day view: the whole resource or a part.
type Row struct {
	PartID        *int                          `json:"part_id"`
	ParentID      *int                          `json:"parent_id,omitempty"`
	Label         string                        `json:"label"`
	Depth         int                           `json:"depth"`
	Bookings      []booking.Booking             `json:"bookings"`
	Blocked       []availability.BlockedSlot    `json:"blocked"`
	BookingLayout []availability.PositionedItem `json:"booking_layout"`
	BlockedLayout []availability.PositionedItem `json:"blocked_layout"`
}

type DayView struct {
	Resource *resource.Resource `json:"resource"`
	Date     string             `json:"date"`
	Start    time.Time          `json:"start"`
	End      time.Time          `json:"end"`
	Rows     []Row              `json:"rows"`
}

type PartSlots struct {
	PartID *int                       `json:"part_id"`
	Label  string                     `json:"label"`
	Slots  []availability.BlockedSlot `json:"slots"`
}

type BlockedView struct {
	ResourceID int         `json:"resource_id"`
	From       time.Time   `json:"from"`
	To         time.Time   `json:"to"`
	Parts      []PartSlots `json:"parts"`
}

type AvailabilityResult struct {
	Available bool                   `json:"available"`
	Reason    string                 `json:"reason,omitempty"`
	Conflicts []availability.Booking `json:"conflicts"`
}

// AvailabilityQuery asks whether a part, or the whole resource when PartID is
// nil, is free during [Start, End).
type AvailabilityQuery struct {
	PartID *int      `form:"part_id" binding:"omitempty,gt=0"`
	Start  time.Time `form:"start" binding:"required"`
	End    time.Time `form:"end" binding:"required,gtfield=Start"`
}
