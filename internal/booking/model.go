package booking

import (
	"time"

	"arena/internal/availability"
)

type Booking struct {
	ID              int                 `db:"id" json:"id"`
	UserID          int                 `db:"user_id" json:"user_id"`
	ResourceID      int                 `db:"resource_id" json:"resource_id"`
	PartID          *int                `db:"part_id" json:"part_id,omitempty"`
	Title           string              `db:"title" json:"title"`
	StartTime       time.Time           `db:"start_time" json:"start_time"`
	EndTime         time.Time           `db:"end_time" json:"end_time"`
	Status          availability.Status `db:"status" json:"status"`
	StatusReason    string              `db:"status_reason" json:"status_reason,omitempty"`
	IsRecurring     bool                `db:"is_recurring" json:"is_recurring"`
	ParentBookingID *int                `db:"parent_booking_id" json:"parent_booking_id,omitempty"`
	CreatedAt       time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at" json:"updated_at"`
}

// Engine converts b into the availability engine's view.
func (b Booking) Engine() availability.Booking {
	return availability.Booking{
		ID:         b.ID,
		ResourceID: b.ResourceID,
		PartID:     b.PartID,
		Start:      b.StartTime,
		End:        b.EndTime,
		Status:     b.Status,
	}
}

// SeriesID is the id of the first occurrence of b's series.
func (b Booking) SeriesID() int {
	if b.ParentBookingID != nil {
		return *b.ParentBookingID
	}
	return b.ID
}

func EngineBookings(bookings []Booking) []availability.Booking {
	out := make([]availability.Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.Engine())
	}
	return out
}

type BookingWithDetails struct {
	Booking
	ResourceName string  `db:"resource_name" json:"resource_name"`
	PartName     *string `db:"part_name" json:"part_name,omitempty"`
	UserName     string  `db:"user_name" json:"user_name"`
	UserEmail    string  `db:"user_email" json:"user_email"`
}

type CreateBookingRequest struct {
	ResourceID    int        `json:"resource_id" binding:"required,gt=0"`
	PartID        *int       `json:"part_id" binding:"omitempty,gt=0"`
	Title         string     `json:"title" binding:"required,max=200"`
	StartTime     time.Time  `json:"start_time" binding:"required"`
	EndTime       time.Time  `json:"end_time" binding:"required,gtfield=StartTime"`
	Recurrence    string     `json:"recurrence" binding:"omitempty,oneof=weekly biweekly monthly"`
	RecurrenceEnd *time.Time `json:"recurrence_end"`
}

type CreateBookingResponse struct {
	Booking     *Booking  `json:"booking"`
	Occurrences int       `json:"occurrences"`
	Series      []Booking `json:"series,omitempty"`
}

// TransitionRequest is the optional body of approve, reject and cancel.
type TransitionRequest struct {
	Reason     string `json:"reason" binding:"max=500"`
	ApplyToAll bool   `json:"apply_to_all"`
}

type TransitionResponse struct {
	Updated []Booking `json:"updated"`
}

type ListFilter struct {
	ResourceID int       `form:"resource_id" binding:"omitempty,gt=0"`
	UserID     int       `form:"user_id" binding:"omitempty,gt=0"`
	Status     string    `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled"`
	From       time.Time `form:"from"`
	To         time.Time `form:"to"`
	Limit      uint64    `form:"limit" binding:"omitempty,max=500"`
}

type DayStat struct {
	Day       time.Time `db:"day" json:"day"`
	Total     int       `db:"total" json:"total"`
	Pending   int       `db:"pending" json:"pending"`
	Approved  int       `db:"approved" json:"approved"`
	Cancelled int       `db:"cancelled" json:"cancelled"`
}

type ResourceStat struct {
	ResourceID   int     `db:"resource_id" json:"resource_id"`
	ResourceName string  `db:"resource_name" json:"resource_name"`
	Total        int     `db:"total" json:"total"`
	Hours        float64 `db:"hours" json:"hours"`
}

type Stats struct {
	From       time.Time      `json:"from"`
	To         time.Time      `json:"to"`
	ByDay      []DayStat      `json:"by_day"`
	ByResource []ResourceStat `json:"by_resource"`
}
