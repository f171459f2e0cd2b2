package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arena/internal/availability"
	"arena/internal/booking"
	"arena/internal/logger"
	"arena/internal/metrics"
	"arena/internal/resource"
)

const maxBlockedWindow = 31 * 24 * time.Hour

var (
	ErrInvalidWindow = errors.New("end must be after start")
	ErrWindowTooLong = errors.New("window must not exceed 31 days")
	ErrPartNotFound  = errors.New("part does not belong to the resource")
)

type ResourceLoader interface {
	LoadHierarchy(ctx context.Context, resourceID int) (*resource.Resource, *availability.Hierarchy, error)
}

type BookingSource interface {
	ActiveInWindow(ctx context.Context, resourceID int, from, to time.Time) ([]booking.Booking, error)
}

type Service interface {
	Day(ctx context.Context, resourceID int, day time.Time) (*DayView, error)
	Blocked(ctx context.Context, resourceID int, from, to time.Time) (*BlockedView, error)
	Availability(ctx context.Context, resourceID int, q AvailabilityQuery) (*AvailabilityResult, error)
}

type service struct {
	resources ResourceLoader
	bookings  BookingSource
	loc       *time.Location
	layout    availability.LayoutOptions
}

func NewService(resources ResourceLoader, bookings BookingSource, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		resources: resources,
		bookings:  bookings,
		loc:       loc,
		layout:    availability.DefaultLayoutOptions(),
	}
}

type line struct {
	part  *availability.Part
	depth int
}

// lines orders the timeline: the whole resource first, then every part
// followed by its descendants. Parts caught in a parent cycle have no root and
// are appended at the top level.
func lines(h *availability.Hierarchy) []line {
	out := []line{{depth: 0}}
	seen := make(map[int]bool)

	var walk func(p availability.Part, depth int)
	walk = func(p availability.Part, depth int) {
		if seen[p.ID] {
			return
		}
		seen[p.ID] = true
		out = append(out, line{part: &p, depth: depth})
		for _, c := range h.Children(p.ID) {
			walk(c, depth+1)
		}
	}
	for _, p := range h.Parts() {
		if _, ok := h.Parent(p.ID); !ok {
			walk(p, 1)
		}
	}
	for _, p := range h.Parts() {
		walk(p, 1)
	}
	return out
}

func (l line) key() int {
	if l.part == nil {
		return availability.WholeResource
	}
	return l.part.ID
}

func (l line) label(res *resource.Resource) string {
	if l.part == nil {
		return res.Name
	}
	return l.part.Name
}

func (l line) ref() *int {
	if l.part == nil {
		return nil
	}
	id := l.part.ID
	return &id
}

func bookingKey(b booking.Booking) int {
	if b.PartID == nil {
		return availability.WholeResource
	}
	return *b.PartID
}

func (s *service) load(ctx context.Context, resourceID int, from, to time.Time) (*resource.Resource, *availability.Hierarchy, []booking.Booking, error) {
	res, h, err := s.resources.LoadHierarchy(ctx, resourceID)
	if err != nil {
		return nil, nil, nil, err
	}

	bookings, err := s.bookings.ActiveInWindow(ctx, resourceID, from, to)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load bookings for resource %d: %w", resourceID, err)
	}
	return res, h, bookings, nil
}

func (s *service) Day(ctx context.Context, resourceID int, day time.Time) (*DayView, error) {
	began := time.Now()
	dayStart, dayEnd := availability.DayBounds(day.In(s.loc))

	res, h, bookings, err := s.load(ctx, resourceID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := availability.SlotsForDay(
		availability.DeriveBlocks(res.Config(), h, booking.EngineBookings(bookings)),
		dayStart,
	)
	byPart := availability.SlotsByPart(slots)

	byTarget := make(map[int][]booking.Booking)
	for _, b := range bookings {
		byTarget[bookingKey(b)] = append(byTarget[bookingKey(b)], b)
	}

	view := &DayView{
		Resource: res,
		Date:     dayStart.Format(time.DateOnly),
		Start:    dayStart,
		End:      dayEnd,
	}
	for _, l := range lines(h) {
		row := Row{
			PartID:   l.ref(),
			Label:    l.label(res),
			Depth:    l.depth,
			Bookings: byTarget[l.key()],
			Blocked:  byPart[l.key()],
		}
		if l.part != nil {
			row.ParentID = l.part.ParentID
		}
		if row.Bookings == nil {
			row.Bookings = []booking.Booking{}
		}
		if row.Blocked == nil {
			row.Blocked = []availability.BlockedSlot{}
		}
		row.BookingLayout = availability.LayoutDay(dayStart, availability.BookingItems(booking.EngineBookings(row.Bookings)), s.layout)
		row.BlockedLayout = availability.LayoutDay(dayStart, availability.SlotItems(row.Blocked), s.layout)
		view.Rows = append(view.Rows, row)
	}

	metrics.RecordBlockedSlots(len(slots))
	metrics.RecordCalendarRender("day", time.Since(began).Seconds())
	logger.Debug("Calendar day rendered",
		"resource_id", resourceID,
		"date", view.Date,
		"bookings", len(bookings),
		"blocked", len(slots),
	)
	return view, nil
}

func (s *service) Blocked(ctx context.Context, resourceID int, from, to time.Time) (*BlockedView, error) {
	if !to.After(from) {
		return nil, ErrInvalidWindow
	}
	if to.Sub(from) > maxBlockedWindow {
		return nil, ErrWindowTooLong
	}

	began := time.Now()
	res, h, bookings, err := s.load(ctx, resourceID, from, to)
	if err != nil {
		return nil, err
	}

	slots := availability.DeriveBlocks(res.Config(), h, booking.EngineBookings(bookings))
	byPart := availability.SlotsByPart(slots)

	view := &BlockedView{ResourceID: resourceID, From: from, To: to, Parts: []PartSlots{}}
	for _, l := range lines(h) {
		if len(byPart[l.key()]) == 0 {
			continue
		}
		view.Parts = append(view.Parts, PartSlots{
			PartID: l.ref(),
			Label:  l.label(res),
			Slots:  byPart[l.key()],
		})
	}

	metrics.RecordBlockedSlots(len(slots))
	metrics.RecordCalendarRender("blocked", time.Since(began).Seconds())
	return view, nil
}

// Availability is advisory: the booking transaction repeats the check under
// a lock.
func (s *service) Availability(ctx context.Context, resourceID int, q AvailabilityQuery) (*AvailabilityResult, error) {
	if !q.End.After(q.Start) {
		return nil, ErrInvalidWindow
	}

	res, h, bookings, err := s.load(ctx, resourceID, q.Start, q.End)
	if err != nil {
		return nil, err
	}
	cfg := res.Config()

	if q.PartID != nil {
		if _, ok := h.Part(*q.PartID); !ok {
			return nil, ErrPartNotFound
		}
	}

	result := &AvailabilityResult{Conflicts: []availability.Booking{}}
	if q.PartID == nil && !cfg.AllowWholeBooking {
		result.Reason = "whole resource booking is disabled"
		return result, nil
	}

	candidate := availability.Booking{
		ResourceID: resourceID,
		PartID:     q.PartID,
		Start:      q.Start,
		End:        q.End,
		Status:     availability.StatusPending,
	}
	if hits := availability.Conflicts(cfg, h, booking.EngineBookings(bookings), candidate); len(hits) > 0 {
		result.Conflicts = hits
		result.Reason = "time overlaps existing or blocking bookings"
		return result, nil
	}

	result.Available = true
	return result, nil
}
