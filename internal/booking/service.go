package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"arena/internal/availability"
	"arena/internal/email"
	"arena/internal/invoice"
	"arena/internal/logger"
	"arena/internal/metrics"
	"arena/internal/resource"
	"arena/internal/user"
)

var (
	ErrInvalidInterval      = errors.New("end time must be after start time")
	ErrBookingInPast        = errors.New("cannot book in the past")
	ErrWholeBookingDisabled = errors.New("this resource can only be booked by part")
	ErrPartNotInResource    = errors.New("part does not belong to the resource")
	ErrInvalidRecurrence    = errors.New("recurrence_end must be set after start_time")
	ErrTooManyOccurrences   = errors.New("too many occurrences")
	ErrForbidden            = errors.New("booking belongs to another user")
	ErrInvalidTransition    = errors.New("booking cannot change to this status")
)

// ResourceLoader returns a resource together with its part tree.
type ResourceLoader interface {
	LoadHierarchy(ctx context.Context, resourceID int) (*resource.Resource, *availability.Hierarchy, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id int) (*user.User, error)
}

// Notifier sends booking emails.
type Notifier interface {
	SendBookingReceived(ctx context.Context, to, name string, n email.BookingNotice) error
	SendBookingApproved(ctx context.Context, to, name string, n email.BookingNotice) error
	SendBookingRejected(ctx context.Context, to, name string, n email.BookingNotice) error
	SendBookingCancelled(ctx context.Context, to, name string, n email.BookingNotice) error
	SendInvoiceIssued(ctx context.Context, to, name string, invoiceID int, amountCents int64) error
}

// Invoicer bills approved bookings.
type Invoicer interface {
	IssueForBooking(ctx context.Context, req invoice.IssueRequest) (*invoice.Invoice, error)
	CancelForBooking(ctx context.Context, bookingID int) error
}

type Options struct {
	MaxOccurrences int
	Location       *time.Location
}

type Service interface {
	Create(ctx context.Context, userID int, req CreateBookingRequest) (*CreateBookingResponse, error)
	Get(ctx context.Context, id, userID int, isAdmin bool) (*Booking, error)
	Approve(ctx context.Context, id int, req TransitionRequest) ([]Booking, error)
	Reject(ctx context.Context, id int, req TransitionRequest) ([]Booking, error)
	Cancel(ctx context.Context, id, userID int, isAdmin bool, req TransitionRequest) ([]Booking, error)
	ListMine(ctx context.Context, userID int) ([]BookingWithDetails, error)
	List(ctx context.Context, filter ListFilter) ([]BookingWithDetails, error)
	ActiveInWindow(ctx context.Context, resourceID int, from, to time.Time) ([]Booking, error)
	Stats(ctx context.Context, from, to time.Time) (*Stats, error)
}

type service struct {
	repo      Repository
	resources ResourceLoader
	users     UserFinder
	notifier  Notifier
	invoices  Invoicer
	opts      Options
	now       func() time.Time
}

func NewService(
	repo Repository,
	resources ResourceLoader,
	users UserFinder,
	notifier Notifier,
	invoices Invoicer,
	opts Options,
) Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.MaxOccurrences <= 0 {
		opts.MaxOccurrences = 52
	}
	return &service{
		repo:      repo,
		resources: resources,
		users:     users,
		notifier:  notifier,
		invoices:  invoices,
		opts:      opts,
		now:       time.Now,
	}
}

func (s *service) loadResource(ctx context.Context, id int) (*resource.Resource, *availability.Hierarchy, error) {
	res, h, err := s.resources.LoadHierarchy(ctx, id)
	if err != nil {
		if errors.Is(err, resource.ErrResourceNotFound) {
			return nil, nil, ErrResourceNotFound
		}
		return nil, nil, err
	}
	return res, h, nil
}

// intervals expands the request into its occurrences in the configured
// location so recurring bookings keep their wall-clock time across DST.
func (s *service) intervals(req CreateBookingRequest) ([]availability.Interval, error) {
	start := req.StartTime.In(s.opts.Location)
	end := req.EndTime.In(s.opts.Location)

	if req.Recurrence == "" {
		return []availability.Interval{{Start: start, End: end}}, nil
	}

	cadence, err := availability.ParseCadence(req.Recurrence)
	if err != nil {
		return nil, err
	}
	if req.RecurrenceEnd == nil || req.RecurrenceEnd.Before(start) {
		return nil, ErrInvalidRecurrence
	}

	var out []availability.Interval
	for iv := range availability.Intervals(start, end, cadence, req.RecurrenceEnd.In(s.opts.Location)) {
		if len(out) == s.opts.MaxOccurrences {
			return nil, fmt.Errorf("%w: more than %d", ErrTooManyOccurrences, s.opts.MaxOccurrences)
		}
		out = append(out, iv)
	}
	if len(out) == 0 {
		return nil, ErrInvalidRecurrence
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, userID int, req CreateBookingRequest) (*CreateBookingResponse, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidInterval
	}
	if req.StartTime.Before(s.now()) {
		return nil, ErrBookingInPast
	}

	res, h, err := s.loadResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	cfg := res.Config()

	if req.PartID == nil && !cfg.AllowWholeBooking {
		return nil, ErrWholeBookingDisabled
	}
	if req.PartID != nil {
		if _, ok := h.Part(*req.PartID); !ok {
			return nil, ErrPartNotInResource
		}
	}

	intervals, err := s.intervals(req)
	if err != nil {
		return nil, err
	}

	status := availability.StatusApproved
	if res.RequiresApproval {
		status = availability.StatusPending
	}

	recurring := len(intervals) > 1
	series := make([]Booking, 0, len(intervals))
	for _, iv := range intervals {
		series = append(series, Booking{
			UserID:      userID,
			ResourceID:  res.ID,
			PartID:      req.PartID,
			Title:       strings.TrimSpace(req.Title),
			StartTime:   iv.Start,
			EndTime:     iv.End,
			Status:      status,
			IsRecurring: recurring,
		})
	}

	created, err := s.repo.CreateSeries(ctx, cfg, h, series)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			metrics.RecordBookingConflict()
			logger.Info("Booking rejected by conflict check", "resource_id", res.ID, "user_id", userID, "error", err)
		}
		return nil, err
	}

	metrics.RecordBooking(string(status), recurring)
	logger.Info("Booking created",
		"booking_id", created[0].ID,
		"resource_id", res.ID,
		"user_id", userID,
		"status", status,
		"occurrences", len(created),
	)

	notice := s.notice(res, h, created)
	if status == availability.StatusApproved {
		s.issueInvoices(ctx, res, created)
		s.notify(ctx, userID, notice, s.notifier.SendBookingApproved)
	} else {
		s.notify(ctx, userID, notice, s.notifier.SendBookingReceived)
	}

	resp := &CreateBookingResponse{Booking: &created[0], Occurrences: len(created)}
	if recurring {
		resp.Series = created
	}
	return resp, nil
}

func (s *service) Get(ctx context.Context, id, userID int, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *service) Approve(ctx context.Context, id int, req TransitionRequest) ([]Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, b, req, []availability.Status{availability.StatusPending}, availability.StatusApproved)
	if err != nil {
		return nil, err
	}

	res, h, err := s.loadResource(ctx, b.ResourceID)
	if err != nil {
		logger.Error("Failed to load resource after approval", "booking_id", id, "error", err)
		return updated, nil
	}
	s.issueInvoices(ctx, res, updated)
	s.notify(ctx, b.UserID, s.notice(res, h, updated), s.notifier.SendBookingApproved)

	return updated, nil
}

func (s *service) Reject(ctx context.Context, id int, req TransitionRequest) ([]Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.transition(ctx, b, req, []availability.Status{availability.StatusPending}, availability.StatusRejected)
	if err != nil {
		return nil, err
	}

	res, h, err := s.loadResource(ctx, b.ResourceID)
	if err != nil {
		logger.Error("Failed to load resource after rejection", "booking_id", id, "error", err)
		return updated, nil
	}
	notice := s.notice(res, h, updated)
	notice.Reason = req.Reason
	s.notify(ctx, b.UserID, notice, s.notifier.SendBookingRejected)

	return updated, nil
}

func (s *service) Cancel(ctx context.Context, id, userID int, isAdmin bool, req TransitionRequest) ([]Booking, error) {
	b, err := s.Get(ctx, id, userID, isAdmin)
	if err != nil {
		return nil, err
	}

	from := []availability.Status{availability.StatusPending, availability.StatusApproved}
	updated, err := s.transition(ctx, b, req, from, availability.StatusCancelled)
	if err != nil {
		return nil, err
	}

	for _, u := range updated {
		if err := s.invoices.CancelForBooking(ctx, u.ID); err != nil {
			logger.Error("Failed to cancel invoice", "booking_id", u.ID, "error", err)
		}
	}

	res, h, err := s.loadResource(ctx, b.ResourceID)
	if err != nil {
		logger.Error("Failed to load resource after cancellation", "booking_id", id, "error", err)
		return updated, nil
	}
	notice := s.notice(res, h, updated)
	notice.Reason = req.Reason
	s.notify(ctx, b.UserID, notice, s.notifier.SendBookingCancelled)

	return updated, nil
}

// transition moves b, or with ApplyToAll every occurrence of its series, into
// to. Cancelling a series leaves occurrences that already ended untouched.
func (s *service) transition(ctx context.Context, b *Booking, req TransitionRequest, from []availability.Status, to availability.Status) ([]Booking, error) {
	ids := []int{b.ID}
	if req.ApplyToAll && b.IsRecurring {
		series, err := s.repo.GetSeries(ctx, b.SeriesID())
		if err != nil {
			return nil, err
		}
		now := s.now()
		ids = ids[:0]
		for _, o := range series {
			if to == availability.StatusCancelled && o.ID != b.ID && !o.EndTime.After(now) {
				continue
			}
			ids = append(ids, o.ID)
		}
	}

	updated, err := s.repo.UpdateStatus(ctx, ids, from, to, strings.TrimSpace(req.Reason))
	if err != nil {
		return nil, fmt.Errorf("update booking %d: %w", b.ID, err)
	}
	if len(updated) == 0 {
		return nil, fmt.Errorf("%w: booking %d is %s", ErrInvalidTransition, b.ID, b.Status)
	}

	metrics.RecordBookingTransition(string(to), len(updated))
	logger.Info("Booking status changed",
		"booking_id", b.ID,
		"status", to,
		"count", len(updated),
		"apply_to_all", req.ApplyToAll,
	)
	return updated, nil
}

func (s *service) issueInvoices(ctx context.Context, res *resource.Resource, bookings []Booking) {
	for _, b := range bookings {
		inv, err := s.invoices.IssueForBooking(ctx, invoice.IssueRequest{
			BookingID:         b.ID,
			UserID:            b.UserID,
			PricePerHourCents: res.PricePerHourCents,
			Start:             b.StartTime,
			End:               b.EndTime,
		})
		if err != nil {
			logger.Error("Failed to issue invoice", "booking_id", b.ID, "error", err)
			continue
		}
		if inv == nil {
			continue
		}

		u, err := s.users.FindByID(ctx, b.UserID)
		if err != nil {
			logger.Error("Failed to load user for invoice email", "user_id", b.UserID, "error", err)
			continue
		}
		if err := s.notifier.SendInvoiceIssued(ctx, u.Email, u.Name, inv.ID, inv.AmountCents); err != nil {
			logger.Error("Failed to queue invoice email", "invoice_id", inv.ID, "error", err)
		}
	}
}

func (s *service) notice(res *resource.Resource, h *availability.Hierarchy, bookings []Booking) email.BookingNotice {
	first := bookings[0]
	n := email.BookingNotice{
		ResourceName: res.Name,
		Title:        first.Title,
		Start:        first.StartTime.In(s.opts.Location),
		End:          first.EndTime.In(s.opts.Location),
		Occurrences:  len(bookings),
	}
	if first.PartID != nil {
		if p, ok := h.Part(*first.PartID); ok {
			n.PartName = p.Name
		}
	}
	return n
}

func (s *service) notify(ctx context.Context, userID int, n email.BookingNotice, send func(context.Context, string, string, email.BookingNotice) error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user for booking email", "user_id", userID, "error", err)
		return
	}
	if err := send(ctx, u.Email, u.Name, n); err != nil {
		logger.Error("Failed to queue booking email", "user_id", userID, "error", err)
	}
}

func (s *service) ListMine(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	return s.repo.List(ctx, ListFilter{UserID: userID})
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]BookingWithDetails, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ActiveInWindow(ctx context.Context, resourceID int, from, to time.Time) ([]Booking, error) {
	return s.repo.ActiveInWindow(ctx, resourceID, from, to)
}

func (s *service) Stats(ctx context.Context, from, to time.Time) (*Stats, error) {
	if !to.After(from) {
		return nil, ErrInvalidInterval
	}

	byDay, err := s.repo.StatsByDay(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("stats by day: %w", err)
	}
	byResource, err := s.repo.StatsByResource(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("stats by resource: %w", err)
	}

	return &Stats{From: from, To: to, ByDay: byDay, ByResource: byResource}, nil
}
