package calendar

import (
	"context"
	"testing"
	"time"

	"arena/internal/availability"
	"arena/internal/booking"
	"arena/internal/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResources struct {
	mock.Mock
}

func (m *MockResources) LoadHierarchy(ctx context.Context, resourceID int) (*resource.Resource, *availability.Hierarchy, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*resource.Resource), args.Get(1).(*availability.Hierarchy), args.Error(2)
}

type MockBookings struct {
	mock.Mock
}

func (m *MockBookings) ActiveInWindow(ctx context.Context, resourceID int, from, to time.Time) ([]booking.Booking, error) {
	args := m.Called(ctx, resourceID, from, to)
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func intPtr(v int) *int {
	return &v
}

var day = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

func sportsHall() (*resource.Resource, *availability.Hierarchy) {
	res := &resource.Resource{
		ID:                        1,
		Name:                      "Sports hall",
		AllowWholeBooking:         true,
		BlockPartsWhenWholeBooked: true,
		BlockWholeWhenPartBooked:  true,
	}
	parts := []resource.Part{
		{ID: 11, ResourceID: 1, Name: "Court A"},
		{ID: 12, ResourceID: 1, Name: "Court B"},
		{ID: 13, ResourceID: 1, Name: "Court A1", ParentID: intPtr(11)},
	}
	return res, res.Hierarchy(parts)
}

func storedBookings() []booking.Booking {
	return []booking.Booking{
		{ID: 1, ResourceID: 1, Title: "Tournament", StartTime: day.Add(9 * time.Hour), EndTime: day.Add(10 * time.Hour), Status: availability.StatusApproved},
		{ID: 2, ResourceID: 1, PartID: intPtr(11), Title: "Training", StartTime: day.Add(12 * time.Hour), EndTime: day.Add(13 * time.Hour), Status: availability.StatusPending},
	}
}

func newTestService(res *resource.Resource, h *availability.Hierarchy, bookings []booking.Booking) (Service, *MockBookings) {
	resources := new(MockResources)
	resources.On("LoadHierarchy", mock.Anything, res.ID).Return(res, h, nil)
	source := new(MockBookings)
	source.On("ActiveInWindow", mock.Anything, res.ID, mock.Anything, mock.Anything).Return(bookings, nil)
	return NewService(resources, source, time.UTC), source
}

func rowByLabel(t *testing.T, rows []Row, label string) Row {
	t.Helper()
	for _, r := range rows {
		if r.Label == label {
			return r
		}
	}
	t.Fatalf("row %q not found", label)
	return Row{}
}

func TestService_Day(t *testing.T) {
	res, h := sportsHall()
	svc, source := newTestService(res, h, storedBookings())

	view, err := svc.Day(context.Background(), 1, day.Add(15*time.Hour))
	require.NoError(t, err)
	source.AssertCalled(t, "ActiveInWindow", mock.Anything, 1, day, day.AddDate(0, 0, 1))

	assert.Equal(t, "2025-03-12", view.Date)
	require.Len(t, view.Rows, 4)

	labels := make([]string, 0, len(view.Rows))
	for _, r := range view.Rows {
		labels = append(labels, r.Label)
	}
	assert.Equal(t, []string{"Sports hall", "Court A", "Court A1", "Court B"}, labels)
	assert.Equal(t, 2, view.Rows[2].Depth)

	whole := rowByLabel(t, view.Rows, "Sports hall")
	assert.Nil(t, whole.PartID)
	require.Len(t, whole.Bookings, 1)
	require.Len(t, whole.Blocked, 1)
	assert.Equal(t, 2, whole.Blocked[0].BookingID)
	require.Len(t, whole.BookingLayout, 1)
	assert.InDelta(t, 37.5, whole.BookingLayout[0].LeftPercent, 0.001)

	child := rowByLabel(t, view.Rows, "Court A1")
	assert.Empty(t, child.Bookings)
	assert.Len(t, child.Blocked, 2)
	assert.Len(t, child.BlockedLayout, 2)

	sibling := rowByLabel(t, view.Rows, "Court B")
	require.Len(t, sibling.Blocked, 1)
	assert.Equal(t, 1, sibling.Blocked[0].BookingID)
}

func TestService_Day_UnknownResource(t *testing.T) {
	resources := new(MockResources)
	resources.On("LoadHierarchy", mock.Anything, 9).Return(nil, nil, resource.ErrResourceNotFound)

	_, err := NewService(resources, new(MockBookings), time.UTC).Day(context.Background(), 9, day)
	assert.ErrorIs(t, err, resource.ErrResourceNotFound)
}

func TestService_Blocked(t *testing.T) {
	res, h := sportsHall()
	svc, _ := newTestService(res, h, storedBookings())

	_, err := svc.Blocked(context.Background(), 1, day, day)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = svc.Blocked(context.Background(), 1, day, day.AddDate(0, 2, 0))
	assert.ErrorIs(t, err, ErrWindowTooLong)

	view, err := svc.Blocked(context.Background(), 1, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, view.Parts, 4)

	total := 0
	for _, p := range view.Parts {
		total += len(p.Slots)
	}
	assert.Equal(t, 5, total)
}

func TestService_Availability(t *testing.T) {
	tests := []struct {
		name          string
		allowWhole    bool
		query         AvailabilityQuery
		wantAvailable bool
		wantConflicts []int
		wantErr       error
	}{
		{
			name:          "part under a whole booking",
			allowWhole:    true,
			query:         AvailabilityQuery{PartID: intPtr(12), Start: day.Add(9*time.Hour + 30*time.Minute), End: day.Add(10*time.Hour + 30*time.Minute)},
			wantConflicts: []int{1},
		},
		{
			name:          "sibling of a booked part",
			allowWhole:    true,
			query:         AvailabilityQuery{PartID: intPtr(12), Start: day.Add(12 * time.Hour), End: day.Add(13 * time.Hour)},
			wantAvailable: true,
		},
		{
			name:          "whole while a part is booked",
			allowWhole:    true,
			query:         AvailabilityQuery{Start: day.Add(12*time.Hour + 30*time.Minute), End: day.Add(14 * time.Hour)},
			wantConflicts: []int{2},
		},
		{
			name:          "back to back",
			allowWhole:    true,
			query:         AvailabilityQuery{Start: day.Add(10 * time.Hour), End: day.Add(12 * time.Hour)},
			wantAvailable: true,
		},
		{
			name:       "whole booking disabled",
			allowWhole: false,
			query:      AvailabilityQuery{Start: day.Add(15 * time.Hour), End: day.Add(16 * time.Hour)},
		},
		{
			name:       "unknown part",
			allowWhole: true,
			query:      AvailabilityQuery{PartID: intPtr(99), Start: day.Add(15 * time.Hour), End: day.Add(16 * time.Hour)},
			wantErr:    ErrPartNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, h := sportsHall()
			res.AllowWholeBooking = tt.allowWhole
			svc, _ := newTestService(res, h, storedBookings())

			result, err := svc.Availability(context.Background(), 1, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, result.Available)

			ids := []int{}
			for _, c := range result.Conflicts {
				ids = append(ids, c.ID)
			}
			if tt.wantConflicts == nil {
				tt.wantConflicts = []int{}
			}
			assert.Equal(t, tt.wantConflicts, ids)
		})
	}
}
