package calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arena/internal/resource"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Day(ctx context.Context, resourceID int, day time.Time) (*DayView, error) {
	args := m.Called(ctx, resourceID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DayView), args.Error(1)
}

func (m *MockService) Blocked(ctx context.Context, resourceID int, from, to time.Time) (*BlockedView, error) {
	args := m.Called(ctx, resourceID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BlockedView), args.Error(1)
}

func (m *MockService) Availability(ctx context.Context, resourceID int, q AvailabilityQuery) (*AvailabilityResult, error) {
	args := m.Called(ctx, resourceID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AvailabilityResult), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc, time.UTC)

	router := gin.New()
	router.GET("/resources/:resourceID/calendar", h.Day)
	router.GET("/resources/:resourceID/blocked", h.Blocked)
	router.GET("/resources/:resourceID/availability", h.Availability)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Day(t *testing.T) {
	svc := new(MockService)
	svc.On("Day", mock.Anything, 1, day).Return(&DayView{Date: "2025-03-12"}, nil)
	svc.On("Day", mock.Anything, 9, day).Return(nil, resource.ErrResourceNotFound)
	router := setupRouter(svc)

	w := get(router, "/resources/1/calendar?date=2025-03-12")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2025-03-12"`)

	assert.Equal(t, http.StatusNotFound, get(router, "/resources/9/calendar?date=2025-03-12").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/resources/1/calendar?date=12.03.2025").Code)
	assert.Equal(t, http.StatusBadRequest, get(router, "/resources/x/calendar").Code)
}

func TestHandler_Blocked(t *testing.T) {
	svc := new(MockService)
	svc.On("Blocked", mock.Anything, 1, day, day.AddDate(0, 0, 60)).Return(nil, ErrWindowTooLong)
	router := setupRouter(svc)

	w := get(router, "/resources/1/blocked?from=2025-03-12T00:00:00Z&to=2025-05-11T00:00:00Z")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(router, "/resources/1/blocked?from=2025-03-12")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Availability(t *testing.T) {
	svc := new(MockService)
	svc.On("Availability", mock.Anything, 1, mock.MatchedBy(func(q AvailabilityQuery) bool {
		return q.PartID != nil && *q.PartID == 12 && q.Start.Equal(day.Add(9*time.Hour))
	})).Return(&AvailabilityResult{Available: true}, nil)
	router := setupRouter(svc)

	w := get(router, "/resources/1/availability?part_id=12&start=2025-03-12T09:00:00Z&end=2025-03-12T10:00:00Z")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":true`)

	w = get(router, "/resources/1/availability?start=2025-03-12T10:00:00Z&end=2025-03-12T09:00:00Z")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNumberOfCalls(t, "Availability", 1)
}
