package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"arena/internal/availability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateResource(ctx context.Context, req CreateResourceRequest) (*Resource, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Resource), args.Error(1)
}

func (m *MockService) GetAllResources(ctx context.Context) ([]Resource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Resource), args.Error(1)
}

func (m *MockService) GetResourceByID(ctx context.Context, id int) (*ResourceWithParts, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ResourceWithParts), args.Error(1)
}

func (m *MockService) UpdateRules(ctx context.Context, id int, req UpdateRulesRequest) (*Resource, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Resource), args.Error(1)
}

func (m *MockService) CreatePart(ctx context.Context, resourceID int, req CreatePartRequest) (*Part, error) {
	args := m.Called(ctx, resourceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Part), args.Error(1)
}

func (m *MockService) GetParts(ctx context.Context, resourceID int) ([]Part, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Part), args.Error(1)
}

func (m *MockService) DeletePart(ctx context.Context, resourceID, partID int) error {
	return m.Called(ctx, resourceID, partID).Error(0)
}

func (m *MockService) LoadHierarchy(ctx context.Context, resourceID int) (*Resource, *availability.Hierarchy, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*Resource), args.Get(1).(*availability.Hierarchy), args.Error(2)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	router := gin.New()
	router.GET("/resources/:resourceID", h.GetResource)
	router.POST("/resources", h.CreateResource)
	router.POST("/resources/:resourceID/parts", h.CreatePart)
	router.DELETE("/resources/:resourceID/parts/:partID", h.DeletePart)
	return router
}

func TestHandler_CreateResource(t *testing.T) {
	svc := new(MockService)
	svc.On("CreateResource", mock.Anything, mock.AnythingOfType("resource.CreateResourceRequest")).
		Return(&Resource{ID: 3, Name: "Gym"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/resources", bytes.NewBufferString(`{"name":"Gym"}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var got Resource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 3, got.ID)
}

func TestHandler_GetResource(t *testing.T) {
	svc := new(MockService)
	svc.On("GetResourceByID", mock.Anything, 1).Return(&ResourceWithParts{Resource: Resource{ID: 1}}, nil)
	svc.On("GetResourceByID", mock.Anything, 2).Return(nil, ErrResourceNotFound)
	router := setupRouter(svc)

	cases := map[string]int{
		"/resources/1":   http.StatusOK,
		"/resources/2":   http.StatusNotFound,
		"/resources/abc": http.StatusBadRequest,
	}
	for path, code := range cases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, code, w.Code, path)
	}
}

func TestHandler_CreatePart_InvalidParent(t *testing.T) {
	svc := new(MockService)
	svc.On("CreatePart", mock.Anything, 1, mock.Anything).Return(nil, ErrInvalidParent)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/resources/1/parts", bytes.NewBufferString(`{"name":"Half","parent_id":99}`))
	req.Header.Set("Content-Type", "application/json")
	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeletePart(t *testing.T) {
	svc := new(MockService)
	svc.On("DeletePart", mock.Anything, 1, 10).Return(ErrPartHasChildren)
	svc.On("DeletePart", mock.Anything, 1, 11).Return(ErrPartInUse)
	svc.On("DeletePart", mock.Anything, 1, 12).Return(nil)
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/resources/1/parts/10", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodDelete, "/resources/1/parts/11", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "referenced by bookings")

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodDelete, "/resources/1/parts/12", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
