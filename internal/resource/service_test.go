package resource

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateResource(ctx context.Context, r *Resource) (*Resource, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Resource), args.Error(1)
}

func (m *MockRepository) GetAllResources(ctx context.Context) ([]Resource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Resource), args.Error(1)
}

func (m *MockRepository) GetResourceByID(ctx context.Context, id int) (*Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Resource), args.Error(1)
}

func (m *MockRepository) UpdateResource(ctx context.Context, r *Resource) (*Resource, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Resource), args.Error(1)
}

func (m *MockRepository) CreatePart(ctx context.Context, resourceID int, name string, parentID *int) (*Part, error) {
	args := m.Called(ctx, resourceID, name, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Part), args.Error(1)
}

func (m *MockRepository) GetPartsByResource(ctx context.Context, resourceID int) ([]Part, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Part), args.Error(1)
}

func (m *MockRepository) GetPartByID(ctx context.Context, id int) (*Part, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Part), args.Error(1)
}

func (m *MockRepository) CountChildParts(ctx context.Context, partID int) (int, error) {
	args := m.Called(ctx, partID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) DeletePart(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func boolPtr(v bool) *bool { return &v }

func TestService_CreateResource_Defaults(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("CreateResource", mock.Anything, mock.MatchedBy(func(r *Resource) bool {
		return r.Name == "Gym" &&
			r.Color == defaultColor &&
			r.AllowWholeBooking &&
			r.BlockPartsWhenWholeBooked &&
			!r.BlockWholeWhenPartBooked &&
			r.RequiresApproval
	})).Return(&Resource{ID: 1, Name: "Gym"}, nil)

	res, err := service.CreateResource(context.Background(), CreateResourceRequest{
		Name:                     "  Gym ",
		BlockWholeWhenPartBooked: boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.ID)
	mockRepo.AssertExpectations(t)
}

func TestService_GetResourceByID_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetResourceByID", mock.Anything, 9).Return(nil, sql.ErrNoRows)

	_, err := service.GetResourceByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestService_UpdateRules_PartialUpdate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetResourceByID", mock.Anything, 1).Return(&Resource{
		ID: 1, AllowWholeBooking: true, BlockPartsWhenWholeBooked: true, BlockWholeWhenPartBooked: true, PricePerHourCents: 100,
	}, nil)
	mockRepo.On("UpdateResource", mock.Anything, mock.MatchedBy(func(r *Resource) bool {
		return !r.AllowWholeBooking && r.BlockPartsWhenWholeBooked && r.PricePerHourCents == 100
	})).Return(&Resource{ID: 1}, nil)

	_, err := service.UpdateRules(context.Background(), 1, UpdateRulesRequest{AllowWholeBooking: boolPtr(false)})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_CreatePart(t *testing.T) {
	parentID := 10
	nestedParent := 11

	tests := []struct {
		name      string
		req       CreatePartRequest
		setupMock func(*MockRepository)
		wantErr   error
	}{
		{
			name: "top level part",
			req:  CreatePartRequest{Name: "Court 1"},
			setupMock: func(m *MockRepository) {
				m.On("GetResourceByID", mock.Anything, 1).Return(&Resource{ID: 1}, nil)
				m.On("CreatePart", mock.Anything, 1, "Court 1", (*int)(nil)).Return(&Part{ID: 20, ResourceID: 1}, nil)
			},
		},
		{
			name: "child part",
			req:  CreatePartRequest{Name: "Half A", ParentID: &parentID},
			setupMock: func(m *MockRepository) {
				m.On("GetResourceByID", mock.Anything, 1).Return(&Resource{ID: 1}, nil)
				m.On("GetPartByID", mock.Anything, 10).Return(&Part{ID: 10, ResourceID: 1}, nil)
				m.On("CreatePart", mock.Anything, 1, "Half A", &parentID).Return(&Part{ID: 11, ResourceID: 1, ParentID: &parentID}, nil)
			},
		},
		{
			name: "parent of another resource",
			req:  CreatePartRequest{Name: "Half A", ParentID: &parentID},
			setupMock: func(m *MockRepository) {
				m.On("GetResourceByID", mock.Anything, 1).Return(&Resource{ID: 1}, nil)
				m.On("GetPartByID", mock.Anything, 10).Return(&Part{ID: 10, ResourceID: 2}, nil)
			},
			wantErr: ErrInvalidParent,
		},
		{
			name: "missing parent",
			req:  CreatePartRequest{Name: "Half A", ParentID: &parentID},
			setupMock: func(m *MockRepository) {
				m.On("GetResourceByID", mock.Anything, 1).Return(&Resource{ID: 1}, nil)
				m.On("GetPartByID", mock.Anything, 10).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidParent,
		},
		{
			name: "too deep",
			req:  CreatePartRequest{Name: "Quarter", ParentID: &nestedParent},
			setupMock: func(m *MockRepository) {
				m.On("GetResourceByID", mock.Anything, 1).Return(&Resource{ID: 1}, nil)
				m.On("GetPartByID", mock.Anything, 11).Return(&Part{ID: 11, ResourceID: 1, ParentID: &parentID}, nil)
			},
			wantErr: ErrNestingTooDeep,
		},
		{
			name: "resource missing",
			req:  CreatePartRequest{Name: "Court 1"},
			setupMock: func(m *MockRepository) {
				m.On("GetResourceByID", mock.Anything, 1).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			service := NewService(mockRepo)
			part, err := service.CreatePart(context.Background(), 1, tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, part)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, part)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_DeletePart(t *testing.T) {
	t.Run("has children", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetPartByID", mock.Anything, 10).Return(&Part{ID: 10, ResourceID: 1}, nil)
		mockRepo.On("CountChildParts", mock.Anything, 10).Return(2, nil)

		err := NewService(mockRepo).DeletePart(context.Background(), 1, 10)
		assert.ErrorIs(t, err, ErrPartHasChildren)
	})

	t.Run("wrong resource", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetPartByID", mock.Anything, 10).Return(&Part{ID: 10, ResourceID: 2}, nil)

		err := NewService(mockRepo).DeletePart(context.Background(), 1, 10)
		assert.ErrorIs(t, err, ErrPartNotFound)
	})

	t.Run("referenced by bookings", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetPartByID", mock.Anything, 11).Return(&Part{ID: 11, ResourceID: 1}, nil)
		mockRepo.On("CountChildParts", mock.Anything, 11).Return(0, nil)
		mockRepo.On("DeletePart", mock.Anything, 11).Return(ErrPartInUse)

		err := NewService(mockRepo).DeletePart(context.Background(), 1, 11)
		assert.ErrorIs(t, err, ErrPartInUse)
	})

	t.Run("deleted", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockRepo.On("GetPartByID", mock.Anything, 12).Return(&Part{ID: 12, ResourceID: 1}, nil)
		mockRepo.On("CountChildParts", mock.Anything, 12).Return(0, nil)
		mockRepo.On("DeletePart", mock.Anything, 12).Return(nil)

		assert.NoError(t, NewService(mockRepo).DeletePart(context.Background(), 1, 12))
		mockRepo.AssertExpectations(t)
	})
}

func TestService_LoadHierarchy(t *testing.T) {
	parent := 10
	mockRepo := new(MockRepository)
	mockRepo.On("GetResourceByID", mock.Anything, 1).Return(&Resource{ID: 1, Name: "Gym"}, nil)
	mockRepo.On("GetPartsByResource", mock.Anything, 1).Return([]Part{
		{ID: 10, ResourceID: 1, Name: "Main Hall"},
		{ID: 11, ResourceID: 1, Name: "Half A", ParentID: &parent},
	}, nil)

	res, h, err := NewService(mockRepo).LoadHierarchy(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Gym", res.Name)
	p, ok := h.Parent(11)
	assert.True(t, ok)
	assert.Equal(t, "Main Hall", p.Name)
}

func TestService_GetAllResources_Error(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetAllResources", mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewService(mockRepo).GetAllResources(context.Background())
	assert.Error(t, err)
}
