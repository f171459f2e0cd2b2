package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"arena/internal/availability"
	"arena/internal/logger"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrPartNotFound     = errors.New("part not found")
	ErrInvalidParent    = errors.New("parent part must belong to the same resource")
	ErrNestingTooDeep   = errors.New("parts can only be nested one level")
	ErrPartHasChildren  = errors.New("part has child parts")
)

type Service interface {
	CreateResource(ctx context.Context, req CreateResourceRequest) (*Resource, error)
	GetAllResources(ctx context.Context) ([]Resource, error)
	GetResourceByID(ctx context.Context, id int) (*ResourceWithParts, error)
	UpdateRules(ctx context.Context, id int, req UpdateRulesRequest) (*Resource, error)
	CreatePart(ctx context.Context, resourceID int, req CreatePartRequest) (*Part, error)
	GetParts(ctx context.Context, resourceID int) ([]Part, error)
	DeletePart(ctx context.Context, resourceID, partID int) error
	LoadHierarchy(ctx context.Context, resourceID int) (*Resource, *availability.Hierarchy, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (s *service) CreateResource(ctx context.Context, req CreateResourceRequest) (*Resource, error) {
	color := req.Color
	if color == "" {
		color = defaultColor
	}

	defaults := availability.DefaultConfig()
	res, err := s.repo.CreateResource(ctx, &Resource{
		Name:                      strings.TrimSpace(req.Name),
		Description:               req.Description,
		Color:                     color,
		AllowWholeBooking:         boolOr(req.AllowWholeBooking, defaults.AllowWholeBooking),
		BlockPartsWhenWholeBooked: boolOr(req.BlockPartsWhenWholeBooked, defaults.BlockPartsWhenWholeBooked),
		BlockWholeWhenPartBooked:  boolOr(req.BlockWholeWhenPartBooked, defaults.BlockWholeWhenPartBooked),
		RequiresApproval:          boolOr(req.RequiresApproval, true),
		PricePerHourCents:         req.PricePerHourCents,
	})
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	logger.Info("Resource created", "resource_id", res.ID, "name", res.Name)
	return res, nil
}

func (s *service) GetAllResources(ctx context.Context) ([]Resource, error) {
	return s.repo.GetAllResources(ctx)
}

func (s *service) getResource(ctx context.Context, id int) (*Resource, error) {
	res, err := s.repo.GetResourceByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *service) GetResourceByID(ctx context.Context, id int) (*ResourceWithParts, error) {
	res, err := s.getResource(ctx, id)
	if err != nil {
		return nil, err
	}

	parts, err := s.repo.GetPartsByResource(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ResourceWithParts{Resource: *res, Parts: parts}, nil
}

func (s *service) UpdateRules(ctx context.Context, id int, req UpdateRulesRequest) (*Resource, error) {
	res, err := s.getResource(ctx, id)
	if err != nil {
		return nil, err
	}

	res.AllowWholeBooking = boolOr(req.AllowWholeBooking, res.AllowWholeBooking)
	res.BlockPartsWhenWholeBooked = boolOr(req.BlockPartsWhenWholeBooked, res.BlockPartsWhenWholeBooked)
	res.BlockWholeWhenPartBooked = boolOr(req.BlockWholeWhenPartBooked, res.BlockWholeWhenPartBooked)
	res.RequiresApproval = boolOr(req.RequiresApproval, res.RequiresApproval)
	if req.PricePerHourCents != nil {
		res.PricePerHourCents = *req.PricePerHourCents
	}

	updated, err := s.repo.UpdateResource(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("update resource %d: %w", id, err)
	}
	return updated, nil
}

func (s *service) CreatePart(ctx context.Context, resourceID int, req CreatePartRequest) (*Part, error) {
	if _, err := s.getResource(ctx, resourceID); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.repo.GetPartByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrInvalidParent
			}
			return nil, err
		}
		if parent.ResourceID != resourceID {
			return nil, ErrInvalidParent
		}
		if parent.ParentID != nil {
			return nil, ErrNestingTooDeep
		}
	}

	return s.repo.CreatePart(ctx, resourceID, strings.TrimSpace(req.Name), req.ParentID)
}

func (s *service) GetParts(ctx context.Context, resourceID int) ([]Part, error) {
	if _, err := s.getResource(ctx, resourceID); err != nil {
		return nil, err
	}
	return s.repo.GetPartsByResource(ctx, resourceID)
}

func (s *service) DeletePart(ctx context.Context, resourceID, partID int) error {
	part, err := s.repo.GetPartByID(ctx, partID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPartNotFound
		}
		return err
	}
	if part.ResourceID != resourceID {
		return ErrPartNotFound
	}

	children, err := s.repo.CountChildParts(ctx, partID)
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrPartHasChildren
	}

	if err := s.repo.DeletePart(ctx, partID); err != nil {
		if errors.Is(err, ErrPartNotDeleted) {
			return ErrPartNotFound
		}
		return err
	}
	return nil
}

func (s *service) LoadHierarchy(ctx context.Context, resourceID int) (*Resource, *availability.Hierarchy, error) {
	res, err := s.getResource(ctx, resourceID)
	if err != nil {
		return nil, nil, err
	}

	parts, err := s.repo.GetPartsByResource(ctx, resourceID)
	if err != nil {
		return nil, nil, err
	}

	return res, res.Hierarchy(parts), nil
}
