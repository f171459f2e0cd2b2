package resource

import "context"

type Repository interface {
	CreateResource(ctx context.Context, r *Resource) (*Resource, error)
	GetAllResources(ctx context.Context) ([]Resource, error)
	GetResourceByID(ctx context.Context, id int) (*Resource, error)
	UpdateResource(ctx context.Context, r *Resource) (*Resource, error)
	CreatePart(ctx context.Context, resourceID int, name string, parentID *int) (*Part, error)
	GetPartsByResource(ctx context.Context, resourceID int) ([]Part, error)
	GetPartByID(ctx context.Context, id int) (*Part, error)
	CountChildParts(ctx context.Context, partID int) (int, error)
	DeletePart(ctx context.Context, id int) error
}
