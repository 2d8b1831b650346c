package category

import (
	"context"

	"github.com/taibuivan/librarydesk/internal/backend"
)

type restRepository struct {
	resource *backend.Resource[Category]
}

// NewRESTRepository returns the backend-backed category [Repository].
func NewRESTRepository(client *backend.Client) Repository {
	return &restRepository{resource: backend.NewResource[Category](client, "/"+Resource)}
}

func (r *restRepository) List(ctx context.Context) ([]Category, error) {
	return r.resource.List(ctx)
}

func (r *restRepository) Create(ctx context.Context, category Category) error {
	return r.resource.Create(ctx, category)
}

func (r *restRepository) Update(ctx context.Context, id int, category Category) error {
	return r.resource.Update(ctx, id, category)
}

func (r *restRepository) Delete(ctx context.Context, id int) error {
	return r.resource.Delete(ctx, id)
}
