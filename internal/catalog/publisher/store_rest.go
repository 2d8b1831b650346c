package publisher

import (
	"context"

	"github.com/taibuivan/librarydesk/internal/backend"
)

type restRepository struct {
	resource *backend.Resource[Publisher]
}

// NewRESTRepository returns the backend-backed publisher [Repository].
func NewRESTRepository(client *backend.Client) Repository {
	return &restRepository{resource: backend.NewResource[Publisher](client, "/"+Resource)}
}

func (r *restRepository) List(ctx context.Context) ([]Publisher, error) {
	return r.resource.List(ctx)
}

func (r *restRepository) Create(ctx context.Context, publisher Publisher) error {
	return r.resource.Create(ctx, publisher)
}

func (r *restRepository) Update(ctx context.Context, id int, publisher Publisher) error {
	return r.resource.Update(ctx, id, publisher)
}

func (r *restRepository) Delete(ctx context.Context, id int) error {
	return r.resource.Delete(ctx, id)
}
