package author

import (
	"context"

	"github.com/taibuivan/librarydesk/internal/backend"
)

type restRepository struct {
	resource *backend.Resource[Author]
}

// NewRESTRepository returns the backend-backed author [Repository].
func NewRESTRepository(client *backend.Client) Repository {
	return &restRepository{resource: backend.NewResource[Author](client, "/"+Resource)}
}

func (r *restRepository) List(ctx context.Context) ([]Author, error) {
	return r.resource.List(ctx)
}

func (r *restRepository) Create(ctx context.Context, author Author) error {
	return r.resource.Create(ctx, author)
}

func (r *restRepository) Update(ctx context.Context, id int, author Author) error {
	return r.resource.Update(ctx, id, author)
}

func (r *restRepository) Delete(ctx context.Context, id int) error {
	return r.resource.Delete(ctx, id)
}
