package book

import (
	"context"

	"github.com/taibuivan/librarydesk/internal/backend"
)

type restRepository struct {
	resource *backend.Resource[Book]
}

// NewRESTRepository returns the backend-backed book [Repository].
func NewRESTRepository(client *backend.Client) Repository {
	return &restRepository{resource: backend.NewResource[Book](client, "/"+Resource)}
}

func (r *restRepository) List(ctx context.Context) ([]Book, error) {
	return r.resource.List(ctx)
}

func (r *restRepository) Create(ctx context.Context, book Book) error {
	return r.resource.Create(ctx, book)
}

func (r *restRepository) Update(ctx context.Context, id int, book Book) error {
	return r.resource.Update(ctx, id, book)
}

func (r *restRepository) Delete(ctx context.Context, id int) error {
	return r.resource.Delete(ctx, id)
}
