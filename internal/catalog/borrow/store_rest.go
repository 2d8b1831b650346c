package borrow

import (
	"context"

	"github.com/taibuivan/librarydesk/internal/backend"
)

type restRepository struct {
	resource *backend.Resource[Borrow]
}

// NewRESTRepository returns the backend-backed borrow [Repository].
func NewRESTRepository(client *backend.Client) Repository {
	return &restRepository{resource: backend.NewResource[Borrow](client, "/"+Resource)}
}

func (r *restRepository) List(ctx context.Context) ([]Borrow, error) {
	return r.resource.List(ctx)
}

func (r *restRepository) Create(ctx context.Context, request Request) error {
	return r.resource.Create(ctx, request)
}

func (r *restRepository) Update(ctx context.Context, id int, request Request) error {
	return r.resource.Update(ctx, id, request)
}

func (r *restRepository) Delete(ctx context.Context, id int) error {
	return r.resource.Delete(ctx, id)
}
