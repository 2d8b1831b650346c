package publisher

import "context"

// Repository is the persistence contract of publishers.
type Repository interface {
	List(ctx context.Context) ([]Publisher, error)
	Create(ctx context.Context, publisher Publisher) error
	Update(ctx context.Context, id int, publisher Publisher) error
	Delete(ctx context.Context, id int) error
}
