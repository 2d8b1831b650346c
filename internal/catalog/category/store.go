package category

import "context"

// Repository is the persistence contract of categories.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, category Category) error
	Update(ctx context.Context, id int, category Category) error
	Delete(ctx context.Context, id int) error
}
