package author

import "context"

// Repository is the persistence contract of authors.
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	Create(ctx context.Context, author Author) error
	Update(ctx context.Context, id int, author Author) error
	Delete(ctx context.Context, id int) error
}
