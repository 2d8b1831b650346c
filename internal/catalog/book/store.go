package book

import "context"

// Repository is the persistence contract of books.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	Create(ctx context.Context, book Book) error
	Update(ctx context.Context, id int, book Book) error
	Delete(ctx context.Context, id int) error
}
