package borrow

import (
	"context"

	"github.com/taibuivan/librarydesk/internal/catalog/book"
)

// Repository is the persistence contract of borrows.
type Repository interface {
	List(ctx context.Context) ([]Borrow, error)
	Create(ctx context.Context, request Request) error
	Update(ctx context.Context, id int, request Request) error
	Delete(ctx context.Context, id int) error
}

// BookSource lists the books a borrow can reference.
type BookSource interface {
	List(ctx context.Context) ([]book.Book, error)
}
