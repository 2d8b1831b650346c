// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package backend

import (
	"context"
	"fmt"

	"github.com/taibuivan/librarydesk/internal/platform/apperr"
)

// Resource is one CRUD collection of the backend, such as /authors.
//
// Every failure is returned as [apperr.BadGateway] so pages report it with their
// generic message; the cause keeps the [*StatusError] for logging.
type Resource[T any] struct {
	client *Client
	path   string
}

// NewResource returns the collection rooted at path.
func NewResource[T any](client *Client, path string) *Resource[T] {
	return &Resource[T]{client: client, path: path}
}

// Path returns the collection path.
func (r *Resource[T]) Path() string { return r.path }

// List fetches the whole collection.
func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.client.Get(ctx, r.path, &items); err != nil {
		return nil, apperr.BadGateway(err)
	}
	return items, nil
}

// Create posts payload to the collection. The created record is not decoded; pages
// re-fetch the list instead.
func (r *Resource[T]) Create(ctx context.Context, payload any) error {
	if err := r.client.Post(ctx, r.path, payload, nil); err != nil {
		return apperr.BadGateway(err)
	}
	return nil
}

// Update replaces the record with id.
func (r *Resource[T]) Update(ctx context.Context, id int, payload any) error {
	if err := r.client.Put(ctx, r.item(id), payload, nil); err != nil {
		return apperr.BadGateway(err)
	}
	return nil
}

// Delete removes the record with id.
func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	if err := r.client.Delete(ctx, r.item(id)); err != nil {
		return apperr.BadGateway(err)
	}
	return nil
}

func (r *Resource[T]) item(id int) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}
