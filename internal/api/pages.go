// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"log/slog"

	"github.com/taibuivan/librarydesk/internal/backend"
	"github.com/taibuivan/librarydesk/internal/catalog/author"
	"github.com/taibuivan/librarydesk/internal/catalog/book"
	"github.com/taibuivan/librarydesk/internal/catalog/borrow"
	"github.com/taibuivan/librarydesk/internal/catalog/category"
	"github.com/taibuivan/librarydesk/internal/catalog/publisher"
	"github.com/taibuivan/librarydesk/internal/console"
	"github.com/taibuivan/librarydesk/internal/session"
)

// Sections lists the entity pages in navigation order.
var Sections = []console.Section{
	{Title: "Publishers", Description: "Manage publishing houses and publishers.", Path: "/" + publisher.Resource},
	{Title: "Categories", Description: "Organize books into categories.", Path: "/" + category.Resource},
	{Title: "Books", Description: "Add, edit and delete books.", Path: "/" + book.Resource},
	{Title: "Authors", Description: "Add and manage authors.", Path: "/" + author.Resource},
	{Title: "Borrowing", Description: "Manage book borrowing.", Path: "/" + borrow.Resource},
}

// PageDependencies are shared by every entity page.
type PageDependencies struct {
	Client   *backend.Client
	Store    session.Store
	Renderer *console.Renderer
	PageSize int
	Logger   *slog.Logger
}

// NewPages wires the repositories, services and schemas of the five entity pages.
func NewPages(deps PageDependencies) []console.Mountable {
	authors := author.NewRESTRepository(deps.Client)
	publishers := publisher.NewRESTRepository(deps.Client)
	categories := category.NewRESTRepository(deps.Client)
	books := book.NewRESTRepository(deps.Client)
	borrows := borrow.NewRESTRepository(deps.Client)

	return []console.Mountable{
		console.NewHandler[publisher.Publisher](publisher.NewSchema(),
			publisher.NewService(publishers, deps.Logger),
			deps.Store, deps.Renderer, deps.PageSize),
		console.NewHandler[category.Category](category.NewSchema(),
			category.NewService(categories, deps.Logger),
			deps.Store, deps.Renderer, deps.PageSize),
		console.NewHandler[book.Book](book.NewSchema(authors, publishers, categories),
			book.NewService(books, authors, publishers, categories, deps.Logger),
			deps.Store, deps.Renderer, deps.PageSize),
		console.NewHandler[author.Author](author.NewSchema(),
			author.NewService(authors, deps.Logger),
			deps.Store, deps.Renderer, deps.PageSize),
		console.NewHandler[borrow.Borrow](borrow.NewSchema(books),
			borrow.NewService(borrows, books, deps.Logger),
			deps.Store, deps.Renderer, deps.PageSize),
	}
}
