package book

import (
	"context"
	"net/url"
	"strconv"

	"github.com/taibuivan/librarydesk/internal/catalog/author"
	"github.com/taibuivan/librarydesk/internal/catalog/category"
	"github.com/taibuivan/librarydesk/internal/catalog/publisher"
	"github.com/taibuivan/librarydesk/internal/console"
	"github.com/taibuivan/librarydesk/pkg/convert"
	"github.com/taibuivan/librarydesk/pkg/query"
	"github.com/taibuivan/librarydesk/pkg/slice"
)

// Lookup names.
const (
	LookupAuthors    = "authors"
	LookupPublishers = "publishers"
	LookupCategories = "categories"
)

// NewSchema describes the book page. Its selects are filled from the three repositories.
func NewSchema(authors author.Repository, publishers publisher.Repository, categories category.Repository) *console.Schema[Book] {
	return &console.Schema[Book]{
		Resource:  Resource,
		Noun:      "Book",
		Title:     "Book Management",
		FormTitle: "Add / Update Book",
		Columns: []console.Column[Book]{
			{Header: "Book Name", Value: func(b Book) string { return b.Name }},
			{Header: "Publication Year", Value: func(b Book) string { return strconv.Itoa(b.PublicationYear) }},
			{Header: "Stock", Value: func(b Book) string { return strconv.Itoa(b.Stock) }},
			{Header: "Author", Value: Book.AuthorName},
			{Header: "Publisher", Value: Book.PublisherName},
			{Header: "Categories", Value: Book.CategoryNames},
		},
		Fields: []console.Field{
			{Name: FieldName, Label: "Book Name", Kind: console.KindText, Required: true},
			{Name: FieldPublicationYear, Label: "Publication Year", Kind: console.KindNumber, Required: true},
			{Name: FieldStock, Label: "Stock", Kind: console.KindNumber, Required: true},
			{Name: FieldAuthorID, Label: "Author", Kind: console.KindSelect, Required: true, Lookup: LookupAuthors},
			{Name: FieldPublisherID, Label: "Publisher", Kind: console.KindSelect, Required: true, Lookup: LookupPublishers},
			{Name: FieldCategoryIDs, Label: "Categories", Kind: console.KindMultiSelect, Required: true, Lookup: LookupCategories},
		},
		Lookups: []console.Lookup{
			{
				Name:       LookupAuthors,
				LoadFailed: MsgAuthorsLoadFailed,
				Load: func(ctx context.Context) ([]console.Option, error) {
					list, err := authors.List(ctx)
					return slice.Map(list, func(a author.Author) console.Option {
						return console.Option{Value: strconv.Itoa(a.ID), Label: a.Name}
					}), err
				},
			},
			{
				Name:       LookupPublishers,
				LoadFailed: MsgPublishersLoadFailed,
				Load: func(ctx context.Context) ([]console.Option, error) {
					list, err := publishers.List(ctx)
					return slice.Map(list, func(p publisher.Publisher) console.Option {
						return console.Option{Value: strconv.Itoa(p.ID), Label: p.Name}
					}), err
				},
			},
			{
				Name:       LookupCategories,
				LoadFailed: MsgCategoriesLoadFailed,
				Load: func(ctx context.Context) ([]console.Option, error) {
					list, err := categories.List(ctx)
					return slice.Map(list, func(c category.Category) console.Option {
						return console.Option{Value: strconv.Itoa(c.ID), Label: c.Name}
					}), err
				},
			},
		},
		Messages: console.Messages{
			LoadFailed:   MsgLoadFailed,
			Empty:        MsgEmpty,
			Created:      MsgCreated,
			Updated:      MsgUpdated,
			SaveFailed:   MsgSaveFailed,
			Deleted:      MsgDeleted,
			DeleteFailed: MsgDeleteFailed,
			DeleteTitle:  "Delete Confirmation",
			DeletePrompt: "Are you sure you want to delete this book? This action cannot be undone.",
		},
		ID:     func(b Book) int { return b.ID },
		FormOf: formOf,
	}
}

func formOf(b Book) url.Values {
	form := url.Values{
		FieldName:            {b.Name},
		FieldPublicationYear: {strconv.Itoa(b.PublicationYear)},
		FieldStock:           {strconv.Itoa(b.Stock)},
		FieldCategoryIDs:     query.IntStrings(b.CategoryIDs()),
	}
	if b.Author != nil {
		form.Set(FieldAuthorID, convert.FromInt(b.Author.ID, true))
	}
	if b.Publisher != nil {
		form.Set(FieldPublisherID, convert.FromInt(b.Publisher.ID, true))
	}
	return form
}
