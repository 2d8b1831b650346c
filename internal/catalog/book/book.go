// Package book manages the books of the library catalog.
//
// A book embeds its author, publisher and categories. The form only carries their ids;
// the service resolves them against fresh backend lists before saving.
package book

import (
	"strings"

	"github.com/taibuivan/librarydesk/internal/catalog/author"
	"github.com/taibuivan/librarydesk/internal/catalog/category"
	"github.com/taibuivan/librarydesk/internal/catalog/publisher"
	"github.com/taibuivan/librarydesk/pkg/slice"
)

// Resource is the backend collection and page segment of books.
const Resource = "books"

// Form field names.
const (
	FieldName            = "name"
	FieldPublicationYear = "publicationYear"
	FieldStock           = "stock"
	FieldAuthorID        = "authorId"
	FieldPublisherID     = "publisherId"
	FieldCategoryIDs     = "categoryIds"
)

// Operator-facing messages.
const (
	MsgRequired          = "You must fill in all fields and select at least one category."
	MsgInvalid           = "Please check the highlighted fields."
	MsgMissingReferences = "Some selections no longer exist. Please reload the page and choose again."

	MsgLoadFailed           = "An error occurred while loading books."
	MsgEmpty                = "There are no books in the database. Please add a book."
	MsgAuthorsLoadFailed    = "An error occurred while loading authors."
	MsgPublishersLoadFailed = "An error occurred while loading publishers."
	MsgCategoriesLoadFailed = "An error occurred while loading categories."
	MsgCreated              = "Book added successfully!"
	MsgUpdated              = "Book updated successfully!"
	MsgSaveFailed           = "An error occurred during the operation. Please try again."
	MsgDeleted              = "Book deleted successfully!"
	MsgDeleteFailed         = "An error occurred while deleting."
)

// Book is a title held by the library.
type Book struct {
	ID              int                  `json:"id,omitempty"`
	Name            string               `json:"name"`
	PublicationYear int                  `json:"publicationYear"`
	Stock           int                  `json:"stock"`
	Author          *author.Author       `json:"author"`
	Publisher       *publisher.Publisher `json:"publisher"`
	Categories      []category.Category  `json:"categories"`
}

// AuthorName returns the embedded author's name, or "" when absent.
func (b Book) AuthorName() string {
	if b.Author == nil {
		return ""
	}
	return b.Author.Name
}

// PublisherName returns the embedded publisher's name, or "" when absent.
func (b Book) PublisherName() string {
	if b.Publisher == nil {
		return ""
	}
	return b.Publisher.Name
}

// CategoryNames returns the comma-joined category names.
func (b Book) CategoryNames() string {
	return strings.Join(slice.Map(b.Categories, func(c category.Category) string { return c.Name }), ", ")
}

// CategoryIDs returns the ids of the embedded categories.
func (b Book) CategoryIDs() []int {
	return slice.Map(b.Categories, func(c category.Category) int { return c.ID })
}
