package book

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/taibuivan/librarydesk/internal/catalog/author"
	"github.com/taibuivan/librarydesk/internal/catalog/category"
	"github.com/taibuivan/librarydesk/internal/catalog/publisher"
	"github.com/taibuivan/librarydesk/internal/platform/validate"
	"github.com/taibuivan/librarydesk/pkg/convert"
	"github.com/taibuivan/librarydesk/pkg/query"
	"github.com/taibuivan/librarydesk/pkg/slice"
)

type Service struct {
	repo       Repository
	authors    author.Repository
	publishers publisher.Repository
	categories category.Repository
	logger     *slog.Logger
}

func NewService(
	repo Repository,
	authors author.Repository,
	publishers publisher.Repository,
	categories category.Repository,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:       repo,
		authors:    authors,
		publishers: publishers,
		categories: categories,
		logger:     logger,
	}
}

func (service *Service) List(ctx context.Context) ([]Book, error) {
	return service.repo.List(ctx)
}

// Save creates a book, or updates selected when it is non-nil.
//
// The payload embeds the full author, publisher and category records matching the
// selected ids.
func (service *Service) Save(ctx context.Context, selected *Book, form url.Values) error {
	book, refs, err := parseForm(form)
	if err != nil {
		return err
	}

	if err := service.resolve(ctx, &book, refs); err != nil {
		return err
	}

	if selected == nil {
		if err := service.repo.Create(ctx, book); err != nil {
			return err
		}
		service.logger.InfoContext(ctx, "book_created",
			slog.String("name", book.Name),
			slog.Int("stock", book.Stock),
		)
		return nil
	}

	if err := service.repo.Update(ctx, selected.ID, book); err != nil {
		return err
	}
	service.logger.InfoContext(ctx, "book_updated", slog.Int("book_id", selected.ID))
	return nil
}

func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "book_deleted", slog.Int("book_id", id))
	return nil
}

// references are the related ids selected in the form.
type references struct {
	authorID    int
	publisherID int
	categoryIDs []int
}

// resolve replaces the selected ids with the records they name.
func (service *Service) resolve(ctx context.Context, book *Book, refs references) error {
	authors, err := service.authors.List(ctx)
	if err != nil {
		return err
	}
	publishers, err := service.publishers.List(ctx)
	if err != nil {
		return err
	}
	categories, err := service.categories.List(ctx)
	if err != nil {
		return err
	}

	validator := &validate.Validator{}

	if a, ok := slice.Find(authors, func(a author.Author) bool { return a.ID == refs.authorID }); ok {
		book.Author = &a
	} else {
		validator.Custom(FieldAuthorID, true, "Author no longer exists")
	}

	if p, ok := slice.Find(publishers, func(p publisher.Publisher) bool { return p.ID == refs.publisherID }); ok {
		book.Publisher = &p
	} else {
		validator.Custom(FieldPublisherID, true, "Publisher no longer exists")
	}

	for _, id := range refs.categoryIDs {
		c, ok := slice.Find(categories, func(c category.Category) bool { return c.ID == id })
		if !ok {
			validator.Custom(FieldCategoryIDs, true, "Category no longer exists")
			continue
		}
		book.Categories = append(book.Categories, c)
	}

	return validator.ErrMessage(MsgMissingReferences)
}

// maxYear bounds the publication year to four digits.
const maxYear = 9999

func parseForm(form url.Values) (Book, references, error) {
	name := strings.TrimSpace(form.Get(FieldName))
	year := strings.TrimSpace(form.Get(FieldPublicationYear))
	stock := strings.TrimSpace(form.Get(FieldStock))
	authorID := form.Get(FieldAuthorID)
	publisherID := form.Get(FieldPublisherID)
	categoryIDs := form[FieldCategoryIDs]

	validator := &validate.Validator{}
	validator.
		Required(FieldName, name).
		Required(FieldPublicationYear, year).
		Required(FieldStock, stock).
		Required(FieldAuthorID, authorID).
		Required(FieldPublisherID, publisherID).
		MinItems(FieldCategoryIDs, categoryIDs, 1)
	if err := validator.ErrMessage(MsgRequired); err != nil {
		return Book{}, references{}, err
	}

	validator.
		MaxLen(FieldName, name, 300).
		Int(FieldPublicationYear, year).
		Int(FieldStock, stock).
		NonNegative(FieldStock, stock).
		Int(FieldAuthorID, authorID).
		Int(FieldPublisherID, publisherID)
	for _, id := range categoryIDs {
		validator.Int(FieldCategoryIDs, id)
	}
	if err := validator.ErrMessage(MsgInvalid); err != nil {
		return Book{}, references{}, err
	}

	validator.Range(FieldPublicationYear, convert.ToInt(year), 0, maxYear)
	if err := validator.ErrMessage(MsgInvalid); err != nil {
		return Book{}, references{}, err
	}

	book := Book{
		Name:            name,
		PublicationYear: convert.ToInt(year),
		Stock:           convert.ToInt(stock),
	}
	refs := references{
		authorID:    convert.ToInt(authorID),
		publisherID: convert.ToInt(publisherID),
		categoryIDs: query.IntSlice(categoryIDs),
	}
	return book, refs, nil
}
