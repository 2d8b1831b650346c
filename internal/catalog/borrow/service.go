package borrow

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/taibuivan/librarydesk/internal/catalog/book"
	"github.com/taibuivan/librarydesk/internal/platform/validate"
	"github.com/taibuivan/librarydesk/pkg/convert"
	"github.com/taibuivan/librarydesk/pkg/pointer"
	"github.com/taibuivan/librarydesk/pkg/slice"
)

type Service struct {
	repo   Repository
	books  BookSource
	logger *slog.Logger
}

func NewService(repo Repository, books BookSource, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		books:  books,
		logger: logger,
	}
}

func (service *Service) List(ctx context.Context) ([]Borrow, error) {
	return service.repo.List(ctx)
}

// Save creates a borrow, or updates selected when it is non-nil.
//
// # Rules
//
//   - The return date is read only when updating and is omitted from the payload when empty.
//   - When updating, the return date must not precede the borrowing date.
//   - The book of an existing borrow cannot change.
//   - The payload carries a snapshot of the chosen book taken from a fresh book list.
func (service *Service) Save(ctx context.Context, selected *Borrow, form url.Values) error {
	request, bookID, err := parseForm(form, selected != nil)
	if err != nil {
		return err
	}

	if selected != nil {
		if err := CheckBookChange(*selected, form.Get(FieldBookID)); err != nil {
			return err
		}
	}

	books, err := service.books.List(ctx)
	if err != nil {
		return err
	}
	chosen, ok := slice.Find(books, func(b book.Book) bool { return b.ID == bookID })
	missing := &validate.Validator{}
	missing.Custom(FieldBookID, !ok, "Book no longer exists")
	if err := missing.ErrMessage(MsgBookMissing); err != nil {
		return err
	}
	request.Book = Snapshot(chosen)

	if selected == nil {
		if err := service.repo.Create(ctx, request); err != nil {
			return err
		}
		service.logger.InfoContext(ctx, "borrow_created",
			slog.Int("book_id", bookID),
			slog.String("borrowing_date", request.BorrowingDate),
		)
		return nil
	}

	if err := service.repo.Update(ctx, selected.ID, request); err != nil {
		return err
	}
	service.logger.InfoContext(ctx, "borrow_updated",
		slog.Int("borrow_id", selected.ID),
		slog.Bool("returned", request.ReturnDate != nil),
	)
	return nil
}

func (service *Service) Delete(ctx context.Context, id int) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.WarnContext(ctx, "borrow_deleted", slog.Int("borrow_id", id))
	return nil
}

func parseForm(form url.Values, editing bool) (Request, int, error) {
	name := strings.TrimSpace(form.Get(FieldBorrowerName))
	mail := strings.TrimSpace(form.Get(FieldBorrowerMail))
	borrowed := strings.TrimSpace(form.Get(FieldBorrowingDate))
	bookID := strings.TrimSpace(form.Get(FieldBookID))

	returned := ""
	if editing {
		returned = strings.TrimSpace(form.Get(FieldReturnDate))
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldBorrowerName, name).
		Required(FieldBorrowerMail, mail).
		Required(FieldBorrowingDate, borrowed).
		Required(FieldBookID, bookID)
	if err := validator.ErrMessage(MsgRequired); err != nil {
		return Request{}, 0, err
	}

	validator.
		MaxLen(FieldBorrowerName, name, 200).
		Email(FieldBorrowerMail, mail).
		Date(FieldBorrowingDate, borrowed).
		Date(FieldReturnDate, returned).
		Int(FieldBookID, bookID)
	if err := validator.ErrMessage(MsgInvalid); err != nil {
		return Request{}, 0, err
	}

	validator.NotBefore(FieldReturnDate, returned, borrowed)
	if err := validator.ErrMessage(MsgDateOrder); err != nil {
		return Request{}, 0, err
	}

	return Request{
		BorrowerName:  name,
		BorrowerMail:  mail,
		BorrowingDate: borrowed,
		ReturnDate:    pointer.NonZero(returned),
	}, convert.ToInt(bookID), nil
}
