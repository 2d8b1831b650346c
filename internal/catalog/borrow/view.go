package borrow

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/taibuivan/librarydesk/internal/catalog/book"
	"github.com/taibuivan/librarydesk/internal/console"
	"github.com/taibuivan/librarydesk/pkg/convert"
	"github.com/taibuivan/librarydesk/pkg/pointer"
	"github.com/taibuivan/librarydesk/pkg/slice"
)

// LookupBooks names the book picker lookup.
const LookupBooks = "books"

// NewSchema describes the borrow page. The book picker shows each book's stock.
func NewSchema(books BookSource) *console.Schema[Borrow] {
	return &console.Schema[Borrow]{
		Resource:  Resource,
		Noun:      "Borrow",
		Title:     "Book Borrowing",
		FormTitle: "Borrow / Update Book",
		Columns: []console.Column[Borrow]{
			{Header: "Book", Value: Borrow.BookName},
			{Header: "Borrower", Value: func(b Borrow) string { return b.BorrowerName }},
			{Header: "E-mail", Value: func(b Borrow) string { return b.BorrowerMail }},
			{Header: "Borrowing Date", Value: func(b Borrow) string { return b.BorrowingDate }},
			{Header: "Return Date", Value: func(b Borrow) string { return pointer.Val(b.ReturnDate) }},
		},
		Fields: []console.Field{
			{Name: FieldBorrowerName, Label: "Borrower", Kind: console.KindText, Required: true},
			{Name: FieldBorrowerMail, Label: "E-mail", Kind: console.KindEmail, Required: true},
			{Name: FieldBorrowingDate, Label: "Borrowing Date", Kind: console.KindDate, Required: true},
			{Name: FieldReturnDate, Label: "Return Date", Kind: console.KindDate, EditOnly: true},
			{Name: FieldBookID, Label: "Book", Kind: console.KindSelect, Required: true, Lookup: LookupBooks},
		},
		Lookups: []console.Lookup{{
			Name:       LookupBooks,
			LoadFailed: MsgBooksLoadFailed,
			Empty:      MsgBooksEmpty,
			Load: func(ctx context.Context) ([]console.Option, error) {
				list, err := books.List(ctx)
				return slice.Map(list, bookOption), err
			},
		}},
		Messages: console.Messages{
			LoadFailed:   MsgLoadFailed,
			Created:      MsgCreated,
			Updated:      MsgUpdated,
			SaveFailed:   MsgSaveFailed,
			Deleted:      MsgDeleted,
			DeleteFailed: MsgDeleteFailed,
			DeleteTitle:  "Delete Confirmation",
			DeletePrompt: "Are you sure you want to delete this borrowing record? This action cannot be undone.",
		},
		ID:     func(b Borrow) int { return b.ID },
		FormOf: formOf,
		Guards: map[string]console.Guard[Borrow]{
			FieldBookID: CheckBookChange,
		},
		CanDelete: CheckDelete,
	}
}

func bookOption(b book.Book) console.Option {
	return console.Option{
		Value: strconv.Itoa(b.ID),
		Label: fmt.Sprintf("%s (Stock: %d)", b.Name, b.Stock),
	}
}

func formOf(b Borrow) url.Values {
	return url.Values{
		FieldBorrowerName:  {b.BorrowerName},
		FieldBorrowerMail:  {b.BorrowerMail},
		FieldBorrowingDate: {b.BorrowingDate},
		FieldReturnDate:    {pointer.Val(b.ReturnDate)},
		FieldBookID:        {convert.FromInt(b.BookID(), true)},
	}
}
