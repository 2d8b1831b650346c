// Package borrow manages the lending records of the library.
//
// A borrow links a borrower to one book. The book is fixed once the record exists, a
// return date may only be entered on an existing record, and a record without a
// return date is active and cannot be deleted.
package borrow

import (
	"strconv"

	"github.com/taibuivan/librarydesk/internal/catalog/book"
	"github.com/taibuivan/librarydesk/internal/platform/apperr"
	"github.com/taibuivan/librarydesk/pkg/pointer"
)

// Resource is the backend collection and page segment of borrows.
const Resource = "borrows"

// Form field names.
const (
	FieldBorrowerName  = "borrowerName"
	FieldBorrowerMail  = "borrowerMail"
	FieldBorrowingDate = "borrowingDate"
	FieldReturnDate    = "returnDate"
	FieldBookID        = "bookId"
)

// Operator-facing messages.
const (
	MsgRequired     = "You must fill in all required fields."
	MsgInvalid      = "Please check the highlighted fields."
	MsgDateOrder    = "The return date cannot be earlier than the borrowing date. Please check the dates."
	MsgBookLocked   = "The book cannot be changed. To change the book, delete the record and create it again."
	MsgBookMissing  = "The selected book no longer exists. Please reload the page and choose again."
	MsgActiveBorrow = "This record cannot be deleted. Please edit it and add a return date first."

	MsgLoadFailed      = "An error occurred while loading borrowed books."
	MsgBooksLoadFailed = "An error occurred while loading books."
	MsgBooksEmpty      = "There are no books in the database. Please add a book."
	MsgCreated         = "Record added successfully!"
	MsgUpdated         = "Record updated successfully!"
	MsgSaveFailed      = "An error occurred during the operation. Please try again."
	MsgDeleted         = "Record deleted successfully!"
	MsgDeleteFailed    = "An error occurred while deleting."
)

// BookSnapshot is the copy of a book carried by a borrow.
type BookSnapshot struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	PublicationYear int    `json:"publicationYear"`
	Stock           int    `json:"stock"`
}

// Snapshot copies the fields of b a borrow carries.
func Snapshot(b book.Book) BookSnapshot {
	return BookSnapshot{
		ID:              b.ID,
		Name:            b.Name,
		PublicationYear: b.PublicationYear,
		Stock:           b.Stock,
	}
}

// Borrow is a lending record as listed by the backend.
type Borrow struct {
	ID            int           `json:"id,omitempty"`
	BorrowerName  string        `json:"borrowerName"`
	BorrowerMail  string        `json:"borrowerMail"`
	BorrowingDate string        `json:"borrowingDate"`
	ReturnDate    *string       `json:"returnDate,omitempty"`
	Book          *BookSnapshot `json:"book,omitempty"`
}

// Request is the create and update payload of a borrow.
type Request struct {
	BorrowerName  string       `json:"borrowerName"`
	BorrowerMail  string       `json:"borrowerMail"`
	BorrowingDate string       `json:"borrowingDate"`
	ReturnDate    *string      `json:"returnDate,omitempty"`
	Book          BookSnapshot `json:"bookForBorrowingRequest"`
}

// Active reports whether the book has not been returned yet.
func (b Borrow) Active() bool {
	return pointer.Val(b.ReturnDate) == ""
}

// BookID returns the id of the borrowed book, or 0 when absent.
func (b Borrow) BookID() int {
	if b.Book == nil {
		return 0
	}
	return b.Book.ID
}

// BookName returns the name of the borrowed book, or "" when absent.
func (b Borrow) BookName() string {
	if b.Book == nil {
		return ""
	}
	return b.Book.Name
}

// CheckBookChange refuses to point an existing borrow at another book.
//
// An empty value is left to required-field validation.
func CheckBookChange(selected Borrow, value string) error {
	if value == "" || value == strconv.Itoa(selected.BookID()) {
		return nil
	}
	return apperr.Locked(MsgBookLocked)
}

// CheckDelete refuses to delete an active borrow.
func CheckDelete(b Borrow) error {
	if b.Active() {
		return apperr.Conflict(MsgActiveBorrow)
	}
	return nil
}
