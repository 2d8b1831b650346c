/*
Package console implements the list, form and delete-confirmation page shared by every
entity of the library.

A page is described once by a [Schema] (columns, form fields, lookups, guards and
messages) and backed by a [Service] (validation, payload assembly and backend calls).
[Page] is the state machine the original screens repeated five times; [Handler] mounts
it on a chi router with Post/Redirect/Get semantics.

# State

Only what a screen held between clicks is kept per browser session: the form, the
selected record, the record awaiting delete confirmation and the notification. The list
itself is re-fetched from the backend on every render.
*/
package console

import (
	"context"
	"net/url"
)

// Kind selects how a form field is rendered.
type Kind string

const (
	KindText        Kind = "text"
	KindTextarea    Kind = "textarea"
	KindNumber      Kind = "number"
	KindDate        Kind = "date"
	KindEmail       Kind = "email"
	KindSelect      Kind = "select"
	KindMultiSelect Kind = "multiselect"
)

// Option is one entry of a select field.
type Option struct {
	Value string
	Label string
}

// Field describes one input of the entity form.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool

	// Lookup names the [Lookup] whose options fill a select field.
	Lookup string

	// EditOnly fields are rendered only while a record is selected.
	EditOnly bool
}

// Column is one column of the entity table.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Lookup is a related collection loaded alongside the list to fill select fields.
type Lookup struct {
	Name string
	Load func(ctx context.Context) ([]Option, error)

	// LoadFailed is shown as an error when Load fails.
	LoadFailed string
	// Empty, when set, is shown as a warning when Load returns no options.
	Empty string
}

// Messages holds the operator-facing texts of a page.
type Messages struct {
	LoadFailed string
	// Empty, when set, is shown as a warning when the list loads with no rows.
	Empty string

	Created    string
	Updated    string
	SaveFailed string

	Deleted      string
	DeleteFailed string
	DeleteTitle  string
	DeletePrompt string
}

// Guard vets a new value of a field against the selected record.
//
// Guards run only in update mode. A non-nil error rejects the change and leaves the
// form untouched.
type Guard[T any] func(selected T, value string) error

// Schema describes an entity page.
type Schema[T any] struct {
	// Resource is the URL segment of the page and the session key of its state.
	Resource string
	// Noun names one record in messages, e.g. "Author".
	Noun      string
	Title     string
	FormTitle string

	Columns []Column[T]
	Fields  []Field
	Lookups []Lookup

	Messages Messages

	ID     func(T) int
	FormOf func(T) url.Values

	Guards map[string]Guard[T]

	// CanDelete, when set, must return nil before the delete dialog opens.
	CanDelete func(T) error
}

// Service performs the backend side of a page.
type Service[T any] interface {
	List(ctx context.Context) ([]T, error)

	// Save validates form and creates a record, or updates selected when it is non-nil.
	Save(ctx context.Context, selected *T, form url.Values) error

	Delete(ctx context.Context, id int) error
}

// field returns the field named name.
func (s *Schema[T]) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
