package console

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/taibuivan/librarydesk/internal/notify"
	"github.com/taibuivan/librarydesk/internal/platform/apperr"
	"github.com/taibuivan/librarydesk/internal/platform/ctxutil"
)

// State is the part of a page that survives between requests of one session.
type State[T any] struct {
	// Selected is the record being edited; nil means create mode.
	Selected *T `json:"selected,omitempty"`
	// Form holds the current input values keyed by field name.
	Form url.Values `json:"form,omitempty"`
	// PendingDelete is the record whose delete confirmation dialog is open.
	PendingDelete *T                  `json:"pendingDelete,omitempty"`
	Notification  notify.Notification `json:"notification"`
}

// Page is the state machine of one entity page.
//
// A Page is built per request from the stored [State]; it is not safe for
// concurrent use.
type Page[T any] struct {
	schema  *Schema[T]
	service Service[T]
	state   State[T]

	rows    []T
	options map[string][]Option
}

// NewPage restores a page from state.
func NewPage[T any](schema *Schema[T], service Service[T], state State[T]) *Page[T] {
	return &Page[T]{
		schema:  schema,
		service: service,
		state:   state,
		options: make(map[string][]Option),
	}
}

// State returns the state to persist after the current operation.
func (p *Page[T]) State() State[T] { return p.state }

// Rows returns the list fetched by the last [Page.Load].
func (p *Page[T]) Rows() []T { return p.rows }

// Options returns the options fetched for the named lookup.
func (p *Page[T]) Options(lookup string) []Option { return p.options[lookup] }

// Editing reports whether a record is selected (update mode).
func (p *Page[T]) Editing() bool { return p.state.Selected != nil }

// Notification returns the current notification.
func (p *Page[T]) Notification() notify.Notification { return p.state.Notification }

// # Mount

// Load fetches the list and every lookup of the page.
//
// Failures leave the affected collection empty and open an error notification; an
// empty result opens the schema's warning when one is defined. A rejected action
// (validation error, locked field, blocked delete) did not re-fetch before, so its
// notification is kept over whatever the fetch would report.
func (p *Page[T]) Load(ctx context.Context) {
	announce := !p.state.Notification.Open || p.state.Notification.Severity == notify.SeveritySuccess
	report := func(n notify.Notification) {
		if announce {
			p.state.Notification = n
		}
	}

	logger := ctxutil.GetLogger(ctx)
	messages := p.schema.Messages

	rows, err := p.service.List(ctx)
	switch {
	case err != nil:
		logger.WarnContext(ctx, "page_list_failed",
			slog.String("resource", p.schema.Resource),
			slog.Any("error", err),
		)
		p.rows = nil
		report(notify.Error(messages.LoadFailed))
	case len(rows) == 0 && messages.Empty != "":
		p.rows = rows
		report(notify.Warning(messages.Empty))
	default:
		p.rows = rows
	}

	for _, lookup := range p.schema.Lookups {
		options, err := lookup.Load(ctx)
		switch {
		case err != nil:
			logger.WarnContext(ctx, "page_lookup_failed",
				slog.String("resource", p.schema.Resource),
				slog.String("lookup", lookup.Name),
				slog.Any("error", err),
			)
			p.options[lookup.Name] = nil
			report(notify.Error(lookup.LoadFailed))
		case len(options) == 0 && lookup.Empty != "":
			p.options[lookup.Name] = options
			report(notify.Warning(lookup.Empty))
		default:
			p.options[lookup.Name] = options
		}
	}
}

// # Form

// Select copies the record with id into the form and switches to update mode.
func (p *Page[T]) Select(ctx context.Context, id int) {
	row, err := p.find(ctx, id)
	if err != nil {
		p.state.Notification = notify.FromError(err, p.schema.Messages.LoadFailed)
		return
	}

	p.state.Selected = &row
	p.state.Form = p.schema.FormOf(row)
}

// Cancel leaves update mode and clears the form without contacting the backend.
func (p *Page[T]) Cancel() {
	p.state.Selected = nil
	p.state.Form = nil
}

// Change sets one form field.
//
// In update mode a guarded field keeps its value when the guard rejects the new one,
// and the guard's error becomes the notification.
func (p *Page[T]) Change(field, value string) {
	if _, ok := p.schema.field(field); !ok {
		return
	}

	if err := p.guard(field, value); err != nil {
		p.state.Notification = notify.FromError(err, p.schema.Messages.SaveFailed)
		return
	}

	if p.state.Form == nil {
		p.state.Form = url.Values{}
	}
	p.state.Form.Set(field, value)
}

// Submit creates or updates a record from values.
//
// Guards and validation run first and never reach the backend when they fail. On
// success the page returns to create mode with a cleared form; the caller re-fetches.
func (p *Page[T]) Submit(ctx context.Context, values url.Values) {
	form := p.formFrom(values)
	messages := p.schema.Messages

	for _, field := range p.schema.Fields {
		if err := p.guard(field.Name, form.Get(field.Name)); err != nil {
			form[field.Name] = p.state.Form[field.Name]
			p.state.Form = form
			p.state.Notification = notify.FromError(err, messages.SaveFailed)
			return
		}
	}

	editing := p.Editing()
	if err := p.service.Save(ctx, p.state.Selected, form); err != nil {
		if !apperr.IsClientError(err) {
			ctxutil.GetLogger(ctx).WarnContext(ctx, "page_save_failed",
				slog.String("resource", p.schema.Resource),
				slog.Bool("editing", editing),
				slog.Any("error", err),
			)
		}
		p.state.Form = form
		p.state.Notification = notify.FromError(err, messages.SaveFailed)
		return
	}

	message := messages.Created
	if editing {
		message = messages.Updated
	}

	p.Cancel()
	p.state.Notification = notify.Success(message)
}

// # Delete

// RequestDelete opens the confirmation dialog for the record with id, unless the
// schema's delete guard refuses it.
func (p *Page[T]) RequestDelete(ctx context.Context, id int) {
	row, err := p.find(ctx, id)
	if err != nil {
		p.state.Notification = notify.FromError(err, p.schema.Messages.LoadFailed)
		return
	}

	if p.schema.CanDelete != nil {
		if err := p.schema.CanDelete(row); err != nil {
			p.state.Notification = notify.FromError(err, p.schema.Messages.DeleteFailed)
			return
		}
	}

	p.state.PendingDelete = &row
}

// ConfirmDelete deletes the pending record. The dialog closes whatever the outcome.
func (p *Page[T]) ConfirmDelete(ctx context.Context) {
	if p.state.PendingDelete == nil {
		return
	}

	id := p.schema.ID(*p.state.PendingDelete)
	p.state.PendingDelete = nil

	if err := p.service.Delete(ctx, id); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "page_delete_failed",
			slog.String("resource", p.schema.Resource),
			slog.Int("id", id),
			slog.Any("error", err),
		)
		p.state.Notification = notify.FromError(err, p.schema.Messages.DeleteFailed)
		return
	}

	if p.state.Selected != nil && p.schema.ID(*p.state.Selected) == id {
		p.Cancel()
	}
	p.state.Notification = notify.Success(p.schema.Messages.Deleted)
}

// CancelDelete closes the confirmation dialog.
func (p *Page[T]) CancelDelete() {
	p.state.PendingDelete = nil
}

// Dismiss closes the notification.
func (p *Page[T]) Dismiss() {
	p.state.Notification = p.state.Notification.Dismissed()
}

// # Helpers

func (p *Page[T]) guard(field, value string) error {
	if p.state.Selected == nil {
		return nil
	}

	guard, ok := p.schema.Guards[field]
	if !ok {
		return nil
	}
	return guard(*p.state.Selected, value)
}

// find looks a record up in a fresh list; rows loaded by Load are used when present.
func (p *Page[T]) find(ctx context.Context, id int) (T, error) {
	rows := p.rows
	if rows == nil {
		fetched, err := p.service.List(ctx)
		if err != nil {
			var zero T
			return zero, err
		}
		rows = fetched
	}

	for _, row := range rows {
		if p.schema.ID(row) == id {
			return row, nil
		}
	}

	var zero T
	return zero, apperr.NotFound(p.schema.Noun)
}

// formFrom keeps the values of the schema's fields only.
func (p *Page[T]) formFrom(values url.Values) url.Values {
	form := url.Values{}
	for _, field := range p.schema.Fields {
		if v, ok := values[field.Name]; ok {
			form[field.Name] = v
		}
	}
	return form
}
