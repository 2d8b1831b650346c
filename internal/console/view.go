package console

import (
	"slices"

	"github.com/taibuivan/librarydesk/internal/notify"
	"github.com/taibuivan/librarydesk/pkg/pagination"
	"github.com/taibuivan/librarydesk/pkg/slice"
)

// PageView is the template data of an entity page.
type PageView struct {
	Resource  string
	Title     string
	FormTitle string

	Editing     bool
	SubmitLabel string

	Headers []string
	Rows    []RowView
	Fields  []FieldView

	Notification notify.Notification
	Delete       *DeleteView
	Pagination   pagination.Meta

	Nav []Section
}

// RowView is one table row.
type RowView struct {
	ID    int
	Cells []string
}

// FieldView is one rendered form input.
type FieldView struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	// Guarded fields are changed through the page's change action in update mode.
	Guarded bool
	Value   string
	Options []OptionView
}

// OptionView is one select option with its selection state.
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// DeleteView is the open confirmation dialog.
type DeleteView struct {
	Title  string
	Prompt string
}

// View renders the page into template data, showing the rows of params' page.
func (p *Page[T]) View(params pagination.Params) PageView {
	total := len(p.rows)
	start, end := params.Window(total)

	view := PageView{
		Resource:     p.schema.Resource,
		Title:        p.schema.Title,
		FormTitle:    p.schema.FormTitle,
		Editing:      p.Editing(),
		SubmitLabel:  "Add",
		Headers:      slice.Map(p.schema.Columns, func(c Column[T]) string { return c.Header }),
		Notification: p.state.Notification,
		Pagination:   pagination.NewMeta(params.Page, params.Limit, total),
	}
	if view.Editing {
		view.SubmitLabel = "Update"
	}

	for _, row := range p.rows[start:end] {
		view.Rows = append(view.Rows, RowView{
			ID:    p.schema.ID(row),
			Cells: slice.Map(p.schema.Columns, func(c Column[T]) string { return c.Value(row) }),
		})
	}

	for _, field := range p.schema.Fields {
		if field.EditOnly && !view.Editing {
			continue
		}
		view.Fields = append(view.Fields, p.fieldView(field))
	}

	if p.state.PendingDelete != nil {
		view.Delete = &DeleteView{
			Title:  p.schema.Messages.DeleteTitle,
			Prompt: p.schema.Messages.DeletePrompt,
		}
	}

	return view
}

func (p *Page[T]) fieldView(field Field) FieldView {
	values := p.state.Form[field.Name]

	view := FieldView{
		Name:     field.Name,
		Label:    field.Label,
		Kind:     field.Kind,
		Required: field.Required,
	}
	if p.Editing() {
		_, view.Guarded = p.schema.Guards[field.Name]
	}
	if len(values) > 0 {
		view.Value = values[0]
	}

	if field.Lookup != "" {
		view.Options = slice.Map(p.options[field.Lookup], func(o Option) OptionView {
			return OptionView{
				Value:    o.Value,
				Label:    o.Label,
				Selected: slices.Contains(values, o.Value),
			}
		})
	}

	return view
}
