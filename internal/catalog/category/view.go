package category

import (
	"net/url"

	"github.com/taibuivan/librarydesk/internal/console"
)

// NewSchema describes the category page.
func NewSchema() *console.Schema[Category] {
	return &console.Schema[Category]{
		Resource:  Resource,
		Noun:      "Category",
		Title:     "Category Management",
		FormTitle: "Add / Update Category",
		Columns: []console.Column[Category]{
			{Header: "Category Name", Value: func(c Category) string { return c.Name }},
			{Header: "Description", Value: func(c Category) string { return c.Description }},
		},
		Fields: []console.Field{
			{Name: FieldName, Label: "Category Name", Kind: console.KindText, Required: true},
			{Name: FieldDescription, Label: "Description", Kind: console.KindTextarea, Required: true},
		},
		Messages: console.Messages{
			LoadFailed:   MsgLoadFailed,
			Created:      MsgCreated,
			Updated:      MsgUpdated,
			SaveFailed:   MsgSaveFailed,
			Deleted:      MsgDeleted,
			DeleteFailed: MsgDeleteFailed,
			DeleteTitle:  "Delete Category",
			DeletePrompt: "Are you sure you want to delete this category? This action cannot be undone.",
		},
		ID: func(c Category) int { return c.ID },
		FormOf: func(c Category) url.Values {
			return url.Values{
				FieldName:        {c.Name},
				FieldDescription: {c.Description},
			}
		},
	}
}
