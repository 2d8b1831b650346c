package author

import (
	"net/url"

	"github.com/taibuivan/librarydesk/internal/console"
)

// NewSchema describes the author page.
func NewSchema() *console.Schema[Author] {
	return &console.Schema[Author]{
		Resource:  Resource,
		Noun:      "Author",
		Title:     "Author Management",
		FormTitle: "Add / Update Author",
		Columns: []console.Column[Author]{
			{Header: "Author Name", Value: func(a Author) string { return a.Name }},
			{Header: "Birth Date", Value: func(a Author) string { return a.BirthDate }},
			{Header: "Country", Value: func(a Author) string { return a.Country }},
		},
		Fields: []console.Field{
			{Name: FieldName, Label: "Author Name", Kind: console.KindText, Required: true},
			{Name: FieldBirthDate, Label: "Birth Date", Kind: console.KindDate, Required: true},
			{Name: FieldCountry, Label: "Country", Kind: console.KindText, Required: true},
		},
		Messages: console.Messages{
			LoadFailed:   MsgLoadFailed,
			Created:      MsgCreated,
			Updated:      MsgUpdated,
			SaveFailed:   MsgSaveFailed,
			Deleted:      MsgDeleted,
			DeleteFailed: MsgDeleteFailed,
			DeleteTitle:  "Delete Author",
			DeletePrompt: "Are you sure you want to delete this author? This action cannot be undone.",
		},
		ID: func(a Author) int { return a.ID },
		FormOf: func(a Author) url.Values {
			return url.Values{
				FieldName:      {a.Name},
				FieldBirthDate: {a.BirthDate},
				FieldCountry:   {a.Country},
			}
		},
	}
}
