package publisher

import (
	"net/url"
	"strconv"

	"github.com/taibuivan/librarydesk/internal/console"
)

// NewSchema describes the publisher page.
func NewSchema() *console.Schema[Publisher] {
	return &console.Schema[Publisher]{
		Resource:  Resource,
		Noun:      "Publisher",
		Title:     "Publisher Management",
		FormTitle: "Add / Update Publisher",
		Columns: []console.Column[Publisher]{
			{Header: "Publisher Name", Value: func(p Publisher) string { return p.Name }},
			{Header: "Establishment Year", Value: func(p Publisher) string { return strconv.Itoa(p.EstablishmentYear) }},
			{Header: "Address", Value: func(p Publisher) string { return p.Address }},
		},
		Fields: []console.Field{
			{Name: FieldName, Label: "Publisher Name", Kind: console.KindText, Required: true},
			{Name: FieldEstablishmentYear, Label: "Establishment Year", Kind: console.KindNumber, Required: true},
			{Name: FieldAddress, Label: "Address", Kind: console.KindText, Required: true},
		},
		Messages: console.Messages{
			LoadFailed:   MsgLoadFailed,
			Created:      MsgSaved,
			Updated:      MsgSaved,
			SaveFailed:   MsgSaveFailed,
			Deleted:      MsgDeleted,
			DeleteFailed: MsgDeleteFailed,
			DeleteTitle:  "Delete Publisher",
			DeletePrompt: "Are you sure you want to delete this publisher? This action cannot be undone.",
		},
		ID: func(p Publisher) int { return p.ID },
		FormOf: func(p Publisher) url.Values {
			return url.Values{
				FieldName:              {p.Name},
				FieldEstablishmentYear: {strconv.Itoa(p.EstablishmentYear)},
				FieldAddress:           {p.Address},
			}
		},
	}
}
