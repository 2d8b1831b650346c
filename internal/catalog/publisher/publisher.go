// Package publisher manages the publishing houses of the library catalog.
package publisher

// Resource is the backend collection and page segment of publishers.
const Resource = "publishers"

// Form field names.
const (
	FieldName              = "name"
	FieldEstablishmentYear = "establishmentYear"
	FieldAddress           = "address"
)

// Operator-facing messages.
const (
	MsgRequired   = "All fields are required."
	MsgInvalid    = "Please check the highlighted fields."
	MsgRestricted = "Only the publisher name and establishment year can be updated."

	MsgLoadFailed   = "An error occurred while loading publishers."
	MsgSaved        = "Operation completed successfully!"
	MsgSaveFailed   = "An error occurred during the operation."
	MsgDeleted      = "Publisher deleted successfully!"
	MsgDeleteFailed = "An error occurred while deleting."
)

// Publisher is a publishing house referenced by books.
type Publisher struct {
	ID                int    `json:"id,omitempty"`
	Name              string `json:"name"`
	EstablishmentYear int    `json:"establishmentYear"`
	Address           string `json:"address"`
}

// restricted reports whether an update would change the address alone.
//
// Such updates are refused; the operator deletes and recreates the publisher instead.
func restricted(selected, updated Publisher) bool {
	return updated.Name == selected.Name &&
		updated.EstablishmentYear == selected.EstablishmentYear &&
		updated.Address != selected.Address
}
