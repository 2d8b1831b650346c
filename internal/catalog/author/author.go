// Package author manages the authors of the library catalog.
package author

// Resource is the backend collection and page segment of authors.
const Resource = "authors"

// Form field names.
const (
	FieldName      = "name"
	FieldBirthDate = "birthDate"
	FieldCountry   = "country"
)

// Operator-facing messages.
const (
	MsgRequired = "All fields are required."
	MsgInvalid  = "Please check the highlighted fields."

	MsgLoadFailed   = "An error occurred while loading authors."
	MsgCreated      = "Author added successfully!"
	MsgUpdated      = "Author updated successfully!"
	MsgSaveFailed   = "An error occurred during the operation. Please try again."
	MsgDeleted      = "Author deleted successfully!"
	MsgDeleteFailed = "An error occurred while deleting."
)

// Author is a writer referenced by books.
type Author struct {
	ID        int    `json:"id,omitempty"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Country   string `json:"country"`
}
