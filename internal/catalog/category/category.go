// Package category manages the book categories of the library catalog.
package category

// Resource is the backend collection and page segment of categories.
const Resource = "categories"

// Form field names.
const (
	FieldName        = "name"
	FieldDescription = "description"
)

// Operator-facing messages.
const (
	MsgRequired   = "All fields are required."
	MsgInvalid    = "Please check the highlighted fields."
	MsgRestricted = "A category's name and description must be updated together. To change only the description, delete the category and add it again."

	MsgLoadFailed   = "An error occurred while loading categories."
	MsgCreated      = "Category added successfully!"
	MsgUpdated      = "Category updated successfully!"
	MsgSaveFailed   = "An error occurred during the operation. Please try again."
	MsgDeleted      = "Category deleted successfully!"
	MsgDeleteFailed = "An error occurred while deleting."
)

// Category groups books; a book belongs to one or more categories.
type Category struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// restricted reports whether an update would change the description alone.
func restricted(selected, updated Category) bool {
	return updated.Name == selected.Name && updated.Description != selected.Description
}
