package notify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/librarydesk/internal/notify"
	"github.com/taibuivan/librarydesk/internal/platform/apperr"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		severity notify.Severity
		message  string
	}{
		{"validation", apperr.ValidationError("Fill in every field"), notify.SeverityError, "Fill in every field"},
		{"restricted_update", apperr.Unprocessable("Delete and recreate instead"), notify.SeverityError, "Delete and recreate instead"},
		{"active_borrow", apperr.Conflict("Add a return date first"), notify.SeverityError, "Add a return date first"},
		{"locked_field", apperr.Locked("The book cannot be changed"), notify.SeverityWarning, "The book cannot be changed"},
		{"backend_failure", apperr.BadGateway(errors.New("dial tcp")), notify.SeverityError, "fallback"},
		{"plain_error", errors.New("boom"), notify.SeverityError, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := notify.FromError(tt.err, "fallback")
			assert.True(t, n.Open)
			assert.Equal(t, tt.severity, n.Severity)
			assert.Equal(t, tt.message, n.Message)
		})
	}
}

func TestFromError_KeepsFieldDetails(t *testing.T) {
	err := apperr.ValidationError("Fill in every field", apperr.FieldError{Field: "name", Message: "This field is required"})

	n := notify.FromError(err, "fallback")
	assert.Len(t, n.Details, 1)
	assert.Equal(t, "name", n.Details[0].Field)
}

func TestDismissed(t *testing.T) {
	n := notify.Success("Saved")
	closed := n.Dismissed()

	assert.False(t, closed.Open)
	assert.Equal(t, "Saved", closed.Message)
	assert.True(t, n.Open)
}
