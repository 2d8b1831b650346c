// Package notify models the transient status banner shown on every page.
package notify

import (
	"github.com/taibuivan/librarydesk/internal/platform/apperr"
)

// Severity is the level a notification is rendered with.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is a dismissible status message.
//
// The zero value is a closed banner.
type Notification struct {
	Open     bool               `json:"open"`
	Message  string             `json:"message"`
	Severity Severity           `json:"severity"`
	Details  []apperr.FieldError `json:"details,omitempty"`
}

func newNotification(severity Severity, message string) Notification {
	return Notification{Open: true, Message: message, Severity: severity}
}

// Info opens an informational banner.
func Info(message string) Notification { return newNotification(SeverityInfo, message) }

// Success opens a success banner.
func Success(message string) Notification { return newNotification(SeveritySuccess, message) }

// Warning opens a warning banner.
func Warning(message string) Notification { return newNotification(SeverityWarning, message) }

// Error opens an error banner.
func Error(message string) Notification { return newNotification(SeverityError, message) }

// FromError converts err into a banner.
//
// Errors raised by local rules keep their own message (and field details): locked
// fields become warnings, every other 4xx an error. Anything else is a backend or
// server failure and is reported with fallback only.
func FromError(err error, fallback string) Notification {
	ae := apperr.As(err)
	if ae == nil || !apperr.IsClientError(err) {
		return Error(fallback)
	}

	if ae.Code == apperr.CodeLocked {
		return Warning(ae.Message)
	}

	n := Error(ae.Message)
	n.Details = ae.Details
	return n
}

// Dismissed returns a closed copy of n.
func (n Notification) Dismissed() Notification {
	n.Open = false
	return n
}
