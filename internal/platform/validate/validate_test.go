// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/librarydesk/internal/platform/apperr"
	"github.com/taibuivan/librarydesk/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Sabahattin Ali", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "reader@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "reader@", false},
		{"display_name_rejected", "Reader <reader@example.com>", false},
		{"surrounding_space_trimmed", " reader@example.com ", true},
		{"empty_left_to_required", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("borrowerMail", tt.email)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Numbers covers the integer and non-negative rules used for years and stock.
*/
func TestValidator_Numbers(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"zero", "0", false},
		{"positive", "12", false},
		{"negative", "-1", true},
		{"not_a_number", "twelve", true},
		{"empty_left_to_required", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Int("stock", tt.value).NonNegative("stock", tt.value)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Dates verifies date parsing and the ordering rule for return dates.
*/
func TestValidator_Dates(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		floor    string
		hasError bool
	}{
		{"same_day", "2024-05-01", "2024-05-01", false},
		{"after", "2024-05-02", "2024-05-01", false},
		{"before", "2024-04-30", "2024-05-01", true},
		{"unparsable_floor_ignored", "2024-04-30", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.NotBefore("returnDate", tt.value, tt.floor)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}

	v := &validate.Validator{}
	v.Date("birthDate", "01/01/1950")
	assert.True(t, v.HasErrors())

	v = &validate.Validator{}
	v.Date("birthDate", "2023-02-29")
	assert.True(t, v.HasErrors(), "not a calendar day")

	v = &validate.Validator{}
	v.Date("birthDate", "2024-02-29").Date("returnDate", "")
	assert.False(t, v.HasErrors())
}

/*
TestValidator_MinItems verifies that blank selections do not count.
*/
func TestValidator_MinItems(t *testing.T) {
	v := &validate.Validator{}
	v.MinItems("categoryIds", []string{"", " "}, 1)
	assert.True(t, v.HasErrors())

	v = &validate.Validator{}
	v.MinItems("categoryIds", []string{"3"}, 1)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").                  // Fails
		MaxLen("name", "abcdef", 5).           // Fails
		Email("borrowerMail", "not-an-email"). // Fails
		ErrMessage("Fill in every required field.")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Equal(t, "Fill in every required field.", ae.Message)
	assert.Len(t, ae.Details, 3)
}

/*
TestValidator_Range verifies the inclusive bounds used for years.
*/
func TestValidator_Range(t *testing.T) {
	v := &validate.Validator{}
	v.Range("publicationYear", 0, 0, 9999).Range("publicationYear", 9999, 0, 9999)
	assert.False(t, v.HasErrors())

	v.Range("publicationYear", 10000, 0, 9999).Range("establishmentYear", -1, 0, 9999)
	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
}
