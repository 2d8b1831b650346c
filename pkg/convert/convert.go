// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions between form strings and numbers.

Form values are validated before they are converted, so these helpers trade error
returns for defaults. Do not use them on unvalidated input where a malformed value
must be told apart from zero.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToInt converts a string to an integer, silencing parsing errors.
// Surrounding whitespace is ignored; it returns 0 if the string cannot be parsed.
func ToInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// FromInt formats an integer for a form field, leaving zero blank when blankZero is set.
func FromInt(v int, blankZero bool) string {
	if v == 0 && blankZero {
		return ""
	}
	return strconv.Itoa(v)
}
