// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses repeated form and query values.
package query

import (
	"strconv"
	"strings"
)

// IntSlice parses repeated values (e.g. a multi-select) into integers.
// Blank and invalid entries are skipped.
func IntSlice(vals []string) []int {
	var res []int
	for _, v := range vals {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			res = append(res, i)
		}
	}
	return res
}

// IntStrings formats integers for a repeated form field.
func IntStrings(vals []int) []string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		res = append(res, strconv.Itoa(v))
	}
	return res
}
