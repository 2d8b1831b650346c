// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for paged tables.
//
// # Overview
//
// The backend returns whole collections, so paging happens in memory: the page
// number comes from the query string and [Params.Window] picks the slice to render.
package pagination

import (
	"math"
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of rows per page if not specified.
	DefaultLimit = 5
	// MaxLimit is the upper bound for rows per page.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the index of the first row of [Page].
//
// An offset that does not fit in an int saturates at [math.MaxInt].
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Window returns the half-open [start, end) range of rows to show out of total.
//
// A page past the end yields the last page, so deleting the only row of the
// final page does not leave the table empty.
func (p Params) Window(total int) (start, end int) {
	if total == 0 || p.Limit <= 0 {
		return 0, 0
	}

	lastPage := (total + p.Limit - 1) / p.Limit
	if p.Page > lastPage {
		p.Page = lastPage
	}

	start = p.Offset()

	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// Meta is the pagination metadata rendered under a table.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata.
//
// Page is clamped into [1, TotalPages] so it always matches [Params.Window].
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// HasPrev reports whether a previous page exists.
func (m Meta) HasPrev() bool { return m.Page > 1 }

// HasNext reports whether a next page exists.
func (m Meta) HasNext() bool { return m.Page < m.TotalPages }

// FromRequest parses the "page" query parameter; limit is fixed by the caller.
//
// # Clamping
//
// Invalid or negative pages become [DefaultPage]; limits outside (0, MaxLimit]
// become [DefaultLimit].
func FromRequest(r *http.Request, limit int) Params {
	page := parseIntParam(r, "page", DefaultPage)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam reads an integer query parameter with a fallback.
func parseIntParam(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
