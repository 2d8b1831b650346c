// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and form decoding,
ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/librarydesk/internal/platform/apperr"
	"github.com/taibuivan/librarydesk/internal/platform/validate"
)

// maxFormBytes caps a submitted form; console forms carry a handful of short fields.
const maxFormBytes = 64 << 10

/*
Form parses a urlencoded form body and returns its values.

Returns:
  - url.Values: the posted fields, query string excluded
  - error: validate.ErrInvalidForm if parsing fails
*/
func Form(writer http.ResponseWriter, request *http.Request) (url.Values, error) {
	request.Body = http.MaxBytesReader(writer, request.Body, maxFormBytes)
	if err := request.ParseForm(); err != nil {
		return nil, validate.ErrInvalidForm
	}
	return request.PostForm, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ID retrieves a named URL parameter and parses it as a positive integer id.

Returns:
  - int: the id
  - error: apperr.NotFound if the parameter is not a positive integer
*/
func ID(request *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(Param(request, name))
	if err != nil || id <= 0 {
		return 0, apperr.NotFound("Record")
	}
	return id, nil
}
