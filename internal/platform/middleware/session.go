// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"time"

	"github.com/taibuivan/librarydesk/internal/platform/ctxutil"
	"github.com/taibuivan/librarydesk/pkg/uuidv7"
)

// SessionOptions configures the browser session cookie.
type SessionOptions struct {
	// CookieName is the name of the cookie carrying the session id.
	CookieName string
	// TTL bounds the cookie lifetime; it matches the page state TTL.
	TTL time.Duration
	// Secure marks the cookie HTTPS-only.
	Secure bool
}

// Session resolves the browser session id used to key page state.
//
// # Flow
//  1. Reuse the id from the session cookie when it is a well-formed UUID.
//  2. Otherwise mint a new UUID v7 and set the cookie.
//  3. Attach the id to the request context via [ctxutil.WithSessionID].
//
// The cookie is refreshed on every request so an active visit never expires.
func Session(options SessionOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			sessionID := ""
			if cookie, err := request.Cookie(options.CookieName); err == nil {
				if uuidv7.Valid(cookie.Value) {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = newID()
			}

			http.SetCookie(writer, &http.Cookie{
				Name:     options.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(options.TTL.Seconds()),
				HttpOnly: true,
				Secure:   options.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := ctxutil.WithSessionID(request.Context(), sessionID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
