// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/librarydesk/internal/api"
	"github.com/taibuivan/librarydesk/internal/backend/backendtest"
	"github.com/taibuivan/librarydesk/internal/catalog/book"
	"github.com/taibuivan/librarydesk/internal/console"
	"github.com/taibuivan/librarydesk/internal/platform/config"
	"github.com/taibuivan/librarydesk/internal/session"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newServer(t *testing.T, fake *backendtest.Server, checkBackend func(context.Context) error) *httptest.Server {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{
		ServerPort:     "0",
		Environment:    "test",
		SessionBackend: config.SessionMemory,
		SessionTTL:     time.Minute,
		SessionCookie:  "console_sid",
		PageSize:       5,
	}

	renderer, err := console.NewRenderer(api.Sections)
	require.NoError(t, err)
	store := session.NewMemoryStore(ctx, cfg.SessionTTL)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckBackend: checkBackend,
		CheckSession: store.Ping,
	}, discardLogger)

	server := api.NewServer(ctx, cfg, discardLogger, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Home:      console.HomeHandler(renderer, api.Sections),
		Pages: api.NewPages(api.PageDependencies{
			Client:   fake.Client(),
			Store:    store,
			Renderer: renderer,
			PageSize: cfg.PageSize,
			Logger:   discardLogger,
		}),
	})

	httpServer := httptest.NewServer(server.Handler())
	t.Cleanup(httpServer.Close)
	return httpServer
}

func readAll(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return string(raw)
}

/*
TestServer_Probes verifies liveness and readiness reporting.
*/
func TestServer_Probes(t *testing.T) {
	fake := backendtest.New(t)

	t.Run("Ready", func(t *testing.T) {
		server := newServer(t, fake, fake.Client().Ping)

		response, err := http.Get(server.URL + "/health")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, response.StatusCode)
		response.Body.Close()

		response, err = http.Get(server.URL + "/ready")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, response.StatusCode)

		var envelope struct {
			Data struct {
				Status string `json:"status"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(readAll(t, response)), &envelope))
		assert.Equal(t, "ready", envelope.Data.Status)
	})

	t.Run("Degraded", func(t *testing.T) {
		server := newServer(t, fake, func(context.Context) error { return errors.New("backend down") })

		response, err := http.Get(server.URL + "/ready")
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, response.StatusCode)
		assert.Contains(t, readAll(t, response), "degraded")
	})
}

/*
TestServer_Pages drives the home page and the book page through the full middleware chain.
*/
func TestServer_Pages(t *testing.T) {
	fake := backendtest.New(t)
	server := newServer(t, fake, nil)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	response, err := client.Get(server.URL + "/")
	require.NoError(t, err)
	home := readAll(t, response)
	for _, section := range api.Sections {
		assert.Contains(t, home, `href="`+section.Path+`"`)
	}

	serverURL, err := url.Parse(server.URL)
	require.NoError(t, err)
	require.NotEmpty(t, jar.Cookies(serverURL), "session cookie set")

	response, err = client.Get(server.URL + "/books")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, readAll(t, response), book.MsgEmpty)

	response, err = client.PostForm(server.URL+"/books", url.Values{"name": {"The Trial"}})
	require.NoError(t, err)
	assert.Contains(t, readAll(t, response), book.MsgRequired)
	assert.Empty(t, fake.Writes())
}
