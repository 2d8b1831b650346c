package console_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/librarydesk/internal/console"
	"github.com/taibuivan/librarydesk/internal/platform/middleware"
	"github.com/taibuivan/librarydesk/internal/session"
)

func newConsoleServer(t *testing.T, service *fakeService) (*httptest.Server, *http.Client) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	nav := []console.Section{{Title: "Items", Description: "Manage items.", Path: "/items"}}
	renderer, err := console.NewRenderer(nav)
	require.NoError(t, err)

	store := session.NewMemoryStore(ctx, time.Minute)
	handler := console.NewHandler[item](itemSchema(), service, store, renderer, 5)

	router := chi.NewRouter()
	router.Use(middleware.Session(middleware.SessionOptions{CookieName: "sid", TTL: time.Minute}))
	router.Get("/", console.HomeHandler(renderer, nav))
	router.Mount("/"+handler.Resource(), handler.Routes())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return server, &http.Client{Jar: jar}
}

func body(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return string(raw)
}

/*
TestHandler_SubmitRedirectsAndNotifiesOnce drives a create through Post/Redirect/Get.
*/
func TestHandler_SubmitRedirectsAndNotifiesOnce(t *testing.T) {
	service := seeded()
	server, client := newConsoleServer(t, service)

	response, err := client.Get(server.URL + "/items")
	require.NoError(t, err)
	page := body(t, response)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, page, "Kafka")
	assert.Contains(t, page, "Shelf B")
	listsBefore := service.lists

	response, err = client.PostForm(server.URL+"/items", url.Values{"name": {"Borges"}, "shelf": {"A"}})
	require.NoError(t, err)
	page = body(t, response)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "/items", response.Request.URL.Path)
	assert.Contains(t, page, "Item added.")
	assert.Len(t, service.saves, 1)
	assert.Equal(t, listsBefore+1, service.lists, "list re-fetched by the redirected GET only")

	response, err = client.Get(server.URL + "/items")
	require.NoError(t, err)
	assert.NotContains(t, body(t, response), "Item added.")
}

/*
TestHandler_EditAndDeleteFlow covers the edit toggle and the confirmation dialog.
*/
func TestHandler_EditAndDeleteFlow(t *testing.T) {
	service := seeded()
	server, client := newConsoleServer(t, service)

	response, err := client.PostForm(server.URL+"/items/1/edit", nil)
	require.NoError(t, err)
	page := body(t, response)
	assert.Contains(t, page, `value="Kafka"`)
	assert.Contains(t, page, "Update")
	assert.Contains(t, page, `action="/items/cancel"`)

	response, err = client.PostForm(server.URL+"/items/1/delete", nil)
	require.NoError(t, err)
	assert.Contains(t, body(t, response), "Delete Item")

	response, err = client.PostForm(server.URL+"/items/delete/confirm", nil)
	require.NoError(t, err)
	page = body(t, response)
	assert.Contains(t, page, "Item deleted.")
	assert.NotContains(t, page, `role="dialog"`)
	assert.Equal(t, []int{1}, service.deletes)
}

/*
TestHandler_InvalidID verifies that a malformed id is rejected before the page runs.
*/
func TestHandler_InvalidID(t *testing.T) {
	service := seeded()
	server, client := newConsoleServer(t, service)

	response, err := client.PostForm(server.URL+"/items/abc/edit", nil)
	require.NoError(t, err)
	defer response.Body.Close()

	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Zero(t, service.lists)
}

/*
TestHandler_Home renders the navigation shell.
*/
func TestHandler_Home(t *testing.T) {
	server, client := newConsoleServer(t, seeded())

	response, err := client.Get(server.URL + "/")
	require.NoError(t, err)
	page := body(t, response)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.True(t, strings.Contains(page, "Manage items."))
	assert.Contains(t, page, `href="/items"`)
}

/*
TestHandler_HugePageNumber verifies that an out-of-range page number renders the last page.
*/
func TestHandler_HugePageNumber(t *testing.T) {
	server, client := newConsoleServer(t, seeded())

	response, err := client.Get(server.URL + "/items?page=1844674407370955163")
	require.NoError(t, err)
	page := body(t, response)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, page, "Kafka")
}

/*
TestHandler_ChangeGuardedField posts the guarded field's change button in update mode.
*/
func TestHandler_ChangeGuardedField(t *testing.T) {
	service := seeded()
	server, client := newConsoleServer(t, service)

	response, err := client.Get(server.URL + "/items")
	require.NoError(t, err)
	assert.NotContains(t, body(t, response), `formaction="/items/change"`, "no change button in create mode")

	response, err = client.PostForm(server.URL+"/items/1/edit", nil)
	require.NoError(t, err)
	assert.Contains(t, body(t, response), `formaction="/items/change"`)

	response, err = client.PostForm(server.URL+"/items/change", url.Values{"field": {"shelf"}, "name": {"Kafka"}, "shelf": {"B"}})
	require.NoError(t, err)
	page := body(t, response)

	assert.Equal(t, "/items", response.Request.URL.Path)
	assert.Contains(t, page, "The shelf cannot be changed.")
	assert.Contains(t, page, `<option value="A" selected>`)
	assert.Empty(t, service.saves)
}
