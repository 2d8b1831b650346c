package console

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/librarydesk/internal/platform/apperr"
	"github.com/taibuivan/librarydesk/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/librarydesk/internal/platform/request"
	"github.com/taibuivan/librarydesk/internal/platform/respond"
	"github.com/taibuivan/librarydesk/internal/session"
	"github.com/taibuivan/librarydesk/pkg/pagination"
)

// Mountable is a page handler the server can mount under its resource.
type Mountable interface {
	Resource() string
	Routes() chi.Router
}

// Handler serves one entity page.
//
// Every POST mutates the page and redirects to the page's GET, which re-fetches the
// list and renders it.
type Handler[T any] struct {
	schema   *Schema[T]
	service  Service[T]
	store    session.Store
	renderer *Renderer
	pageSize int
}

// NewHandler returns the handler of the page described by schema.
func NewHandler[T any](schema *Schema[T], service Service[T], store session.Store, renderer *Renderer, pageSize int) *Handler[T] {
	return &Handler[T]{
		schema:   schema,
		service:  service,
		store:    store,
		renderer: renderer,
		pageSize: pageSize,
	}
}

// Resource returns the URL segment the handler is mounted under.
func (handler *Handler[T]) Resource() string { return handler.schema.Resource }

// Routes returns the page's router.
func (handler *Handler[T]) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.show)
	router.Post("/", handler.action(handler.submit))
	router.Post("/change", handler.action(handler.change))
	router.Post("/cancel", handler.action(handler.cancel))
	router.Post("/dismiss", handler.action(handler.dismiss))
	router.Post("/delete/confirm", handler.action(handler.confirmDelete))
	router.Post("/delete/cancel", handler.action(handler.cancelDelete))
	router.Post("/{id}/edit", handler.action(handler.edit))
	router.Post("/{id}/delete", handler.action(handler.requestDelete))

	return router
}

// # Render

func (handler *Handler[T]) show(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	page, err := handler.restore(ctx)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page.Load(ctx)
	view := page.View(pagination.FromRequest(request, handler.pageSize))

	// Shown once.
	page.Dismiss()
	if err := handler.persist(ctx, page); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.renderer.Page(writer, request, view)
}

// # Actions

type actionFunc[T any] func(ctx context.Context, page *Page[T], request *http.Request, form url.Values) error

// action wraps fn with restore, persist and the redirect back to the page.
func (handler *Handler[T]) action(fn actionFunc[T]) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		form, err := requestutil.Form(writer, request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		page, err := handler.restore(ctx)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := fn(ctx, page, request, form); err != nil {
			respond.Error(writer, request, err)
			return
		}

		if err := handler.persist(ctx, page); err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.SeeOther(writer, request, handler.location(form))
	}
}

func (handler *Handler[T]) submit(ctx context.Context, page *Page[T], _ *http.Request, form url.Values) error {
	page.Submit(ctx, form)
	return nil
}

// change applies the input named by the "field" value; the page's form posts it with
// the field's own button.
func (handler *Handler[T]) change(_ context.Context, page *Page[T], _ *http.Request, form url.Values) error {
	field := form.Get("field")
	page.Change(field, form.Get(field))
	return nil
}

func (handler *Handler[T]) cancel(_ context.Context, page *Page[T], _ *http.Request, _ url.Values) error {
	page.Cancel()
	return nil
}

func (handler *Handler[T]) dismiss(_ context.Context, page *Page[T], _ *http.Request, _ url.Values) error {
	page.Dismiss()
	return nil
}

func (handler *Handler[T]) edit(ctx context.Context, page *Page[T], request *http.Request, _ url.Values) error {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		return err
	}
	page.Select(ctx, id)
	return nil
}

func (handler *Handler[T]) requestDelete(ctx context.Context, page *Page[T], request *http.Request, _ url.Values) error {
	id, err := requestutil.ID(request, "id")
	if err != nil {
		return err
	}
	page.RequestDelete(ctx, id)
	return nil
}

func (handler *Handler[T]) confirmDelete(ctx context.Context, page *Page[T], _ *http.Request, _ url.Values) error {
	page.ConfirmDelete(ctx)
	return nil
}

func (handler *Handler[T]) cancelDelete(_ context.Context, page *Page[T], _ *http.Request, _ url.Values) error {
	page.CancelDelete()
	return nil
}

// # Session

func (handler *Handler[T]) restore(ctx context.Context) (*Page[T], error) {
	var state State[T]
	if _, err := handler.store.Load(ctx, ctxutil.GetSessionID(ctx), handler.schema.Resource, &state); err != nil {
		return nil, apperr.Internal(err)
	}
	return NewPage(handler.schema, handler.service, state), nil
}

func (handler *Handler[T]) persist(ctx context.Context, page *Page[T]) error {
	if err := handler.store.Save(ctx, ctxutil.GetSessionID(ctx), handler.schema.Resource, page.State()); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// location is the page URL, keeping the table page the action was posted from.
func (handler *Handler[T]) location(form url.Values) string {
	location := "/" + handler.schema.Resource
	if page, err := strconv.Atoi(form.Get("page")); err == nil && page > 1 {
		location += "?page=" + strconv.Itoa(page)
	}
	return location
}
