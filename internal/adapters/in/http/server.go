// Package http exposes the document store over a small relay API so the
// front of house clients can read and write collections without talking to
// CouchDB directly. The relay is a per-collection proxy: it whitelists the
// known databases and translates store errors into HTTP statuses, but it
// performs no business validation of its own.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"restopos/internal/adapters/out/docstore"
	"restopos/internal/core/ports"
	"restopos/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Server relays collection reads and writes to the document store.
type Server struct {
	store       ports.DocumentStore
	collections map[string]struct{}
}

func NewServer(store ports.DocumentStore) *Server {
	collections := make(map[string]struct{}, len(docstore.Collections()))
	for _, name := range docstore.Collections() {
		collections[name] = struct{}{}
	}
	return &Server{store: store, collections: collections}
}

// Register mounts the relay routes on the echo instance. Every route is
// available under /api/db and, for older clients, directly under /api.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/api", s.Status)

	for _, prefix := range []string{"/api/db", "/api"} {
		g := e.Group(prefix)
		g.GET("/:collection", s.ListDocuments)
		g.POST("/:collection", s.SaveDocument)
		g.POST("/:collection/_find", s.FindDocuments)
		g.GET("/:collection/_design/:design/_view/:view", s.QueryView)
		g.GET("/:collection/:id", s.GetDocument)
		g.DELETE("/:collection/:id", s.DeleteDocument)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Status handles GET /api.
func (s *Server) Status(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"status":    "ok",
		"databases": docstore.Collections(),
	})
}

// ListDocuments handles GET /:collection.
func (s *Server) ListDocuments(ctx echo.Context) error {
	collection, err := s.collection(ctx)
	if err != nil {
		return err
	}

	// An empty selector matches every document in the collection.
	docs, err := s.store.Find(ctx.Request().Context(), collection, ports.Query{
		Selector: map[string]any{},
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, docs)
}

// GetDocument handles GET /:collection/:id.
func (s *Server) GetDocument(ctx echo.Context) error {
	collection, err := s.collection(ctx)
	if err != nil {
		return err
	}

	doc, err := s.store.Get(ctx.Request().Context(), collection, ctx.Param("id"))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, doc)
}

// SaveDocument handles POST /:collection. A document without a key gets a
// generated one; a document with a revision updates the stored one.
func (s *Server) SaveDocument(ctx echo.Context) error {
	collection, err := s.collection(ctx)
	if err != nil {
		return err
	}

	var doc ports.Document
	if err := ctx.Bind(&doc); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid document body"})
	}
	if doc.ID() == "" {
		doc["_id"] = uuid.NewString()
	}

	res, err := s.store.Put(ctx.Request().Context(), collection, doc)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]any{
		"ok":  true,
		"id":  res.ID,
		"rev": res.Rev,
	})
}

// DeleteDocument handles DELETE /:collection/:id?rev=...
func (s *Server) DeleteDocument(ctx echo.Context) error {
	collection, err := s.collection(ctx)
	if err != nil {
		return err
	}

	rev := ctx.QueryParam("rev")
	if rev == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "rev query parameter is required"})
	}

	if err := s.store.Delete(ctx.Request().Context(), collection, ctx.Param("id"), rev); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]any{"ok": true})
}

// FindDocuments handles POST /:collection/_find.
func (s *Server) FindDocuments(ctx echo.Context) error {
	collection, err := s.collection(ctx)
	if err != nil {
		return err
	}

	var body struct {
		Selector map[string]any      `json:"selector"`
		Sort     []map[string]string `json:"sort"`
		Limit    int                 `json:"limit"`
	}
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid find body"})
	}
	if body.Selector == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "selector is required"})
	}

	docs, err := s.store.Find(ctx.Request().Context(), collection, ports.Query{
		Selector: body.Selector,
		Sort:     body.Sort,
		Limit:    body.Limit,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]any{"docs": docs})
}

// QueryView handles GET /:collection/_design/:design/_view/:view.
func (s *Server) QueryView(ctx echo.Context) error {
	collection, err := s.collection(ctx)
	if err != nil {
		return err
	}

	opts := ports.ViewOptions{Key: ctx.QueryParam("key")}
	if v := ctx.QueryParam("descending"); v != "" {
		opts.Descending, _ = strconv.ParseBool(v)
	}
	if v := ctx.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "invalid limit"})
		}
		opts.Limit = limit
	}

	docs, err := s.store.View(ctx.Request().Context(), collection,
		ctx.Param("design"), ctx.Param("view"), opts)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]any{"rows": docs})
}

func (s *Server) collection(ctx echo.Context) (string, error) {
	name := ctx.Param("collection")
	if _, ok := s.collections[name]; !ok {
		return "", echo.NewHTTPError(http.StatusNotFound, "unknown collection: "+name)
	}
	return name, nil
}

func (s *Server) fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
