// Package browsehttp exposes a record browser over HTTP. One handler
// serves one dataset; every dataset mounts the same routes, so the
// six console views share a single implementation instead of
// re-growing their own filter/sort/paginate plumbing.
package browsehttp

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/meridian-ops/meridian-ops/internal/browse"
	"github.com/meridian-ops/meridian-ops/internal/observability"
	"github.com/meridian-ops/meridian-ops/internal/platform/httpx"
	"github.com/meridian-ops/meridian-ops/internal/shared"
)

// SessionHeader carries the console session id. The handler issues a
// fresh id when the client sends none and echoes it on every reply.
const SessionHeader = "X-Session"

// Config describes one dataset served by a Handler.
type Config[T browse.Record] struct {
	Dataset  string
	Schema   *browse.Schema[T]
	Locks    *browse.LockPolicy
	Provider func() []T
	PageSize int
}

// Deps aggregates the collaborators shared by all dataset handlers.
type Deps struct {
	Logger     *slog.Logger
	Sink       browse.Sink
	Metrics    *observability.Metrics
	Validate   *validator.Validate
	SessionTTL time.Duration
	// Audit builds the trail store for a new session; nil keeps the
	// in-memory default.
	Audit func() browse.AuditStore
	// SaveWait bounds how long the save endpoint waits for the sink
	// before reporting a pending outcome.
	SaveWait time.Duration
}

// Handler serves one dataset's record browser.
type Handler[T browse.Record] struct {
	cfg      Config[T]
	logger   *slog.Logger
	sink     browse.Sink
	metrics  *observability.Metrics
	validate *validator.Validate
	saveWait time.Duration
	sessions *Registry[T]
}

// NewHandler wires a dataset handler and its session registry.
func NewHandler[T browse.Record](cfg Config[T], deps Deps) *Handler[T] {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	validate := deps.Validate
	if validate == nil {
		validate = validator.New()
	}
	saveWait := deps.SaveWait
	if saveWait <= 0 {
		saveWait = 2 * time.Second
	}
	h := &Handler[T]{
		cfg:      cfg,
		logger:   logger.With(slog.String("dataset", cfg.Dataset)),
		sink:     deps.Sink,
		metrics:  deps.Metrics,
		validate: validate,
		saveWait: saveWait,
	}
	factory := func() *browse.Browser[T] {
		var audit browse.AuditStore
		if deps.Audit != nil {
			audit = deps.Audit()
		}
		return browse.New(browse.Config[T]{
			Dataset:  cfg.Dataset,
			Schema:   cfg.Schema,
			Locks:    cfg.Locks,
			Sink:     deps.Sink,
			Audit:    audit,
			PageSize: cfg.PageSize,
			Logger:   h.logger,
		}, cfg.Provider())
	}
	h.sessions = NewRegistry(factory, deps.SessionTTL)
	return h
}

// Sessions exposes the registry for sweeping.
func (h *Handler[T]) Sessions() *Registry[T] { return h.sessions }

// MountRoutes wires the dataset routes onto r.
func (h *Handler[T]) MountRoutes(r chi.Router) {
	r.Get("/", h.View)
	r.Post("/select", h.Select)
	r.Post("/draft", h.UpdateDraft)
	r.Post("/save", h.Save)
	r.Post("/clear", h.Clear)
	r.Get("/audit/{id}", h.Audit)
	r.Post("/records/{id}/attachments", h.AddAttachment)
	r.Delete("/records/{id}/attachments/{attachmentID}", h.RemoveAttachment)
}

// browser resolves the session's browser, issuing a session id when
// the client has none yet.
func (h *Handler[T]) browser(w http.ResponseWriter, r *http.Request) *browse.Browser[T] {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(SessionHeader, id)
	return h.sessions.Get(id)
}

// View applies any filter/sort/page inputs present in the query and
// returns the recomputed page plus selection state.
//
// Query grammar: each schema field name filters that field
// (`<field>_from` / `<field>_to` bound date fields), `sort=<field>`
// applies header-click toggle semantics (`dir` forces a direction),
// `page=N` moves, `reset=1` clears all filters.
func (h *Handler[T]) View(w http.ResponseWriter, r *http.Request) {
	b := h.browser(w, r)
	q := r.URL.Query()

	if q.Get("reset") == "1" {
		b.ResetCriteria()
	}

	criteria := browse.Criteria{}
	touched := false
	for _, name := range h.cfg.Schema.Names() {
		c := browse.Criterion{
			Value: q.Get(name),
			From:  q.Get(name + "_from"),
			To:    q.Get(name + "_to"),
		}
		if !c.Empty() {
			criteria[name] = c
			touched = true
		}
	}
	if touched {
		b.SetCriteria(criteria)
	}

	if field := q.Get("sort"); field != "" {
		if dir := q.Get("dir"); dir == string(browse.Asc) || dir == string(browse.Desc) {
			b.SetSort(&browse.SortSpec{Field: field, Direction: browse.Direction(dir)})
		} else {
			b.SortBy(field)
		}
	}

	if raw := q.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			b.SetPage(page)
		}
	}

	view, err := b.View(r.Context())
	if err != nil {
		h.logger.Error("view recompute failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// Select opens the detail panel for a record.
func (h *Handler[T]) Select(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if !h.decode(w, r, &req) {
		return
	}
	b := h.browser(w, r)
	if err := b.Select(req.ID); err != nil {
		h.respondBrowseError(w, err)
		return
	}
	view, err := b.View(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// UpdateDraft writes one field of the draft on behalf of the acting
// role. Locked fields are rejected without touching the draft.
func (h *Handler[T]) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if !h.decode(w, r, &req) {
		return
	}
	b := h.browser(w, r)
	role := shared.RoleFromContext(r.Context())
	if err := b.UpdateField(req.Field, req.Value, role); err != nil {
		h.respondBrowseError(w, err)
		return
	}
	view, err := b.View(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// Save runs the optimistic save and reports its outcome. When the
// sink does not resolve within the wait window the response carries
// "pending" and the client observes completion through the view.
func (h *Handler[T]) Save(w http.ResponseWriter, r *http.Request) {
	b := h.browser(w, r)
	user := shared.UserFromContext(r.Context())

	done, err := b.Save(r.Context(), user)
	if err != nil {
		h.respondBrowseError(w, err)
		return
	}

	select {
	case result := <-done:
		h.metrics.AddAuditEntries(h.cfg.Dataset, result.Entries)
		if result.Failed() {
			h.metrics.ObserveSave(h.cfg.Dataset, "failed")
			httpx.JSON(w, http.StatusOK, SaveResponse{
				Outcome: "failed",
				Entries: result.Entries,
				Error:   result.Err.Error(),
			})
			return
		}
		h.metrics.ObserveSave(h.cfg.Dataset, "saved")
		httpx.JSON(w, http.StatusOK, SaveResponse{Outcome: "saved", Entries: result.Entries})
	case <-time.After(h.saveWait):
		h.metrics.ObserveSave(h.cfg.Dataset, "pending")
		go func() {
			result := <-done
			h.metrics.AddAuditEntries(h.cfg.Dataset, result.Entries)
			if result.Failed() {
				h.metrics.ObserveSave(h.cfg.Dataset, "failed")
				return
			}
			h.metrics.ObserveSave(h.cfg.Dataset, "saved")
		}()
		httpx.JSON(w, http.StatusAccepted, SaveResponse{Outcome: "pending"})
	}
}

// Clear closes the detail panel; it is safe to call when idle.
func (h *Handler[T]) Clear(w http.ResponseWriter, r *http.Request) {
	b := h.browser(w, r)
	b.Clear()
	view, err := b.View(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, view)
}

// Audit returns the newest-first trail for a record.
func (h *Handler[T]) Audit(w http.ResponseWriter, r *http.Request) {
	b := h.browser(w, r)
	id := chi.URLParam(r, "id")
	if _, ok := b.Record(id); !ok {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrNotFound, id))
		return
	}
	log, err := b.AuditLog(r.Context(), id)
	if err != nil {
		h.logger.Error("audit list failed", slog.String("record", id), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, log)
}

// AddAttachment attaches a named file to the record, outside the save
// flow.
func (h *Handler[T]) AddAttachment(w http.ResponseWriter, r *http.Request) {
	var req AttachmentRequest
	if !h.decode(w, r, &req) {
		return
	}
	b := h.browser(w, r)
	id := chi.URLParam(r, "id")
	if _, ok := b.Record(id); !ok {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrNotFound, id))
		return
	}
	att := b.Attachments().Add(id, req.Name, req.Size)
	httpx.JSON(w, http.StatusCreated, att)
}

// RemoveAttachment detaches a file from the record.
func (h *Handler[T]) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	b := h.browser(w, r)
	id := chi.URLParam(r, "id")
	attID := chi.URLParam(r, "attachmentID")
	if !b.Attachments().Remove(id, attID) {
		httpx.RespondError(w, fmt.Errorf("%w: attachment %s", httpx.ErrNotFound, attID))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler[T]) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := httpx.DecodeJSON(r, target); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return false
	}
	if err := h.validate.Struct(target); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error()))
		return false
	}
	return true
}

func (h *Handler[T]) respondBrowseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, browse.ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, browse.ErrSaveInFlight):
		httpx.Problem(w, http.StatusConflict, "Conflict", err.Error())
	case errors.Is(err, browse.ErrFieldLocked),
		errors.Is(err, browse.ErrFieldReadOnly),
		errors.Is(err, browse.ErrUnknownField),
		errors.Is(err, browse.ErrInvalidValue),
		errors.Is(err, browse.ErrNoSelection):
		httpx.Problem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	default:
		h.logger.Error("browse operation failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
