package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scmbridge/internal/domain/commands"
	"github.com/rios0rios0/scmbridge/internal/domain/entities"
	"github.com/rios0rios0/scmbridge/internal/domain/repositories"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/metrics"
	"github.com/rios0rios0/scmbridge/internal/infrastructure/repositories/memory"
)

var errRepositoryNotFound = errors.New("repository not found")

// Handler exposes an SCM service and its status bar over HTTP. The SCM core
// is single-threaded, so every request that reads or mutates it holds mu.
type Handler struct {
	mu        sync.Mutex
	service   commands.SCM
	statusBar *memory.StatusBarRepository
	metrics   *metrics.SCMMetrics
}

// NewHandler creates the HTTP handler for service.
func NewHandler(
	service commands.SCM,
	statusBar *memory.StatusBarRepository,
	scmMetrics *metrics.SCMMetrics,
) *Handler {
	return &Handler{
		service:   service,
		statusBar: statusBar,
		metrics:   scmMetrics,
	}
}

// Routes builds the chi router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(h.metrics.Registry(), promhttp.HandlerOpts{}))

	r.With(h.serialize).Get("/status-bar", h.listStatusBar)
	r.Route("/repositories", func(r chi.Router) {
		locked := r.With(h.serialize)
		locked.Get("/", h.listRepositories)
		locked.Get("/selected", h.listSelectedRepositories)

		r.Route("/{id}", func(r chi.Router) {
			locked := r.With(h.serialize)
			locked.Get("/", h.getRepository)
			locked.Delete("/", h.disposeRepository)
			locked.Post("/selection", h.setSelection)
			locked.Post("/focus", h.focus)
			locked.Put("/input", h.updateInput)
			locked.Get("/status", h.workingDirectoryStatus)
			locked.Put("/status-bar-commands", h.setStatusBarCommands)

			// Validators may block, so this route takes the lock only around the core.
			r.Post("/validation", h.validateInput)
		})
	})

	return r
}

func (h *Handler) serialize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.mu.Lock()
		defer h.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.WithFields(logger.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"duration": time.Since(start),
		}).Debug("Handled request")
	})
}

type inputView struct {
	Value       string `json:"value"`
	Placeholder string `json:"placeholder"`
	Visible     bool   `json:"visible"`
}

type repositoryView struct {
	ID                 string             `json:"id"`
	Label              string             `json:"label"`
	ContextValue       string             `json:"contextValue,omitempty"`
	RootURI            string             `json:"rootUri,omitempty"`
	Count              *int               `json:"count,omitempty"`
	Selected           bool               `json:"selected"`
	Input              inputView          `json:"input"`
	AcceptInputCommand *entities.Command  `json:"acceptInputCommand,omitempty"`
	StatusBarCommands  []entities.Command `json:"statusBarCommands"`
}

func newRepositoryView(repository *commands.SCMRepository) repositoryView {
	provider := repository.Provider()
	view := repositoryView{
		ID:           provider.ID(),
		Label:        provider.Label(),
		ContextValue: provider.ContextValue(),
		RootURI:      provider.RootURI(),
		Selected:     repository.Selected(),
		Input: inputView{
			Value:       repository.Input().Value(),
			Placeholder: repository.Input().Placeholder(),
			Visible:     repository.Input().Visible(),
		},
		AcceptInputCommand: provider.AcceptInputCommand(),
		StatusBarCommands:  provider.StatusBarCommands(),
	}
	if count, ok := provider.Count(); ok {
		view.Count = &count
	}
	if view.StatusBarCommands == nil {
		view.StatusBarCommands = []entities.Command{}
	}
	return view
}

func newRepositoryViews(repositories []*commands.SCMRepository) []repositoryView {
	views := make([]repositoryView, 0, len(repositories))
	for _, repository := range repositories {
		views = append(views, newRepositoryView(repository))
	}
	return views
}

// findRepository returns the first registered repository whose provider has id.
func (h *Handler) findRepository(id string) (*commands.SCMRepository, error) {
	for _, repository := range h.service.Repositories() {
		if repository.Provider().ID() == id {
			return repository, nil
		}
	}
	return nil, errRepositoryNotFound
}

// repository resolves the {id} URL parameter, writing a 404 when unknown.
func (h *Handler) repository(w http.ResponseWriter, r *http.Request) (*commands.SCMRepository, bool) {
	repository, err := h.findRepository(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return nil, false
	}
	return repository, true
}

func (h *Handler) listRepositories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newRepositoryViews(h.service.Repositories()))
}

func (h *Handler) listSelectedRepositories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, newRepositoryViews(h.service.SelectedRepositories()))
}

func (h *Handler) getRepository(w http.ResponseWriter, r *http.Request) {
	repository, ok := h.repository(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, newRepositoryView(repository))
}

func (h *Handler) disposeRepository(w http.ResponseWriter, r *http.Request) {
	repository, ok := h.repository(w, r)
	if !ok {
		return
	}
	repository.Dispose()
	w.WriteHeader(http.StatusNoContent)
}

type selectionRequest struct {
	Selected bool `json:"selected"`
}

func (h *Handler) setSelection(w http.ResponseWriter, r *http.Request) {
	repository, ok := h.repository(w, r)
	if !ok {
		return
	}

	var request selectionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	repository.SetSelected(request.Selected)
	writeJSON(w, http.StatusOK, newRepositoryView(repository))
}

func (h *Handler) focus(w http.ResponseWriter, r *http.Request) {
	repository, ok := h.repository(w, r)
	if !ok {
		return
	}
	repository.Focus()
	w.WriteHeader(http.StatusNoContent)
}

type inputRequest struct {
	Value       *string `json:"value"`
	Placeholder *string `json:"placeholder"`
	Visible     *bool   `json:"visible"`
}

func (h *Handler) updateInput(w http.ResponseWriter, r *http.Request) {
	repository, ok := h.repository(w, r)
	if !ok {
		return
	}

	var request inputRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	input := repository.Input()
	if request.Value != nil {
		input.SetValue(*request.Value)
	}
	if request.Placeholder != nil {
		input.SetPlaceholder(*request.Placeholder)
	}
	if request.Visible != nil {
		input.SetVisible(*request.Visible)
	}
	writeJSON(w, http.StatusOK, newRepositoryView(repository))
}

type validationRequest struct {
	Value          *string `json:"value"`
	CursorPosition int     `json:"cursorPosition"`
}

type validationResponse struct {
	Validation *entities.InputValidation `json:"validation"`
}

func (h *Handler) validateInput(w http.ResponseWriter, r *http.Request) {
	var request validationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	h.mu.Lock()
	repository, err := h.findRepository(chi.URLParam(r, "id"))
	if err != nil {
		h.mu.Unlock()
		writeError(w, http.StatusNotFound, err)
		return
	}
	validator := repository.Input().ValidateInput()
	value := repository.Input().Value()
	h.mu.Unlock()

	if request.Value != nil {
		value = *request.Value
	}

	validation, err := validator(r.Context(), value, request.CursorPosition)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, validationResponse{Validation: validation})
}

type statusView struct {
	entities.WorkingDirectoryStatus
	StagedChanges []entities.FileChange `json:"stagedChanges"`
}

func (h *Handler) workingDirectoryStatus(w http.ResponseWriter, r *http.Request) {
	repository, ok := h.repository(w, r)
	if !ok {
		return
	}

	reporter, ok := repository.Provider().(repositories.WorkingDirectoryStatusReporter)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("provider does not report a working directory status"))
		return
	}
	status := reporter.WorkingDirectoryStatus()
	writeJSON(w, http.StatusOK, statusView{
		WorkingDirectoryStatus: status,
		StagedChanges:          status.StagedChanges(),
	})
}

func (h *Handler) setStatusBarCommands(w http.ResponseWriter, r *http.Request) {
	repository, ok := h.repository(w, r)
	if !ok {
		return
	}

	writer, ok := repository.Provider().(repositories.StatusBarCommandsWriter)
	if !ok {
		writeError(w, http.StatusConflict, errors.New("provider does not accept status bar commands"))
		return
	}

	var commandList []entities.Command
	if err := json.NewDecoder(r.Body).Decode(&commandList); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	for _, command := range commandList {
		if command.ID == "" {
			writeError(w, http.StatusBadRequest, errors.New("every command needs an id"))
			return
		}
	}

	writer.SetStatusBarCommands(commandList)
	writeJSON(w, http.StatusOK, h.statusBar.Elements())
}

func (h *Handler) listStatusBar(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.statusBar.Elements())
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warnf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
