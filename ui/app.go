// Package ui exposes the roster service over HTTP: class registry, the
// import wizard, stored sheets, student views and score entry.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"rosterd/internal/container"
)

// App represents the HTTP application
type App struct {
	router *chi.Mux
	deps   *container.Container
}

// NewApp creates the HTTP application over the wired container
func NewApp(deps *container.Container) *App {
	app := &App{
		router: chi.NewRouter(),
		deps:   deps,
	}
	app.setupMiddleware()
	app.setupRoutes()
	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Class registry
	a.router.Get("/api/classes", a.handleListClasses)
	a.router.Post("/api/classes", a.handleCreateClass)
	a.router.Get("/api/classes/{id}", a.handleGetClass)
	a.router.Delete("/api/classes/{id}", a.handleDeleteClass)

	// Imported files and sheet content
	a.router.Post("/api/classes/{id}/files", a.handleUploadFile)
	a.router.Get("/api/classes/{id}/files", a.handleListFiles)
	a.router.Get("/api/files/{id}/sheet", a.handleGetSheet)
	a.router.Delete("/api/files/{id}", a.handleDeleteFile)

	// Roster views
	a.router.Get("/api/files/{id}/columns", a.handleGetColumns)
	a.router.Put("/api/files/{id}/columns/override", a.handleOverrideColumn)
	a.router.Post("/api/files/{id}/columns", a.handleAddColumn)
	a.router.Get("/api/files/{id}/students", a.handleListStudents)
	a.router.Get("/api/files/{id}/students/{row}", a.handleGetStudent)
	a.router.Put("/api/files/{id}/cells", a.handleSetCell)
	a.router.Get("/api/files/{id}/summary", a.handleGetSummary)

	// Import wizard
	a.router.Post("/api/wizard/sessions", a.handleCreateSession)
	a.router.Get("/api/wizard/sessions/{id}", a.handleGetSession)
	a.router.Post("/api/wizard/sessions/{id}/pick", a.handlePickFile)
	a.router.Post("/api/wizard/sessions/{id}/back", a.handleWizardBack)
	a.router.Post("/api/wizard/sessions/{id}/import", a.handleWizardImport)
	a.router.Delete("/api/wizard/sessions/{id}", a.handleCancelSession)

	// Voice grade entry
	a.router.Post("/api/transcribe", a.handleTranscribe)
}

// Handler returns the root HTTP handler
func (a *App) Handler() http.Handler {
	return a.router
}
