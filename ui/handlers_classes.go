package ui

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"rosterd/domain/class"
	"rosterd/domain/core"
	"rosterd/internal/errors"
)

type createClassRequest struct {
	Name    string `json:"name"`
	Course  string `json:"course"`
	Section string `json:"section"`
}

// handleCreateClass registers a new class
func (a *App) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	var req createClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid JSON body"))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, errors.InvalidInput("class name is required"))
		return
	}

	now := time.Now()
	c := &class.Class{
		ID:        core.NewID(),
		Name:      strings.TrimSpace(req.Name),
		Course:    strings.TrimSpace(req.Course),
		Section:   strings.TrimSpace(req.Section),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.deps.ClassRepo.Create(r.Context(), c); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

// handleListClasses returns all classes, newest first
func (a *App) handleListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := a.deps.ClassRepo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if classes == nil {
		classes = []*class.Class{}
	}
	respondJSON(w, http.StatusOK, classes)
}

// handleGetClass returns one class by id
func (a *App) handleGetClass(w http.ResponseWriter, r *http.Request) {
	id := core.ID(chi.URLParam(r, "id"))
	c, err := a.deps.ClassRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// handleDeleteClass removes a class and its imported files
func (a *App) handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	id := core.ID(chi.URLParam(r, "id"))
	if err := a.deps.ClassRepo.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
