package ui

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"rosterd/domain/core"
	"rosterd/domain/roster"
	"rosterd/internal/errors"
)

// handleListStudents returns the derived student records, optionally
// filtered by ?q= against the display name
func (a *App) handleListStudents(w http.ResponseWriter, r *http.Request) {
	fileID := core.ID(chi.URLParam(r, "id"))
	query := r.URL.Query().Get("q")

	students, err := a.deps.RosterService.Students(r.Context(), fileID, query)
	if err != nil {
		respondError(w, err)
		return
	}
	if students == nil {
		students = []roster.StudentRecord{}
	}
	respondJSON(w, http.StatusOK, students)
}

// handleGetStudent returns one student record by row index
func (a *App) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	fileID := core.ID(chi.URLParam(r, "id"))
	row, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		respondError(w, errors.InvalidInput("row must be an integer"))
		return
	}

	student, err := a.deps.RosterService.Student(r.Context(), fileID, row)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, student)
}
