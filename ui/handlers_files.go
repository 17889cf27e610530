package ui

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"rosterd/domain/class"
	"rosterd/domain/classify"
	"rosterd/domain/core"
	"rosterd/domain/roster"
	"rosterd/internal/errors"
)

// handleUploadFile accepts a multipart spreadsheet upload, performs the full
// read and persists the materialized sheet for the class. Direct uploads
// bypass the wizard; the wizard's import path lands in the same repository.
func (a *App) handleUploadFile(w http.ResponseWriter, r *http.Request) {
	classID := core.ID(chi.URLParam(r, "id"))
	if _, err := a.deps.ClassRepo.GetByID(r.Context(), classID); err != nil {
		respondError(w, err)
		return
	}

	if err := r.ParseMultipartForm(a.deps.Config.Import.MaxUploadSize); err != nil {
		respondError(w, errors.InvalidInput("invalid multipart upload"))
		return
	}
	part, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, errors.InvalidInput("missing file field"))
		return
	}
	defer part.Close()

	ext := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	table, err := a.deps.Reader.Read(part, ext)
	if err != nil {
		respondError(w, err)
		return
	}

	file := &class.ImportFile{
		ID:         core.NewID(),
		ClassID:    classID,
		Name:       header.Filename,
		RowCount:   len(table.Rows),
		UploadedAt: time.Now(),
	}
	if err := a.deps.FileRepo.Create(r.Context(), file, table); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, file)
}

// handleListFiles returns the imported files of a class
func (a *App) handleListFiles(w http.ResponseWriter, r *http.Request) {
	classID := core.ID(chi.URLParam(r, "id"))
	if _, err := a.deps.ClassRepo.GetByID(r.Context(), classID); err != nil {
		respondError(w, err)
		return
	}
	files, err := a.deps.FileRepo.ListByClass(r.Context(), classID)
	if err != nil {
		respondError(w, err)
		return
	}
	if files == nil {
		files = []*class.ImportFile{}
	}
	respondJSON(w, http.StatusOK, files)
}

// handleGetSheet serves the materialized sheet as headers plus one
// header→value object per row
func (a *App) handleGetSheet(w http.ResponseWriter, r *http.Request) {
	fileID := core.ID(chi.URLParam(r, "id"))
	table, err := a.deps.FileRepo.GetTable(r.Context(), fileID)
	if err != nil {
		respondError(w, err)
		return
	}

	content := class.SheetContent{Headers: table.Headers, Data: make([]map[string]string, 0, len(table.Rows))}
	for _, row := range table.Rows {
		values := make(map[string]string, len(table.Headers))
		for j, h := range table.Headers {
			if _, seen := values[h]; seen {
				continue
			}
			values[h] = row[j]
		}
		content.Data = append(content.Data, values)
	}
	respondJSON(w, http.StatusOK, content)
}

// handleDeleteFile removes an imported file
func (a *App) handleDeleteFile(w http.ResponseWriter, r *http.Request) {
	fileID := core.ID(chi.URLParam(r, "id"))
	if err := a.deps.FileRepo.Delete(r.Context(), fileID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// handleGetColumns returns classified columns with overrides applied
func (a *App) handleGetColumns(w http.ResponseWriter, r *http.Request) {
	fileID := core.ID(chi.URLParam(r, "id"))
	cols, ambiguous, err := a.deps.RosterService.Columns(r.Context(), fileID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"columns":   cols,
		"ambiguous": ambiguous,
	})
}

type overrideColumnRequest struct {
	Header string `json:"header"`
	Role   string `json:"role"`
}

// handleOverrideColumn records a manual column-role pick for the session
func (a *App) handleOverrideColumn(w http.ResponseWriter, r *http.Request) {
	fileID := core.ID(chi.URLParam(r, "id"))
	var req overrideColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid JSON body"))
		return
	}
	err := a.deps.RosterService.OverrideColumn(r.Context(), fileID, req.Header, parseRole(req.Role))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type addColumnRequest struct {
	Category string `json:"category"`
}

// handleAddColumn appends a new assessment column named for its category
func (a *App) handleAddColumn(w http.ResponseWriter, r *http.Request) {
	fileID := core.ID(chi.URLParam(r, "id"))
	var req addColumnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid JSON body"))
		return
	}
	category, ok := classify.ParseCategory(req.Category)
	if !ok {
		respondError(w, errors.InvalidInput("category must be quiz, lab or exam"))
		return
	}
	header, err := a.deps.RosterService.AddAssessmentColumn(r.Context(), fileID, category)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"header": header})
}

type setCellRequest struct {
	Row    int    `json:"row"`
	Header string `json:"header"`
	Value  string `json:"value"`
}

// handleSetCell writes a score value into a stored sheet cell
func (a *App) handleSetCell(w http.ResponseWriter, r *http.Request) {
	fileID := core.ID(chi.URLParam(r, "id"))
	var req setCellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.InvalidInput("invalid JSON body"))
		return
	}
	if err := a.deps.RosterService.SetCell(r.Context(), fileID, req.Row, req.Header, req.Value); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// handleGetSummary returns per-assessment score statistics
func (a *App) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	fileID := core.ID(chi.URLParam(r, "id"))
	summaries, err := a.deps.SummaryService.Summarize(r.Context(), fileID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}

func parseRole(s string) roster.ColumnRole {
	return roster.ColumnRole(strings.ToLower(strings.TrimSpace(s)))
}
