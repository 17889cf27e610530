package ui

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"rosterd/domain/core"
	apperrors "rosterd/internal/errors"
)

type createSessionRequest struct {
	ClassID string `json:"class_id"`
}

// handleCreateSession opens an import wizard session for a class
func (a *App) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.InvalidInput("invalid JSON body"))
		return
	}
	snap, err := a.deps.ImportService.StartSession(r.Context(), core.ID(req.ClassID))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, snap)
}

// handleGetSession returns the current wizard state
func (a *App) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := core.ID(chi.URLParam(r, "id"))
	snap, err := a.deps.ImportService.Session(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// handlePickFile receives the picked file and returns the bounded preview.
// A pick superseded by a newer pick answers 409; the newer pick's preview is
// the one that counts.
func (a *App) handlePickFile(w http.ResponseWriter, r *http.Request) {
	id := core.ID(chi.URLParam(r, "id"))

	if err := r.ParseMultipartForm(a.deps.Config.Import.MaxUploadSize); err != nil {
		respondError(w, apperrors.InvalidInput("invalid multipart upload"))
		return
	}
	part, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, apperrors.InvalidInput("missing file field"))
		return
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		respondError(w, apperrors.InvalidInput("failed to read upload"))
		return
	}

	snap, err := a.deps.ImportService.Pick(r.Context(), id, header.Filename, data)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			respondJSON(w, http.StatusConflict, errorResponse{Error: "pick superseded by a newer file", Code: apperrors.CodeInvalidInput})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// handleWizardBack discards the picked file and returns to the FileInfo step
func (a *App) handleWizardBack(w http.ResponseWriter, r *http.Request) {
	id := core.ID(chi.URLParam(r, "id"))
	snap, err := a.deps.ImportService.Back(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// handleWizardImport performs the full read and persists the roster. On
// failure the session stays in PreviewData and the user may retry by
// pressing import again; nothing is retried automatically.
func (a *App) handleWizardImport(w http.ResponseWriter, r *http.Request) {
	id := core.ID(chi.URLParam(r, "id"))
	file, err := a.deps.ImportService.Import(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, file)
}

// handleCancelSession discards the wizard session entirely
func (a *App) handleCancelSession(w http.ResponseWriter, r *http.Request) {
	id := core.ID(chi.URLParam(r, "id"))
	if err := a.deps.ImportService.CancelSession(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
