package ui

import (
	"encoding/json"
	"errors"
	"net/http"

	"rosterd/domain/core"
	apperrors "rosterd/internal/errors"
)

// respondJSON writes a JSON response with the given status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError maps domain errors to HTTP status codes. All spreadsheet and
// wizard errors are recoverable client-side; only genuinely unexpected
// failures surface as 500.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apperrors.CodeInternalError

	switch {
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
		code = apperrors.CodeNotFound
	case errors.Is(err, core.ErrUnsupportedFormat):
		status = http.StatusBadRequest
		code = apperrors.CodeUnsupportedFormat
	case errors.Is(err, core.ErrCorruptFile), errors.Is(err, core.ErrEmptySheet):
		status = http.StatusUnprocessableEntity
		code = apperrors.CodeCorruptFile
	case core.IsWizardError(err):
		status = http.StatusConflict
		code = apperrors.CodeInvalidInput
	case errors.Is(err, core.ErrTranscription):
		status = http.StatusBadGateway
		code = apperrors.CodeExternalService
	case apperrors.GetCode(err) == apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
		code = apperrors.CodeInvalidInput
	}

	respondJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}
