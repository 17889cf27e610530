package ui

import (
	"io"
	"net/http"
	"strings"

	"rosterd/internal/errors"
)

// handleTranscribe proxies audio to the speech-to-text collaborator. An
// optional "candidates" form field (comma-separated student names) biases
// recognition toward roster names.
func (a *App) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(a.deps.Config.Import.MaxUploadSize); err != nil {
		respondError(w, errors.InvalidInput("invalid multipart upload"))
		return
	}
	part, _, err := r.FormFile("audio")
	if err != nil {
		respondError(w, errors.InvalidInput("missing audio field"))
		return
	}
	defer part.Close()

	audio, err := io.ReadAll(part)
	if err != nil {
		respondError(w, errors.InvalidInput("failed to read audio"))
		return
	}

	var candidates []string
	if raw := r.FormValue("candidates"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				candidates = append(candidates, trimmed)
			}
		}
	}

	text, err := a.deps.Transcriber.Transcribe(r.Context(), audio, candidates)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"text": text})
}
