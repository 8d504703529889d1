package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ImportResponse is the success payload of a backup import.
type ImportResponse struct {
	Message  string              `json:"message"`
	Imported domain.ImportCounts `json:"imported"`
}

// ExportData returns the full backup document as a file download.
func (h *Handler) ExportData(w http.ResponseWriter, r *http.Request) {
	backup, err := h.svc.ExportAllData(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	filename := fmt.Sprintf("irontrack-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	writeJSON(w, backup, http.StatusOK)
}

// ImportData merges an uploaded backup document into the database.
func (h *Handler) ImportData(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, &domain.ImportFormatError{Message: "failed to read request body"})
		return
	}

	result, err := h.svc.ImportAllData(r.Context(), body)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, ImportResponse{Message: "Import successful", Imported: result.Imported}, http.StatusOK)
}

// SeedStarterData populates an empty database with starter data.
func (h *Handler) SeedStarterData(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SeedStarterData(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, map[string]string{"message": "Seeded"}, http.StatusOK)
}
