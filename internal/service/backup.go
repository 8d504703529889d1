package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cs1429/IronTrack/internal/domain"
)

// ExportAllData produces the full backup document.
func (t *Tracker) ExportAllData(ctx context.Context) (*domain.Backup, error) {
	return t.store.ExportAllData(ctx)
}

// ImportAllData parses, shape-checks and merges an uploaded backup
// document. No database work begins until the document is accepted.
func (t *Tracker) ImportAllData(ctx context.Context, body []byte) (*domain.ImportResult, error) {
	backup, err := parseBackup(body)
	if err != nil {
		return nil, err
	}
	counts, err := t.store.ImportAllData(ctx, backup)
	if err != nil {
		return nil, err
	}
	return &domain.ImportResult{Imported: *counts}, nil
}

// parseBackup checks the document shape before decoding it fully: a JSON
// object carrying version "1.0" and the three required entity arrays.
func parseBackup(body []byte) (*domain.Backup, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &domain.ImportFormatError{Message: "invalid JSON document"}
	}

	versionRaw, ok := raw["version"]
	if !ok {
		return nil, &domain.ImportFormatError{Message: "missing backup version"}
	}
	var version string
	if err := json.Unmarshal(versionRaw, &version); err != nil || version == "" {
		return nil, &domain.ImportFormatError{Message: "missing backup version"}
	}
	if version != domain.BackupVersion {
		return nil, &domain.ImportFormatError{Message: fmt.Sprintf("unsupported backup version: %s", version)}
	}

	for _, field := range []string{"exercises", "workouts", "splits"} {
		arr, ok := raw[field]
		if !ok {
			return nil, &domain.ImportFormatError{Message: fmt.Sprintf("%s must be an array", field)}
		}
		var probe []json.RawMessage
		if err := json.Unmarshal(arr, &probe); err != nil {
			return nil, &domain.ImportFormatError{Message: fmt.Sprintf("%s must be an array", field)}
		}
	}

	var backup domain.Backup
	if err := json.Unmarshal(body, &backup); err != nil {
		return nil, &domain.ImportFormatError{Message: "malformed backup document"}
	}
	return &backup, nil
}
