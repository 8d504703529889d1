package service

import (
	"errors"
	"testing"

	"github.com/cs1429/IronTrack/internal/domain"
)

func assertFormatError(t *testing.T, err error, message string) {
	t.Helper()
	var fe *domain.ImportFormatError
	if !errors.As(err, &fe) {
		t.Fatalf("expected import format error, got %v", err)
	}
	if fe.Message != message {
		t.Fatalf("expected message %q, got %q", message, fe.Message)
	}
}

func TestParseBackupRejectsInvalidJSON(t *testing.T) {
	_, err := parseBackup([]byte(`{not json`))
	assertFormatError(t, err, "invalid JSON document")
}

func TestParseBackupRejectsMissingVersion(t *testing.T) {
	_, err := parseBackup([]byte(`{"exercises":[],"workouts":[],"splits":[]}`))
	assertFormatError(t, err, "missing backup version")
}

func TestParseBackupRejectsUnsupportedVersion(t *testing.T) {
	_, err := parseBackup([]byte(`{"version":"2.0","exercises":[],"workouts":[],"splits":[]}`))
	assertFormatError(t, err, "unsupported backup version: 2.0")
}

func TestParseBackupRejectsMissingArrays(t *testing.T) {
	_, err := parseBackup([]byte(`{"version":"1.0","workouts":[],"splits":[]}`))
	assertFormatError(t, err, "exercises must be an array")

	_, err = parseBackup([]byte(`{"version":"1.0","exercises":[],"workouts":{},"splits":[]}`))
	assertFormatError(t, err, "workouts must be an array")
}

func TestParseBackupAcceptsValidDocument(t *testing.T) {
	backup, err := parseBackup([]byte(`{
		"version":"1.0",
		"exercises":[{"id":1,"name":"Squat"}],
		"workouts":[],
		"splits":[],
		"cardioTypes":[]
	}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backup.Exercises) != 1 || backup.Exercises[0].Name != "Squat" {
		t.Fatalf("unexpected parsed document: %+v", backup)
	}
}
