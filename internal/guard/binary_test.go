package guard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, perm os.FileMode) {
	t.Helper()
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), perm); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestEnsureBinary_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yt-dlp")
	writeFile(t, path, 0o755)

	if err := EnsureBinary(path); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestEnsureBinary_PrefixedName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yt-dlp_linux")
	writeFile(t, path, 0o755)

	if err := EnsureBinary(path); err != nil {
		t.Errorf("Expected prefixed name to pass, got %v", err)
	}
}

func TestEnsureBinary_NotFound(t *testing.T) {
	dir := t.TempDir()

	err := EnsureBinary(filepath.Join(dir, "yt-dlp"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestEnsureBinary_Directory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yt-dlp")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	err := EnsureBinary(path)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for directory, got %v", err)
	}
}

func TestEnsureBinary_BadName(t *testing.T) {
	dir := t.TempDir()

	tests := []string{"malicious", "ytdlp", "YT-DLP", "dlp-yt"}
	for _, name := range tests {
		path := filepath.Join(dir, name)
		writeFile(t, path, 0o755)

		err := EnsureBinary(path)
		if !errors.Is(err, ErrBadName) {
			t.Errorf("EnsureBinary(%s): expected ErrBadName, got %v", name, err)
		}
	}
}

func TestEnsureBinary_NotExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yt-dlp")
	writeFile(t, path, 0o644)

	err := EnsureBinary(path)
	if !errors.Is(err, ErrNotExecutable) {
		t.Errorf("Expected ErrNotExecutable, got %v", err)
	}
}
