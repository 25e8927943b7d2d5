package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_AppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "is.log")

	sink, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	sink.Line("[download] 100% of 1.00MiB in 00:01")
	sink.Warn("guard rejected binary", "err", "bad name")
	if err := sink.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "[download] 100%") {
		t.Errorf("Expected subprocess line in log, got:\n%s", content)
	}
	if !strings.Contains(content, "guard rejected binary") {
		t.Errorf("Expected guard failure in log, got:\n%s", content)
	}
}

func TestOpen_AppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "is.log")

	for i := 0; i < 2; i++ {
		sink, err := Open(path)
		if err != nil {
			t.Fatalf("Open %d failed: %v", i, err)
		}
		sink.Line("entry")
		sink.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if got := strings.Count(string(data), "entry"); got != 2 {
		t.Errorf("Expected 2 entries after reopening, got %d", got)
	}
}

func TestDiscard(t *testing.T) {
	sink := Discard()
	sink.Line("dropped")
	if err := sink.Close(); err != nil {
		t.Errorf("Close on discard sink failed: %v", err)
	}
}
