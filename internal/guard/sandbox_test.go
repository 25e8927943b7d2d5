package guard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureSandbox_CreatesMissingDirectory(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "videos", "yt-dlp-gui")

	if err := EnsureSandbox(target, ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Sandbox directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected sandbox path to be a directory")
	}
}

func TestEnsureSandbox_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := EnsureSandbox(dir, ""); err != nil {
		t.Errorf("Expected no error for existing writable dir, got %v", err)
	}
}

func TestEnsureSandbox_Symlink(t *testing.T) {
	base := t.TempDir()
	real := filepath.Join(base, "real")
	if err := os.Mkdir(real, 0o700); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	link := filepath.Join(base, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("Symlinks not supported: %v", err)
	}

	err := EnsureSandbox(link, "")
	if !errors.Is(err, ErrIsSymlink) {
		t.Errorf("Expected ErrIsSymlink, got %v", err)
	}
}

func TestEnsureSandbox_SymlinkParent(t *testing.T) {
	base := t.TempDir()
	real := filepath.Join(base, "real")
	if err := os.Mkdir(real, 0o700); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	link := filepath.Join(base, "link")
	if err := os.Symlink(real, link); err != nil {
		t.Skipf("Symlinks not supported: %v", err)
	}

	err := EnsureSandbox(filepath.Join(link, "inner"), "")
	if !errors.Is(err, ErrIsSymlink) {
		t.Errorf("Expected ErrIsSymlink for symlink parent, got %v", err)
	}
}

func TestEnsureSandbox_NotWritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("Permission checks do not apply to root")
	}

	base := t.TempDir()
	locked := filepath.Join(base, "locked")
	if err := os.Mkdir(locked, 0o500); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0o700) })

	err := EnsureSandbox(filepath.Join(locked, "inner"), "")
	if !errors.Is(err, ErrNotWritable) {
		t.Errorf("Expected ErrNotWritable, got %v", err)
	}
}

func TestEnsureSandbox_OutsideRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "root")
	other := filepath.Join(base, "other")

	if err := EnsureSandbox(filepath.Join(root, "inside"), root); err != nil {
		t.Errorf("Expected descendant of root to pass, got %v", err)
	}

	err := EnsureSandbox(other, root)
	if !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("Expected ErrOutsideRoot, got %v", err)
	}
}

func TestEnsureSandbox_RootItself(t *testing.T) {
	root := t.TempDir()

	if err := EnsureSandbox(root, root); err != nil {
		t.Errorf("Expected root itself to pass, got %v", err)
	}
}

func TestEnsureSandbox_DotDotEscape(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "root")

	err := EnsureSandbox(filepath.Join(root, "..", "escape"), root)
	if !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("Expected ErrOutsideRoot for .. escape, got %v", err)
	}
}

func TestResolveSandbox(t *testing.T) {
	dir := t.TempDir()

	resolved, err := ResolveSandbox(dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !filepath.IsAbs(resolved) {
		t.Errorf("Expected absolute path, got %s", resolved)
	}
}
