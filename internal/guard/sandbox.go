package guard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sandbox directory permissions; the directory is private to the user
const SandboxDirPermissions = 0o700

// EnsureSandbox verifies that path is usable as the download sandbox and
// creates it (with parents) when missing. It fails with ErrIsSymlink when
// any existing component of the path is a symbolic link, ErrNotWritable
// when creation or a write probe fails, and ErrOutsideRoot when root is
// non-empty and the canonical path is not root or a descendant of it.
func EnsureSandbox(path, root string) error {
	abs, err := normalizePath(path)
	if err != nil {
		return fmt.Errorf("sandbox %s: %w", path, ErrNotWritable)
	}

	if err := rejectSymlinkComponents(abs); err != nil {
		return err
	}

	if err := os.MkdirAll(abs, SandboxDirPermissions); err != nil {
		return fmt.Errorf("create sandbox %s: %w", abs, ErrNotWritable)
	}
	if err := os.Chmod(abs, SandboxDirPermissions); err != nil {
		return fmt.Errorf("chmod sandbox %s: %w", abs, ErrNotWritable)
	}

	if err := probeWritable(abs); err != nil {
		return err
	}

	if root != "" {
		return checkInsideRoot(abs, root)
	}
	return nil
}

// ResolveSandbox returns the canonical absolute form of a sandbox path,
// with a leading ~ expanded. Used by callers that display the directory.
func ResolveSandbox(path string) (string, error) {
	abs, err := normalizePath(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Not created yet; the cleaned absolute path is the best answer.
		return abs, nil
	}
	return resolved, nil
}

func normalizePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty path")
	}
	if path == "~" || strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// rejectSymlinkComponents walks the existing ancestors of abs from the
// filesystem root down and fails on the first symbolic link. Components
// that do not exist yet are about to be created fresh and cannot be links.
func rejectSymlinkComponents(abs string) error {
	var chain []string
	for cur := abs; ; cur = filepath.Dir(cur) {
		chain = append(chain, cur)
		if filepath.Dir(cur) == cur {
			break
		}
	}

	for i := len(chain) - 1; i >= 0; i-- {
		info, err := os.Lstat(chain[i])
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return fmt.Errorf("stat %s: %w", chain[i], ErrNotWritable)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("path component %s: %w", chain[i], ErrIsSymlink)
		}
	}
	return nil
}

// probeWritable creates and removes a temp file to confirm write access
func probeWritable(dir string) error {
	probe, err := os.CreateTemp(dir, ".write-probe-*")
	if err != nil {
		return fmt.Errorf("write probe in %s: %w", dir, ErrNotWritable)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return nil
}

func checkInsideRoot(abs, root string) error {
	canonPath, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return fmt.Errorf("resolve sandbox %s: %w", abs, ErrNotWritable)
	}
	canonRoot, err := normalizePath(root)
	if err != nil {
		return fmt.Errorf("resolve root %s: %w", root, ErrOutsideRoot)
	}
	if resolved, err := filepath.EvalSymlinks(canonRoot); err == nil {
		canonRoot = resolved
	}

	rel, err := filepath.Rel(canonRoot, canonPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("sandbox %s escapes root %s: %w", canonPath, canonRoot, ErrOutsideRoot)
	}
	return nil
}
