package guard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BinaryNamePrefix is the literal, case-sensitive prefix the downloader
// binary's base name must carry. This is a compatibility check, not a
// cryptographic one; do not strengthen or weaken it in isolation.
const BinaryNamePrefix = "yt-dlp"

// EnsureBinary verifies that path names a runnable downloader binary.
// It fails with ErrNotFound when the path is missing or not a regular
// file, ErrBadName when the base name does not start with
// BinaryNamePrefix, and ErrNotExecutable when no execute bit is set.
func EnsureBinary(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("binary %s: %w", path, ErrNotFound)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("binary %s is not a regular file: %w", path, ErrNotFound)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, BinaryNamePrefix) {
		return fmt.Errorf("binary %s: %w", base, ErrBadName)
	}

	if info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("binary %s: %w", path, ErrNotExecutable)
	}
	return nil
}
