package guard

import "errors"

// Sandbox guard failures
var (
	// ErrNotWritable means the sandbox directory could not be created or written
	ErrNotWritable = errors.New("sandbox directory is not writable")

	// ErrIsSymlink means a component of the sandbox path is a symbolic link
	ErrIsSymlink = errors.New("sandbox path contains a symbolic link")

	// ErrOutsideRoot means the resolved sandbox path escapes the permitted root
	ErrOutsideRoot = errors.New("sandbox path resolves outside the permitted root")
)

// Binary guard failures
var (
	// ErrNotFound means the binary path does not name a regular file
	ErrNotFound = errors.New("binary not found")

	// ErrBadName means the binary's base name lacks the required prefix
	ErrBadName = errors.New("binary name does not start with the required prefix")

	// ErrNotExecutable means the binary has no execute permission bit
	ErrNotExecutable = errors.New("binary is not executable")
)

// URL validator failures
var (
	// ErrBadScheme means the URL is unparsable or not http/https
	ErrBadScheme = errors.New("URL scheme must be http or https")

	// ErrDomainMismatch means the URL host is not on the selected site's allow-list
	ErrDomainMismatch = errors.New("URL host does not match the selected site")
)
