package guard

// Package guard implements the checks that must pass before a download
// process is spawned: the sandbox directory guard, the binary guard and
// the URL validator. All checks are synchronous and side-effect free
// except for sandbox directory creation.
