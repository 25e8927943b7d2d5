package logging

// Package logging provides the append-only application log sink. Every
// subprocess output line and every guard failure ends up here with a
// timestamp.
