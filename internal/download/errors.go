package download

import (
	"errors"
	"fmt"
)

// ErrNoActiveJob means Cancel was called while nothing is running
var ErrNoActiveJob = errors.New("no active job")

// ErrJobInProgress means Start or Reset was called while a job is active
var ErrJobInProgress = errors.New("another download is in progress")

// ProcessExitError reports a downloader process that exited nonzero
type ProcessExitError struct {
	Code int
}

func (e *ProcessExitError) Error() string {
	return fmt.Sprintf("process exited with code %d", e.Code)
}
