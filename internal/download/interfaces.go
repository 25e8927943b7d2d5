package download

import (
	"github.com/isnick/isnick-downloader/internal/model"
)

// Runner defines the interface for the download service.
type Runner interface {
	SetUpdateCallback(func(*model.DownloadJob))
	SetBinaryPath(path string)
	SetSandbox(dir, root string)

	// Start validates and launches a new job; at most one job is active
	Start(url string, site model.Site) (*model.DownloadJob, error)

	// Cancel requests termination of the running process
	Cancel() error

	// Reset clears a finished job so the UI returns to Idle
	Reset() error

	CurrentJob() (*model.DownloadJob, bool)
}
