package model

import "time"

// DownloadJob represents a single download attempt. Exactly one job is
// active at a time; the runner owns the job for its whole lifecycle.
type DownloadJob struct {
	ID         string
	URL        string
	Site       Site
	TargetDir  string    // sandbox directory the process writes into
	Status     JobStatus
	Percent    int       // 0 to 100, last value reported by the process
	Speed      string    // human readable speed (e.g., "1.2MiB/s"), "" if unknown
	Phase      string    // short progress hint while Running
	ExitCode   int       // process exit code, meaningful in terminal states
	LastError  string    // last error message if any
	StartedAt  time.Time // when the job was created
	FinishedAt time.Time // when the job reached a terminal state
}
