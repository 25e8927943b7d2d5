package model

// JobStatus represents the status of a download job
type JobStatus string

const (
	// StatusIdle means no job is in flight and the UI shows its resting state
	StatusIdle JobStatus = "Idle"

	// StatusValidating means the guards are checking sandbox, binary and URL
	StatusValidating JobStatus = "Validating"

	// StatusRunning means the external downloader process is alive
	StatusRunning JobStatus = "Running"

	// StatusSucceeded means the process exited with code 0
	StatusSucceeded JobStatus = "Succeeded"

	// StatusFailed means a guard rejected the job or the process exited nonzero
	StatusFailed JobStatus = "Failed"

	// StatusCancelled means the user requested termination and the process exited
	StatusCancelled JobStatus = "Cancelled"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true while a job holds the process slot
func (js JobStatus) IsActive() bool {
	return js == StatusValidating || js == StatusRunning
}

// IsTerminal returns true if the job reached a final state
func (js JobStatus) IsTerminal() bool {
	return js == StatusSucceeded || js == StatusFailed || js == StatusCancelled
}
