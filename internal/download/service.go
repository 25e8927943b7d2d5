package download

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/isnick/isnick-downloader/internal/guard"
	"github.com/isnick/isnick-downloader/internal/logging"
	"github.com/isnick/isnick-downloader/internal/model"
	"github.com/isnick/isnick-downloader/internal/platform"
)

// Fixed, non-user-controlled downloader flags. The only variable
// arguments are the sandbox directory and the validated URL; both are
// passed as discrete argv entries, never through a shell.
const (
	FlagNewline           = "--newline"
	FlagRestrictFilenames = "--restrict-filenames"
	FlagOutputTemplate    = "-o"
	FlagOutputDir         = "-P"

	// OutputTemplate caps the title length so filenames stay safe
	OutputTemplate = "%(title).200B.%(ext)s"
)

// Phase hints shown while a job is Running
const (
	PhaseRetrievingInfo = "Retrieving video information…"
	PhaseBeginning      = "Beginning download…"
	PhaseInProgress     = "In progress…"
	PhaseAlreadyDone    = "Complete (already downloaded)"
)

// Process shutdown grace period before a hard kill
const cancelWaitDelay = 5 * time.Second

// Scanner buffer sizing for subprocess output
const (
	scanInitialBuffer = 64 * 1024
	scanMaxBuffer     = 1024 * 1024
)

const jobIDPrefix = "job-"

// Service is the download runner. It owns at most one job and its live
// process at any time.
type Service struct {
	mu sync.Mutex

	job             *model.DownloadJob
	cancelProcess   context.CancelFunc
	cancelRequested bool

	binaryPath  string
	sandboxDir  string
	sandboxRoot string

	sink     *logging.Sink
	onUpdate func(*model.DownloadJob) // callback for UI updates
}

// NewService creates a new download runner writing to the given log sink
func NewService(sink *logging.Sink) *Service {
	if sink == nil {
		sink = logging.Discard()
	}
	return &Service{sink: sink}
}

// SetUpdateCallback sets the callback function for job updates. Events
// are delivered in the order they are produced.
func (s *Service) SetUpdateCallback(callback func(*model.DownloadJob)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetBinaryPath sets the downloader binary used for the next job
func (s *Service) SetBinaryPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.binaryPath = path
}

// SetSandbox sets the sandbox directory and, when root is non-empty, the
// root the sandbox must stay inside.
func (s *Service) SetSandbox(dir, root string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sandboxDir = dir
	s.sandboxRoot = root
}

// CurrentJob returns the job the runner owns, if any
func (s *Service) CurrentJob() (*model.DownloadJob, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job, s.job != nil
}

// Start creates a new job and begins validation. It fails when a job is
// already active; validation and the download itself run off the
// caller's goroutine and report through the update callback.
func (s *Service) Start(url string, site model.Site) (*model.DownloadJob, error) {
	s.mu.Lock()
	if s.job != nil && !s.job.Status.IsTerminal() {
		s.mu.Unlock()
		return nil, fmt.Errorf("job %s is %s: %w", s.job.ID, s.job.Status, ErrJobInProgress)
	}

	job := &model.DownloadJob{
		ID:        generateJobID(),
		URL:       url,
		Site:      site,
		TargetDir: s.sandboxDir,
		Status:    model.StatusValidating,
		StartedAt: time.Now(),
	}
	s.job = job
	s.cancelRequested = false

	binary := s.binaryPath
	sandboxDir := s.sandboxDir
	sandboxRoot := s.sandboxRoot
	s.mu.Unlock()

	s.notifyUpdate(job)

	go s.run(job, binary, sandboxDir, sandboxRoot)

	return job, nil
}

// Cancel requests termination of the running process. The job becomes
// Cancelled only once the process has actually exited.
func (s *Service) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job == nil || s.job.Status != model.StatusRunning || s.cancelProcess == nil {
		return ErrNoActiveJob
	}

	s.cancelRequested = true
	s.cancelProcess()
	return nil
}

// Reset clears a finished job. It fails while a job is still active.
func (s *Service) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.job != nil && !s.job.Status.IsTerminal() {
		return fmt.Errorf("job %s is %s: %w", s.job.ID, s.job.Status, ErrJobInProgress)
	}
	s.job = nil
	return nil
}

// run executes the guard sequence and, when it passes, the process
func (s *Service) run(job *model.DownloadJob, binary, sandboxDir, sandboxRoot string) {
	if err := guard.EnsureSandbox(sandboxDir, sandboxRoot); err != nil {
		s.fail(job, err)
		return
	}
	if err := guard.EnsureBinary(binary); err != nil {
		s.fail(job, err)
		return
	}
	if err := guard.ValidateURL(job.URL, job.Site); err != nil {
		s.fail(job, err)
		return
	}

	resolved, err := guard.ResolveSandbox(sandboxDir)
	if err != nil {
		s.fail(job, err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	args := []string{
		FlagNewline,
		FlagRestrictFilenames,
		FlagOutputTemplate, OutputTemplate,
		FlagOutputDir, resolved,
		job.URL,
	}
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = cancelWaitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.fail(job, fmt.Errorf("setup stdout pipe: %w", err))
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		s.fail(job, fmt.Errorf("setup stderr pipe: %w", err))
		return
	}

	if err := cmd.Start(); err != nil {
		s.fail(job, fmt.Errorf("start %s: %w", binary, err))
		return
	}

	s.mu.Lock()
	s.cancelProcess = cancel
	job.TargetDir = resolved
	job.Status = model.StatusRunning
	job.Phase = PhaseRetrievingInfo
	s.mu.Unlock()
	s.sink.Info("download started", "url", job.URL, "dir", resolved)
	s.notifyUpdate(job)

	lines := make(chan string)
	var wg sync.WaitGroup
	wg.Add(2)
	go readLines(stdout, lines, &wg)
	go readLines(stderr, lines, &wg)
	go func() {
		wg.Wait()
		close(lines)
	}()

	for line := range lines {
		s.handleLine(job, line)
	}

	s.finalize(job, cmd.Wait())
}

// handleLine logs one output line and folds any recognized progress
// pattern into the job.
func (s *Service) handleLine(job *model.DownloadJob, line string) {
	clean := platform.StripANSI(line)
	if clean != "" {
		s.sink.Line(clean)
	}

	ev := platform.ParseProgressLine(clean)
	if !ev.HasPercent && ev.Speed == "" && !ev.Destination {
		return
	}

	s.mu.Lock()
	switch {
	case ev.AlreadyDone:
		job.Phase = PhaseAlreadyDone
		job.Speed = ""
	case ev.Destination:
		job.Phase = PhaseBeginning
	default:
		job.Phase = PhaseInProgress
	}
	if ev.HasPercent {
		job.Percent = ev.Percent
	}
	if ev.Speed != "" {
		job.Speed = ev.Speed
	}
	s.mu.Unlock()

	s.notifyUpdate(job)
}

// finalize maps the process exit into the job's terminal state. A
// requested cancellation wins over the exit code.
func (s *Service) finalize(job *model.DownloadJob, waitErr error) {
	s.mu.Lock()
	s.cancelProcess = nil
	cancelled := s.cancelRequested

	switch {
	case cancelled:
		job.Status = model.StatusCancelled
		job.Speed = ""
	case waitErr != nil:
		code := -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			code = exitErr.ExitCode()
		}
		job.Status = model.StatusFailed
		job.ExitCode = code
		job.LastError = (&ProcessExitError{Code: code}).Error()
		job.Speed = ""
	default:
		job.Status = model.StatusSucceeded
		job.Percent = 100
		job.Speed = ""
	}
	job.FinishedAt = time.Now()
	status := job.Status
	s.mu.Unlock()

	switch status {
	case model.StatusCancelled:
		s.sink.Info("download cancelled by user", "job", job.ID)
	case model.StatusFailed:
		s.sink.Error("download failed", "job", job.ID, "err", job.LastError)
	default:
		s.sink.Info("download finished", "job", job.ID)
	}
	s.notifyUpdate(job)
}

// fail records a guard or setup failure; no process was spawned
func (s *Service) fail(job *model.DownloadJob, err error) {
	s.mu.Lock()
	job.Status = model.StatusFailed
	job.LastError = err.Error()
	job.FinishedAt = time.Now()
	s.mu.Unlock()

	s.sink.Warn("job rejected", "job", job.ID, "err", err)
	s.notifyUpdate(job)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job *model.DownloadJob) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(job)
	}
}

// readLines scans r into whole lines. yt-dlp redraws progress with
// carriage returns, so CR counts as a line break too.
func readLines(r io.Reader, lines chan<- string, wg *sync.WaitGroup) {
	defer wg.Done()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, scanInitialBuffer), scanMaxBuffer)
	scanner.Split(splitByNewlineOrCR)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}

func splitByNewlineOrCR(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for i := 0; i < len(data); i++ {
		if data[i] == '\n' || data[i] == '\r' {
			if i == 0 {
				return 1, nil, nil
			}
			return i + 1, data[:i], nil
		}
	}
	if atEOF && len(data) > 0 {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// generateJobID generates a unique job ID using UUID v7 for time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(jobIDPrefix+"%d", time.Now().UnixNano())
	}
	return jobIDPrefix + id.String()
}
