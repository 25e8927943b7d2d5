package download

// Package download implements the download runner: it guards every job
// (sandbox, binary, URL), spawns the external downloader as the single
// live process, streams its output into progress updates and the log
// sink, and drives the job status lifecycle.
