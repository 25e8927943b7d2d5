package platform

// Package platform holds OS-facing helpers: parsing of the downloader's
// textual output, directory defaults and creation, and opening the
// download folder in the system file manager.
