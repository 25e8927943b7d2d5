package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window
const (
	AppTitle = "iSnick Downloader"

	WindowWidth  float32 = 560
	WindowHeight float32 = 340
)

// Label templates
const (
	StatusLabelFormat  = "Status: %s"
	SpeedLabelFormat   = "Speed: %s"
	SandboxLabelFormat = "Download location: %s"

	SpeedPlaceholder       = "-"
	SandboxPendingLocation = "(sandboxed)"
	StatusCompleteText     = "Complete"
)

// Menu and button captions
const (
	MenuFile = "File"
	MenuSite = "Site"
	MenuHelp = "Help"

	ItemReset         = "Reset"
	ItemOpenDownloads = "Open Downloads"
	ItemSettings      = "Settings…"
	ItemExit          = "Exit"
	ItemAbout         = "About"
	ItemHelp          = "Help"

	ButtonDownload = "Download"
	ButtonCancel   = "Cancel"
	ButtonBrowse   = "Browse…"
)

// Dialog texts
const (
	AboutText = "iSnick Downloader v0.0.1\n\n" +
		"A program to download media for offline use.\n\n" +
		"https://isnick.net"

	HelpText = "1) Paste a media URL (http/https).\n" +
		"2) Select from menu (currently YouTube, TikTok, Facebook, Instagram, or Allow Unlisted).\n" +
		"3) Download goes to sandbox directory.\n" +
		"4) Click Download. Use Cancel to stop.\n\n" +
		"Menu:\n- File → Reset: Clear inputs.\n- File → Exit: Quit.\n- Help → About / Help."

	DoneTitle   = "Done"
	DoneMessage = "Download completed."
)

// Debounce durations
const (
	UIUpdateDebounce = 100 * time.Millisecond
)
