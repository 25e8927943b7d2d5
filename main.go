package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/isnick/isnick-downloader/internal/config"
	"github.com/isnick/isnick-downloader/internal/download"
	"github.com/isnick/isnick-downloader/internal/logging"
	"github.com/isnick/isnick-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "net.isnick.isnick-downloader"

func main() {
	fmt.Printf("%s v%s starting...\n", ui.AppTitle, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(ui.AppTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Open the append-only log sink; fall back to a silent sink so the
	// application still runs when the log file cannot be opened
	sink := logging.Discard()
	if logPath, err := config.DefaultLogPath(); err == nil {
		if opened, err := logging.Open(logPath); err == nil {
			sink = opened
			defer sink.Close()
		} else {
			fmt.Printf("failed to open log file: %v\n", err)
		}
	}

	// Load persisted configuration
	cfgPath, err := config.DefaultPath()
	if err != nil {
		fmt.Printf("failed to locate config dir: %v\n", err)
	}
	store := config.NewStore(cfgPath)
	cfg, err := store.Load()
	if err != nil {
		sink.Warn("config unreadable, using defaults", "err", err)
	}

	// Initialize the download runner
	runner := download.NewService(sink)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store, cfg, runner, sink)

	// Show and run
	myWindow.ShowAndRun()
}
