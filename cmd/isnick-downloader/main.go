package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/isnick/isnick-downloader/internal/config"
	"github.com/isnick/isnick-downloader/internal/download"
	"github.com/isnick/isnick-downloader/internal/logging"
	"github.com/isnick/isnick-downloader/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("net.isnick.isnick-downloader")
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	myWindow := myApp.NewWindow(ui.AppTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	sink := logging.Discard()
	if logPath, err := config.DefaultLogPath(); err == nil {
		if opened, err := logging.Open(logPath); err == nil {
			sink = opened
			defer sink.Close()
		}
	}

	cfgPath, _ := config.DefaultPath()
	store := config.NewStore(cfgPath)
	cfg, _ := store.Load()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, store, cfg, download.NewService(sink), sink)

	// Show and run
	myWindow.ShowAndRun()
}
