package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/isnick/isnick-downloader/internal/config"
	"github.com/isnick/isnick-downloader/internal/guard"
	"github.com/isnick/isnick-downloader/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	window  fyne.Window
	dialog  *dialog.ConfirmDialog
	onApply func(config.Config)

	current config.Config

	// UI components
	binaryEntry  *widget.Entry
	sandboxEntry *widget.Entry
	siteSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog. The onApply callback
// receives the edited configuration when the user saves.
func NewSettingsDialog(window fyne.Window, onApply func(config.Config)) *SettingsDialog {
	sd := &SettingsDialog{
		window:  window,
		onApply: onApply,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog with the given configuration
func (sd *SettingsDialog) Show(cfg config.Config) {
	sd.current = cfg
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Downloader binary selection
	sd.binaryEntry = widget.NewEntry()
	sd.binaryEntry.SetPlaceHolder("Path to a yt-dlp binary")

	browseBinaryBtn := widget.NewButton(ButtonBrowse, sd.onBrowseBinary)
	binaryRow := container.NewBorder(nil, nil, nil, browseBinaryBtn, sd.binaryEntry)

	// Sandbox directory selection
	sd.sandboxEntry = widget.NewEntry()
	sd.sandboxEntry.SetPlaceHolder("Sandbox download directory")

	browseDirBtn := widget.NewButton(ButtonBrowse, sd.onBrowseSandbox)
	sandboxRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.sandboxEntry)

	// Allowed site selection
	siteOptions := []string{}
	for _, site := range model.ListedSites() {
		siteOptions = append(siteOptions, string(site))
	}
	siteOptions = append(siteOptions, string(model.SiteUnlisted))
	sd.siteSelect = widget.NewSelect(siteOptions, nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Downloader binary:"),
		binaryRow,

		widget.NewLabel("Sandbox directory:"),
		sandboxRow,

		widget.NewLabel("Allowed site:"),
		sd.siteSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(480, 280))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.binaryEntry.SetText(sd.current.Binary)
	sd.sandboxEntry.SetText(sd.current.SandboxDir)
	sd.siteSelect.SetSelected(string(sd.current.SelectedSite))
}

// onBrowseBinary handles binary file browsing
func (sd *SettingsDialog) onBrowseBinary() {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()

		if err := guard.EnsureBinary(path); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		sd.binaryEntry.SetText(path)
	}, sd.window)
}

// onBrowseSandbox handles directory browsing
func (sd *SettingsDialog) onBrowseSandbox() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.sandboxEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	cfg := sd.current

	// An emptied binary field brings the picker back on next start
	binary := strings.TrimSpace(sd.binaryEntry.Text)
	if binary != "" {
		if err := guard.EnsureBinary(binary); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
	}
	cfg.Binary = binary

	if dir := strings.TrimSpace(sd.sandboxEntry.Text); dir != "" {
		cfg.SandboxDir = dir
	}
	if sd.siteSelect.Selected != "" {
		cfg.SelectedSite = model.ParseSite(sd.siteSelect.Selected)
	}

	if sd.onApply != nil {
		sd.onApply(cfg)
	}
}
