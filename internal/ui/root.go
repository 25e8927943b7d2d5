package ui

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/isnick/isnick-downloader/internal/config"
	"github.com/isnick/isnick-downloader/internal/download"
	"github.com/isnick/isnick-downloader/internal/guard"
	"github.com/isnick/isnick-downloader/internal/logging"
	"github.com/isnick/isnick-downloader/internal/model"
	"github.com/isnick/isnick-downloader/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	store  *config.Store
	cfg    config.Config
	runner download.Runner
	sink   *logging.Sink

	// Binary picker; hidden when the binary comes from the config file
	binaryBox   *fyne.Container
	binaryEntry *widget.Entry

	urlEntry    *widget.Entry
	sandboxInfo *widget.Label
	statusLabel *widget.Label
	speedLabel  *widget.Label
	progress    *widget.ProgressBar
	downloadBtn *widget.Button
	cancelBtn   *widget.Button

	settingsDialog *SettingsDialog

	mainMenu     *fyne.MainMenu
	siteItems    map[model.Site]*fyne.MenuItem
	unlistedItem *fyne.MenuItem

	// UI update debouncing
	uiUpdateMutex sync.Mutex
	lastUIUpdate  time.Time
	lastStatus    model.JobStatus
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store *config.Store, cfg config.Config, runner download.Runner, sink *logging.Sink) *RootUI {
	if sink == nil {
		sink = logging.Discard()
	}

	ui := &RootUI{
		window:     window,
		app:        app,
		store:      store,
		cfg:        cfg,
		runner:     runner,
		sink:       sink,
		lastStatus: model.StatusIdle,
	}

	window.SetTitle(AppTitle)

	// Set up callback for job updates
	ui.runner.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	ui.initSandbox()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Binary picker row
	binaryLabel := widget.NewLabel("yt-dlp binary path:")
	ui.binaryEntry = widget.NewEntry()
	ui.binaryEntry.SetPlaceHolder("Path to a yt-dlp binary")
	binaryBrowseBtn := widget.NewButton(ButtonBrowse, ui.onChooseBinary)
	ui.binaryBox = container.NewVBox(
		binaryLabel,
		container.NewBorder(nil, nil, nil, binaryBrowseBtn, ui.binaryEntry),
	)
	if ui.cfg.Binary != "" {
		ui.binaryBox.Hide()
	}

	// URL input
	urlLabel := widget.NewLabel("Video URL:")
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("https://…")
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	// Sandbox info, status and speed
	ui.sandboxInfo = widget.NewLabel(fmt.Sprintf(SandboxLabelFormat, SandboxPendingLocation))
	ui.sandboxInfo.Truncation = fyne.TextTruncateEllipsis
	ui.statusLabel = widget.NewLabel(fmt.Sprintf(StatusLabelFormat, model.StatusIdle))
	ui.speedLabel = widget.NewLabel(fmt.Sprintf(SpeedLabelFormat, SpeedPlaceholder))

	// Progress bar
	ui.progress = widget.NewProgressBar()
	ui.progress.SetValue(0)

	// Buttons
	ui.downloadBtn = widget.NewButton(ButtonDownload, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton(ButtonCancel, ui.onCancelClick)
	ui.cancelBtn.Disable()

	content := container.NewVBox(
		ui.binaryBox,
		urlLabel,
		ui.urlEntry,
		ui.sandboxInfo,
		ui.statusLabel,
		ui.speedLabel,
		ui.progress,
		container.NewGridWithColumns(2, ui.downloadBtn, ui.cancelBtn),
	)
	ui.window.SetContent(container.NewPadded(content))

	// Persist the configuration when the window is closed
	ui.window.SetCloseIntercept(func() {
		ui.saveConfig()
		ui.window.Close()
	})

	ui.settingsDialog = NewSettingsDialog(ui.window, ui.onSettingsApplied)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	resetItem := fyne.NewMenuItem(ItemReset, ui.onReset)
	openDownloadsItem := fyne.NewMenuItem(ItemOpenDownloads, ui.onOpenDownloads)
	settingsItem := fyne.NewMenuItem(ItemSettings, ui.onShowSettings)
	exitItem := fyne.NewMenuItem(ItemExit, ui.onExit)
	fileMenu := fyne.NewMenu(MenuFile,
		resetItem,
		openDownloadsItem,
		settingsItem,
		fyne.NewMenuItemSeparator(),
		exitItem,
	)

	ui.siteItems = make(map[model.Site]*fyne.MenuItem)
	var siteMenuItems []*fyne.MenuItem
	for _, site := range model.ListedSites() {
		s := site // Capture for closure
		item := fyne.NewMenuItem(string(s), func() {
			ui.onSelectSite(s)
		})
		ui.siteItems[s] = item
		siteMenuItems = append(siteMenuItems, item)
	}
	ui.unlistedItem = fyne.NewMenuItem(string(model.SiteUnlisted), ui.onToggleUnlisted)
	siteMenuItems = append(siteMenuItems, ui.unlistedItem)
	siteMenu := fyne.NewMenu(MenuSite, siteMenuItems...)

	aboutItem := fyne.NewMenuItem(ItemAbout, ui.onShowAbout)
	helpItem := fyne.NewMenuItem(ItemHelp, ui.onShowHelp)
	helpMenu := fyne.NewMenu(MenuHelp, aboutItem, helpItem)

	ui.mainMenu = fyne.NewMainMenu(fileMenu, siteMenu, helpMenu)
	ui.applySiteChecks()
	ui.window.SetMainMenu(ui.mainMenu)
}

// applySiteChecks marks the selected site in the Site menu
func (ui *RootUI) applySiteChecks() {
	for site, item := range ui.siteItems {
		item.Checked = site == ui.cfg.SelectedSite
	}
	ui.unlistedItem.Checked = ui.cfg.SelectedSite == model.SiteUnlisted
}

// initSandbox prepares the sandbox directory at startup so the location
// label can show the canonical path. Failures are reported but not fatal;
// every download attempt re-runs the same checks.
func (ui *RootUI) initSandbox() {
	if err := guard.EnsureSandbox(ui.cfg.SandboxDir, ""); err != nil {
		ui.sink.Warn("sandbox not ready", "dir", ui.cfg.SandboxDir, "err", err)
		dialog.ShowError(err, ui.window)
		return
	}
	resolved, err := guard.ResolveSandbox(ui.cfg.SandboxDir)
	if err != nil {
		ui.sink.Warn("sandbox not resolvable", "dir", ui.cfg.SandboxDir, "err", err)
		return
	}
	ui.cfg.SandboxDir = resolved
	ui.sandboxInfo.SetText(fmt.Sprintf(SandboxLabelFormat, resolved))
}

// onSelectSite handles a click on one of the listed sites
func (ui *RootUI) onSelectSite(site model.Site) {
	ui.cfg.SelectedSite = site
	ui.applySiteChecks()
	ui.mainMenu.Refresh()

	ui.sink.Info("site selected", "site", site)
	ui.saveConfig()
}

// onToggleUnlisted switches between unrestricted URLs and the default site
func (ui *RootUI) onToggleUnlisted() {
	if ui.cfg.SelectedSite == model.SiteUnlisted {
		ui.onSelectSite(model.DefaultSite)
		return
	}
	ui.cfg.SelectedSite = model.SiteUnlisted
	ui.applySiteChecks()
	ui.mainMenu.Refresh()

	ui.sink.Info("allowing unlisted sites")
	ui.saveConfig()
}

// onChooseBinary handles the binary Browse button
func (ui *RootUI) onChooseBinary() {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()

		if err := guard.EnsureBinary(path); err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		ui.binaryEntry.SetText(path)
		ui.saveConfig()
	}, ui.window)
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	binary := ui.cfg.Binary
	if binary == "" {
		binary = strings.TrimSpace(ui.binaryEntry.Text)
	}
	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		dialog.ShowError(errors.New("please enter a video URL"), ui.window)
		return
	}

	ui.runner.SetBinaryPath(binary)
	ui.runner.SetSandbox(ui.cfg.SandboxDir, "")

	if _, err := ui.runner.Start(url, ui.cfg.SelectedSite); err != nil {
		if errors.Is(err, download.ErrJobInProgress) {
			dialog.ShowInformation("Warning", "Another download is in progress.", ui.window)
		} else {
			dialog.ShowError(err, ui.window)
		}
		return
	}

	ui.progress.SetValue(0)
	ui.speedLabel.SetText(fmt.Sprintf(SpeedLabelFormat, SpeedPlaceholder))
	ui.downloadBtn.Disable()

	ui.saveConfig()
}

// onCancelClick handles the cancel button click
func (ui *RootUI) onCancelClick() {
	if err := ui.runner.Cancel(); err != nil && !errors.Is(err, download.ErrNoActiveJob) {
		dialog.ShowError(err, ui.window)
	}
}

// onReset clears the inputs and any finished job
func (ui *RootUI) onReset() {
	if err := ui.runner.Reset(); err != nil {
		dialog.ShowInformation("Warning", "Another download is in progress.", ui.window)
		return
	}

	ui.urlEntry.SetText("")
	if ui.cfg.Binary == "" {
		ui.binaryEntry.SetText("")
	}
	ui.progress.SetValue(0)
	ui.statusLabel.SetText(fmt.Sprintf(StatusLabelFormat, model.StatusIdle))
	ui.speedLabel.SetText(fmt.Sprintf(SpeedLabelFormat, SpeedPlaceholder))
	ui.downloadBtn.Enable()
	ui.cancelBtn.Disable()

	ui.uiUpdateMutex.Lock()
	ui.lastStatus = model.StatusIdle
	ui.uiUpdateMutex.Unlock()
}

// onOpenDownloads reveals the sandbox directory in the file manager
func (ui *RootUI) onOpenDownloads() {
	if err := platform.CreateDirectoryIfNotExists(ui.cfg.SandboxDir); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	if err := platform.OpenFolder(ui.cfg.SandboxDir); err != nil {
		dialog.ShowError(err, ui.window)
	}
}

// onExit persists the configuration and closes the window
func (ui *RootUI) onExit() {
	ui.saveConfig()
	ui.window.Close()
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show(ui.cfg)
}

// onSettingsApplied takes over the configuration edited in the dialog
func (ui *RootUI) onSettingsApplied(cfg config.Config) {
	ui.cfg = cfg
	if ui.cfg.Binary != "" {
		ui.binaryBox.Hide()
	} else {
		ui.binaryBox.Show()
	}
	ui.applySiteChecks()
	ui.mainMenu.Refresh()
	ui.initSandbox()
	ui.saveConfig()
}

func (ui *RootUI) onShowAbout() {
	dialog.ShowInformation(ItemAbout, AboutText, ui.window)
}

func (ui *RootUI) onShowHelp() {
	dialog.ShowInformation(ItemHelp, HelpText, ui.window)
}

// onJobUpdate receives job events from the runner goroutine. Status
// transitions pass straight through; progress-only updates are debounced
// so the canvas is not refreshed on every output line.
func (ui *RootUI) onJobUpdate(job *model.DownloadJob) {
	snapshot := *job

	ui.uiUpdateMutex.Lock()
	statusChanged := snapshot.Status != ui.lastStatus
	if statusChanged {
		ui.lastStatus = snapshot.Status
	}
	if !statusChanged && !snapshot.Status.IsTerminal() {
		if time.Since(ui.lastUIUpdate) < UIUpdateDebounce {
			ui.uiUpdateMutex.Unlock()
			return
		}
	}
	ui.lastUIUpdate = time.Now()
	ui.uiUpdateMutex.Unlock()

	fyne.Do(func() {
		ui.applyJob(snapshot, statusChanged)
	})
}

// applyJob folds one job snapshot into the widgets. Runs on the UI thread.
func (ui *RootUI) applyJob(job model.DownloadJob, statusChanged bool) {
	ui.statusLabel.SetText(fmt.Sprintf(StatusLabelFormat, statusText(job)))

	speed := job.Speed
	if speed == "" {
		speed = SpeedPlaceholder
	}
	ui.speedLabel.SetText(fmt.Sprintf(SpeedLabelFormat, speed))

	if job.Status == model.StatusCancelled {
		ui.progress.SetValue(0)
	} else {
		ui.progress.SetValue(float64(job.Percent) / 100)
	}

	if job.Status.IsActive() {
		ui.downloadBtn.Disable()
	} else {
		ui.downloadBtn.Enable()
	}
	if job.Status == model.StatusRunning {
		ui.cancelBtn.Enable()
	} else {
		ui.cancelBtn.Disable()
	}

	if !statusChanged {
		return
	}
	switch job.Status {
	case model.StatusSucceeded:
		dialog.ShowInformation(DoneTitle, DoneMessage, ui.window)
	case model.StatusFailed:
		dialog.ShowError(errors.New(job.LastError), ui.window)
	}
}

// statusText maps a job to the text shown after "Status:"
func statusText(job model.DownloadJob) string {
	switch job.Status {
	case model.StatusRunning:
		if job.Phase != "" {
			return job.Phase
		}
	case model.StatusSucceeded:
		if job.Phase == download.PhaseAlreadyDone {
			return job.Phase
		}
		return StatusCompleteText
	}
	return job.Status.String()
}

// saveConfig persists the current configuration. The binary entered by
// hand is written to the file but only becomes the fixed binary, hiding
// the picker, on the next start.
func (ui *RootUI) saveConfig() {
	cfg := ui.cfg
	if cfg.Binary == "" {
		cfg.Binary = strings.TrimSpace(ui.binaryEntry.Text)
	}
	if err := ui.store.Save(cfg); err != nil {
		ui.sink.Warn("failed to save config", "err", err)
	}
}
