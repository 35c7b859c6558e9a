package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/asciiart/asset"
	"github.com/dixieflatline76/asciiart/config"
	"github.com/dixieflatline76/asciiart/pkg/converter"
	"github.com/dixieflatline76/asciiart/pkg/export"
	"github.com/dixieflatline76/asciiart/pkg/session"
	"github.com/dixieflatline76/asciiart/pkg/ui/setting"
	"github.com/dixieflatline76/asciiart/util/log"
)

// AsciiApp is the generator window and the state behind it.
type AsciiApp struct {
	app      fyne.App
	window   fyne.Window
	cfg      *config.AppConfig
	assetMgr *asset.Manager
	session  *session.Session
	picker   filePicker

	widthEntry  *widget.Entry
	invertCheck *widget.Check
	preview     *widget.TextGrid
	status      *widget.Label
}

// NewAsciiApp builds the main window of a.
func NewAsciiApp(a fyne.App) *AsciiApp {
	aa := &AsciiApp{
		app:      a,
		cfg:      config.NewAppConfig(a.Preferences()),
		assetMgr: asset.NewManager(),
		session:  session.New(converter.New()),
	}
	aa.applyTheme(aa.cfg.GetTheme())

	aa.window = a.NewWindow(config.AppName)
	aa.picker = newFilePicker(aa.window)
	aa.createMainWindow()
	return aa
}

// Run shows the window and runs the application until it is closed.
func (aa *AsciiApp) Run() {
	aa.window.ShowAndRun()
}

// createMainWindow lays out the controls row, the preview and the status line.
func (aa *AsciiApp) createMainWindow() {
	title := widget.NewLabelWithStyle(config.AppName, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	aa.widthEntry = widget.NewEntry()
	aa.widthEntry.SetText(strconv.Itoa(aa.cfg.GetDefaultWidth()))
	aa.widthEntry.Validator = validateWidthText

	aa.invertCheck = widget.NewCheck("Invert", nil)
	aa.invertCheck.SetChecked(aa.cfg.GetInvert())

	controls := container.NewHBox(
		layout.NewSpacer(),
		widget.NewButtonWithIcon("Upload Image", theme.FolderOpenIcon(), aa.uploadImage),
		widget.NewLabel("Width:"),
		container.NewGridWrap(fyne.NewSize(80, aa.widthEntry.MinSize().Height), aa.widthEntry),
		aa.invertCheck,
		widget.NewButtonWithIcon("Generate", theme.ViewRefreshIcon(), aa.generate),
		widget.NewButtonWithIcon("Save As", theme.DocumentSaveIcon(), aa.saveAs),
		layout.NewSpacer(),
	)

	aa.preview = widget.NewTextGrid()
	background := canvas.NewRectangle(previewBackground)
	previewArea := container.NewStack(background, container.NewScroll(aa.preview))

	aa.status = widget.NewLabel("No image loaded")
	aa.status.Importance = widget.LowImportance

	top := container.NewVBox(title, controls)
	aa.window.SetContent(container.NewBorder(top, aa.status, nil, nil, container.NewPadded(previewArea)))
	aa.window.SetMainMenu(aa.createMainMenu())
	aa.addShortcuts()
	aa.window.Resize(mainWindowSize)
	aa.window.CenterOnScreen()
	aa.window.SetMaster()
}

func (aa *AsciiApp) createMainMenu() *fyne.MainMenu {
	file := fyne.NewMenu("File",
		aa.createMenuItem("Upload Image...", aa.uploadImage, theme.FolderOpenIcon()),
		aa.createMenuItem("Generate", aa.generate, theme.ViewRefreshIcon()),
		aa.createMenuItem("Save As...", aa.saveAs, theme.DocumentSaveIcon()),
		fyne.NewMenuItemSeparator(),
		aa.createMenuItem("Preferences", aa.CreatePreferencesWindow, theme.SettingsIcon()),
	)
	help := fyne.NewMenu("Help",
		aa.createMenuItem("About", aa.showAbout, theme.InfoIcon()),
	)
	return fyne.NewMainMenu(file, help)
}

func (aa *AsciiApp) createMenuItem(label string, action func(), icon fyne.Resource) *fyne.MenuItem {
	mi := fyne.NewMenuItem(label, action)
	mi.Icon = icon
	return mi
}

func (aa *AsciiApp) addShortcuts() {
	bind := func(key fyne.KeyName, action func()) {
		aa.window.Canvas().AddShortcut(
			&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault},
			func(fyne.Shortcut) { action() },
		)
	}
	bind(fyne.KeyO, aa.uploadImage)
	bind(fyne.KeyG, aa.generate)
	bind(fyne.KeyS, aa.saveAs)
	bind(fyne.KeyComma, aa.CreatePreferencesWindow)
}

// uploadImage asks for an image file and loads it.
func (aa *AsciiApp) uploadImage() {
	aa.picker.PickImage(aa.cfg.GetLastDir(), func(path string, err error) {
		if err != nil {
			dialog.ShowError(err, aa.window)
			return
		}
		aa.loadImage(path)
	})
}

// loadImage makes path the image to convert. An empty path is ignored.
func (aa *AsciiApp) loadImage(path string) {
	if !aa.session.LoadImage(path) {
		return
	}
	aa.cfg.SetLastDir(filepath.Dir(path))
	aa.status.SetText(fmt.Sprintf("Image: %s", path))
	dialog.ShowInformation("Loaded", fmt.Sprintf("Loaded image:\n%s", filepath.Base(path)), aa.window)
}

// requestedWidth parses the width entry.
func (aa *AsciiApp) requestedWidth() (int, error) {
	text := strings.TrimSpace(aa.widthEntry.Text)
	width, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("width must be a whole number, got %q", text)
	}
	return width, nil
}

// generate converts the loaded image and shows the result.
func (aa *AsciiApp) generate() {
	if !aa.session.HasImage() {
		dialog.ShowError(errors.New(noImageMessage), aa.window)
		return
	}

	width, err := aa.requestedWidth()
	if err != nil {
		dialog.ShowError(err, aa.window)
		return
	}

	art, err := aa.session.Generate(width, aa.invertCheck.Checked)
	if err != nil {
		dialog.ShowError(fmt.Errorf("conversion failed:\n%w", err), aa.window)
		return
	}

	clamped := session.ClampWidth(width)
	if clamped != width {
		aa.widthEntry.SetText(strconv.Itoa(clamped))
	}
	aa.showArt(art)
	aa.status.SetText(fmt.Sprintf("%s | %d x %d characters", filepath.Base(aa.session.ImagePath()), clamped, strings.Count(art, "\n")+1))
}

// showArt replaces the preview text, drawn light on dark.
func (aa *AsciiApp) showArt(art string) {
	aa.preview.SetText(art)
	rows := strings.Count(art, "\n") + 1
	cols := strings.Index(art, "\n")
	if cols < 0 {
		cols = len(art)
	}
	if cols == 0 {
		return
	}
	aa.preview.SetStyleRange(0, 0, rows-1, cols-1, &widget.CustomTextGridStyle{
		FGColor: previewForeground,
		BGColor: previewBackground,
	})
}

// saveAs asks for a destination and writes the displayed art there.
func (aa *AsciiApp) saveAs() {
	if strings.TrimSpace(aa.session.Content()) == "" {
		dialog.ShowError(errors.New(noContentMessage), aa.window)
		return
	}

	aa.picker.PickSavePath(aa.cfg.GetLastDir(), defaultSaveName, func(path string, err error) {
		if err != nil {
			dialog.ShowError(err, aa.window)
			return
		}
		if path == "" {
			return
		}
		aa.saveTo(path)
	})
}

// saveTo writes the displayed art to path, adding .txt when it has no extension.
func (aa *AsciiApp) saveTo(path string) {
	path = export.WithDefaultExtension(path)
	format, err := aa.session.Save(path)
	if errors.Is(err, session.ErrNoContent) {
		dialog.ShowError(errors.New(noContentMessage), aa.window)
		return
	}
	if err != nil {
		dialog.ShowError(fmt.Errorf("saving failed:\n%w", err), aa.window)
		return
	}

	aa.cfg.SetLastDir(filepath.Dir(path))
	if format == export.HTML {
		dialog.ShowInformation("Saved", fmt.Sprintf("Saved HTML ASCII art to %s", path), aa.window)
	} else {
		dialog.ShowInformation("Saved", fmt.Sprintf("Saved ASCII art to %s", path), aa.window)
	}
}

// showAbout shows the embedded about text.
func (aa *AsciiApp) showAbout() {
	text, err := aa.assetMgr.GetText("about.txt")
	if err != nil {
		dialog.ShowError(err, aa.window)
		return
	}
	about := widget.NewLabel(text)
	about.TextStyle = fyne.TextStyle{Monospace: true}
	dialog.ShowCustom(fmt.Sprintf("About (%s)", config.AppVersion), "Close", about, aa.window)
}

// applyTheme switches the application theme by stored name.
func (aa *AsciiApp) applyTheme(name string) {
	aa.app.Settings().SetTheme(themeFor(name))
}

// validateWidthText accepts whole numbers of at least config.MinWidth.
func validateWidthText(s string) error {
	width, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("width must be a whole number")
	}
	if width < config.MinWidth {
		return fmt.Errorf("width must be at least %d", config.MinWidth)
	}
	return nil
}

// CreatePreferencesWindow shows the preferences for the generator defaults and theme.
func (aa *AsciiApp) CreatePreferencesWindow() {
	prefsWindow := aa.app.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	prefsWindow.Resize(prefsWindowSize)
	prefsWindow.CenterOnScreen()

	sm := NewSettingsManager(prefsWindow)
	prefsWindow.SetContent(aa.createPreferencesPanel(sm, prefsWindow))
	prefsWindow.Show()
}

// createPreferencesPanel builds the settings rows, the Apply button and the Close button.
func (aa *AsciiApp) createPreferencesPanel(sm setting.SettingsManager, prefsWindow fyne.Window) *fyne.Container {
	header := container.NewVBox()
	header.Add(sm.CreateSectionTitleLabel("Generator Preferences"))
	header.Add(sm.CreateSettingDescriptionLabel("Defaults used when the generator window opens."))

	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "Default Width",
		InitialValue: strconv.Itoa(aa.cfg.GetDefaultWidth()),
		PlaceHolder:  strconv.Itoa(config.DefaultWidth),
		Label:        sm.CreateSettingTitleLabel("Default Width:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Characters per row, at least 10."),
		Validator:    validateWidthText,
		ApplyFunc: func(s string) {
			width, _ := strconv.Atoi(strings.TrimSpace(s))
			aa.cfg.SetDefaultWidth(width)
			aa.widthEntry.SetText(strconv.Itoa(width))
		},
	}, header)

	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "Invert",
		InitialValue: aa.cfg.GetInvert(),
		Label:        sm.CreateSettingTitleLabel("Invert by Default:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Draw light areas with dense glyphs, for dark text on a light page."),
		ApplyFunc: func(b bool) {
			aa.cfg.SetInvert(b)
			aa.invertCheck.SetChecked(b)
		},
	}, header)

	themeIndex := max(0, slices.Index(config.ThemeOptions, aa.cfg.GetTheme()))
	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "Theme",
		Options:      config.ThemeOptions,
		InitialValue: themeIndex,
		Label:        sm.CreateSettingTitleLabel("Theme:"),
		ApplyFunc: func(i int) {
			aa.cfg.SetTheme(config.ThemeOptions[i])
			aa.applyTheme(config.ThemeOptions[i])
		},
	}, header)

	header.Add(widget.NewSeparator())
	sm.CreateButtonWithConfirmationSetting(&setting.ButtonWithConfirmationConfig{
		Name:           "Reset",
		Label:          sm.CreateSettingTitleLabel("Reset:"),
		ButtonText:     "Reset Preferences",
		ConfirmTitle:   "Please Confirm",
		ConfirmMessage: "Restore the default width, invert and theme?",
		OnPressed: func() {
			aa.resetPreferences()
			prefsWindow.Close()
		},
	}, header)

	closeButton := widget.NewButton("Close", func() {
		prefsWindow.Close()
	})
	footer := container.NewHBox(layout.NewSpacer(), sm.GetApplySettingsButton(), closeButton)
	return container.NewBorder(header, footer, nil, nil)
}

// resetPreferences restores every preference and the controls that mirror them.
func (aa *AsciiApp) resetPreferences() {
	aa.cfg.Reset()
	aa.widthEntry.SetText(strconv.Itoa(aa.cfg.GetDefaultWidth()))
	aa.invertCheck.SetChecked(aa.cfg.GetInvert())
	aa.applyTheme(aa.cfg.GetTheme())
	log.Println("Preferences reset to defaults")
}
