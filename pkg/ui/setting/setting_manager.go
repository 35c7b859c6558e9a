package setting

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SettingsHelper creates the labels shared by all settings panels.
type SettingsHelper interface {
	CreateSectionTitleLabel(desc string) *widget.Label       // Creates a section title label.
	CreateSettingTitleLabel(desc string) *widget.Label       // Creates a setting title label.
	CreateSettingDescriptionLabel(desc string) *widget.Label // Creates a setting description label.
}

// SelectConfig holds the configuration for a select widget.
type SelectConfig struct {
	Name         string
	Options      []string
	InitialValue int
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	ApplyFunc    func(int)
}

// BoolConfig holds configuration for a boolean check widget.
type BoolConfig struct {
	Name         string
	InitialValue bool
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	ApplyFunc    func(bool)
}

// TextEntrySettingConfig holds configuration for a text entry widget.
type TextEntrySettingConfig struct {
	Name         string
	InitialValue string
	PlaceHolder  string
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	Validator    fyne.StringValidator
	ApplyFunc    func(string)
}

// ButtonWithConfirmationConfig holds configuration for a button with confirmation dialog.
type ButtonWithConfirmationConfig struct {
	Name           string
	Label          fyne.CanvasObject
	HelpContent    fyne.CanvasObject
	ButtonText     string
	ConfirmTitle   string
	ConfirmMessage string
	OnPressed      func()
}

// SettingsManager builds settings widgets whose changes are held back
// until the Apply button is pressed.
type SettingsManager interface {
	SettingsHelper

	CreateSelectSetting(cfg *SelectConfig, header *fyne.Container) *widget.Select                  // Create a select setting widget.
	CreateBoolSetting(cfg *BoolConfig, header *fyne.Container) *widget.Check                       // Create a boolean setting widget.
	CreateTextEntrySetting(cfg *TextEntrySettingConfig, header *fyne.Container) *widget.Entry      // Create a text entry setting widget.
	CreateButtonWithConfirmationSetting(cfg *ButtonWithConfirmationConfig, header *fyne.Container) // Create a button setting with confirmation dialog widget.

	GetApplySettingsButton() *widget.Button                        // GetApplySettingsButton returns the Apply Changes button.
	SetSettingChangedCallback(settingName string, callback func()) // Set a callback function to be called on apply.
	RemoveSettingChangedCallback(settingName string)               // Remove a pending callback.
	HasPendingChanges() bool                                       // Reports whether Apply has anything to do.
	GetSettingsWindow() fyne.Window                                // GetSettingsWindow returns the window the settings live in.
}
