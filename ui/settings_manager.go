package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dixieflatline76/asciiart/pkg/ui/setting"
)

// SettingsManager handles UI elements for settings.
type SettingsManager struct {
	chgPrefsCallbacks map[string]func()
	applyButton       *widget.Button
	prefsWindow       fyne.Window
}

// NewSettingsManager creates a new SettingsManager.
func NewSettingsManager(window fyne.Window) *SettingsManager {
	sm := &SettingsManager{
		chgPrefsCallbacks: make(map[string]func()),
		prefsWindow:       window,
	}
	sm.applyButton = createApplyButton(sm)
	return sm
}

// createApplyButton creates the Apply Changes button, disabled until a setting changes.
func createApplyButton(sm *SettingsManager) *widget.Button {
	applyButton := widget.NewButton("Apply Changes", func() {
		for _, callback := range sm.chgPrefsCallbacks {
			callback()
		}
		sm.chgPrefsCallbacks = make(map[string]func())
		sm.checkAndEnableApply()
	})
	applyButton.Disable()
	return applyButton
}

// checkAndEnableApply enables the apply button only while changes are pending.
func (sm *SettingsManager) checkAndEnableApply() {
	if sm.HasPendingChanges() {
		sm.applyButton.Enable()
	} else {
		sm.applyButton.Disable()
	}
	sm.applyButton.Refresh()
}

// GetApplySettingsButton returns the Apply Changes button to be placed in the settings window.
func (sm *SettingsManager) GetApplySettingsButton() *widget.Button {
	return sm.applyButton
}

// CreateSectionTitleLabel creates a label for a section title
func (sm *SettingsManager) CreateSectionTitleLabel(desc string) *widget.Label {
	return CreateSectionTitleLabel(desc)
}

// CreateSettingTitleLabel creates a label for a setting title
func (sm *SettingsManager) CreateSettingTitleLabel(desc string) *widget.Label {
	return CreateSettingTitleLabel(desc)
}

// CreateSettingDescriptionLabel creates a label for a setting description
func (sm *SettingsManager) CreateSettingDescriptionLabel(desc string) *widget.Label {
	return CreateSettingDescriptionLabel(desc)
}

// CreateSelectSetting creates a select setting.
func (sm *SettingsManager) CreateSelectSetting(cfg *setting.SelectConfig, header *fyne.Container) *widget.Select {
	selectWidget := widget.NewSelect(cfg.Options, nil)
	selectWidget.SetSelectedIndex(cfg.InitialValue)

	header.Add(NewSplitRow(cfg.Label, selectWidget, oneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	selectWidget.OnChanged = func(string) {
		selectedIndex := selectWidget.SelectedIndex()
		if selectedIndex != cfg.InitialValue {
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(selectedIndex)
				cfg.InitialValue = selectedIndex
			})
		} else {
			sm.RemoveSettingChangedCallback(cfg.Name)
		}
		sm.checkAndEnableApply()
	}
	return selectWidget
}

// CreateBoolSetting creates a boolean check setting.
func (sm *SettingsManager) CreateBoolSetting(cfg *setting.BoolConfig, header *fyne.Container) *widget.Check {
	check := widget.NewCheck("", nil) // label is the CanvasObject in the row
	check.SetChecked(cfg.InitialValue)

	header.Add(NewSplitRow(cfg.Label, check, oneThird))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	check.OnChanged = func(b bool) {
		if b != cfg.InitialValue {
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(b)
				cfg.InitialValue = b
			})
		} else {
			sm.RemoveSettingChangedCallback(cfg.Name)
		}
		sm.checkAndEnableApply()
	}
	return check
}

// CreateTextEntrySetting creates a text entry setting. Invalid input never reaches ApplyFunc.
func (sm *SettingsManager) CreateTextEntrySetting(cfg *setting.TextEntrySettingConfig, header *fyne.Container) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(cfg.PlaceHolder)
	entry.SetText(cfg.InitialValue)
	entry.Validator = cfg.Validator

	statusLabel := widget.NewLabel("")

	header.Add(NewSplitRow(cfg.Label, entry, oneThird))
	if cfg.HelpContent != nil {
		header.Add(NewSplitRow(cfg.HelpContent, statusLabel, twoThirds))
	} else {
		header.Add(NewSplitRow(widget.NewLabel(""), statusLabel, twoThirds))
	}

	entry.OnChanged = func(s string) {
		var entryErr error
		if cfg.Validator != nil {
			entryErr = cfg.Validator(s)
		}

		switch {
		case entryErr != nil:
			statusLabel.SetText(entryErr.Error())
			statusLabel.Importance = widget.DangerImportance
			sm.RemoveSettingChangedCallback(cfg.Name)
		case s == cfg.InitialValue:
			statusLabel.SetText("")
			sm.RemoveSettingChangedCallback(cfg.Name)
		default:
			statusLabel.SetText(fmt.Sprintf("%s OK", cfg.Name))
			statusLabel.Importance = widget.SuccessImportance
			sm.SetSettingChangedCallback(cfg.Name, func() {
				cfg.ApplyFunc(s)
				cfg.InitialValue = s
			})
		}
		statusLabel.Refresh()
		sm.checkAndEnableApply()
	}
	return entry
}

// CreateButtonWithConfirmationSetting creates a button that asks for confirmation before acting.
func (sm *SettingsManager) CreateButtonWithConfirmationSetting(cfg *setting.ButtonWithConfirmationConfig, header *fyne.Container) {
	button := widget.NewButton(cfg.ButtonText, func() {
		if cfg.ConfirmTitle == "" || cfg.ConfirmMessage == "" {
			cfg.OnPressed()
			return
		}
		dialog.ShowConfirm(cfg.ConfirmTitle, cfg.ConfirmMessage, func(b bool) {
			if b {
				cfg.OnPressed()
			}
		}, sm.prefsWindow)
	})

	if cfg.Label != nil {
		header.Add(NewSplitRow(cfg.Label, button, oneThird))
	} else {
		header.Add(button)
	}

	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}
}

// SetSettingChangedCallback sets a callback function to be called when changes are applied.
func (sm *SettingsManager) SetSettingChangedCallback(settingName string, callback func()) {
	sm.chgPrefsCallbacks[settingName] = callback
}

// RemoveSettingChangedCallback removes a callback function associated with a specific setting.
func (sm *SettingsManager) RemoveSettingChangedCallback(settingName string) {
	delete(sm.chgPrefsCallbacks, settingName)
}

// HasPendingChanges reports whether any setting is waiting to be applied.
func (sm *SettingsManager) HasPendingChanges() bool {
	return len(sm.chgPrefsCallbacks) > 0
}

// GetSettingsWindow returns the window associated with the SettingsManager.
func (sm *SettingsManager) GetSettingsWindow() fyne.Window {
	return sm.prefsWindow
}

var _ setting.SettingsManager = (*SettingsManager)(nil)
