package config

import "fyne.io/fyne/v2"

// AppConfig holds the user preferences of the generator.
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// DefaultWidthKey is the key for the default character width preference
const DefaultWidthKey = "default_width"

// GetDefaultWidth returns the character width pre-filled in the main window.
// Stored values below MinWidth are raised to MinWidth.
func (c *AppConfig) GetDefaultWidth() int {
	w := c.prefs.IntWithFallback(DefaultWidthKey, DefaultWidth)
	if w < MinWidth {
		return MinWidth
	}
	return w
}

// SetDefaultWidth sets the character width pre-filled in the main window
func (c *AppConfig) SetDefaultWidth(width int) {
	c.prefs.SetInt(DefaultWidthKey, width)
}

// InvertKey is the key for the invert preference
const InvertKey = "invert"

// GetInvert returns whether light pixels map to dense glyphs by default
func (c *AppConfig) GetInvert() bool {
	return c.prefs.BoolWithFallback(InvertKey, false)
}

// SetInvert sets whether light pixels map to dense glyphs by default
func (c *AppConfig) SetInvert(invert bool) {
	c.prefs.SetBool(InvertKey, invert)
}

// AppThemeKey is the key for the app theme preference
const AppThemeKey = "app_theme"

// GetTheme returns the current application theme
func (c *AppConfig) GetTheme() string {
	return c.prefs.StringWithFallback(AppThemeKey, ThemeSystem)
}

// SetTheme sets the application theme
func (c *AppConfig) SetTheme(theme string) {
	c.prefs.SetString(AppThemeKey, theme)
}

// LastDirKey is the key for the last directory used by a file dialog
const LastDirKey = "last_dir"

// GetLastDir returns the directory the file dialogs open in, or "" if none was used yet
func (c *AppConfig) GetLastDir() string {
	return c.prefs.StringWithFallback(LastDirKey, "")
}

// SetLastDir remembers the directory of the last opened or saved file
func (c *AppConfig) SetLastDir(dir string) {
	c.prefs.SetString(LastDirKey, dir)
}

// Reset removes every stored preference so the defaults apply again.
func (c *AppConfig) Reset() {
	for _, key := range []string{DefaultWidthKey, InvertKey, AppThemeKey, LastDirKey} {
		c.prefs.RemoveValue(key)
	}
}
