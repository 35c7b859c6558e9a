package config

import "strings"

// AppVersion is the version of the application, set at build time with -ldflags.
var AppVersion = "dev"

// AppName is the name of the application.
const AppName = "ASCII Art Generator"

// AppID is the unique application ID used for preferences storage.
const AppID = "com.dixieflatline76.asciiart"

// LockName is the base name of the single-instance lock.
const LockName = "asciiart"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = "AsciiArt"

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(LockName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultWidth is the character width offered when no preference is stored.
const DefaultWidth = 100

// MinWidth is the smallest character width the generator accepts from the user.
const MinWidth = 10

// Theme names stored in preferences.
const (
	ThemeSystem = "System"
	ThemeLight  = "Light"
	ThemeDark   = "Dark"
)

// ThemeOptions lists the selectable themes in display order.
var ThemeOptions = []string{ThemeSystem, ThemeLight, ThemeDark}
