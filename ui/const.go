package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
)

// mainWindowSize is the initial size of the generator window.
var mainWindowSize = fyne.NewSize(900, 700)

// prefsWindowSize is the initial size of the preferences window.
var prefsWindowSize = fyne.NewSize(600, 400)

// Preview colors
var (
	previewBackground = color.NRGBA{R: 0x0d, G: 0x0d, B: 0x0d, A: 0xff}
	previewForeground = color.White
)

// defaultSaveName is suggested by the save dialog.
const defaultSaveName = "ascii_art.txt"

// imageExtensions are offered by the open dialog.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp", ".gif"}

// exportExtensions are offered by the save dialog.
var exportExtensions = []string{".txt", ".html"}

// Notice copy
const (
	noImageMessage   = "Please upload an image first."
	noContentMessage = "No ASCII art to save. Generate one first."
)
