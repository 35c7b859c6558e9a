//go:build !windows

package ui

import "fyne.io/fyne/v2"

// newFilePicker returns the platform file picker.
func newFilePicker(window fyne.Window) filePicker {
	return newFynePicker(window)
}
