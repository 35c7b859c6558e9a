package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// FirstWidgetProportion is the share of the row given to the first widget.
type FirstWidgetProportion int

const (
	oneThird  FirstWidgetProportion = iota // 1/3 - 2/3
	twoThirds                              // 2/3 - 1/3
)

// splitLayout places two widgets side by side at a fixed proportion.
type splitLayout struct {
	widget1    fyne.CanvasObject
	widget2    fyne.CanvasObject
	proportion FirstWidgetProportion
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	w1Size := s.widget1.MinSize()
	w2Size := s.widget2.MinSize()
	return fyne.NewSize(w1Size.Width+w2Size.Width, fyne.Max(w1Size.Height, w2Size.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	widget1Width := containerSize.Width / 3
	if s.proportion == twoThirds {
		widget1Width = containerSize.Width * 2 / 3
	}

	s.widget1.Resize(fyne.NewSize(widget1Width, s.widget1.MinSize().Height))
	s.widget2.Resize(fyne.NewSize(containerSize.Width-widget1Width, s.widget2.MinSize().Height))
	s.widget1.Move(fyne.NewPos(0, 0))
	s.widget2.Move(fyne.NewPos(widget1Width, 0))
}

// NewSplitRow creates a row of two widgets split at the given proportion.
func NewSplitRow(widget1, widget2 fyne.CanvasObject, proportion FirstWidgetProportion) *fyne.Container {
	l := &splitLayout{
		widget1:    widget1,
		widget2:    widget2,
		proportion: proportion,
	}
	return container.New(l, widget1, widget2)
}
