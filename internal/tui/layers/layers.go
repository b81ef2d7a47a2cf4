// Package layers provides helpers for positioning modal layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalWidth returns a modal width of roughly two thirds of the screen,
// kept between minWidth and maxWidth
func ModalWidth(screenWidth, minWidth, maxWidth int) int {
	return min(max(screenWidth*2/3, minWidth), maxWidth)
}
