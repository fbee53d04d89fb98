package ui

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Overlay draws top over base with its top-left corner at (x, y). The result
// is clipped to width by height cells; base cells outside top show through.
func Overlay(base, top string, width, height, x, y int) string {
	if width <= 0 || height <= 0 {
		return base
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	topArea := uv.Rect(x, y, width-x, height-y)
	uv.NewStyledString(top).Draw(scr, topArea)

	return scr.Render()
}
