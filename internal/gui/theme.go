package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Dungeon palette: cold stone panels, torch-gold accent.
var (
	colorBG          = rl.NewColor(0x12, 0x11, 0x16, 255) // #121116
	colorPanel       = rl.NewColor(0x1E, 0x1C, 0x24, 255) // #1E1C24
	colorPanelRaised = rl.NewColor(0x27, 0x24, 0x2F, 255) // #27242F
	colorBorder      = rl.NewColor(0x3A, 0x36, 0x44, 255) // #3A3644
	colorDivider     = rl.NewColor(0x2C, 0x29, 0x34, 255) // #2C2934
	colorText        = rl.NewColor(0xEC, 0xE4, 0xD4, 255) // #ECE4D4
	colorDim         = rl.NewColor(0xA9, 0xA3, 0x9A, 255) // #A9A39A
	colorMuted       = rl.NewColor(0x74, 0x6F, 0x78, 255) // #746F78
	colorAccent      = rl.NewColor(0xE0, 0xA4, 0x3A, 255) // #E0A43A
	colorMana        = rl.NewColor(0x4A, 0x6F, 0xC8, 255) // #4A6FC8
	colorWarn        = rl.NewColor(0xC1, 0x8B, 0x2F, 255) // #C18B2F
	colorDanger      = rl.NewColor(0xB8, 0x3A, 0x3A, 255) // #B83A3A
)

const (
	spaceXS = float32(8)
	spaceS  = float32(12)
	spaceM  = float32(18)

	cornerRadius   = float32(0.08)
	cornerSegments = int32(8)
	borderWidth    = float32(1.2)
	focusWidth     = float32(2.0)
)

type buttonState int

const (
	buttonNormal buttonState = iota
	buttonSelected
	buttonHovered
)

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, colorPanel)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, borderWidth, colorBorder)
	if title == "" {
		return
	}
	x, y := int32(rect.X+spaceM), int32(rect.Y+spaceS)
	drawText(title, x, y, typeScale.Header, colorText)
	underline := float32(max(measureText(title, typeScale.Header)*6/10, 44))
	lineY := float32(y+typeScale.Header) + 6
	rl.DrawLineEx(rl.NewVector2(float32(x), lineY), rl.NewVector2(float32(x)+underline, lineY), 2, colorAccent)
}

func drawButton(rect rl.Rectangle, state buttonState, text string) {
	fill, stroke, width := colorPanel, colorBorder, borderWidth
	switch state {
	case buttonSelected:
		fill, stroke, width = colorPanelRaised, colorAccent, focusWidth
	case buttonHovered:
		fill, stroke = colorPanelRaised, rl.Fade(colorAccent, 0.6)
	}
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, width, stroke)

	size := typeScale.Body
	w := measureText(text, size)
	drawText(text, int32(rect.X+(rect.Width-float32(w))/2), int32(rect.Y+(rect.Height-float32(size))/2), size, colorText)
}

func drawListRow(rect rl.Rectangle, focused bool, label string) {
	fill, stroke, width := rl.Fade(colorPanelRaised, 0.45), rl.Fade(colorBorder, 0.9), borderWidth
	if focused {
		fill, stroke, width = colorPanelRaised, colorAccent, focusWidth
	}
	rl.DrawRectangleRounded(rect, cornerRadius, cornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, cornerRadius, cornerSegments, width, stroke)
	if focused {
		rl.DrawRectangleRec(rl.NewRectangle(rect.X+1, rect.Y+2, 4, rect.Height-4), colorAccent)
	}
	drawText(label, int32(rect.X+spaceM), int32(rect.Y+(rect.Height-float32(typeScale.Body))/2), typeScale.Body, colorText)
}

func drawInputField(rect rl.Rectangle, text, placeholder string, focused bool) {
	stroke := colorBorder
	if focused {
		stroke = colorAccent
	}
	rl.DrawRectangleRec(rect, colorPanelRaised)
	rl.DrawRectangleLinesEx(rect, borderWidth, stroke)
	y := int32(rect.Y + (rect.Height-float32(typeScale.Body))/2)
	if text == "" && !focused {
		drawText(placeholder, int32(rect.X+spaceS), y, typeScale.Body, colorMuted)
		return
	}
	line := "> " + text
	if focused {
		line += "_"
	}
	drawText(line, int32(rect.X+spaceS), y, typeScale.Body, colorText)
}

func drawHint(text string, x, y int32) {
	drawText(text, x, y, typeScale.Small, colorMuted)
}

// drawMeter shows a labelled cur/max bar; fill shifts to warn and danger as
// the value drops.
func drawMeter(label string, cur, limit uint8, rect rl.Rectangle, full rl.Color) {
	pct := percent(cur, limit)
	drawText(fmt.Sprintf("%s: %d/%d", label, cur, limit), int32(rect.X), int32(rect.Y), typeScale.Body, colorDim)

	track := rl.NewRectangle(rect.X, rect.Y+float32(typeScale.Body)+4, rect.Width, 10)
	rl.DrawRectangleRec(track, rl.Fade(colorPanelRaised, 0.9))
	fill := rl.NewRectangle(track.X+1, track.Y+1, (track.Width-2)*float32(pct)/100, track.Height-2)
	if fill.Width > 0 {
		rl.DrawRectangleRec(fill, meterColor(pct, full))
	}
	rl.DrawRectangleLinesEx(track, 1, rl.Fade(colorBorder, 0.95))
}

func meterColor(pct int, full rl.Color) rl.Color {
	switch {
	case pct <= 20:
		return colorDanger
	case pct <= 35:
		return colorWarn
	default:
		return full
	}
}
