package gui

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	margin       = float32(16)
	navHeight    = float32(44)
	navWidth     = float32(150)
	rowHeight    = float32(40)
	rowGap       = float32(6)
	actionWidth  = float32(110)
	consoleLines = 5
	inputHeight  = float32(36)
)

type screenLayout struct {
	Nav     []rl.Rectangle
	Content rl.Rectangle
	Console rl.Rectangle
	Input   rl.Rectangle
}

// layoutScreen splits the window into the nav strip, the active view and the
// message console along the bottom.
func layoutScreen(width, height int32, tabs int) screenLayout {
	w, h := float32(width), float32(height)
	var l screenLayout
	for i := range tabs {
		x := margin + float32(i)*(navWidth+spaceXS)
		l.Nav = append(l.Nav, rl.NewRectangle(x, margin, navWidth, navHeight))
	}

	consoleH := float32(consoleLines)*(float32(typeScale.Small)+6) + spaceM*2
	l.Input = rl.NewRectangle(margin, h-margin-inputHeight, w-2*margin, inputHeight)
	l.Console = rl.NewRectangle(margin, l.Input.Y-spaceXS-consoleH, w-2*margin, consoleH)

	top := margin + navHeight + spaceS
	l.Content = rl.NewRectangle(margin, top, w-2*margin, max(l.Console.Y-spaceS-top, 0))
	return l
}

// splitColumns divides a rectangle into two equal columns with a gap.
func splitColumns(r rl.Rectangle) (rl.Rectangle, rl.Rectangle) {
	half := (r.Width - spaceS) / 2
	left := rl.NewRectangle(r.X, r.Y, half, r.Height)
	right := rl.NewRectangle(r.X+half+spaceS, r.Y, half, r.Height)
	return left, right
}

// listRows lays out n rows inside a titled panel.
func listRows(panel rl.Rectangle, n int) []rl.Rectangle {
	rows := make([]rl.Rectangle, 0, n)
	y := panel.Y + spaceS + float32(typeScale.Header) + spaceM
	for range n {
		rows = append(rows, rl.NewRectangle(panel.X+spaceS, y, panel.Width-2*spaceS, rowHeight))
		y += rowHeight + rowGap
	}
	return rows
}

// actionRect is the button slot on the right edge of a list row.
func actionRect(row rl.Rectangle) rl.Rectangle {
	return rl.NewRectangle(row.X+row.Width-actionWidth-4, row.Y+4, actionWidth, row.Height-8)
}

func pointIn(p rl.Vector2, r rl.Rectangle) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func percent(cur, limit uint8) int {
	if limit == 0 {
		return 0
	}
	return int(cur) * 100 / int(limit)
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
