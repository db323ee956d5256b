package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type typographyScale struct {
	Title  int32
	Header int32
	Body   int32
	Small  int32
}

var (
	typeScale = typographyScale{
		Title:  30,
		Header: 22,
		Body:   19,
		Small:  16,
	}
	uiFont   rl.Font
	ownsFont bool
)

// initTypography loads the first bundled font it finds, falling back to the
// raylib default font.
func initTypography() {
	uiFont = rl.GetFontDefault()
	candidates := []string{
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f := rl.LoadFontEx(path, 36, nil, 0)
		if f.Texture.ID == 0 {
			continue
		}
		uiFont = f
		ownsFont = true
		break
	}
	rl.SetTextureFilter(uiFont.Texture, rl.FilterBilinear)
}

func shutdownTypography() {
	if ownsFont && uiFont.Texture.ID != 0 {
		rl.UnloadFont(uiFont)
	}
	uiFont = rl.Font{}
	ownsFont = false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiFont.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiFont, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiFont.Texture.ID == 0 {
		return rl.MeasureText(text, fontSize)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiFont, text, float32(fontSize), 1).X)))
}
