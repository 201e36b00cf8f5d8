package overlay

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fonts holds the parsed Go font families.
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
}

func LoadFonts() (*Fonts, error) {
	r, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	b, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &Fonts{regular: r, bold: b}, nil
}

func (f *Fonts) Regular(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.regular, Size: size}
}

func (f *Fonts) Bold(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.bold, Size: size}
}

// label draws s with its top edge at y. align picks which point x names.
func label(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align, alpha float64) {
	if alpha <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}

// truncate shortens s with an ellipsis until it fits in width.
func truncate(s string, face text.Face, width float64) string {
	if w, _ := text.Measure(s, face, 0); w <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "…"
		if w, _ := text.Measure(candidate, face, 0); w <= width {
			return candidate
		}
	}
	return ""
}

var printer = message.NewPrinter(language.English)

// thousands formats n with grouping separators, 4203 -> "4,203".
func thousands(n int) string {
	return printer.Sprintf("%d", n)
}

// money formats an amount with two decimals after the currency symbol.
func money(currency string, v float64) string {
	return currency + printer.Sprintf("%.2f", v)
}

// wholeMoney drops the decimals, as the goal bars do.
func wholeMoney(currency string, v float64) string {
	return currency + printer.Sprintf("%.0f", v)
}
