package scenes

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phishy-app/phishy-desktop/pkg/config"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSource is the single face source for all UI text.
var fontSource = mustFontSource()

func mustFontSource() *text.GoTextFaceSource {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded font: %v", err))
	}
	return s
}

func fontFace(size float64) text.Face {
	return &text.GoTextFace{Source: fontSource, Size: size}
}

// drawText draws str with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, str string, size, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, fontFace(size), op)
}

// drawTextCentered draws str horizontally centered on centerX with its top
// edge at y, and returns the measured text width.
func drawTextCentered(dst *ebiten.Image, str string, size, centerX, y float64, clr color.Color) float64 {
	face := fontFace(size)
	w, _ := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
	return w
}

// truncate shortens s to at most n runes with an ellipsis, for URL display.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// Button is a clickable rectangular button.
type Button struct {
	X, Y, W, H float64
	Label      string

	hovered bool
}

// Contains reports whether the cursor position falls inside the button's
// click area (the visual rect expanded by ButtonClickPadding).
func (b *Button) Contains(mx, my int) bool {
	pad := config.ButtonClickPadding
	x, y := float64(mx), float64(my)
	return x >= b.X-pad && x <= b.X+b.W+pad && y >= b.Y-pad && y <= b.Y+b.H+pad
}

// Update tracks hover state and returns true when the button is clicked.
func (b *Button) Update() bool {
	mx, my := ebiten.CursorPosition()
	b.hovered = b.Contains(mx, my)
	return b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Draw renders the button.
func (b *Button) Draw(dst *ebiten.Image) {
	bg := color.NRGBA{R: 30, G: 41, B: 59, A: 255}
	if b.hovered {
		bg = color.NRGBA{R: 51, G: 65, B: 85, A: 255}
	}
	vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, config.AccentColor, false)
	drawTextCentered(dst, b.Label, 16, b.X+b.W/2, b.Y+b.H/2-10, config.TextColor)
}

// TextField is a single-line text input box.
type TextField struct {
	X, Y, W, H float64
	Value      string
	MaxLen     int

	focused    bool
	caretTimer float64
}

// Update handles focus, typed characters and backspace (with key repeat).
func (tf *TextField) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := float64(mx), float64(my)
		tf.focused = x >= tf.X && x <= tf.X+tf.W && y >= tf.Y && y <= tf.Y+tf.H
	}
	if !tf.focused {
		return
	}
	tf.caretTimer += deltaTime

	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 0x20 || r == 0x7f {
			continue
		}
		if tf.MaxLen > 0 && len(tf.Value) >= tf.MaxLen {
			break
		}
		tf.Value += string(r)
	}

	// Backspace deletes once on press, then repeats while held.
	d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	if (d == 1 || (d >= 30 && d%3 == 0)) && len(tf.Value) > 0 {
		tf.Value = tf.Value[:len(tf.Value)-1]
	}
}

// Focus gives the field keyboard focus programmatically.
func (tf *TextField) Focus() {
	tf.focused = true
}

// Draw renders the box, its content (or a placeholder) and a blinking caret.
func (tf *TextField) Draw(dst *ebiten.Image, placeholder string) {
	vector.DrawFilledRect(dst, float32(tf.X), float32(tf.Y), float32(tf.W), float32(tf.H),
		color.NRGBA{R: 15, G: 23, B: 42, A: 255}, false)
	border := config.MutedTextColor
	if tf.focused {
		border = config.AccentColor
	}
	vector.StrokeRect(dst, float32(tf.X), float32(tf.Y), float32(tf.W), float32(tf.H), 1, border, false)

	textX := tf.X + 12
	textY := tf.Y + tf.H/2 - 9
	shown := tf.Value
	if shown == "" && !tf.focused {
		drawText(dst, placeholder, 15, textX, textY, config.MutedTextColor)
		return
	}
	drawText(dst, shown, 15, textX, textY, config.TextColor)

	if tf.focused && int(tf.caretTimer*2)%2 == 0 {
		w, _ := text.Measure(shown, fontFace(15), 0)
		vector.DrawFilledRect(dst, float32(textX+w+2), float32(tf.Y+10), 1.5, float32(tf.H-20),
			config.TextColor, false)
	}
}
