package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is the interface every panel widget implements.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Panel hosts a fixed set of widgets with a background and title.
type Panel struct {
	X, Y          float64
	Width, Height float64
	Title         string
	widgets       []Widget
	labels        []string

	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates a new panel at the given position.
func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Title:       title,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddCheckbox adds a checkbox widget below the previous one.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, p.nextY(), label, value)
	p.widgets = append(p.widgets, c)
	p.labels = append(p.labels, label)
	return c
}

// AddButton adds a button widget below the previous one.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, p.nextY(), p.Width-20, 22, label, onClick)
	p.widgets = append(p.widgets, b)
	p.labels = append(p.labels, "")
	return b
}

func (p *Panel) nextY() float64 {
	return p.Y + 30 + float64(len(p.widgets))*32
}

// Update handles input for all widgets
func (p *Panel) Update() {
	for _, w := range p.widgets {
		w.Update()
	}
}

// Draw renders the panel and all widgets
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)

	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)

	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	for i, w := range p.widgets {
		w.Draw(screen)
		if label := p.labels[i]; label != "" {
			switch widget := w.(type) {
			case *Checkbox:
				ebitenutil.DebugPrintAt(screen, label, int(widget.X+widget.Size+8), int(widget.Y))
			}
		}
	}
}
