package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/flocklab/go-boids-simulation/pkg/flock"
	"github.com/flocklab/go-boids-simulation/pkg/geometry"
	"github.com/flocklab/go-boids-simulation/pkg/ui"
)

// How many boids the keyboard/panel population controls add or remove at once.
const populationStep = 10

var (
	whiteImage  = ebiten.NewImage(3, 3)
	colorRepel  = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	colorAttrct = color.RGBA{R: 60, G: 90, B: 230, A: 255}
)

func init() {
	whiteImage.Fill(color.White)
}

// Game is the Ebiten driver: it polls input, advances the flock one step per
// tick and renders the result. All simulation semantics live in pkg/flock.
type Game struct {
	cfg   *flock.Config
	flock *flock.Flock

	panel      *ui.Panel
	attractBox *ui.Checkbox

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// New builds the driver around an existing flock.
func New(cfg *flock.Config, f *flock.Flock) *Game {
	panel := ui.NewPanel(10, 10, 150, 130, "Controls")
	attractBox := panel.AddCheckbox("Attract", false)
	panel.AddButton(fmt.Sprintf("+%d boids", populationStep), func() { f.Grow(populationStep) })
	panel.AddButton(fmt.Sprintf("-%d boids", populationStep), func() { f.Shrink(populationStep) })

	return &Game{
		cfg:        cfg,
		flock:      f,
		panel:      panel,
		attractBox: attractBox,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	g.panel.Update()

	// Keyboard mirrors the panel controls
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.attractBox.Value = !g.attractBox.Value
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.flock.Grow(populationStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.flock.Shrink(populationStep)
	}

	mx, my := ebiten.CursorPosition()
	pointer := geometry.Vector2D{X: float64(mx), Y: float64(my)}
	dt := 1.0 / float64(ebiten.TPS())

	return g.flock.Step(dt, pointer, g.attractBox.Value)
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	boidColor := colorRepel
	if g.attractBox.Value {
		boidColor = colorAttrct
	}
	for _, b := range g.flock.Boids() {
		drawBoid(screen, b, g.cfg.BoidSize, boidColor)
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nBoids: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.flock.Len(),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-130, 10)
}

func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}

// drawBoid renders one boid as a triangle pointing along its velocity.
func drawBoid(screen *ebiten.Image, b *flock.Boid, size float64, clr color.RGBA) {
	angle := b.Velocity.Angle()

	tipX := b.Position.X + size*math.Cos(angle)
	tipY := b.Position.Y + size*math.Sin(angle)
	rightX := b.Position.X + size*math.Cos(angle+2.5)
	rightY := b.Position.Y + size*math.Sin(angle+2.5)
	leftX := b.Position.X + size*math.Cos(angle-2.5)
	leftY := b.Position.Y + size*math.Sin(angle-2.5)

	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
		},
	}

	indices := []uint16{0, 1, 2}
	op := &ebiten.DrawTrianglesOptions{}

	screen.DrawTriangles(vertices, indices, whiteImage, op)
}
