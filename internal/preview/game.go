package preview

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/motion"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Options configures the preview window.
type Options struct {
	Title  string
	Width  int
	Height int
	// Script, when set, is replayed one step per frame after page load.
	Script *motion.Script
	// ScreenshotDir receives PNG captures taken with the P key.
	ScreenshotDir string
}

const (
	scrollStep     = 60   // page units per wheel notch
	scrollDuration = 0.25 // seconds to ease into a new scroll target
)

var clearColor = color.RGBA{0x18, 0x1a, 0x22, 0xff}

// whitePixel is a 1x1 white image scaled and tinted to draw item boxes.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// Game implements ebiten.Game for a Scene.
type Game struct {
	scene *Scene
	opts  Options

	scrollTarget float64
	scrollTween  *gween.Tween

	cursor      int
	shots       []string
	showOverlay bool
}

// NewGame wraps scene. Page load triggers fire immediately.
func NewGame(scene *Scene, opts Options) *Game {
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = "screenshots"
	}
	scene.Load()
	return &Game{scene: scene, opts: opts, showOverlay: true}
}

// Run opens the window and blocks until it is closed.
func Run(scene *Scene, opts Options) error {
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewGame(scene, opts))
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := float32(1 / float64(ebiten.TPS()))

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showOverlay = !g.showOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.shots = append(g.shots, fmt.Sprintf("scroll_%d", int(g.scene.Scroll())))
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scrollTarget = math.Max(0, g.scrollTarget-wy*scrollStep)
		g.scrollTween = gween.New(float32(g.scene.Scroll()), float32(g.scrollTarget), scrollDuration, ease.OutCubic)
	}
	if g.scrollTween != nil {
		v, done := g.scrollTween.Update(dt)
		g.scene.SetScroll(float64(v))
		if done {
			g.scrollTween = nil
		}
	}

	if s := g.opts.Script; s != nil && g.cursor < len(s.Steps) {
		st := s.Steps[g.cursor]
		g.cursor++
		g.scene.Step(st)
		if st.Action == motion.StepScroll {
			g.scrollTarget = g.scene.Scroll()
		}
	}

	mx, my := ebiten.CursorPosition()
	g.scene.Pointer(float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	g.scene.Update(dt)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	scroll := g.scene.Scroll()
	for _, b := range g.scene.boxes {
		if b.item.Type.HasChildren() {
			continue
		}
		drawBox(screen, b, scroll)
	}
	if g.showOverlay {
		ebitenutil.DebugPrint(screen, g.overlay())
	}
	if len(g.shots) > 0 {
		writeScreenshots(screen, g.opts.ScreenshotDir, g.shots)
		g.shots = g.shots[:0]
	}
}

// Layout implements ebiten.Game. The logical screen keeps the configured
// size so scroll trigger positions stay in step with the viewport width.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func drawBox(screen *ebiten.Image, b *box, scroll float64) {
	w, h := b.shown[slotWidth], b.shown[slotHeight]
	if w <= 0 || h <= 0 {
		return
	}
	a := b.shown[slotOpacity] * b.shownFill.A
	if a <= 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(b.shown[slotAngle] * math.Pi / 180)
	op.GeoM.Scale(b.shown[slotScale], b.shown[slotScale])
	op.GeoM.Translate(b.shown[slotLeft]+w/2, b.shown[slotTop]-scroll+h/2)

	c := b.shownFill
	op.ColorScale.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
	screen.DrawImage(whitePixel, &op)
}
