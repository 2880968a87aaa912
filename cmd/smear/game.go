package main

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/config"
	"github.com/npillmayer/smear/input"
	"github.com/npillmayer/smear/render"
	"github.com/npillmayer/smear/scene"
	"github.com/npillmayer/smear/stroke"
)

// Game hosts a scene in an ebiten window. Every ebiten tick is a scene tick.
type Game struct {
	cfg     *config.Config
	scene   *scene.Scene
	ropts   render.Options
	frame   *image.RGBA
	dt      time.Duration
	pointer input.Pointer
}

// NewGame creates a game from a configuration.
func NewGame(cfg *config.Config) (*Game, error) {
	sopts, err := cfg.SceneOptions()
	if err != nil {
		return nil, err
	}
	ropts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:   cfg,
		scene: scene.New(sopts, stroke.NewSeeded(cfg.GetSeed())),
		ropts: ropts,
		frame: image.NewRGBA(image.Rect(0, 0, ropts.Width, ropts.Height)),
		dt:    sopts.TickDuration(),
	}
	g.pointer = input.PointerFunc(g.cursor)
	tracer().Infof("smear: %dx%d at %d ticks per second", ropts.Width, ropts.Height, sopts.FPS)
	return g, nil
}

// cursor reports the mouse position while it is inside the window.
func (g *Game) cursor() (smear.Vector, bool) {
	x, y := ebiten.CursorPosition()
	if !image.Pt(x, y).In(g.frame.Bounds()) {
		return smear.Origin, false
	}
	return smear.V(float64(x), float64(y)), true
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.ropts.Width, g.ropts.Height)
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(g.scene.Options().FPS)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Tick(g.dt, g.pointer)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render.RasterInto(g.frame, g.scene.Frame(), g.ropts)
	screen.WritePixels(g.frame.Pix)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ropts.Width, g.ropts.Height
}

// Close releases the scene.
func (g *Game) Close() {
	g.scene.Close()
}
