package stage

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures Run. Zero values select a 640x480 window titled
// "stage" with a transparent clear color.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ClearColor string // CSS color; empty leaves the frame transparent

	// OnUpdate runs once per tick after tweens advance. Returning an error
	// stops the loop and is returned from Run.
	OnUpdate func() error
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "stage"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	return c
}

// game adapts a Stage to ebiten.Game.
type game struct {
	stage   *Stage
	cfg     RunConfig
	clear   color.Color
	surface *ImageSurface
}

func newGame(s *Stage, cfg RunConfig) (*game, error) {
	cfg = cfg.withDefaults()
	g := &game{stage: s, cfg: cfg, surface: NewImageSurface(nil, nil)}
	if cfg.ClearColor != "" {
		c, err := ParseColor(cfg.ClearColor)
		if err != nil {
			return nil, fmt.Errorf("stage: clear color: %w", err)
		}
		g.clear = c
	}
	return g, nil
}

func (g *game) Update() error {
	g.stage.Update(float32(1.0 / float64(ebiten.TPS())))
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.clear != nil {
		screen.Fill(g.clear)
	}
	g.surface.SetTarget(screen)
	g.surface.Reset()
	g.stage.Draw(g.surface)
	g.stage.flushScreenshots(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives s until the window closes or OnUpdate
// returns an error.
func Run(s *Stage, cfg RunConfig) error {
	g, err := newGame(s, cfg)
	if err != nil {
		return err
	}
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	return ebiten.RunGame(g)
}
