package motion

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window and per-frame callbacks for [Run].
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Update, if set, runs every frame before the manager advances.
	// Returning an error stops the loop and propagates out of Run.
	Update func() error
	// Draw renders the frame.
	Draw func(screen *ebiten.Image)
	// ExitWhenIdle stops the loop once no tweens remain active.
	ExitWhenIdle bool
}

// Run opens a window and ticks m once per frame until the window closes.
// It is the simplest way to host a manager; for full control implement
// [ebiten.Game] yourself and call [Manager.Update] from your Update method.
func Run(m *Manager, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(&loopGame{m: m, cfg: cfg})
}

type loopGame struct {
	m   *Manager
	cfg RunConfig
}

func (g *loopGame) Update() error {
	if g.cfg.Update != nil {
		if err := g.cfg.Update(); err != nil {
			return err
		}
	}
	active := g.m.Update()
	if !active && g.cfg.ExitWhenIdle {
		return ebiten.Termination
	}
	return nil
}

func (g *loopGame) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
}

func (g *loopGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
