package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/fireworks/clock"
	"github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/automoto/fireworks/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.Countdown.FontSize, config.Countdown.LabelSize); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	opts := scenes.ShowOptions{
		Clock: clock.System{},
		Seed:  config.Debug.Seed,
	}
	if config.Debug.TargetIn > 0 {
		opts.Target = time.Now().Add(config.Debug.TargetIn)
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewShowScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the show always covers the whole of it.
func (g *Game) Layout(width, height int) (int, int) {
	if width != g.bounds.Dx() || height != g.bounds.Dy() {
		g.bounds = image.Rect(0, 0, width, height)
		g.scene.Resize(width, height)
	}
	return width, height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	targetIn := flag.Duration("in", 0, "start the show this long from now instead of at the New Year")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	width := flag.Int("width", 0, "window width")
	height := flag.Int("height", 0, "window height")
	debug := flag.Bool("debug", false, "show the stats overlay (F3 toggles)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Printf("Warning: Could not load config: %v", err)
		}
	}
	if *width > 0 {
		config.C.Width = *width
	}
	if *height > 0 {
		config.C.Height = *height
	}
	config.Debug.Seed = *seed
	config.Debug.TargetIn = *targetIn
	config.Debug.Overlay = *debug

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
