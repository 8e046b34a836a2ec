// Command blind-maze-gui plays the blind maze in a desktop window.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/blind-maze/audio"
	"github.com/lixenwraith/blind-maze/config"
)

const (
	windowWidth  = 1280
	windowHeight = 800
)

var (
	configPath = flag.String("config", "", "TOML config file")
	envFile    = flag.String("env", ".env", "dotenv file with BLINDMAZE_* overrides")
	seedFlag   = flag.Int64("seed", 0, "first maze seed (0 picks one at random)")
	blindFlag  = flag.Bool("blind", false, "hide maze walls while playing")
	muteFlag   = flag.Bool("mute", false, "disable sound")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "blind":
			cfg.Blind = *blindFlag
		case "mute":
			cfg.Mute = *muteFlag
		}
	})

	f, err := loadFonts()
	if err != nil {
		log.Fatal(err)
	}

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		log.Printf("[AUDIO] [WARN] %v (continuing without audio)", err)
	}
	defer player.Close()

	g, err := NewGame(cfg, windowWidth, windowHeight, player, f, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Blind Maze")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	log.Printf("[APP] [INFO] starting size=%g cell=%g seed=%d", cfg.Size, cfg.CellSize, cfg.Seed)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
