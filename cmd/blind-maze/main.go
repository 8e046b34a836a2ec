package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blind-maze/audio"
	"github.com/lixenwraith/blind-maze/config"
	"github.com/lixenwraith/blind-maze/game"
	"github.com/lixenwraith/blind-maze/input"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

var (
	configPath = flag.String("config", "", "TOML config file")
	envFile    = flag.String("env", ".env", "dotenv file with BLINDMAZE_* overrides")
	keymapPath = flag.String("keymap", "", "TOML keymap override")
	seedFlag   = flag.Int64("seed", 0, "first maze seed (0 picks one at random)")
	debugFlag  = flag.Bool("debug", false, "write logs to logs/blind-maze.log")
	blindFlag  = flag.Bool("blind", false, "hide maze walls while playing")
	muteFlag   = flag.Bool("mute", false, "disable sound")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	keys := input.DefaultKeyTable()
	if *keymapPath != "" {
		data, err := os.ReadFile(*keymapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keymap: %v\n", err)
			os.Exit(1)
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keymap %s: %v\n", *keymapPath, err)
			os.Exit(1)
		}
		keys = input.MergeKeyTable(keys, override)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("[APP] [INFO] starting size=%g cell=%g seed=%d", cfg.Size, cfg.CellSize, cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBLIND-MAZE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	player := audio.NewPlayer()
	if err := player.Init(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("[AUDIO] [WARN] %v (continuing without audio)", err)
	}
	defer player.Close()

	a, err := newApp(screen, cfg, keys, player, game.RealTimeProvider{}, log.Default())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	run(a)
	screen.Fini()
	log.Printf("[APP] [INFO] exit")
}

// applyFlags lets explicitly set flags win over file and environment values
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seedFlag
		case "debug":
			cfg.Debug = *debugFlag
		case "blind":
			cfg.Blind = *blindFlag
		case "mute":
			cfg.Mute = *muteFlag
		}
	})
}

// run drains terminal events and frame ticks on one goroutine
func run(a *app) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}
