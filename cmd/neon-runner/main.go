package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/neon-runner/audio"
	"github.com/lixenwraith/neon-runner/autopilot"
	"github.com/lixenwraith/neon-runner/config"
	"github.com/lixenwraith/neon-runner/engine"
	"github.com/lixenwraith/neon-runner/input"
	"github.com/lixenwraith/neon-runner/parameter"
	"github.com/lixenwraith/neon-runner/render"
	"github.com/lixenwraith/neon-runner/status"
	"github.com/lixenwraith/neon-runner/store"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config overlay")
	presetFlag   = flag.String("preset", "", "Tuning preset: neon, grid, flat")
	seedFlag     = flag.Uint64("seed", 0, "Spawner seed (0 keeps the configured seed)")
	debugFlag    = flag.Bool("debug", false, "Write logs/neon-runner.log and show the metrics overlay")
	headlessFlag = flag.Bool("headless", false, "Run the autopilot without a terminal")
	ticksFlag    = flag.Int64("ticks", parameter.DefaultHeadlessTicks, "Ticks to simulate in headless mode")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
	keysFlag     = flag.String("keys", "", "Path to a TOML keymap override")
	storeFlag    = flag.String("store", "", "Progress file path (default: user config dir)")
	practiceFlag = flag.Bool("practice", false, "Play without saving progress")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*presetFlag, *configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	// Non-TTY stdout has nowhere to draw
	if *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		os.Exit(runHeadless(cfg))
	}

	keys, err := loadKeyTable(*keysFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Keymap: %v\n", err)
		os.Exit(1)
	}

	if err := runInteractive(cfg, openStore(cfg), keys); err != nil {
		fmt.Fprintf(os.Stderr, "neon-runner: %v\n", err)
		os.Exit(1)
	}
}

// openStore resolves the progress file: flag, then config, then the user config dir
// Falls back to an in-memory store so a broken home directory never blocks play
func openStore(cfg *config.Config) engine.KeyValueStore {
	path := *storeFlag
	if path == "" {
		path = cfg.Store.Path
	}
	if path == "" {
		p, err := store.DefaultPath()
		if err != nil {
			log.Printf("store: %v, progress will not persist", err)
			return store.NewMemoryStore()
		}
		path = p
	}

	if *practiceFlag {
		return store.OpenReadOnly(path)
	}
	return store.Open(path)
}

func loadKeyTable(path string) (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(base, override), nil
}

// runHeadless plays with the autopilot on a stepped clock and prints a summary
func runHeadless(cfg *config.Config) int {
	reg := status.NewRegistry()
	clock := engine.NewSteppedTimeProvider(time.Now(), cfg.Render.FrameInterval())
	g := engine.NewGame(cfg, engine.NewPausableClock(clock), store.NewMemoryStore(), nil, reg)
	pilot := autopilot.New(cfg.Physics.PlayerSize, cfg.Physics.HitboxMargin)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := autopilot.Run(ctx, g, clock, pilot, autopilot.Options{Ticks: *ticksFlag})

	fmt.Printf("preset=%s seed=%#x ticks=%d runs=%d crashes=%d best=%d last=%d coins=%d top_speed=%.3f\n",
		cfg.Preset, cfg.Seed, res.Ticks, res.Runs, res.Crashes, res.BestScore, res.LastScore, res.Coins, res.TopSpeed)
	if *debugFlag {
		for _, line := range reg.Lines() {
			fmt.Println(line)
		}
	}

	if errors.Is(err, context.Canceled) {
		return 130
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Headless run failed: %v\n", err)
		return 1
	}
	return 0
}

// runInteractive owns the terminal: input poller goroutine feeding a channel, frame ticker driving tick and render
func runInteractive(cfg *config.Config, kv engine.KeyValueStore, keys *input.KeyTable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing so the trace stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mNEON-RUNNER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	reg := status.NewRegistry()

	sound := audio.NewSoundManager(cfg.Audio, reg)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Close()
	sound.SetMuted(*muteFlag)

	renderer := render.NewRenderer(screen, cfg.Render, reg)
	renderer.SetDebug(*debugFlag)
	renderer.SetMuted(*muteFlag)

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	game := engine.NewGame(cfg, clock, kv, engine.MultiSink{sound, renderer}, reg)
	machine := input.NewMachineWithTable(keys)

	eventChan := make(chan tcell.Event, parameter.InputQueueSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil event means the screen was finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(cfg.Render.FrameInterval())
	defer frameTicker.Stop()

	renderer.Render(game)

	for {
		select {
		case ev := <-eventChan:
			intent := machine.Process(ev)
			switch intent.Type {
			case input.IntentQuit:
				log.Printf("quit at phase %s", game.Phase())
				return nil
			case input.IntentToggleMute:
				renderer.SetMuted(sound.ToggleMute())
			case input.IntentToggleDebug:
				renderer.ToggleDebug()
			case input.IntentResize:
				screen.Sync()
			case input.IntentGame:
				game.HandleIntent(intent.Game)
			}

		case <-frameTicker.C:
			game.Tick()
			renderer.Render(game)
		}
	}
}
