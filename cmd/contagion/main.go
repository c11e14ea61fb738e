package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/contagion/audio"
	"github.com/lixenwraith/contagion/config"
	"github.com/lixenwraith/contagion/engine"
	"github.com/lixenwraith/contagion/render"
	"github.com/lixenwraith/contagion/status"
	"github.com/lixenwraith/contagion/system"
)

var (
	configFlag    = flag.String("config", "", "Path to a TOML config file")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, overrides the config file (0: derive from time)")
	ticksFlag     = flag.Int("ticks", 0, "Run headless for n ticks, print the census and exit")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/contagion.log")
	soundFlag     = flag.Bool("sound", false, "Play a blip on each infection")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "contagion: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig(*configFlag, *seedFlag)
	if err != nil {
		return err
	}

	sim, err := engine.NewSimulation(cfg, logger)
	if err != nil {
		return err
	}
	system.RegisterAll(sim.World)
	driver := engine.NewDriver(sim.World, cfg.TickInterval)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *ticksFlag > 0 {
		return runHeadless(ctx, sim, driver, *ticksFlag)
	}
	return runInteractive(ctx, sim, driver)
}

// loadConfig layers the config file and seed flag over the defaults
// A zero seed after layering is replaced by a time-derived one
func loadConfig(path string, seed uint64) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}

// runHeadless steps the simulation without pacing and prints the final census
func runHeadless(ctx context.Context, sim *engine.Simulation, driver *engine.Driver, ticks int) error {
	queue := sim.World.Resource.Event.Queue
	infections := 0

	err := driver.Run(ctx, ticks, func(int64) {
		infections += len(queue.Consume())
	})

	logger := sim.World.Resource.Log
	if dropped := queue.Dropped(); dropped > 0 {
		logger.Warn("event queue overflowed", "dropped", dropped)
	}
	logCensus(logger, sim.World.Resource.Status, slog.LevelInfo)
	ints, _ := sim.World.Resource.Status.Snapshot()
	fmt.Printf("run=%s seed=%d tick=%d susceptible=%d infected=%d recovered=%d infections=%d\n",
		sim.RunID, sim.Config.Seed, driver.Tick(),
		ints[status.KeySusceptible], ints[status.KeyInfected], ints[status.KeyRecovered], infections)

	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// logCensus writes every registry metric as one record
func logCensus(logger *slog.Logger, reg *status.Registry, level slog.Level) {
	ints, floats := reg.Snapshot()
	attrs := make([]slog.Attr, 0, len(ints)+len(floats))
	for k, v := range ints {
		attrs = append(attrs, slog.Int64(k, v))
	}
	for k, v := range floats {
		attrs = append(attrs, slog.Float64(k, v))
	}
	logger.LogAttrs(context.Background(), level, "census", attrs...)
}

// runInteractive paces ticks at the configured interval and draws each one
func runInteractive(ctx context.Context, sim *engine.Simulation, driver *engine.Driver) error {
	logger := sim.World.Resource.Log

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCONTAGION CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	blipper := audio.NewBlipper()
	if *soundFlag {
		if err := blipper.Initialize(); err != nil {
			logger.Warn("audio initialization failed, continuing without sound", "error", err)
		} else {
			defer blipper.Close()
		}
	}

	renderer := render.NewTerminalRenderer(screen, render.ParseColorMode(*colorModeFlag))
	queue := sim.World.Resource.Event.Queue

	eventChan := make(chan tcell.Event, 64)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(sim.Config.TickInterval)
	defer ticker.Stop()

	draw := func() {
		renderer.Render(render.FrameFromWorld(sim.World, sim.RunID, driver.Paused()))
	}
	draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					logCensus(logger, sim.World.Resource.Status, slog.LevelInfo)
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
					paused := driver.TogglePause()
					logger.Debug("pause toggled", "paused", paused, "tick", driver.Tick())
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			draw()

		case <-ticker.C:
			if !driver.Advance() {
				continue
			}
			if evs := queue.Consume(); len(evs) > 0 {
				blipper.Consume(evs)
			}
			draw()
		}
	}
}

// quitKey reports q, Esc and Ctrl-C
func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
