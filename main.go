// memglitch is a live memory usage dashboard for the terminal.
//
// It samples memory and swap usage twice a second and renders a hacker-style
// dashboard: percentage readouts, a hash gauge, a scrolling history chart,
// and a critical alarm above 90% usage, with occasional glitch interference
// for flavor.
//
// Usage:
//
//	memglitch [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/memglitch/config.yaml)
//	-theme string     Theme override (hacker|amber|ice)
//	-interval string  Sampling interval override (e.g. "500ms", "1s")
//	-once             Print a single snapshot and exit
//	-export string    Write the cached usage history to a PNG file and exit
//	-no-glitch        Disable the glitch text effect
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/memglitch/cache"
	"gitlab.com/tinyland/lab/memglitch/collectors"
	"gitlab.com/tinyland/lab/memglitch/collectors/memory"
	"gitlab.com/tinyland/lab/memglitch/config"
	"gitlab.com/tinyland/lab/memglitch/display/banner"
	"gitlab.com/tinyland/lab/memglitch/display/color"
	"gitlab.com/tinyland/lab/memglitch/display/export"
	"gitlab.com/tinyland/lab/memglitch/display/tui"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to configuration file (default: ~/.config/memglitch/config.yaml)")
		themeFlag    = flag.String("theme", "", "Theme override (hacker|amber|ice)")
		intervalFlag = flag.String("interval", "", "Sampling interval override (e.g. \"500ms\", \"1s\")")
		runOnce      = flag.Bool("once", false, "Print a single snapshot and exit")
		exportPath   = flag.String("export", "", "Write the cached usage history to a PNG file and exit")
		noGlitch     = flag.Bool("no-glitch", false, "Disable the glitch text effect")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion  = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	// ---------------------------------------------------------------
	// Commands that don't require config
	// ---------------------------------------------------------------

	if *showVersion {
		fmt.Printf("memglitch %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Load configuration
	// ---------------------------------------------------------------

	path := *configPath
	if path == "" {
		path = os.Getenv("MEMGLITCH_CONFIG")
	}
	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".config", "memglitch", "config.yaml")
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()

	// CLI flags win over config and environment.
	if *themeFlag != "" {
		cfg.Display.Theme = *themeFlag
	}
	if *intervalFlag != "" {
		cfg.Monitor.RefreshInterval = *intervalFlag
	}
	if *noGlitch {
		cfg.Display.GlitchEnabled = false
	}
	if *verbose {
		cfg.Log.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)

	store, err := cache.NewStore(cfg.Monitor.CacheDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open cache: %v\n", err)
		os.Exit(1)
	}

	// ---------------------------------------------------------------
	// Export mode
	// ---------------------------------------------------------------

	if *exportPath != "" {
		data, err := memory.LoadCached(store)
		if err != nil || data == nil {
			fmt.Fprintln(os.Stderr, "no cached history to export; run the dashboard first")
			os.Exit(1)
		}
		if err := export.WritePNG(data, *exportPath); err != nil {
			fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", *exportPath)
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Context with signal handling
	// ---------------------------------------------------------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	collector := memory.New(memory.Config{
		Interval: cfg.RefreshInterval(),
		Store:    store,
		Logger:   logger,
	})

	// ---------------------------------------------------------------
	// Snapshot mode
	// ---------------------------------------------------------------

	if *runOnce {
		color.Setup()

		result, err := collector.Collect(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sampling failed: %v\n", err)
			os.Exit(1)
		}
		data, ok := result.Data.(*memory.Data)
		if !ok {
			fmt.Fprintln(os.Stderr, "sampling returned unexpected data")
			os.Exit(1)
		}

		width, _ := banner.DetectTerminalSize()
		fmt.Print(banner.Render(data, width))
		os.Exit(0)
	}

	// ---------------------------------------------------------------
	// Dashboard mode
	// ---------------------------------------------------------------

	defer func() {
		if r := recover(); r != nil {
			// Attempt to restore terminal from alt-screen before printing error.
			fmt.Print("\x1b[?1049l\x1b[?25h")
			fmt.Fprintf(os.Stderr, "memglitch: dashboard panic: %v\n", r)
			os.Exit(1)
		}
	}()

	zone.NewGlobal()

	registry := collectors.NewRegistry()
	registry.Register(collector)

	model := tui.NewModel(
		tui.WithTheme(cfg.Display.Theme),
		tui.WithGlitch(cfg.Display.GlitchEnabled),
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	updatesCh := make(chan collectors.Update, collectors.DefaultUpdateBufferSize)
	runner := collectors.NewRunner(registry, updatesCh, logger)

	if err := runner.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "collector runner error: %v\n", err)
		os.Exit(1)
	}

	// Bridge goroutine: convert collector updates into Bubbletea messages.
	go func() {
		for update := range updatesCh {
			if update.Err != nil || update.Result == nil {
				continue
			}
			data, ok := update.Result.Data.(*memory.Data)
			if !ok {
				continue
			}
			p.Send(tui.DataMsg{
				Data:      data,
				Timestamp: update.Timestamp,
			})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard error: %v\n", err)
		runner.Stop()
		os.Exit(1)
	}

	runner.Stop()
}

// setupLogger opens the configured log file. Logging goes to a file rather
// than stderr so it never bleeds into the alt-screen dashboard. Failure to
// open the file degrades to a no-op logger.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Log.Verbose {
		level = slog.LevelDebug
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0755); err != nil {
		return nil
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil
	}

	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
}
