package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hnsearch/internal/config"
	"hnsearch/internal/eventbus"
	"hnsearch/internal/hn"
	"hnsearch/internal/logging"
	"hnsearch/internal/search"
	"hnsearch/internal/ui"
)

var version = "dev"

// CLI flags override the config file and HNSEARCH_* environment variables
var CLI struct {
	Query       string           `short:"q" help:"Initial search term (defaults to api.default_query)."`
	APIBase     string           `name:"api-base" help:"Search API base URL." placeholder:"URL"`
	HitsPerPage int              `name:"hits-per-page" help:"Hits requested per page."`
	Config      string           `help:"Path to the config file." type:"path" placeholder:"PATH"`
	LogFile     string           `name:"log-file" help:"Log file path." placeholder:"PATH"`
	LogLevel    string           `name:"log-level" help:"Log level: debug, info, warn or error." placeholder:"LEVEL"`
	NoAltScreen bool             `name:"no-alt-screen" help:"Render inline instead of in the alternate screen."`
	WriteConfig bool             `name:"write-config" help:"Write the effective configuration to the config path and exit."`
	Version     kong.VersionFlag `help:"Show version information."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("hnsearch"),
		kong.Description("Search Hacker News from the terminal"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	// Load configuration
	configSvc := config.NewConfigService(CLI.Config)
	cfg, loadErr := configSvc.Load()
	if loadErr != nil {
		// Use default config, still honouring HNSEARCH_* overrides
		var envErr error
		cfg, envErr = config.DefaultsWithEnv()
		loadErr = errors.Join(loadErr, envErr)
	}
	applyFlags(cfg)

	if CLI.WriteConfig {
		if err := configSvc.SaveToPath(cfg, configSvc.Path()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		os.Exit(1)
	}

	// Set up logging
	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	if loadErr != nil {
		logger.Warn("config load failed, using defaults",
			zap.String("path", configSvc.Path()),
			zap.Error(loadErr),
		)
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("api", cfg.API.BaseURL),
		zap.String("query", cfg.API.DefaultQuery),
	)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New(logger)

	// Initialize services
	client := hn.NewClient(cfg.API.BaseURL,
		hn.WithHitsPerPage(cfg.API.HitsPerPage),
		hn.WithLogger(logger),
	)
	searchSvc := search.NewService(ctx, bus, client, logger, cfg.Timeout())

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, logger)

	// Create Bubble Tea program
	var opts []tea.ProgramOption
	if cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			cancel()
			p.Quit()
		case <-ctx.Done():
		}
	}()

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		case <-ctx.Done():
		}
	}
	unsubLoaded := bus.Subscribe(eventbus.EventPageLoaded, forward)
	unsubFailed := bus.Subscribe(eventbus.EventFetchFailed, forward)

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	if os.Getenv("HNSEARCH_E2E_TEST") != "" {
		fmt.Println("__READY__")
	}

	// Run the UI
	_, runErr := p.Run()

	// Cleanup: abandon in-flight requests before tearing down the bus
	cancel()
	searchSvc.Close()
	unsubLoaded()
	unsubFailed()
	bus.Close()

	if runErr != nil {
		logger.Error("program exited with error", zap.Error(runErr))
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("exited normally")
}

// applyFlags overlays command line flags onto cfg
func applyFlags(cfg *config.Config) {
	if CLI.Query != "" {
		cfg.API.DefaultQuery = CLI.Query
	}
	if CLI.APIBase != "" {
		cfg.API.BaseURL = CLI.APIBase
	}
	if CLI.HitsPerPage != 0 {
		cfg.API.HitsPerPage = CLI.HitsPerPage
	}
	if CLI.LogFile != "" {
		cfg.Log.Path = CLI.LogFile
	}
	if CLI.LogLevel != "" {
		cfg.Log.Level = CLI.LogLevel
	}
	if CLI.NoAltScreen {
		cfg.UISettings.AltScreen = false
	}
}
