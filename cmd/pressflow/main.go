package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/pressflow/pressflow/pkg/bulk"
	"github.com/pressflow/pressflow/pkg/config"
	"github.com/pressflow/pressflow/pkg/content"
	"github.com/pressflow/pressflow/pkg/db"
	"github.com/pressflow/pressflow/pkg/feed"
	"github.com/pressflow/pressflow/pkg/images"
	"github.com/pressflow/pressflow/pkg/llm"
	"github.com/pressflow/pressflow/pkg/pipeline"
	"github.com/pressflow/pressflow/pkg/queue"
	"github.com/pressflow/pressflow/pkg/scheduler"
	"github.com/pressflow/pressflow/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"pressflow.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting pressflow version %s", revision)

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg, opts.Debug); err != nil {
		log.Printf("[ERROR] %v", err)
		cancel()
		os.Exit(1)
	}

	cancel()
	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, debug bool) error {
	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer database.Close()

	// collaborators
	fetcher := feed.NewHTTPFetcher(cfg.Automation.FeedTimeout, cfg.Automation.UserAgent)
	extractor := content.NewHTTPExtractor(cfg.Automation.ExtractTimeout, cfg.Automation.UserAgent)
	generator := llm.NewGenerator(cfg.LLM)

	var providers []images.Provider
	if cfg.Images.Pexels.Enabled {
		providers = append(providers, images.NewPexelsProvider(cfg.Images.Pexels.APIKey, cfg.Images.Timeout))
	}
	if cfg.Images.Unsplash.Enabled {
		providers = append(providers, images.NewUnsplashProvider(cfg.Images.Unsplash.APIKey, cfg.Images.Timeout))
	}
	imgSearch := images.NewSearch(providers, cfg.Images.PerPhrase, cfg.Images.MaxPhrases, cfg.Images.Orientation)

	factory := &wpFactory{cfg: cfg.WordPress}
	proc := pipeline.New(generator, extractor, imgSearch, cfg.Images.MaxInline)

	// automation engine
	registry := scheduler.NewRegistry(database, fetcher)
	if err := registry.InitializeAll(ctx); err != nil {
		return fmt.Errorf("initialize schedules: %w", err)
	}

	worker := queue.NewWorker(database, proc, factory, cfg.Automation.PollInterval)
	worker.Start(ctx)
	defer worker.Stop()

	engine := bulk.NewEngine(database, factory, cfg.Automation.BulkDelay, cfg.Automation.BulkQueueSize)
	engine.Start(ctx)
	defer engine.Stop()

	srv := server.New(cfg, database, registry, worker, engine, revision, debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
