package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"kalender/internal/config"
	appLog "kalender/internal/log"
	"kalender/internal/overlay"
	"kalender/internal/store"
	"kalender/internal/web"
)

// flagConfig holds CLI flag values; non-empty ones override the config file.
type flagConfig struct {
	configPath string
	listen     string
	document   string
}

func main() {
	appLog.Info("kalender starting", "version", "0.1.0")

	flags := parseFlags()

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}
	if flags.listen != "" {
		conf.Listen = flags.listen
	}
	if flags.document != "" {
		conf.DocumentPath = flags.document
	}
	appLog.SetLevel(appLog.ParseLevel(conf.LogLevel))

	appLog.Info("effective config",
		"listen", conf.Listen,
		"document", conf.DocumentPath,
		"autosave", conf.AutosaveCron,
		"log_level", conf.LogLevel,
	)

	st, err := store.Load(conf.DocumentPath)
	if err != nil {
		appLog.Error("failed to load document", err, "path", conf.DocumentPath)
		os.Exit(1)
	}
	appLog.Info("document loaded", "path", conf.DocumentPath, "entries", len(st.Entries()))

	engine := buildOverlayEngine(conf)

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	srv := web.NewServer(conf, st, engine)
	httpServer := &http.Server{
		Addr:    conf.Listen,
		Handler: srv.Handler(),
	}

	autosave := startAutosave(conf, srv)

	go func() {
		appLog.Info("starting HTTP server", "listen", "http://"+conf.Listen)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("HTTP server failed", err)
			cancel()
		}
	}()

	<-ctx.Done()

	if autosave != nil {
		<-autosave.Stop().Done()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLog.Error("HTTP shutdown failed", err)
	}

	// Final save so a modified document never dies with the process.
	if err := srv.SaveIfModified(); err != nil {
		appLog.Error("final save failed", err, "path", conf.DocumentPath)
	}

	appLog.Info("kalender exiting")
}

// buildOverlayEngine registers the built-in overlays enabled by config.
// Vacation tables paint first, holidays and Sundays on top.
func buildOverlayEngine(conf *config.Config) *overlay.Engine {
	engine := overlay.NewEngine()

	ferien := overlay.NewNiedersachsen()
	ferien.SetEnabled(conf.Overlays.FerienNiedersachsen)
	engine.Register(ferien)

	holidays := overlay.NewHolidayOverlay()
	holidays.SetEnabled(conf.Overlays.Holidays)
	engine.Register(holidays)

	sundays := overlay.NewSundayOverlay()
	sundays.SetEnabled(conf.Overlays.Sundays)
	engine.Register(sundays)

	return engine
}

// startAutosave schedules periodic document saves on the configured cron
// spec. Saves are skipped while the store is unchanged.
func startAutosave(conf *config.Config, srv *web.Server) *cron.Cron {
	if conf.AutosaveCron == "" {
		appLog.Info("autosave disabled")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(conf.AutosaveCron, func() {
		if err := srv.SaveIfModified(); err != nil {
			appLog.Error("autosave failed", err, "path", conf.DocumentPath)
		}
	})
	if err != nil {
		appLog.Error("invalid autosave schedule, autosave disabled", err, "spec", conf.AutosaveCron)
		return nil
	}

	c.Start()
	appLog.Info("autosave scheduled", "spec", conf.AutosaveCron)
	return c
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&cfg.listen, "listen", "", "HTTP listen address (overrides config if set)")
	flag.StringVar(&cfg.document, "data", "", "Calendar document path (overrides config if set)")

	flag.Parse()

	return cfg
}
