package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/ziransort/internal/api"
	"github.com/dgallion1/ziransort/internal/config"
	"github.com/dgallion1/ziransort/internal/natcmp"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	defaults, err := cfg.Options()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	collator := natcmp.NewCollator(cfg.LanguageTag())
	srv := api.NewServer(collator, defaults, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting ziransort",
		"port", cfg.Port,
		"locale", cfg.LanguageTag().String(),
		"number_policy", defaults.NumberString.String(),
		"chinese_policy", defaults.ChineseNumber.String(),
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
