package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/portfolio-site/portfolio-backend/config"
	"github.com/portfolio-site/portfolio-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[boot] load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.NewApp(ctx, cfg, nil)
	if err != nil {
		log.Fatalf("[boot] %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 30 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("[boot] %s %s (%s) serving on port %s", cfg.App.ServiceName, cfg.App.Version, cfg.App.Environment, cfg.Server.Port)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[boot] serve: %v", err)
		}
		return
	case <-ctx.Done():
	}

	log.Println("[boot] shutting down")
	// in-flight contact submissions may still be relaying
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Email.Timeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[boot] shutdown: %v", err)
	}
	log.Println("[boot] stopped")
}
