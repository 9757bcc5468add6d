// Package app wires configuration, logging, the simulated world, and the
// websocket hub into a runnable server.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"fieldsim/server/internal/geometry"
	"fieldsim/server/internal/sim"
)

// demoRoute is the waypoint loop the demo agent runs forever.
var demoRoute = []geometry.Point{
	geometry.Pt(0, 1.5),
	geometry.Pt(2, 0),
	geometry.Pt(0, 3),
	geometry.Pt(-3, 0),
}

// Run starts the simulation server and blocks until ctx is cancelled or the
// listener fails.
func Run(ctx context.Context) error {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	log := logrus.New()
	cfg := configFromEnv(log)
	log.SetLevel(cfg.LogLevel)

	world := sim.NewWorld(cfg.Sim, log)
	world.Spawn(geometry.Point{}, demoRoute, true)

	hub := NewHub(world, log)
	stop := make(chan struct{})
	go hub.RunSimulation(stop)
	defer close(stop)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.HandleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":      "ok",
			"tick":        world.Tick(),
			"subscribers": hub.SubscriberCount(),
		})
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
}
