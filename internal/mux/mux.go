package mux

import (
	"net/http"
	"time"

	gmux "github.com/gorilla/mux"

	"screwyourneighbor-server/internal/config"
	"screwyourneighbor-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *room.Registry
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()
	registry := room.NewRegistry(
		time.Second*time.Duration(cfg.ResolutionDelaySeconds),
		cfg.StartingLives,
	)

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	this.Router.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Router.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
