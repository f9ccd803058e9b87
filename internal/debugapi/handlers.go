// internal/debugapi/handlers.go
package debugapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"go-hex-defense/internal/app"
	"go-hex-defense/internal/types"
	"go-hex-defense/pkg/hexmap"
)

// Simulation is the part of the game the debug API reads and drives.
type Simulation interface {
	FindPath(start, goal hexmap.Hex) (hexmap.Path, bool)
	Snapshot() app.Snapshot
	HighlightedRoute() hexmap.Path
	WalkerRoute() hexmap.Path
	PickAt(hex hexmap.Hex) (types.EntityID, error)
	PlaceBuilding(hex hexmap.Hex, defID string) (types.EntityID, error)
	Definitions() []string
}

// NewRouter returns the debug HTTP handler: JSON endpoints under /api and
// the runtime profiler under /debug.
func NewRouter(sim Simulation) http.Handler {
	h := &handler{sim: sim}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Get("/state", h.GetState)
		r.Get("/path", h.GetPath)
		r.Get("/route", h.GetRoute)
		r.Get("/definitions", h.GetDefinitions)
		r.Post("/pick/{q}/{r}", h.Pick)
		r.Post("/buildings/{q}/{r}", h.PlaceBuilding)
	})
	r.Mount("/debug", middleware.Profiler())
	return r
}

type handler struct {
	sim Simulation
}

type pathResponse struct {
	From  hexmap.Hex  `json:"from"`
	To    hexmap.Hex  `json:"to"`
	Found bool        `json:"found"`
	Steps int         `json:"steps"`
	Path  hexmap.Path `json:"path"`
}

// GetState handles GET /api/state
func (h *handler) GetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.sim.Snapshot())
}

// GetPath handles GET /api/path?from=q,r&to=q,r
func (h *handler) GetPath(w http.ResponseWriter, r *http.Request) {
	from, err := parseHex(r.URL.Query().Get("from"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid from: "+err.Error())
		return
	}
	to, err := parseHex(r.URL.Query().Get("to"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid to: "+err.Error())
		return
	}
	path, found := h.sim.FindPath(from, to)
	respondJSON(w, http.StatusOK, pathResponse{
		From:  from,
		To:    to,
		Found: found,
		Steps: path.Steps(),
		Path:  path,
	})
}

// GetRoute handles GET /api/route
func (h *handler) GetRoute(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]hexmap.Path{
		"walkers":     h.sim.WalkerRoute(),
		"highlighted": h.sim.HighlightedRoute(),
	})
}

// GetDefinitions handles GET /api/definitions
func (h *handler) GetDefinitions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string][]string{"buildings": h.sim.Definitions()})
}

// Pick handles POST /api/pick/{q}/{r}
// 202: pick recorded, resolved on the next tick. 404: off the map.
// 409: ignored, a chosen pair is waiting for the next tick.
func (h *handler) Pick(w http.ResponseWriter, r *http.Request) {
	hex, err := urlHex(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.sim.PickAt(hex)
	switch {
	case errors.Is(err, app.ErrNoCell):
		respondError(w, http.StatusNotFound, fmt.Sprintf("No cell at %v", hex))
	case errors.Is(err, app.ErrPickPending):
		respondError(w, http.StatusConflict, err.Error())
	case err != nil:
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		respondJSON(w, http.StatusAccepted, map[string]types.EntityID{"id": id})
	}
}

// PlaceBuilding handles POST /api/buildings/{q}/{r}?def=ID
func (h *handler) PlaceBuilding(w http.ResponseWriter, r *http.Request) {
	hex, err := urlHex(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.sim.PlaceBuilding(hex, r.URL.Query().Get("def"))
	switch {
	case errors.Is(err, app.ErrNoCell):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, app.ErrOccupied):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, app.ErrUnknownDefinition):
		respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		respondError(w, http.StatusInternalServerError, err.Error())
	default:
		respondJSON(w, http.StatusCreated, map[string]types.EntityID{"id": id})
	}
}

func urlHex(r *http.Request) (hexmap.Hex, error) {
	q, err := strconv.Atoi(chi.URLParam(r, "q"))
	if err != nil {
		return hexmap.Hex{}, errors.New("invalid q coordinate")
	}
	rr, err := strconv.Atoi(chi.URLParam(r, "r"))
	if err != nil {
		return hexmap.Hex{}, errors.New("invalid r coordinate")
	}
	return hexmap.Hex{Q: q, R: rr}, nil
}

// parseHex parses "q,r".
func parseHex(s string) (hexmap.Hex, error) {
	qs, rs, ok := strings.Cut(s, ",")
	if !ok {
		return hexmap.Hex{}, fmt.Errorf("want q,r, got %q", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(qs))
	if err != nil {
		return hexmap.Hex{}, err
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return hexmap.Hex{}, err
	}
	return hexmap.Hex{Q: q, R: r}, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// ListenAndServe runs the debug server until it fails. It is meant to be
// started in its own goroutine.
func ListenAndServe(addr string, sim Simulation) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(sim),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("Debug API listening on http://%s/api", addr)
	return srv.ListenAndServe()
}
