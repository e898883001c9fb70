package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"museum-api/internal/artwork"
	"museum-api/internal/museum"
	"museum-api/internal/timeline"
)

// ArtworkService is the pipeline surface the handlers drive; satisfied by
// *museum.Service and mocked in tests.
type ArtworkService interface {
	Search(ctx context.Context, query string, page int) (museum.SearchResult, error)
	Detail(ctx context.Context, id string) (artwork.Detail, error)
	Images(ctx context.Context, id, typ, position string) (museum.ImageResult, error)
	ArtistTimeline(ctx context.Context, artist, sortBy string) (museum.TimelineResult, error)
}

type handler struct {
	svc     ArtworkService
	logger  *log.Logger
	started time.Time
}

// NewRouter wires the consumer-facing routes. All routes are GET and all
// responses are JSON.
func NewRouter(svc ArtworkService, logger *log.Logger) *mux.Router {
	if logger == nil {
		logger = log.Default()
	}

	h := &handler{
		svc:     svc,
		logger:  logger,
		started: time.Now(),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/search_artwork", h.searchArtwork).Methods(http.MethodGet)
	r.HandleFunc("/api/get_artwork_details/{id}", h.artworkDetails).Methods(http.MethodGet)
	r.HandleFunc("/api/get_artwork_image/{id}", h.artworkImage).Methods(http.MethodGet)
	r.HandleFunc("/api/get_artist_timeline", h.artistTimeline).Methods(http.MethodGet)
	r.HandleFunc("/api/health", h.health).Methods(http.MethodGet)
	return r
}

func (h *handler) searchArtwork(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: query", "")
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}

	result, err := h.svc.Search(r.Context(), query, page)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to search artworks", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) artworkDetails(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	detail, err := h.svc.Detail(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch artwork details", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *handler) artworkImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	typ := r.URL.Query().Get("type")
	if typ == "" {
		typ = artwork.TypeAll
	}
	position := r.URL.Query().Get("position")

	result, err := h.svc.Images(r.Context(), id, typ, position)
	switch {
	case errors.Is(err, artwork.ErrNoImages), errors.Is(err, artwork.ErrNoImageAtPosition):
		writeError(w, http.StatusNotFound, err.Error(), "")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to fetch artwork images", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) artistTimeline(w http.ResponseWriter, r *http.Request) {
	artist := r.URL.Query().Get("artist")
	if artist == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: artist", "")
		return
	}
	sortBy := r.URL.Query().Get("sortBy")
	if sortBy == "" {
		sortBy = timeline.SortByDate
	}

	result, err := h.svc.ArtistTimeline(r.Context(), artist, sortBy)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build artist timeline", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"uptime":    time.Since(h.started).Seconds(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
