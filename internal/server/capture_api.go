package server

import (
	"bytes"
	"encoding/json"
	"image/png"
	"log/slog"
	"net/http"

	"github.com/relictools/relicrater/internal/capture"
	"github.com/relictools/relicrater/internal/rating"
)

// CaptureAPI exposes the screenshot source used to scan relics. Scanner
// clients list the available surfaces and pull a frame of the game window.
type CaptureAPI struct {
	logger      *slog.Logger
	capturer    capture.Capturer
	windowTitle string
}

func NewCaptureAPI(logger *slog.Logger, capturer capture.Capturer, windowTitle string) *CaptureAPI {
	return &CaptureAPI{
		logger:      logger,
		capturer:    capturer,
		windowTitle: windowTitle,
	}
}

// RegisterRoutes registers the capture routes.
func (api *CaptureAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/capture/sources", api.handleSources)
	mux.HandleFunc("/api/capture/screenshot", api.handleScreenshot)
}

func (api *CaptureAPI) handleSources(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	surfaces, err := api.capturer.Sources(r.Context())
	if err != nil {
		api.logger.Error("error listing capture sources", slog.Any("error", err))
		api.sendJSON(w, rating.Outcome{Success: false, Message: err.Error()})
		return
	}

	type surface struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	out := make([]surface, 0, len(surfaces))
	for _, s := range surfaces {
		out = append(out, surface{ID: s.ID, Name: s.Name})
	}
	api.sendJSON(w, out)
}

// handleScreenshot captures the configured game window. A missing window is
// reported as a failure outcome, not an HTTP error, so scanner clients can
// poll until the game is up.
func (api *CaptureAPI) handleScreenshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	img, err := api.capturer.Capture(r.Context(), capture.TitleMatcher(api.windowTitle))
	if err != nil {
		api.logger.Error("error capturing game window", slog.Any("error", err))
		api.sendJSON(w, rating.Outcome{Success: false, Message: err.Error()})
		return
	}
	if img == nil {
		api.sendJSON(w, rating.Outcome{Success: false, Message: "no window matching " + api.windowTitle + " found"})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		api.logger.Error("error encoding screenshot", slog.Any("error", err))
		api.sendJSON(w, rating.Outcome{Success: false, Message: err.Error()})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(buf.Bytes()); err != nil {
		api.logger.Error("error writing screenshot response", slog.Any("error", err))
	}
}

func (api *CaptureAPI) sendJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		api.logger.Error("error encoding response", slog.Any("error", err))
	}
}
