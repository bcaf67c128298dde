package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/relictools/relicrater/internal/capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureServer(t *testing.T, windowTitle string) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	for _, name := range []string{"Honkai: Star Rail.png", "Some Other Window.png"} {
		f, err := os.Create(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))))
		require.NoError(t, f.Close())
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := NewCaptureAPI(logger, capture.NewFileCapturer(dir), windowTitle)
	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCaptureSourcesEndpoint(t *testing.T) {
	srv := captureServer(t, "Star Rail")

	resp, err := http.Get(srv.URL + "/api/capture/sources")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var surfaces []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&surfaces))
	require.Len(t, surfaces, 2)

	names := []string{surfaces[0]["name"].(string), surfaces[1]["name"].(string)}
	assert.Contains(t, names, "Honkai: Star Rail")
}

func TestCaptureScreenshotEndpoint(t *testing.T) {
	srv := captureServer(t, "Star Rail")

	resp, err := http.Get(srv.URL + "/api/capture/screenshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestCaptureScreenshotNoMatchingWindow(t *testing.T) {
	srv := captureServer(t, "Genshin Impact")

	resp, err := http.Get(srv.URL + "/api/capture/screenshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, false, out["success"])
}
