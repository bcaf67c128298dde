package capture

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Surface is one capturable window or screen region.
type Surface struct {
	ID   string
	Name string
}

// Capturer produces a screenshot of the first surface matching the
// predicate. A nil image with a nil error means no surface matched, which
// callers treat as "game not running" rather than a failure.
type Capturer interface {
	Sources(ctx context.Context) ([]Surface, error)
	Capture(ctx context.Context, match func(Surface) bool) (image.Image, error)
}

// TitleMatcher matches surfaces whose name contains the given substring,
// the way the game window is located by title.
func TitleMatcher(substring string) func(Surface) bool {
	return func(s Surface) bool {
		return strings.Contains(s.Name, substring)
	}
}

// FileCapturer serves surfaces from a directory of PNG files, one file per
// surface named after it. It backs tests and headless runs where no real
// window capture is available.
type FileCapturer struct {
	dir string
}

func NewFileCapturer(dir string) *FileCapturer {
	return &FileCapturer{dir: dir}
}

func (c *FileCapturer) Sources(_ context.Context) ([]Surface, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("error listing capture directory %s: %w", c.dir, err)
	}

	var surfaces []Surface
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".png")
		surfaces = append(surfaces, Surface{ID: entry.Name(), Name: name})
	}
	return surfaces, nil
}

func (c *FileCapturer) Capture(ctx context.Context, match func(Surface) bool) (image.Image, error) {
	surfaces, err := c.Sources(ctx)
	if err != nil {
		return nil, err
	}

	for _, surface := range surfaces {
		if !match(surface) {
			continue
		}
		f, err := os.Open(filepath.Join(c.dir, surface.ID))
		if err != nil {
			return nil, fmt.Errorf("error opening capture %s: %w", surface.ID, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("error decoding capture %s: %w", surface.ID, err)
		}
		return img, nil
	}

	return nil, nil
}
