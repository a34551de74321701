// Package poster downloads movie posters next to the notes that embed them.
package poster

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/lepinkainen/marquee/internal/config"
	"github.com/lepinkainen/marquee/internal/fileutil"
)

// AttachmentsDir is the folder under the note directory posters go to.
const AttachmentsDir = "attachments"

// Options describes one poster download.
type Options struct {
	// URL is the decoded PosterURL; "N/A" and "" mean there is no poster
	URL string
	// OutputDir is the note directory
	OutputDir string
	// Title names the file: "<Title> - poster.jpg"
	Title string
	// MaxWidth caps the saved width; 0 uses poster.max_width
	MaxWidth int
	// Update re-downloads an existing poster
	Update bool
	// HTTPClient defaults to a client with a 30s timeout
	HTTPClient *http.Client
}

// Result describes where the poster ended up.
type Result struct {
	// Downloaded is false when an existing file was kept
	Downloaded bool
	// LocalPath is the full path of the saved poster
	LocalPath string
	// RelativePath is relative to the note directory
	RelativePath string
	// Filename is the poster file name
	Filename string
}

// Filename returns the poster file name for title.
func Filename(title string) string {
	return fileutil.SanitizeFilename(title) + " - poster.jpg"
}

// Download fetches the poster at opts.URL, downscales it to the maximum
// width and saves it as JPEG. It returns nil, nil when there is no poster.
func Download(ctx context.Context, opts Options) (*Result, error) {
	if opts.URL == "" || opts.URL == "N/A" {
		return nil, nil
	}
	if opts.Title == "" {
		return nil, fmt.Errorf("poster title is empty")
	}

	filename := Filename(opts.Title)
	result := &Result{
		LocalPath:    filepath.Join(opts.OutputDir, AttachmentsDir, filename),
		RelativePath: filepath.Join(AttachmentsDir, filename),
		Filename:     filename,
	}

	if fileutil.FileExists(result.LocalPath) && !opts.Update {
		slog.Debug("Poster already exists, skipping download", "path", result.LocalPath)
		return result, nil
	}

	maxWidth := opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = config.PosterMaxWidth()
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	if err := downloadAndResize(ctx, client, opts.URL, result.LocalPath, maxWidth); err != nil {
		return nil, err
	}

	slog.Info("Downloaded poster", "path", result.LocalPath)
	result.Downloaded = true
	return result, nil
}

func downloadAndResize(ctx context.Context, client *http.Client, imageURL, savePath string, maxWidth int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create poster request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download poster: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d downloading poster from %s", resp.StatusCode, imageURL)
	}

	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode poster: %w", err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return fmt.Errorf("failed to create attachments directory: %w", err)
	}

	if err := imaging.Save(img, savePath, imaging.JPEGQuality(85)); err != nil {
		return fmt.Errorf("failed to save poster: %w", err)
	}
	return nil
}
