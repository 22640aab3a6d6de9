package gtfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jamespfennell/gtfs"

	"transportcatalogue.dev/internal/catalogue"
	"transportcatalogue.dev/internal/logging"
)

var ErrDownloadFailed = errors.New("GTFS download failed")

func rawGtfsData(ctx context.Context, logger *slog.Logger, config Config) ([]byte, error) {
	if config.isLocalFile() {
		b, err := os.ReadFile(config.Source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}

	ctx, cancel := context.WithTimeout(ctx, config.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, config.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating GTFS request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer logging.SafeCloseWithLogging(resp.Body, logger, "gtfs_download")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %d", ErrDownloadFailed, config.Source, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}
	return b, nil
}

// Load reads and parses a static GTFS feed from a local file or a URL.
func Load(ctx context.Context, logger *slog.Logger, config Config) (*gtfs.Static, error) {
	start := time.Now()
	b, err := rawGtfsData(ctx, logger, config)
	if err != nil {
		return nil, err
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	logging.LogOperation(logger, "gtfs_static_loaded",
		slog.String("source", config.Source),
		slog.Bool("local_file", config.isLocalFile()),
		slog.Int("agencies_count", len(staticData.Agencies)),
		slog.Int("routes_count", len(staticData.Routes)),
		slog.Int("stops_count", len(staticData.Stops)),
		slog.Int("trips_count", len(staticData.Trips)),
		slog.Duration("duration", time.Since(start)))
	return staticData, nil
}

// LoadCatalogue loads a feed and imports it into a finalized catalogue.
func LoadCatalogue(ctx context.Context, logger *slog.Logger, config Config) (*catalogue.Finalized, error) {
	staticData, err := Load(ctx, logger, config)
	if err != nil {
		return nil, err
	}
	return Import(logger, staticData, config)
}
