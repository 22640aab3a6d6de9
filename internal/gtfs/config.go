package gtfs

import (
	"strings"
	"time"
)

const DefaultTimeout = 60 * time.Second

type Config struct {
	// Source is a local zip path or an http(s) URL.
	Source  string
	Timeout time.Duration
	// ShapeDistanceScale converts shape_dist_traveled values to meters.
	// Zero ignores them and falls back to great-circle distances.
	ShapeDistanceScale float64
}

func (config Config) isLocalFile() bool {
	return !strings.HasPrefix(config.Source, "http://") && !strings.HasPrefix(config.Source, "https://")
}

func (config Config) timeout() time.Duration {
	if config.Timeout <= 0 {
		return DefaultTimeout
	}
	return config.Timeout
}
