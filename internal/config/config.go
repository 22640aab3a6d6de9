// Package config loads the YAML configuration shared by the command line
// tools and the HTTP server.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"transportcatalogue.dev/internal/renderer"
	"transportcatalogue.dev/internal/router"
)

const (
	DefaultPort        = 4000
	DefaultEnv         = "development"
	DefaultRateLimit   = 100
	DefaultBusWaitTime = 6
	DefaultBusVelocity = 40
	metersPerKilometer = 1000
	minutesPerHour     = 60
)

type Config struct {
	Server  ServerConfig      `yaml:"server"`
	Routing RoutingSettings   `yaml:"routing"`
	Render  renderer.Settings `yaml:"render"`
	Data    DataConfig        `yaml:"data"`
}

type ServerConfig struct {
	Port    int      `yaml:"port" validate:"gte=0,lte=65535"`
	Env     string   `yaml:"env" validate:"oneof=development staging production test"`
	APIKeys []string `yaml:"apiKeys"`
	// RateLimit is the number of requests per second allowed for each API key.
	RateLimit int    `yaml:"rateLimit" validate:"gte=0"`
	LogLevel  string `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
}

// RoutingSettings are expressed the way riders think about them: wait time
// in minutes and velocity in km/h.
type RoutingSettings struct {
	BusWaitTime float64 `json:"bus_wait_time" yaml:"bus_wait_time" validate:"gte=0"`
	BusVelocity float64 `json:"bus_velocity" yaml:"bus_velocity" validate:"gt=0"`
}

// ToRouterSettings converts the velocity to meters per minute.
func (s RoutingSettings) ToRouterSettings() router.Settings {
	return router.Settings{
		BusWaitTime: s.BusWaitTime,
		BusVelocity: s.BusVelocity * metersPerKilometer / minutesPerHour,
	}
}

// DataConfig points at the network to load. Document is a JSON request
// document; GTFS is a static feed given as a file path or an http(s) URL.
type DataConfig struct {
	Document string `yaml:"document"`
	GTFS     string `yaml:"gtfs"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Env == "" {
		c.Server.Env = DefaultEnv
	}
	if c.Server.RateLimit == 0 {
		c.Server.RateLimit = DefaultRateLimit
	}
	if c.Routing == (RoutingSettings{}) {
		c.Routing = RoutingSettings{BusWaitTime: DefaultBusWaitTime, BusVelocity: DefaultBusVelocity}
	}
	if len(c.Render.ColorPalette) == 0 && c.Render.Width == 0 && c.Render.Height == 0 {
		c.Render = renderer.DefaultSettings()
	}
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads the configuration at path. Relative data paths are taken to be
// relative to the directory of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	cfg.Data.resolve(filepath.Dir(path))
	return cfg, nil
}

func (d *DataConfig) resolve(dir string) {
	if d.Document != "" && !filepath.IsAbs(d.Document) {
		d.Document = filepath.Join(dir, d.Document)
	}
	if d.GTFS != "" && !isURL(d.GTFS) && !filepath.IsAbs(d.GTFS) {
		d.GTFS = filepath.Join(dir, d.GTFS)
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

var validate = validator.New()

// Validate checks every section, including render and routing settings read
// from a request document.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LogLevel maps the configured level name to a slog level. Development
// defaults to debug, everything else to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Server.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if c.Server.Env == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
