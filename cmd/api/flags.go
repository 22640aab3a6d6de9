package main

import (
	"flag"
	"strings"

	"transportcatalogue.dev/internal/config"
)

// parseFlags loads the YAML file named by -config, if any, and lets the
// remaining flags override it. Only flags given explicitly take effect.
func parseFlags(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("api", flag.ContinueOnError)

	var (
		configPath  string
		port        int
		env         string
		apiKeysFlag string
		document    string
		gtfsSource  string
	)
	fs.StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	fs.IntVar(&port, "port", config.DefaultPort, "API server port")
	fs.StringVar(&env, "env", config.DefaultEnv, "Environment (development|staging|production|test)")
	fs.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	fs.StringVar(&document, "document", "", "Path to a JSON request document to load stops and buses from")
	fs.StringVar(&gtfsSource, "gtfs", "", "Path or URL of a static GTFS zip file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Server.Port = port
		case "env":
			cfg.Server.Env = env
		case "api-keys":
			cfg.Server.APIKeys = splitKeys(apiKeysFlag)
		case "document":
			cfg.Data.Document = document
			cfg.Data.GTFS = ""
		case "gtfs":
			cfg.Data.GTFS = gtfsSource
			cfg.Data.Document = ""
		}
	})
	if len(cfg.Server.APIKeys) == 0 {
		cfg.Server.APIKeys = splitKeys(apiKeysFlag)
	}

	if err := config.Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func splitKeys(s string) []string {
	var keys []string
	for _, key := range strings.Split(s, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
