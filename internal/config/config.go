package config

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Interface   string
	Addr        string
	DBPath      string
	SessionPath string
	RefHost     string
	Interval    time.Duration
	WindowSize  int
	MockMode    bool
	Debug       bool
}

// Load parses command line flags and environment variables to populate Config.
// Flags take precedence over environment variables.
func Load() *Config {
	cfg := &Config{}

	// Defaults and Environment Variables
	cfg.Interface = getEnv("NETWATCH_INTERFACE", "wlan0")
	cfg.Addr = getEnv("NETWATCH_ADDR", ":8080")
	cfg.DBPath = getEnv("NETWATCH_DB", getDefaultDataPath("netwatch.db"))
	cfg.SessionPath = getEnv("NETWATCH_SESSION", getDefaultDataPath("last_active"))
	cfg.RefHost = getEnv("NETWATCH_REF_HOST", "1.1.1.1:443")
	cfg.MockMode = getEnvBool("NETWATCH_MOCK", false)
	intervalSec := getEnvInt("NETWATCH_INTERVAL", 5)
	cfg.WindowSize = getEnvInt("NETWATCH_WINDOW", 100)

	// Command Line Flags (Override Env)
	flag.StringVar(&cfg.Interface, "i", cfg.Interface, "Wireless interface to monitor")
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP server address")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite sample log")
	flag.StringVar(&cfg.SessionPath, "session-file", cfg.SessionPath, "Path to the last-active marker file")
	flag.StringVar(&cfg.RefHost, "ref-host", cfg.RefHost, "Reference host:port for reachability probes")
	flag.IntVar(&intervalSec, "interval", intervalSec, "Sampling interval in seconds")
	flag.IntVar(&cfg.WindowSize, "window", cfg.WindowSize, "In-memory sample window capacity")
	flag.BoolVar(&cfg.MockMode, "mock", cfg.MockMode, "Run with a simulated probe")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable verbose debug logging")

	flag.Parse()

	if intervalSec < 1 {
		intervalSec = 1
	}
	cfg.Interval = time.Duration(intervalSec) * time.Second

	if cfg.WindowSize < 1 {
		cfg.WindowSize = 100
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getDefaultDataPath returns a path under ~/.netwatch, creating the
// directory if needed. Falls back to the current directory.
func getDefaultDataPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: Could not get user home directory, using current dir: %v", err)
		return name
	}

	dir := filepath.Join(home, ".netwatch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Warning: Could not create .netwatch directory, using current dir: %v", err)
		return name
	}

	return filepath.Join(dir, name)
}
