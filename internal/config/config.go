// Package config provides configuration management functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Display names accepted by QLAB_DISPLAY
const (
	DisplayBrowser = "browser"
	DisplayWindow  = "window"
	DisplayFile    = "file"
)

// DefaultConfigFile is read from the working directory when QLAB_CONFIG is unset.
const DefaultConfigFile = "quantumlab.yaml"

var (
	// ErrUnknownDisplay is returned by Validate for a display that is not browser, window or file.
	ErrUnknownDisplay = errors.New("unknown display")
	// ErrUnknownFormat is returned by Validate for an image format other than svg or png.
	ErrUnknownFormat = errors.New("unknown image format")
)

// Config holds application configuration
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogPretty   bool   `yaml:"log_pretty"`
	Display     string `yaml:"display"`      // browser, window or file
	OutputDir   string `yaml:"output_dir"`   // Where the file display writes figures
	Format      string `yaml:"format"`       // svg or png
	DPI         int    `yaml:"dpi"`          // Pixels per inch used to size raster output and windows
	ViewerAddr  string `yaml:"viewer_addr"`  // Listen address of the browser viewer; port 0 lets the OS choose
	OpenBrowser bool   `yaml:"open_browser"` // Launch the system browser for the viewer
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		LogPretty:   true,
		Display:     DisplayBrowser,
		OutputDir:   ".",
		Format:      "svg",
		DPI:         100,
		ViewerAddr:  "localhost:0",
		OpenBrowser: true,
	}
}

// Load reads configuration in order: defaults, YAML file, .env, environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := Default()

	path := getEnv("QLAB_CONFIG", DefaultConfigFile)
	if _, err := os.Stat(path); err == nil {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	} else if os.Getenv("QLAB_CONFIG") != "" {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg.LogLevel = getEnv("QLAB_LOG_LEVEL", cfg.LogLevel)
	cfg.LogPretty = getEnvAsBool("QLAB_LOG_PRETTY", cfg.LogPretty)
	cfg.Display = strings.ToLower(getEnv("QLAB_DISPLAY", cfg.Display))
	cfg.OutputDir = getEnv("QLAB_OUTPUT_DIR", cfg.OutputDir)
	cfg.Format = strings.ToLower(getEnv("QLAB_FORMAT", cfg.Format))
	cfg.DPI = getEnvAsInt("QLAB_DPI", cfg.DPI)
	cfg.ViewerAddr = getEnv("QLAB_VIEWER_ADDR", cfg.ViewerAddr)
	cfg.OpenBrowser = getEnvAsBool("QLAB_OPEN_BROWSER", cfg.OpenBrowser)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeFile overlays the keys present in a YAML file onto c.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configured display, format and DPI are usable
func (c *Config) Validate() error {
	switch c.Display {
	case DisplayBrowser, DisplayWindow, DisplayFile:
	default:
		return fmt.Errorf("%w: %q (want browser, window or file)", ErrUnknownDisplay, c.Display)
	}

	switch c.Format {
	case "svg", "png":
	default:
		return fmt.Errorf("%w: %q (want svg or png)", ErrUnknownFormat, c.Format)
	}

	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.DPI)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
