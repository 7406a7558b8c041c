// Package config loads the viewer configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable that overrides DefaultPath.
const (
	EnvPath     = "MESH_CONFIG"
	DefaultPath = "./configs/meshview.yaml"
)

// Config holds all viewer settings
type Config struct {
	Window WindowConfig `yaml:"window"`
	Board  BoardConfig  `yaml:"board"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// BoardConfig names the board file to open
type BoardConfig struct {
	Path string `yaml:"path"`
}

// RenderConfig holds drawing settings
type RenderConfig struct {
	DrawBound    int     `yaml:"draw_bound"` // max steps from the viewer's region
	Outline      bool    `yaml:"outline"`
	OutlineWidth float64 `yaml:"outline_width"`
	Background   string  `yaml:"background"`
	Margin       float64 `yaml:"margin"` // pixels kept free around the table
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Render.DrawBound = 6
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// draw_bound: 0 is a valid request, so its default is set before decoding.
	cfg := Config{Render: RenderConfig{DrawBound: 6}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Render.DrawBound < 0 {
		return nil, fmt.Errorf("render.draw_bound must not be negative, got %d", cfg.Render.DrawBound)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// FromEnv loads the file named by MESH_CONFIG (or DefaultPath). A missing
// file yields the defaults; any other failure is returned.
func FromEnv() (*Config, string, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		path = DefaultPath
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), path, nil
	}
	return cfg, path, err
}

func (cfg *Config) applyDefaults() {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 1280
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 720
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Mesh-Sight"
	}
	if cfg.Board.Path == "" {
		cfg.Board.Path = "./boards/sudoku18.yaml"
	}
	if cfg.Render.OutlineWidth == 0 {
		cfg.Render.OutlineWidth = 1
	}
	if cfg.Render.Background == "" {
		cfg.Render.Background = "white"
	}
	if cfg.Render.Margin == 0 {
		cfg.Render.Margin = 16
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}
