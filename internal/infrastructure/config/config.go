// Package config loads the mapextract configuration document.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/jsonc"

	"github.com/0xcro3dile/mapextract/internal/domain/entities"
)

// DefaultFileName is looked up next to the executable when no path is given.
const DefaultFileName = "config.json"

var (
	// ErrNotFound is returned when the configuration file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrFormat is returned when the configuration cannot be parsed or is incomplete.
	ErrFormat = errors.New("improperly formatted configuration")
)

// LogsConfig controls whether the run log is written to disk.
type LogsConfig struct {
	Save bool   `json:"save"`
	Path string `json:"path" validate:"required_if=Save true"`
}

// RegionConfig is one named region; start and stop are [tileX, tileY, chunkX, chunkY].
type RegionConfig struct {
	Name  string `json:"name" validate:"required"`
	Start []int  `json:"start" validate:"len=4"`
	Stop  []int  `json:"stop" validate:"len=4"`
}

// Config is the configuration document.
type Config struct {
	Path       string         `json:"path" validate:"required"`
	OutputPath string         `json:"output_path" validate:"required"`
	Logs       LogsConfig     `json:"logs"`
	Regions    []RegionConfig `json:"regions" validate:"required,min=1,dive"`
}

// DefaultPath returns config.json in the directory of the running executable.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

// Load reads, parses and validates the configuration at path.
// Comments and trailing commas are accepted.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a JSONC configuration document and validates its structure.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required fields are present and corners have four values.
// It does not check that start lies before stop.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return nil
}

// RegionList converts the configured regions to domain regions, in order.
func (c *Config) RegionList() []entities.Region {
	regions := make([]entities.Region, len(c.Regions))
	for i, r := range c.Regions {
		regions[i] = entities.Region{
			Name:  r.Name,
			Start: corner(r.Start),
			Stop:  corner(r.Stop),
		}
	}
	return regions
}

func corner(v []int) entities.Corner {
	return entities.Corner{TileX: v[0], TileY: v[1], ChunkX: v[2], ChunkY: v[3]}
}
