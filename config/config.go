package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// RelPath is the config file location below the XDG config home.
const RelPath = "boxlabeler/config.json"

// Config holds runtime configuration for the labeler window and session.
// Fields are loaded from a JSON file; the command line only selects the folder.
type Config struct {
	Debug bool `json:"debug"`

	// Window and viewport
	WindowWidth  int     `json:"window_width"`
	WindowHeight int     `json:"window_height"`
	PanStep      float64 `json:"pan_step"`
	ShowHelp     bool    `json:"show_help"`

	// Annotation
	MinBoxSize     float64  `json:"min_box_size"`
	DefaultClasses []string `json:"default_classes"`

	// Folder scanning and decoding
	Extensions      []string `json:"extensions"`
	DecodeCacheSize int      `json:"decode_cache_size"`

	// Write data.yaml next to classes.txt whenever a class is added.
	WriteDatasetManifest bool `json:"write_dataset_manifest"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                false,
		WindowWidth:          1200,
		WindowHeight:         800,
		PanStep:              40,
		ShowHelp:             true,
		MinBoxSize:           3,
		DefaultClasses:       []string{"object"},
		Extensions:           []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"},
		DecodeCacheSize:      4,
		WriteDatasetManifest: false,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.WindowWidth < 400 {
		c.WindowWidth = 1200
	}
	if c.WindowHeight < 300 {
		c.WindowHeight = 800
	}
	if c.PanStep <= 0 {
		c.PanStep = 40
	}
	if c.MinBoxSize <= 0 {
		c.MinBoxSize = 3
	}
	if len(c.DefaultClasses) == 0 {
		c.DefaultClasses = []string{"object"}
	}
	if len(c.Extensions) == 0 {
		c.Extensions = DefaultConfig().Extensions
	}
	if c.DecodeCacheSize < 0 {
		c.DecodeCacheSize = 0
	}
	return nil
}

// DefaultPath returns the config file path under the user's XDG config
// directory, creating parent directories as needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(RelPath)
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
