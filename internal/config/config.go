package config

import (
	"fmt"
	"os"
	"path/filepath"

	"font-previewer/internal/logger"
	"font-previewer/internal/models"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "font-previewer"
	configFileName = "config.yaml"
)

// Config is the persisted application state: the preview defaults restored on
// the next launch plus any extra font directories to load at startup.
type Config struct {
	SampleText      string   `yaml:"sample_text"`
	PreviewSize     int      `yaml:"preview_size"`
	Direction       string   `yaml:"direction"`
	WindowWidth     float32  `yaml:"window_width"`
	WindowHeight    float32  `yaml:"window_height"`
	FontDirectories []string `yaml:"font_directories,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		SampleText:  models.DefaultSampleText,
		PreviewSize: models.DefaultPreviewSize,
		// Direction stays empty here; startup auto-detects it from the
		// sample text when no explicit choice was saved.
		WindowWidth:  900,
		WindowHeight: 700,
	}
}

// Path returns the location of the config file in the user config directory.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// Load reads the config file, falling back to defaults when the file is
// missing or unreadable. Loaded values are normalized so the rest of the
// application never sees an out-of-range size or unknown direction.
func Load(log logger.Logger) Config {
	cfg := Default()

	path, err := Path()
	if err != nil {
		log.Warning("Config", "config path unavailable, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return cfg
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warning("Config", "config file unreadable, using defaults", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
		return cfg
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		log.Warning("Config", "config file malformed, using defaults", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return Default()
	}

	cfg.normalize()

	log.Debug("Config", "configuration loaded", map[string]interface{}{
		"path":      path,
		"size":      cfg.PreviewSize,
		"direction": cfg.Direction,
		"font_dirs": len(cfg.FontDirectories),
	})

	return cfg
}

// Save writes the config file, creating the directory if needed.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	if c.SampleText == "" {
		c.SampleText = models.DefaultSampleText
	}
	if c.PreviewSize == 0 {
		c.PreviewSize = models.DefaultPreviewSize
	}
	c.PreviewSize = models.ClampSize(c.PreviewSize)
	// An empty direction stays empty so startup can auto-detect from the
	// sample text.
	if c.Direction != "" {
		c.Direction = models.DirectionFromString(c.Direction).String()
	}
	if c.WindowWidth < 400 {
		c.WindowWidth = Default().WindowWidth
	}
	if c.WindowHeight < 300 {
		c.WindowHeight = Default().WindowHeight
	}
}
