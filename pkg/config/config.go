// Package config handles loading wifescope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wifescope/wifescope/pkg/chart"
	"github.com/wifescope/wifescope/pkg/judge"
	"github.com/wifescope/wifescope/pkg/scoring"
	"github.com/wifescope/wifescope/pkg/wife"
)

// Config is the top-level configuration.
type Config struct {
	Scoring  ScoringConfig  `yaml:"scoring"`
	Timeline TimelineConfig `yaml:"timeline"`
	Storage  StorageConfig  `yaml:"storage"`
}

// ScoringConfig selects how replays are rescored.
type ScoringConfig struct {
	Judge  string `yaml:"judge"`
	Wife   string `yaml:"wife"`
	System string `yaml:"system"` // matching or naive
	Pre070 bool   `yaml:"pre_070"`
}

// TimelineConfig controls skill timeline calculation.
type TimelineConfig struct {
	Workers int `yaml:"workers"` // 0 means GOMAXPROCS
}

// StorageConfig selects where bare replay and score history keys are read
// from. Keys with an s3:// or gs:// scheme ignore Backend.
type StorageConfig struct {
	Backend  string    `yaml:"backend"` // local, s3 or gcs
	LocalDir string    `yaml:"local_dir"`
	MaxSize  string    `yaml:"max_size"` // e.g. "64 MB"; empty means unlimited
	S3       S3Config  `yaml:"s3"`
	GCS      GCSConfig `yaml:"gcs"`
}

// S3Config holds settings for S3 or an S3-compatible store like MinIO.
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// GCSConfig holds settings for Google Cloud Storage. Credentials come from
// Application Default Credentials.
type GCSConfig struct {
	Bucket string `yaml:"bucket"`
}

// DefaultConfig returns a Config with the settings Etterna itself uses.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Judge:  "J4",
			Wife:   "wife3",
			System: "matching",
		},
		Storage: StorageConfig{
			Backend:  "local",
			LocalDir: ".",
			MaxSize:  "64 MB",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every named judge, wife and scoring system exists.
func (c *Config) Validate() error {
	if _, err := judge.ByName(c.Scoring.Judge); err != nil {
		return err
	}
	if _, err := wife.ByName(c.Scoring.Wife); err != nil {
		return err
	}
	if _, err := scoring.ByName(c.Scoring.System); err != nil {
		return err
	}
	switch c.Storage.Backend {
	case "", "local", "s3", "gcs":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.MaxSize != "" {
		if _, err := chart.ParseFileSize(c.Storage.MaxSize); err != nil {
			return fmt.Errorf("storage max_size: %w", err)
		}
	}
	if c.Timeline.Workers < 0 {
		return fmt.Errorf("timeline workers must not be negative, got %d", c.Timeline.Workers)
	}
	return nil
}

// FindConfigFile looks for .wifescope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".wifescope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// CacheDir returns the directory remote replays are cached in,
// ~/.cache/wifescope/<bucket>.
func CacheDir(bucket string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "wifescope", bucketSlug(bucket))
}

// bucketSlug makes a bucket name safe to use as a single path component.
func bucketSlug(bucket string) string {
	if bucket == "" {
		return "_default"
	}
	return filepath.Base(filepath.Clean("/" + bucket))
}
