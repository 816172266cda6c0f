// Package config holds CLI run configuration, loaded from an optional
// YAML file with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all lattice CLI configuration.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Output     OutputConfig     `yaml:"output"`
}

// DataConfig holds dataset paths and split settings.
type DataConfig struct {
	TrainPath   string  `yaml:"train_path"`
	QueryPath   string  `yaml:"query_path"`
	LabelColumn string  `yaml:"label_column"`
	TestRatio   float64 `yaml:"test_ratio" validate:"gte=0,lt=1"`
	Seed        int64   `yaml:"seed"`
}

// ClassifierConfig holds classifier construction settings.
type ClassifierConfig struct {
	ConsistencyThreshold float64 `yaml:"consistency_threshold" validate:"gt=0,lte=1"`
	MinExtentSize        int     `yaml:"min_extent_size" validate:"gte=1"`
	CheckNumber          int     `yaml:"check_number" validate:"gte=1"`
	IntervalPolicy       string  `yaml:"interval_policy" validate:"oneof=basic lower-bounded upper-anchored"`
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Pretty bool `yaml:"pretty"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Data: DataConfig{
			LabelColumn: "label",
			TestRatio:   0.2,
			Seed:        1,
		},
		Classifier: ClassifierConfig{
			ConsistencyThreshold: 0.9,
			MinExtentSize:        2,
			CheckNumber:          1,
			IntervalPolicy:       "basic",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment variables, validated
// last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides config fields from LATTICE_* environment variables.
func applyEnv(cfg *Config) {
	cfg.Data.TrainPath = getenv("LATTICE_TRAIN_PATH", cfg.Data.TrainPath)
	cfg.Data.QueryPath = getenv("LATTICE_QUERY_PATH", cfg.Data.QueryPath)
	cfg.Data.LabelColumn = getenv("LATTICE_LABEL_COLUMN", cfg.Data.LabelColumn)
	cfg.Data.TestRatio = getenvFloat("LATTICE_TEST_RATIO", cfg.Data.TestRatio)
	cfg.Data.Seed = getenvInt64("LATTICE_SEED", cfg.Data.Seed)

	cfg.Classifier.ConsistencyThreshold = getenvFloat("LATTICE_CONSISTENCY_THRESHOLD", cfg.Classifier.ConsistencyThreshold)
	cfg.Classifier.MinExtentSize = getenvInt("LATTICE_MIN_EXTENT_SIZE", cfg.Classifier.MinExtentSize)
	cfg.Classifier.CheckNumber = getenvInt("LATTICE_CHECK_NUMBER", cfg.Classifier.CheckNumber)
	cfg.Classifier.IntervalPolicy = getenv("LATTICE_INTERVAL_POLICY", cfg.Classifier.IntervalPolicy)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
