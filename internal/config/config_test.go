package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.9, cfg.Classifier.ConsistencyThreshold)
	assert.Equal(t, 2, cfg.Classifier.MinExtentSize)
	assert.Equal(t, 1, cfg.Classifier.CheckNumber)
	assert.Equal(t, "basic", cfg.Classifier.IntervalPolicy)
	assert.Equal(t, "label", cfg.Data.LabelColumn)
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.yaml")
	content := `
data:
  train_path: train.csv
  label_column: class
  test_ratio: 0.3
classifier:
  consistency_threshold: 0.8
  min_extent_size: 3
  interval_policy: lower-bounded
output:
  pretty: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "train.csv", cfg.Data.TrainPath)
	assert.Equal(t, "class", cfg.Data.LabelColumn)
	assert.Equal(t, 0.3, cfg.Data.TestRatio)
	assert.Equal(t, 0.8, cfg.Classifier.ConsistencyThreshold)
	assert.Equal(t, 3, cfg.Classifier.MinExtentSize)
	assert.Equal(t, "lower-bounded", cfg.Classifier.IntervalPolicy)
	assert.True(t, cfg.Output.Pretty)
	// Untouched fields keep defaults.
	assert.Equal(t, 1, cfg.Classifier.CheckNumber)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.yaml")
	require.NoError(t, os.WriteFile(path, []byte("classifier:\n  check_number: 2\n"), 0o644))

	t.Setenv("LATTICE_CHECK_NUMBER", "5")
	t.Setenv("LATTICE_TRAIN_PATH", "env.csv")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Classifier.CheckNumber)
	assert.Equal(t, "env.csv", cfg.Data.TrainPath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"threshold above one": "classifier:\n  consistency_threshold: 1.5\n",
		"zero min extent":     "classifier:\n  min_extent_size: 0\n",
		"zero check number":   "classifier:\n  check_number: 0\n",
		"unknown policy":      "classifier:\n  interval_policy: widest\n",
		"test ratio at one":   "data:\n  test_ratio: 1.0\n",
		"negative test ratio": "data:\n  test_ratio: -0.1\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lattice.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
