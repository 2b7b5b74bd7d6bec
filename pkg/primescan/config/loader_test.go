package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestFromYAML tests YAML parsing.
func TestFromYAML(t *testing.T) {
	c, err := FromYAML([]byte(`
time_budget: 5m
batch_size: 1000
parallel: true
checkpoint_path: primes.db
`))
	require.NoError(t, err)

	assert.Equal(t, 1000, c.Int("batch_size", 0))
	assert.True(t, c.Bool("parallel", false))
	assert.Equal(t, "primes.db", c.String("checkpoint_path", ""))
}

// TestFromYAML_Invalid tests malformed YAML.
func TestFromYAML_Invalid(t *testing.T) {
	_, err := FromYAML([]byte("batch_size: [unclosed"))
	assert.Error(t, err)
}

// TestFromJSON tests JSON parsing.
func TestFromJSON(t *testing.T) {
	c, err := FromJSON([]byte(`{"target_count": 5000, "workers": 4}`))
	require.NoError(t, err)

	assert.Equal(t, 5000, c.Int("target_count", 0))
	assert.Equal(t, 4, c.Int("workers", 0))
}

// TestFromJSON_Invalid tests malformed JSON.
func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"target_count":`))
	assert.Error(t, err)
}

// TestFromFile tests extension-based dispatch.
func TestFromFile(t *testing.T) {
	t.Run("yaml extension", func(t *testing.T) {
		path := writeTempFile(t, "search.yaml", "batch_size: 500")
		c, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 500, c.Int("batch_size", 0))
	})

	t.Run("yml extension", func(t *testing.T) {
		path := writeTempFile(t, "search.yml", "workers: 2")
		c, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, c.Int("workers", 0))
	})

	t.Run("json extension", func(t *testing.T) {
		path := writeTempFile(t, "search.json", `{"parallel": true}`)
		c, err := FromFile(path)
		require.NoError(t, err)
		assert.True(t, c.Bool("parallel", false))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempFile(t, "search.toml", "batch_size = 500")
		_, err := FromFile(path)
		assert.ErrorContains(t, err, "unsupported config file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
