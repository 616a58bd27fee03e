package detector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/saxbitmap/errs"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	require.Equal(t, 10, cfg.WordSize)
	require.Equal(t, 4, cfg.AlphabetSize)
	require.Equal(t, 1000, cfg.WindowSize())
	require.Equal(t, 3000, cfg.LeadCapacity())
	require.Equal(t, 30000, cfg.LagCapacity())
	require.Equal(t, 33000, cfg.UniverseSize())
	require.Equal(t, 4, cfg.BitmapSide())
	require.False(t, cfg.ZeroVarianceFallback)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero word size", func(c *Config) { c.WordSize = 0 }, errs.ErrInvalidConfig},
		{"negative window factor", func(c *Config) { c.WindowFactor = -1 }, errs.ErrInvalidConfig},
		{"zero lead factor", func(c *Config) { c.LeadWindowFactor = 0 }, errs.ErrInvalidConfig},
		{"zero lag factor", func(c *Config) { c.LagWindowFactor = 0 }, errs.ErrInvalidConfig},
		{"zero recursion level", func(c *Config) { c.RecursionLevel = 0 }, errs.ErrInvalidConfig},
		{"alphabet too small", func(c *Config) { c.AlphabetSize = 1 }, errs.ErrInvalidAlphabetSize},
		{"alphabet too large", func(c *Config) { c.AlphabetSize = 53 }, errs.ErrInvalidAlphabetSize},
		{"non-square bitmap", func(c *Config) { c.AlphabetSize = 3; c.RecursionLevel = 1 }, errs.ErrNonSquareBitmap},
		{"odd recursion", func(c *Config) { c.RecursionLevel = 3; c.AlphabetSize = 2 }, errs.ErrNonSquareBitmap},
		{"windows too large", func(c *Config) { c.WindowFactor = 1 << 20; c.LagWindowFactor = 1 << 10 }, errs.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, errs.ErrInvalidConfig)
		})
	}

	t.Run("valid shapes", func(t *testing.T) {
		for _, shape := range [][2]int{{2, 2}, {3, 2}, {4, 1}, {4, 2}, {9, 1}, {16, 1}} {
			cfg := DefaultConfig()
			cfg.AlphabetSize, cfg.RecursionLevel = shape[0], shape[1]
			require.NoError(t, cfg.Validate(), "alphabet=%d recursion=%d", shape[0], shape[1])
		}
	})
}

func TestParseConfig(t *testing.T) {
	t.Run("partial document keeps defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("word_size: 8\nlag_window_factor: 10\nzero_variance_fallback: true\n"))
		require.NoError(t, err)

		want := DefaultConfig()
		want.WordSize = 8
		want.LagWindowFactor = 10
		want.ZeroVarianceFallback = true
		require.Equal(t, want, cfg)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := ParseConfig(nil)
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := ParseConfig([]byte("word_sise: 8\n"))
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseConfig([]byte("word_size: [1, 2\n"))
		require.ErrorIs(t, err, errs.ErrInvalidConfig)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := ParseConfig([]byte("alphabet_size: 3\nrecursion_level: 3\n"))
		require.ErrorIs(t, err, errs.ErrNonSquareBitmap)
	})
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WordSize = 6
	cfg.WindowFactor = 7
	cfg.AlphabetSize = 9
	cfg.RecursionLevel = 1
	cfg.ZeroVarianceFallback = true

	data, err := cfg.YAML()
	require.NoError(t, err)
	require.Contains(t, string(data), "alphabet_size: 9")

	parsed, err := ParseConfig(data)
	require.NoError(t, err)
	require.Equal(t, cfg, parsed)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "detector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window_factor: 20\nlead_window_factor: 2\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.WindowFactor)
	require.Equal(t, 2, cfg.LeadWindowFactor)
	require.Equal(t, DefaultLagWindowFactor, cfg.LagWindowFactor)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
