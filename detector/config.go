package detector

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/saxbitmap/bitmap"
	"github.com/arloliu/saxbitmap/errs"
	"github.com/arloliu/saxbitmap/sax"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultWordSize         = sax.DefaultWordSize
	DefaultWindowFactor     = 100
	DefaultLeadWindowFactor = 3
	DefaultLagWindowFactor  = 30
	DefaultRecursionLevel   = 2
	DefaultAlphabetSize     = sax.DefaultAlphabetSize
)

// MaxWindowCapacity bounds the lead and lag window capacities.
const MaxWindowCapacity = 1 << 26

// Config holds the detector parameters.
//
// The window sizes derive from the factors:
//
//	WindowSize   = WordSize × WindowFactor        (samples per SAX word)
//	LeadCapacity = LeadWindowFactor × WindowSize
//	LagCapacity  = LagWindowFactor × WindowSize
//
// The same alphabet is used for SAX encoding and for subword counting, and
// AlphabetSize^RecursionLevel must be a perfect square so the subword counts
// fit a square bitmap.
type Config struct {
	WordSize             int  `yaml:"word_size" json:"word_size"`
	WindowFactor         int  `yaml:"window_factor" json:"window_factor"`
	LeadWindowFactor     int  `yaml:"lead_window_factor" json:"lead_window_factor"`
	LagWindowFactor      int  `yaml:"lag_window_factor" json:"lag_window_factor"`
	RecursionLevel       int  `yaml:"recursion_level" json:"recursion_level"`
	AlphabetSize         int  `yaml:"alphabet_size" json:"alphabet_size"`
	ZeroVarianceFallback bool `yaml:"zero_variance_fallback" json:"zero_variance_fallback"`
}

// DefaultConfig returns the default parameters: 10-symbol words over a 4-letter
// alphabet, 1000-sample features, a 3000-sample lead window, a 30000-sample lag
// window and 2-symbol subwords (4×4 bitmaps).
func DefaultConfig() Config {
	return Config{
		WordSize:         DefaultWordSize,
		WindowFactor:     DefaultWindowFactor,
		LeadWindowFactor: DefaultLeadWindowFactor,
		LagWindowFactor:  DefaultLagWindowFactor,
		RecursionLevel:   DefaultRecursionLevel,
		AlphabetSize:     DefaultAlphabetSize,
	}
}

// WindowSize returns the number of samples encoded into one SAX word.
func (c Config) WindowSize() int {
	return c.WordSize * c.WindowFactor
}

// LeadCapacity returns the lead window capacity.
func (c Config) LeadCapacity() int {
	return c.LeadWindowFactor * c.WindowSize()
}

// LagCapacity returns the lag window capacity.
func (c Config) LagCapacity() int {
	return c.LagWindowFactor * c.WindowSize()
}

// UniverseSize returns the number of samples needed before the first analysis.
func (c Config) UniverseSize() int {
	return c.LeadCapacity() + c.LagCapacity()
}

// BitmapSide returns the side of the bitmaps produced with this configuration.
// It is only meaningful for a valid configuration.
func (c Config) BitmapSide() int {
	side, _ := bitmap.ValidateShape(c.AlphabetSize, c.RecursionLevel)
	return side
}

// Validate checks the configuration.
//
// Every returned error wraps errs.ErrInvalidConfig; alphabet and bitmap shape
// problems additionally wrap errs.ErrInvalidAlphabetSize, errs.ErrNonSquareBitmap
// or errs.ErrTooManyCombinations.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"word_size", c.WordSize},
		{"window_factor", c.WindowFactor},
		{"lead_window_factor", c.LeadWindowFactor},
		{"lag_window_factor", c.LagWindowFactor},
		{"recursion_level", c.RecursionLevel},
	}
	for _, p := range positive {
		if p.value < 1 {
			return fmt.Errorf("%w: %s must be positive, got %d", errs.ErrInvalidConfig, p.name, p.value)
		}
	}

	windowSize := c.WordSize * c.WindowFactor
	if windowSize/c.WindowFactor != c.WordSize ||
		windowSize > MaxWindowCapacity/c.LeadWindowFactor ||
		windowSize > MaxWindowCapacity/c.LagWindowFactor {
		return fmt.Errorf("%w: window capacities exceed %d samples", errs.ErrInvalidConfig, MaxWindowCapacity)
	}

	if _, err := sax.NewAlphabet(c.AlphabetSize); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}
	if _, err := bitmap.ValidateShape(c.AlphabetSize, c.RecursionLevel); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	return nil
}

// ParseConfig decodes a YAML document into a Config.
//
// Fields missing from the document keep their DefaultConfig values; unknown
// fields are rejected. The result is validated.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// YAML encodes the configuration in the format accepted by ParseConfig.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
