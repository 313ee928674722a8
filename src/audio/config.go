package audio

import (
	"os"
	"strconv"
)

// Config holds render defaults that patches may override.
type Config struct {
	SampleRate int
	Volume     float64 // output amplitude, 0..1
	Duration   float64 // seconds
}

// DefaultConfig ...
func DefaultConfig() *Config {
	return &Config{
		SampleRate: DefaultSampleRate,
		Volume:     0.1,
		Duration:   4,
	}
}

// LoadConfig reads overrides from the environment. Malformed values are
// ignored.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if sampleRate := os.Getenv("WAVESYNTH_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("WAVESYNTH_OUTPUT_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	if duration := os.Getenv("WAVESYNTH_DURATION"); duration != "" {
		if val, err := strconv.ParseFloat(duration, 64); err == nil && val > 0 {
			cfg.Duration = val
		}
	}

	return cfg
}
