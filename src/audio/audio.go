package audio

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// DefaultSampleRate is used when a patch or config does not name one.
	DefaultSampleRate = 44100
	bitDepth          = 16
	maxInt16          = 1<<15 - 1
	minInt16          = -1 << 15
)

// ----- Errors ----- //

// ValidationError reports a rejected parameter. The operation that returned
// it made no change.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value interface{}, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// StateError reports an operation called in the wrong lifecycle state.
type StateError struct {
	Op string
}

func (e *StateError) Error() string {
	return e.Op + " called before Start"
}

// ----- Wave Kind ----- //

// WaveKind tags an oscillator variant.
type WaveKind int

// Oscillator variants.
const (
	WaveSine WaveKind = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

var waveKindNames = map[WaveKind]string{
	WaveSine:     "sine",
	WaveSquare:   "square",
	WaveSaw:      "saw",
	WaveTriangle: "triangle",
}

func (k WaveKind) String() string {
	if s, ok := waveKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("WaveKind(%d)", int(k))
}

// ParseWaveKind accepts "sine", "square", "saw" (or "sawtooth") and
// "triangle", case-insensitively.
func ParseWaveKind(s string) (WaveKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "sawtooth" {
		return WaveSaw, nil
	}
	for k, name := range waveKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, invalid("kind", s, "unknown waveform")
}

// MarshalJSON ...
func (k WaveKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON ...
func (k *WaveKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := ParseWaveKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ----- Range ----- //

// Range is the output interval of an oscillator.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultRange is the canonical [-1, 1] interval.
var DefaultRange = Range{Min: -1, Max: 1}

func (r Range) isDefault() bool {
	return r == DefaultRange
}

func (r Range) validate() error {
	if !(r.Min < r.Max) {
		return invalid("range", r, "min must be less than max")
	}
	return nil
}

// squish maps val from [-1, 1] into [min, max].
func squish(val float64, min float64, max float64) float64 {
	return ((val+1)/2)*(max-min) + min
}
