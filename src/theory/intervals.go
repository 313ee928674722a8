package theory

import (
	"fmt"
	"math"
	"sort"
)

// Semitone intervals. Each line pairs enharmonic names.
const (
	P1, D2       = 0, 0 // unison / diminished 2nd
	Mi2, A1      = 1, 1
	M2, D3       = 2, 2
	Mi3, A2      = 3, 3
	M3, D4       = 4, 4
	P4, A3       = 5, 5
	A4, D5       = 6, 6
	P5, D6       = 7, 7
	Mi6, A5      = 8, 8
	M6, D7       = 9, 9
	Mi7, A6      = 10, 10
	M7, D8       = 11, 11
	P8, A7, D9   = 12, 12, 12 // octave
	Mi9, A8      = 13, 13
	M9, D10      = 14, 14
	Mi10, A9     = 15, 15
	M10, D11     = 16, 16
	P11, A10     = 17, 17
	D12, A11     = 18, 18
	P12, D13     = 19, 19 // tritave
	Mi13, A12    = 20, 20
	M13, D14     = 21, 21
	Mi14, A13    = 22, 22
	M14, D15     = 23, 23
	P15, A14     = 24, 24 // double octave
	A15          = 25
)

// IntervalFrequency returns the frequency semitones above root.
func IntervalFrequency(root float64, semitones int) float64 {
	switch semitones {
	case 0:
		return root
	case 12:
		return root * 2
	}
	return root * math.Pow(2, float64(semitones)/12.0)
}

func frequencies(root float64, intervals []int) []float64 {
	out := make([]float64, len(intervals))
	for i, interval := range intervals {
		out[i] = IntervalFrequency(root, interval)
	}
	return out
}

// ----- Scales ----- //

// Scales as semitone offsets from the root, octave included.
var (
	MajorHept    = []int{P1, M2, M3, P4, P5, M6, M7, P8}
	NatMinorHept = []int{P1, M2, Mi3, P4, P5, Mi6, Mi7, P8}
	MajorPent    = []int{P1, M2, M3, P4, M6, P8}
	MinorPent    = []int{P1, Mi3, P4, P5, Mi7, P8}
)

// ----- Modes ----- //

// a mode is a set of per-degree semitone adjustments to the major scale
var modes = map[string]map[int]int{
	"ionian":     {},
	"dorian":     {2: -1, 6: -1},
	"phrygian":   {1: -1, 2: -1, 5: -1, 6: -1},
	"lydian":     {3: 1},
	"mixolydian": {6: -1},
	"aeolian":    {2: -1, 5: -1, 6: -1},
	"locrian":    {1: -1, 2: -1, 4: -1, 5: -1, 6: -1},
}

var modeAliases = map[string]string{
	"major": "ionian",
	"minor": "aeolian",
}

// Mode returns the heptatonic scale of the named mode. The result is a fresh
// slice; MajorHept is never modified.
func Mode(name string) ([]int, error) {
	if alias, ok := modeAliases[name]; ok {
		name = alias
	}
	adjust, ok := modes[name]
	if !ok {
		return nil, fmt.Errorf("unknown mode %q", name)
	}
	scale := make([]int, len(MajorHept))
	copy(scale, MajorHept)
	for degree, delta := range adjust {
		scale[degree] += delta
	}
	return scale, nil
}

// ModeNames lists the accepted mode names, aliases included.
func ModeNames() []string {
	names := make([]string, 0, len(modes)+len(modeAliases))
	for name := range modes {
		names = append(names, name)
	}
	for name := range modeAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScaleFrequencies returns the eight frequencies of the mode starting at root.
func ScaleFrequencies(root float64, mode string) ([]float64, error) {
	scale, err := Mode(mode)
	if err != nil {
		return nil, err
	}
	return frequencies(root, scale), nil
}

// ----- Chords ----- //

var chords = map[string][]int{
	"major":                 {P1, M3, P5},
	"minor":                 {P1, Mi3, P5},
	"augmented":             {P1, M3, A5},
	"diminished":            {P1, Mi3, D5},
	"major-sixth":           {P1, M3, P5, M6},
	"minor-sixth":           {P1, Mi3, P5, M6},
	"major-six-over-nine":   {P1, M3, P5, M6, M9},
	"major-seventh":         {P1, M3, P5, M7},
	"minor-seventh":         {P1, Mi3, P5, Mi7},
	"dominant-seven":        {P1, M3, P5, Mi7},
	"minor-major-seventh":   {P1, Mi3, P5, M7},
	"diminished-seventh":    {P1, Mi3, D5, D7},
	"half-diminished-seven": {P1, Mi3, D5, Mi7},
	"augmented-seven":       {P1, M3, A5, Mi7},
	"major-ninth":           {P1, M3, P5, M7, M9},
	"minor-ninth":           {P1, Mi3, P5, Mi7, M9},
	"dominant-nine":         {P1, M3, P5, Mi7, M9},
	"major-eleventh":        {P1, M3, P5, M7, M9, P11},
	"minor-eleventh":        {P1, Mi3, P5, Mi7, M9, P11},
	"dominant-eleven":       {P1, M3, P5, Mi7, M9, P11},
	"major-thirteenth":      {P1, M3, P5, M7, M9, P11, M13},
	"minor-thirteenth":      {P1, Mi3, P5, Mi7, M9, P11, M13},
	"dominant-thirteen":     {P1, M3, P5, Mi7, M9, P11, M13},
	"sus-two":               {P1, M2, P5},
	"sus-four":              {P1, P4, P5},
	"seven-sus-four":        {P1, P4, P5, Mi7},
	"add-nine":              {P1, M3, P5, M9},
	"add-eleven":            {P1, M3, P5, P11},
}

// Chord returns a copy of the named chord's intervals.
func Chord(name string) ([]int, error) {
	intervals, ok := chords[name]
	if !ok {
		return nil, fmt.Errorf("unknown chord %q", name)
	}
	out := make([]int, len(intervals))
	copy(out, intervals)
	return out, nil
}

// ChordNames lists the chord table in sorted order.
func ChordNames() []string {
	names := make([]string, 0, len(chords))
	for name := range chords {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChordFrequencies returns the frequencies of the named chord over root.
func ChordFrequencies(root float64, chord string) ([]float64, error) {
	intervals, err := Chord(chord)
	if err != nil {
		return nil, err
	}
	return frequencies(root, intervals), nil
}
