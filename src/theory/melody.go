package theory

import "fmt"

// Melody maps scale degrees to MIDI note numbers.
type Melody struct {
	Root  int // MIDI note number of degree 1
	scale []int
}

// NewMelody builds a melody mapper over the named mode.
func NewMelody(root int, mode string) (*Melody, error) {
	scale, err := Mode(mode)
	if err != nil {
		return nil, err
	}
	if root < 0 || root > 127 {
		return nil, fmt.Errorf("root %d is out of MIDI range", root)
	}
	// drop the octave; degrees wrap instead
	return &Melody{Root: root, scale: scale[:len(scale)-1]}, nil
}

// Semitones returns the offset of a 1-based degree from the root. Degree 8 is
// the octave, 9 the second above it, and so on.
func (m *Melody) Semitones(degree int) (int, error) {
	if degree < 1 {
		return 0, fmt.Errorf("invalid degree %d", degree)
	}
	d := degree - 1
	steps := len(m.scale)
	return d/steps*12 + m.scale[d%steps], nil
}

// Notes converts degrees to MIDI note numbers.
func (m *Melody) Notes(degrees []int) ([]int, error) {
	notes := make([]int, len(degrees))
	for i, degree := range degrees {
		s, err := m.Semitones(degree)
		if err != nil {
			return nil, err
		}
		note := m.Root + s
		if note > 127 {
			return nil, fmt.Errorf("degree %d is above MIDI range", degree)
		}
		notes[i] = note
	}
	return notes, nil
}
