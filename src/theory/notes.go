package theory

import (
	"fmt"
	"math"
	"sort"
)

// ----- Note Names ----- //

var noteLetters = [12]string{"c", "c+", "d", "d+", "e", "f", "f+", "g", "g+", "a", "a+", "b"}

// flat spellings of the black keys, indexed like noteLetters
var flatAliases = map[int]string{1: "d-", 3: "e-", 6: "g-", 8: "a-", 10: "b-"}

var letterSemitones = map[byte]int{'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11}

// Note is a parsed note name such as "c+4" or "b-2".
type Note struct {
	Letter     byte
	Accidental int // -1 flat, 0 natural, +1 sharp
	Octave     int
}

// ParseNote parses a name of the form letter (a-g), optional accidental
// ('+' sharp, '-' flat) and a single octave digit.
func ParseNote(name string) (Note, error) {
	if len(name) < 2 || len(name) > 3 {
		return Note{}, fmt.Errorf("invalid note name %q", name)
	}
	letter := name[0]
	if _, ok := letterSemitones[letter]; !ok {
		return Note{}, fmt.Errorf("invalid note letter in %q", name)
	}
	n := Note{Letter: letter}
	rest := name[1:]
	if len(rest) == 2 {
		switch rest[0] {
		case '+':
			n.Accidental = 1
		case '-':
			n.Accidental = -1
		default:
			return Note{}, fmt.Errorf("invalid accidental in %q", name)
		}
		rest = rest[1:]
	}
	if rest[0] < '0' || rest[0] > '9' {
		return Note{}, fmt.Errorf("invalid octave in %q", name)
	}
	n.Octave = int(rest[0] - '0')
	return n, nil
}

// Semitone returns the pitch class offset from c of the same octave.
// Flats of c are allowed and return -1.
func (n Note) Semitone() int {
	return letterSemitones[n.Letter] + n.Accidental
}

// MIDI returns the MIDI note number, c4 = 60.
func (n Note) MIDI() int {
	return (n.Octave+1)*12 + n.Semitone()
}

func (n Note) String() string {
	s := string(n.Letter)
	switch n.Accidental {
	case 1:
		s += "+"
	case -1:
		s += "-"
	}
	return fmt.Sprintf("%s%d", s, n.Octave)
}

// MIDINumber parses name and returns its MIDI note number.
func MIDINumber(name string) (int, error) {
	n, err := ParseNote(name)
	if err != nil {
		return 0, err
	}
	return n.MIDI(), nil
}

// ----- Frequency Table ----- //

// Table maps note names to frequencies in Hz. It is read-only after
// construction and safe to share.
type Table struct {
	freqs map[string]float64
}

// Frequencies builds a table by octave doubling: each octave starts at the
// current c and fills the other eleven semitones with equal temperament, until
// the next c reaches end. The last c is always included.
func Frequencies(start float64, end float64) (*Table, error) {
	if !(start > 0) || math.IsInf(start, 0) {
		return nil, fmt.Errorf("invalid start frequency %v: must be positive", start)
	}
	if !(end > start) || math.IsInf(end, 0) {
		return nil, fmt.Errorf("invalid end frequency %v: must be above %v", end, start)
	}
	t := &Table{freqs: make(map[string]float64)}
	current := start
	octave := 0
	for current < end {
		for i, letter := range noteLetters {
			f := current
			if i > 0 {
				f = current * math.Pow(2, float64(i)/12.0)
			}
			t.freqs[fmt.Sprintf("%s%d", letter, octave)] = f
			if alias, ok := flatAliases[i]; ok {
				t.freqs[fmt.Sprintf("%s%d", alias, octave)] = f
			}
		}
		current *= 2
		octave++
	}
	t.freqs[fmt.Sprintf("%s%d", noteLetters[0], octave)] = current
	return t, nil
}

// Default is the c0..c8 table used throughout the tools.
func Default() *Table {
	t, err := Frequencies(16.3516, 4186.0096)
	if err != nil {
		panic(err)
	}
	return t
}

// Frequency looks up a note name.
func (t *Table) Frequency(name string) (float64, error) {
	if _, err := ParseNote(name); err != nil {
		return 0, err
	}
	f, ok := t.freqs[name]
	if !ok {
		return 0, fmt.Errorf("note %q is out of table range", name)
	}
	return f, nil
}

// Names returns every note name in the table, ordered by frequency and then
// by name so that enharmonic aliases stay adjacent.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.freqs))
	for name := range t.freqs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		fi, fj := t.freqs[names[i]], t.freqs[names[j]]
		if fi != fj {
			return fi < fj
		}
		return names[i] < names[j]
	})
	return names
}

// Len returns the number of names, aliases included.
func (t *Table) Len() int {
	return len(t.freqs)
}
