package audio

// ----- Mixer ----- //

// Mixer averages a fixed set of oscillators ticked in lockstep. Relative
// loudness between voices is set by each oscillator's amplitude.
type Mixer struct {
	oscs []Oscillator
}

var _ Source = (*Mixer)(nil)

// NewMixer ...
func NewMixer(oscs ...Oscillator) (*Mixer, error) {
	if len(oscs) == 0 {
		return nil, invalid("oscillators", 0, "mixer needs at least one")
	}
	held := make([]Oscillator, len(oscs))
	for i, o := range oscs {
		if o == nil {
			return nil, invalid("oscillators", i, "nil oscillator")
		}
		held[i] = o
	}
	return &Mixer{oscs: held}, nil
}

// Len returns the number of voices.
func (m *Mixer) Len() int {
	return len(m.oscs)
}

// Start starts every voice in order.
func (m *Mixer) Start() {
	for _, o := range m.oscs {
		o.Start()
	}
}

// Next returns the mean of one tick of every voice.
func (m *Mixer) Next() (float64, error) {
	sum := 0.0
	for _, o := range m.oscs {
		v, err := o.Next()
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum / float64(len(m.oscs)), nil
}
