package audio

import (
	"math"
)

// ----- OSC Params ----- //

// OscParams are the initial values an oscillator restarts from.
type OscParams struct {
	Freq       float64 // Hz, > 0
	Phase      float64 // degrees
	Amp        float64
	SampleRate int
	Range      Range   // zero value means DefaultRange
	Threshold  float64 // square only
}

// DefaultOscParams returns 440 Hz at unity gain, 44.1 kHz, [-1, 1].
func DefaultOscParams() OscParams {
	return OscParams{
		Freq:       440,
		Amp:        1,
		SampleRate: DefaultSampleRate,
		Range:      DefaultRange,
	}
}

func (p *OscParams) validate() error {
	if p.Range == (Range{}) {
		p.Range = DefaultRange
	}
	if !(p.Freq > 0) {
		return invalid("frequency", p.Freq, "must be positive")
	}
	if p.SampleRate <= 0 {
		return invalid("sample rate", p.SampleRate, "must be positive")
	}
	return p.Range.validate()
}

// ----- Steppers ----- //

// radialStepper advances a position in radians. Shared by sine and square.
type radialStepper struct {
	step   float64 // radians per sample
	offset float64 // phase in radians
	pos    float64
}

func (r *radialStepper) setFreq(freq float64, sampleRate int) {
	r.step = 2 * math.Pi * freq / float64(sampleRate)
}

func (r *radialStepper) setPhase(degrees float64) {
	r.offset = degrees / 360 * 2 * math.Pi
}

func (r *radialStepper) reset() {
	r.pos = 0
}

func (r *radialStepper) next() float64 {
	v := math.Sin(r.pos + r.offset)
	r.pos += r.step
	return v
}

// periodStepper counts whole samples against a period length. Shared by saw
// and triangle.
type periodStepper struct {
	period float64 // samples
	offset float64 // samples
	tick   int64
}

func (p *periodStepper) setFreq(freq float64, sampleRate int) {
	p.period = float64(sampleRate) / freq
}

// setPhase depends on the period, so it follows every setFreq.
func (p *periodStepper) setPhase(degrees float64) {
	p.offset = (degrees + 90) / 360 * p.period
}

func (p *periodStepper) reset() {
	p.tick = 0
}

// next returns the raw sawtooth value in [-1, 1].
func (p *periodStepper) next() float64 {
	div := (float64(p.tick) + p.offset) / p.period
	p.tick++
	return 2 * (div - math.Round(div))
}

// ----- OSC ----- //

// Source produces one sample per tick after Start.
type Source interface {
	Start()
	Next() (float64, error)
}

// Oscillator is a restartable periodic signal generator.
type Oscillator interface {
	Source
	SetFrequency(hz float64) error
	SetAmplitude(gain float64)
	SetPhase(degrees float64)
}

// Osc implements every waveform; kind selects the variant.
type Osc struct {
	kind    WaveKind
	initial OscParams
	freq    float64
	amp     float64
	phase   float64
	started bool
	radial  radialStepper
	period  periodStepper
}

var _ Oscillator = (*Osc)(nil)

// NewOsc validates p and returns an oscillator of the given kind. It must be
// started before the first Next.
func NewOsc(kind WaveKind, p OscParams) (*Osc, error) {
	if _, ok := waveKindNames[kind]; !ok {
		return nil, invalid("kind", kind, "unknown waveform")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Osc{kind: kind, initial: p}, nil
}

// NewSine ...
func NewSine(p OscParams) (*Osc, error) { return NewOsc(WaveSine, p) }

// NewSquare ...
func NewSquare(p OscParams) (*Osc, error) { return NewOsc(WaveSquare, p) }

// NewSaw ...
func NewSaw(p OscParams) (*Osc, error) { return NewOsc(WaveSaw, p) }

// NewTriangle ...
func NewTriangle(p OscParams) (*Osc, error) { return NewOsc(WaveTriangle, p) }

// Kind ...
func (o *Osc) Kind() WaveKind { return o.kind }

// Params returns the values Start restores.
func (o *Osc) Params() OscParams { return o.initial }

// Frequency returns the working frequency.
func (o *Osc) Frequency() float64 {
	if !o.started {
		return o.initial.Freq
	}
	return o.freq
}

// Start resets the oscillator to its initial parameters at tick 0.
func (o *Osc) Start() {
	o.started = true
	o.radial.reset()
	o.period.reset()
	o.applyFreq(o.initial.Freq)
	o.applyPhase(o.initial.Phase)
	o.amp = o.initial.Amp
}

// SetFrequency changes the working frequency, or the initial one when the
// oscillator has not been started yet.
func (o *Osc) SetFrequency(hz float64) error {
	if !(hz > 0) {
		return invalid("frequency", hz, "must be positive")
	}
	if !o.started {
		o.initial.Freq = hz
		return nil
	}
	o.applyFreq(hz)
	return nil
}

// SetAmplitude ...
func (o *Osc) SetAmplitude(gain float64) {
	if !o.started {
		o.initial.Amp = gain
		return
	}
	o.amp = gain
}

// SetPhase ...
func (o *Osc) SetPhase(degrees float64) {
	if !o.started {
		o.initial.Phase = degrees
		return
	}
	o.applyPhase(degrees)
}

func (o *Osc) applyFreq(hz float64) {
	o.freq = hz
	switch o.kind {
	case WaveSine, WaveSquare:
		o.radial.setFreq(hz, o.initial.SampleRate)
	case WaveSaw, WaveTriangle:
		o.period.setFreq(hz, o.initial.SampleRate)
		o.period.setPhase(o.phase)
	}
}

func (o *Osc) applyPhase(degrees float64) {
	o.phase = degrees
	switch o.kind {
	case WaveSine, WaveSquare:
		o.radial.setPhase(degrees)
	case WaveSaw, WaveTriangle:
		o.period.setPhase(degrees)
	}
}

// Next advances one tick and returns the sample scaled by the amplitude.
func (o *Osc) Next() (float64, error) {
	if !o.started {
		return 0, &StateError{Op: "Next"}
	}
	rng := o.initial.Range
	value := 0.0
	switch o.kind {
	case WaveSine:
		value = o.radial.next()
	case WaveSquare:
		// compared before any remap, output is always an endpoint
		if o.radial.next() < o.initial.Threshold {
			return rng.Min * o.amp, nil
		}
		return rng.Max * o.amp, nil
	case WaveSaw:
		value = o.period.next()
	case WaveTriangle:
		value = (math.Abs(o.period.next()) - 0.5) * 2
	}
	if !rng.isDefault() {
		value = squish(value, rng.Min, rng.Max)
	}
	return value * o.amp, nil
}
