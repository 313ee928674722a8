package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/jinjor/wavesynth/src/theory"
)

// ----- Voice ----- //

// Voice describes one oscillator of a patch. Either Note or Freq sets the
// pitch; Note wins when both are present.
type Voice struct {
	Kind      WaveKind `json:"kind"`
	Note      string   `json:"note,omitempty"`
	Freq      float64  `json:"freq,omitempty"`
	Phase     float64  `json:"phase,omitempty"`
	Amp       *float64 `json:"amp,omitempty"` // nil means 1
	Range     *Range   `json:"range,omitempty"`
	Threshold float64  `json:"threshold,omitempty"`
}

// Osc builds the voice's oscillator, resolving note names through table.
func (v *Voice) Osc(table *theory.Table, sampleRate int) (*Osc, error) {
	p := DefaultOscParams()
	p.SampleRate = sampleRate
	p.Freq = v.Freq
	if v.Note != "" {
		f, err := table.Frequency(v.Note)
		if err != nil {
			return nil, invalid("note", v.Note, err.Error())
		}
		p.Freq = f
	}
	p.Phase = v.Phase
	if v.Amp != nil {
		p.Amp = *v.Amp
	}
	if v.Range != nil {
		// an explicit range is never the zero-value default
		if err := v.Range.validate(); err != nil {
			return nil, err
		}
		p.Range = *v.Range
	}
	p.Threshold = v.Threshold
	return NewOsc(v.Kind, p)
}

// ----- Patch ----- //

// Patch is a complete offline render description. Zero fields fall back to
// a Config.
type Patch struct {
	Name       string   `json:"name,omitempty"`
	SampleRate int      `json:"sampleRate,omitempty"`
	Duration   float64  `json:"duration,omitempty"` // seconds
	Volume     *float64 `json:"volume,omitempty"`
	Left       []Voice  `json:"left"`
	Right      []Voice  `json:"right,omitempty"` // empty renders mono
}

// LoadPatch reads a JSON patch file.
func LoadPatch(path string) (*Patch, error) {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := &Patch{}
	if err := json.Unmarshal(bytes, p); err != nil {
		return nil, fmt.Errorf("parsing patch %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = trimExt(filepath.Base(path))
	}
	return p, nil
}

// Save writes the patch as indented JSON.
func (p *Patch) Save(path string) error {
	bytes, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, append(bytes, '\n'), 0666)
}

// ApplyConfig fills unset fields from cfg.
func (p *Patch) ApplyConfig(cfg *Config) {
	if p.SampleRate == 0 {
		p.SampleRate = cfg.SampleRate
	}
	if p.Duration == 0 {
		p.Duration = cfg.Duration
	}
	if p.Volume == nil {
		v := cfg.Volume
		p.Volume = &v
	}
}

// Stereo reports whether the patch has a right channel.
func (p *Patch) Stereo() bool {
	return len(p.Right) > 0
}

// Samples returns the render length.
func (p *Patch) Samples() int {
	return SamplesFor(p.SampleRate, p.Duration)
}

// Build returns one mixer per channel; right is nil for mono patches.
func (p *Patch) Build(table *theory.Table) (left *Mixer, right *Mixer, err error) {
	if p.Duration < 0 {
		return nil, nil, invalid("duration", p.Duration, "must not be negative")
	}
	left, err = buildMixer(p.Left, table, p.SampleRate)
	if err != nil {
		return nil, nil, fmt.Errorf("left channel: %w", err)
	}
	if p.Stereo() {
		right, err = buildMixer(p.Right, table, p.SampleRate)
		if err != nil {
			return nil, nil, fmt.Errorf("right channel: %w", err)
		}
	}
	return left, right, nil
}

func buildMixer(voices []Voice, table *theory.Table, sampleRate int) (*Mixer, error) {
	oscs := make([]Oscillator, len(voices))
	for i := range voices {
		o, err := voices[i].Osc(table, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("voice %d: %w", i, err)
		}
		oscs[i] = o
	}
	return NewMixer(oscs...)
}

// Render builds and renders both channels. Channels render concurrently.
func (p *Patch) Render(ctx context.Context, table *theory.Table) (left []float64, right []float64, err error) {
	l, r, err := p.Build(table)
	if err != nil {
		return nil, nil, err
	}
	n := p.Samples()
	jobs := []Job{{Source: l, Samples: n}}
	if r != nil {
		jobs = append(jobs, Job{Source: r, Samples: n})
	}
	bufs, err := RenderBatch(ctx, jobs)
	if err != nil {
		return nil, nil, err
	}
	if r != nil {
		return bufs[0], bufs[1], nil
	}
	return bufs[0], nil, nil
}

// DefaultPatch is a C major chord over a low C: four voices, four seconds.
func DefaultPatch() *Patch {
	amp := func(v float64) *float64 { return &v }
	return &Patch{
		Name:     "prelude-one",
		Duration: 4,
		Volume:   amp(0.1),
		Left: []Voice{
			{Kind: WaveSine, Note: "c3"},
			{Kind: WaveTriangle, Note: "e3", Amp: amp(0.8)},
			{Kind: WaveSaw, Note: "g3", Amp: amp(0.6)},
			{Kind: WaveSquare, Note: "c2", Amp: amp(0.4)},
		},
	}
}

// ChordPatch voices the named chord over root with one oscillator per note.
func ChordPatch(table *theory.Table, root string, chord string, kind WaveKind) (*Patch, error) {
	rootFreq, err := table.Frequency(root)
	if err != nil {
		return nil, err
	}
	freqs, err := theory.ChordFrequencies(rootFreq, chord)
	if err != nil {
		return nil, err
	}
	voices := make([]Voice, len(freqs))
	for i, f := range freqs {
		voices[i] = Voice{Kind: kind, Freq: f}
	}
	return &Patch{Name: root + "-" + chord, Left: voices}, nil
}

// ----- Patch List ----- //

type patchMetaJSON struct {
	Name string `json:"name"`
}
type patchListJSON struct {
	Items []patchMetaJSON `json:"items"`
}

// PatchList reads dir/_list.json and returns the patch names in order.
func PatchList(dir string) ([]string, error) {
	bytes, err := ioutil.ReadFile(filepath.Join(dir, "_list.json"))
	if err != nil {
		return nil, err
	}
	var list patchListJSON
	if err := json.Unmarshal(bytes, &list); err != nil {
		return nil, err
	}
	names := make([]string, len(list.Items))
	for i, item := range list.Items {
		names[i] = item.Name
	}
	return names, nil
}

// LoadNamedPatch loads dir/<name>.json.
func LoadNamedPatch(dir string, name string) (*Patch, error) {
	return LoadPatch(filepath.Join(dir, name+".json"))
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
