package audio

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/jinjor/wavesynth/src/theory"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	expectNoError(t, ioutil.WriteFile(path, []byte(content), 0666))
}

const stereoPatchJSON = `{
  "sampleRate": 8000,
  "duration": 0.25,
  "volume": 0.5,
  "left": [
    {"kind": "sine", "note": "a4"},
    {"kind": "square", "freq": 220, "amp": 0.4, "threshold": 0.2}
  ],
  "right": [
    {"kind": "sawtooth", "freq": 110, "phase": 45, "range": {"min": 0, "max": 1}}
  ]
}`

func TestLoadPatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duo.json")
	writeFile(t, path, stereoPatchJSON)

	p, err := LoadPatch(path)
	expectNoError(t, err)
	expectEqual(t, p.Name, "duo")
	expectEqual(t, p.SampleRate, 8000)
	expectEqual(t, p.Samples(), 2000)
	expectEqual(t, *p.Volume, 0.5)
	expectEqual(t, len(p.Left), 2)
	expectEqual(t, p.Left[1].Kind, WaveSquare)
	expectEqual(t, *p.Left[1].Amp, 0.4)
	expectEqual(t, p.Right[0].Kind, WaveSaw)
	expectEqual(t, p.Right[0].Range.Max, 1.0)
	expectEqual(t, p.Stereo(), true)
}

func TestLoadPatchErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadPatch(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `{"left": [{"kind": "noise"}]}`)
	if _, err := LoadPatch(bad); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestPatchRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duo.json")
	writeFile(t, path, stereoPatchJSON)
	p, err := LoadPatch(path)
	expectNoError(t, err)
	p.ApplyConfig(DefaultConfig())

	table := theory.Default()
	left, right, err := p.Render(context.Background(), table)
	expectNoError(t, err)
	expectEqual(t, len(left), 2000)
	expectEqual(t, len(right), 2000)

	// right channel is one saw remapped into [0, 1]
	for i, v := range right {
		if v < 0 || v > 1 {
			t.Fatalf("right sample %d out of range: %v", i, v)
		}
	}

	a4, _ := table.Frequency("a4")
	sine := DefaultOscParams()
	sine.SampleRate = 8000
	sine.Freq = a4
	square := DefaultOscParams()
	square.SampleRate = 8000
	square.Freq = 220
	square.Amp = 0.4
	square.Threshold = 0.2
	m, err := NewMixer(newTestOsc(t, WaveSine, sine), newTestOsc(t, WaveSquare, square))
	expectNoError(t, err)
	expected, err := Render(m, 2000)
	expectNoError(t, err)
	for i := range expected {
		expectEqual(t, left[i], expected[i])
	}
}

func TestPatchApplyConfig(t *testing.T) {
	p := &Patch{Left: []Voice{{Kind: WaveSine, Freq: 100}}}
	cfg := &Config{SampleRate: 1000, Volume: 0.7, Duration: 2}
	p.ApplyConfig(cfg)
	expectEqual(t, p.SampleRate, 1000)
	expectEqual(t, p.Duration, 2.0)
	expectEqual(t, *p.Volume, 0.7)
	expectEqual(t, p.Stereo(), false)

	left, right, err := p.Render(context.Background(), theory.Default())
	expectNoError(t, err)
	expectEqual(t, len(left), 2000)
	if right != nil {
		t.Error("expected mono render")
	}
}

func TestPatchBuildErrors(t *testing.T) {
	table := theory.Default()
	cases := map[string]*Patch{
		"no voices":    {SampleRate: 8000, Duration: 1},
		"unknown note": {SampleRate: 8000, Left: []Voice{{Note: "h2"}}},
		"no pitch":     {SampleRate: 8000, Left: []Voice{{Kind: WaveSaw}}},
		"bad right":    {SampleRate: 8000, Left: []Voice{{Freq: 1}}, Right: []Voice{{Freq: -1}}},
		"no rate":      {Left: []Voice{{Freq: 1}}},
		"negative":     {SampleRate: 8000, Duration: -1, Left: []Voice{{Freq: 1}}},
		"zero range":   {SampleRate: 8000, Left: []Voice{{Freq: 1, Range: &Range{}}}},
		"inverted":     {SampleRate: 8000, Left: []Voice{{Freq: 1, Range: &Range{Min: 1, Max: -1}}}},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := p.Build(table)
			expectValidationError(t, err)
		})
	}
}

func TestDefaultPatch(t *testing.T) {
	p := DefaultPatch()
	p.ApplyConfig(DefaultConfig())
	expectEqual(t, p.Samples(), 4*44100)
	left, right, err := p.Build(theory.Default())
	expectNoError(t, err)
	expectEqual(t, left.Len(), 4)
	if right != nil {
		t.Error("expected mono default patch")
	}
}

func TestChordPatch(t *testing.T) {
	table := theory.Default()
	p, err := ChordPatch(table, "c4", "major-seventh", WaveTriangle)
	expectNoError(t, err)
	expectEqual(t, p.Name, "c4-major-seventh")
	expectEqual(t, len(p.Left), 4)
	expectEqual(t, p.Left[0].Freq, 261.6256)
	expectEqual(t, p.Left[3].Kind, WaveTriangle)

	_, err = ChordPatch(table, "c4", "mystery", WaveSine)
	if err == nil {
		t.Error("expected error for unknown chord")
	}
	_, err = ChordPatch(table, "z9", "major", WaveSine)
	if err == nil {
		t.Error("expected error for unknown root")
	}
}

func TestPatchSaveAndList(t *testing.T) {
	dir := t.TempDir()
	expectNoError(t, DefaultPatch().Save(filepath.Join(dir, "prelude.json")))
	writeFile(t, filepath.Join(dir, "_list.json"), `{"items": [{"name": "prelude"}]}`)

	names, err := PatchList(dir)
	expectNoError(t, err)
	expectEqual(t, len(names), 1)
	expectEqual(t, names[0], "prelude")

	p, err := LoadNamedPatch(dir, names[0])
	expectNoError(t, err)
	expectEqual(t, p.Name, "prelude-one")
	expectEqual(t, len(p.Left), 4)
	expectEqual(t, p.Left[1].Note, "e3")
	expectEqual(t, *p.Left[2].Amp, 0.6)
	expectEqual(t, p.Left[3].Kind, WaveSquare)
}
