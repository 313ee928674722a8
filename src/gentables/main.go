package main

import (
	"context"
	"encoding/json"
	"flag"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/jinjor/wavesynth/src/audio"
	"github.com/jinjor/wavesynth/src/theory"
	"golang.org/x/sync/errgroup"
)

var (
	root     = flag.String("root", "c4", "root note of the chords")
	kind     = flag.String("kind", "sine", "waveform of every chord voice")
	duration = flag.Float64("duration", 2, "seconds per chord")
)

// Writes the note table as JSON and one WAV file per chord into dir.
func main() {
	flag.Parse()
	dir := flag.Arg(0)
	if dir == "" {
		panic("dir is not passed")
	}
	log.SetFlags(log.Lshortfile)

	waveKind, err := audio.ParseWaveKind(*kind)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	cfg := audio.LoadConfig()
	cfg.Duration = *duration
	if err := generate(context.Background(), dir, *root, waveKind, cfg); err != nil {
		log.Fatalf("error: %v\n", err)
	}
	log.Println("Successfully generated tables.")
}

// generate writes dir/notes.json and dir/chords/<root>-<chord>.wav.
func generate(ctx context.Context, dir string, root string, kind audio.WaveKind, cfg *audio.Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	table := theory.Default()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := saveNoteTable(table, filepath.Join(dir, "notes.json"))
		log.Println("saved note table")
		return err
	})
	g.Go(func() error {
		chordDir := filepath.Join(dir, "chords")
		if err := os.MkdirAll(chordDir, 0755); err != nil {
			return err
		}
		n, err := renderChords(ctx, table, cfg, root, kind, chordDir)
		log.Printf("saved %d chords\n", n)
		return err
	})
	return g.Wait()
}

func saveNoteTable(table *theory.Table, path string) error {
	freqs := make(map[string]float64, table.Len())
	for _, name := range table.Names() {
		f, err := table.Frequency(name)
		if err != nil {
			return err
		}
		freqs[name] = f
	}
	bytes, err := json.MarshalIndent(freqs, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, bytes, 0666)
}

func renderChords(ctx context.Context, table *theory.Table, cfg *audio.Config, root string, kind audio.WaveKind, dir string) (int, error) {
	names := theory.ChordNames()
	patches := make([]*audio.Patch, len(names))
	jobs := make([]audio.Job, len(names))
	for i, chord := range names {
		p, err := audio.ChordPatch(table, root, chord, kind)
		if err != nil {
			return 0, err
		}
		p.ApplyConfig(cfg)
		left, _, err := p.Build(table)
		if err != nil {
			return 0, err
		}
		patches[i] = p
		jobs[i] = audio.Job{Source: left, Samples: p.Samples()}
	}
	bufs, err := audio.RenderBatch(ctx, jobs)
	if err != nil {
		return 0, err
	}
	for i, p := range patches {
		path := filepath.Join(dir, p.Name+".wav")
		if err := audio.WriteWAVFile(path, p.SampleRate, *p.Volume, bufs[i], nil); err != nil {
			return i, err
		}
	}
	return len(patches), nil
}
