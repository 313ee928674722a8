package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/jinjor/wavesynth/src/audio"
	"github.com/jinjor/wavesynth/src/theory"
)

var (
	patchPath  = flag.String("patch", "", "JSON patch file (default: built-in C major chord)")
	patchDir   = flag.String("patch-dir", "", "directory with _list.json; renders every listed patch")
	outPath    = flag.String("out", "out.wav", "WAV output path, or output directory with -patch-dir")
	duration   = flag.Float64("duration", 0, "override duration in seconds")
	analyze    = flag.Bool("analyze", false, "log the dominant frequency of the left channel")
	listNotes  = flag.Bool("notes", false, "print the note frequency table and exit")
	midiPath   = flag.String("midi", "", "write -melody as a MIDI file to this path")
	melody     = flag.String("melody", "1,2,3,4,5,6,7,8", "comma separated scale degrees")
	melodyRoot = flag.String("root", "c4", "root note of the melody")
	melodyMode = flag.String("mode", "major", "mode of the melody")
	noteTicks  = flag.Uint("ticks", audio.TicksPerQuarter, "MIDI ticks per melody note")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalCh)
	go func() {
		select {
		case sig := <-signalCh:
			log.Printf("Caught signal %s: shutting down...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	table := theory.Default()
	if *listNotes {
		for _, name := range table.Names() {
			f, _ := table.Frequency(name)
			fmt.Printf("%-4s %.6f\n", name, f)
		}
		return
	}

	cfg := audio.LoadConfig()
	if *duration > 0 {
		cfg.Duration = *duration
	}
	var err error
	if *patchDir != "" {
		err = renderDir(ctx, table, cfg, *patchDir, *outPath)
	} else {
		err = renderOne(ctx, table, cfg, *outPath)
	}
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	if *midiPath != "" {
		if err := writeMelody(*midiPath); err != nil {
			log.Fatalf("error: %v\n", err)
		}
	}
	log.Println("main() ended.")
}

func renderOne(ctx context.Context, table *theory.Table, cfg *audio.Config, out string) error {
	patch := audio.DefaultPatch()
	if *patchPath != "" {
		p, err := audio.LoadPatch(*patchPath)
		if err != nil {
			return err
		}
		patch = p
	}
	return renderPatch(ctx, table, cfg, patch, out)
}

func renderDir(ctx context.Context, table *theory.Table, cfg *audio.Config, dir string, outDir string) error {
	names, err := audio.PatchList(dir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	for _, name := range names {
		patch, err := audio.LoadNamedPatch(dir, name)
		if err != nil {
			return err
		}
		if err := renderPatch(ctx, table, cfg, patch, filepath.Join(outDir, name+".wav")); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func renderPatch(ctx context.Context, table *theory.Table, cfg *audio.Config, patch *audio.Patch, out string) error {
	if *duration > 0 {
		patch.Duration = *duration
	}
	patch.ApplyConfig(cfg)
	log.Printf("rendering %s: %d voices, %.2fs at %d Hz\n", patch.Name, len(patch.Left)+len(patch.Right), patch.Duration, patch.SampleRate)
	left, right, err := patch.Render(ctx, table)
	if err != nil {
		return err
	}
	if *analyze {
		log.Printf("%s: dominant frequency %.2f Hz\n", patch.Name, audio.DominantFrequency(left, patch.SampleRate))
	}
	if err := audio.WriteWAVFile(out, patch.SampleRate, *patch.Volume, left, right); err != nil {
		return err
	}
	log.Printf("saved %s\n", out)
	return nil
}

func writeMelody(path string) error {
	root, err := theory.MIDINumber(*melodyRoot)
	if err != nil {
		return err
	}
	m, err := theory.NewMelody(root, *melodyMode)
	if err != nil {
		return err
	}
	degrees, err := parseDegrees(*melody)
	if err != nil {
		return err
	}
	notes, err := m.Notes(degrees)
	if err != nil {
		return err
	}
	steps, err := audio.MelodySteps(notes, 0, uint32(*noteTicks))
	if err != nil {
		return err
	}
	if err := audio.WriteMIDIFile(path, steps); err != nil {
		return err
	}
	log.Printf("saved %s\n", path)
	return nil
}

func parseDegrees(s string) ([]int, error) {
	var degrees []int
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		d, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid degree %q: %w", item, err)
		}
		degrees = append(degrees, d)
	}
	return degrees, nil
}
