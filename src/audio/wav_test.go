package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func decodeWAV(t *testing.T, path string) (*wav.Decoder, []int) {
	t.Helper()
	f, err := os.Open(path)
	expectNoError(t, err)
	defer f.Close()
	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		t.Fatalf("%s is not a valid wav file", path)
	}
	buf, err := d.FullPCMBuffer()
	expectNoError(t, err)
	return d, buf.Data
}

func TestWriteWAVMono(t *testing.T) {
	samples, err := Render(newChordMixer(t), 1000)
	expectNoError(t, err)
	path := filepath.Join(t.TempDir(), "mono.wav")
	expectNoError(t, WriteWAVFile(path, 44100, 0.5, samples, nil))

	d, data := decodeWAV(t, path)
	expectEqual(t, int(d.NumChans), 1)
	expectEqual(t, int(d.SampleRate), 44100)
	expectEqual(t, int(d.BitDepth), 16)

	expected := Quantize(samples, 0.5)
	expectEqual(t, len(data), len(expected))
	for i := range expected {
		if data[i] != int(expected[i]) {
			t.Fatalf("sample %d: expected %d, but got %d", i, expected[i], data[i])
		}
	}
}

func TestWriteWAVStereo(t *testing.T) {
	left := []float64{0, 0.5, 1, -1}
	right := []float64{1, -0.5, 0, 0.25}
	path := filepath.Join(t.TempDir(), "stereo.wav")
	expectNoError(t, WriteWAVFile(path, 22050, 1, left, right))

	d, data := decodeWAV(t, path)
	expectEqual(t, int(d.NumChans), 2)
	expectEqual(t, int(d.SampleRate), 22050)
	expected := []int{0, 32767, 16384, -16384, 32767, 0, -32767, 8192}
	expectEqual(t, len(data), len(expected))
	for i := range expected {
		expectEqual(t, data[i], expected[i])
	}
}

func TestWriteWAVValidation(t *testing.T) {
	dir := t.TempDir()
	err := WriteWAVFile(filepath.Join(dir, "bad.wav"), 44100, 1, []float64{0, 0}, []float64{0})
	expectValidationError(t, err)
	err = WriteWAVFile(filepath.Join(dir, "rate.wav"), 0, 1, []float64{0}, nil)
	expectValidationError(t, err)
	for _, name := range []string{"bad.wav", "rate.wav"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("expected no %s after validation failure", name)
		}
	}
}
