package audio

import (
	"fmt"
	"io"
	"log"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// ----- WAV Sink ----- //

const wavFormatPCM = 1

func validateWAV(sampleRate int, left []float64, right []float64) error {
	if sampleRate <= 0 {
		return invalid("sample rate", sampleRate, "must be positive")
	}
	if right != nil && len(left) != len(right) {
		return invalid("right", len(right), fmt.Sprintf("length differs from left (%d)", len(left)))
	}
	return nil
}

// WriteWAV encodes 16-bit PCM. A nil right channel writes mono.
func WriteWAV(w io.WriteSeeker, sampleRate int, amp float64, left []float64, right []float64) error {
	if err := validateWAV(sampleRate, left, right); err != nil {
		return err
	}
	frames := Quantize(left, amp)
	channels := 1
	if right != nil {
		var err error
		frames, err = Interleave(frames, Quantize(right, amp))
		if err != nil {
			return err
		}
		channels = 2
	}
	data := make([]int, len(frames))
	for i, v := range frames {
		data[i] = int(v)
	}
	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}

// WriteWAVFile writes a WAV file at path, replacing any existing file.
func WriteWAVFile(path string, sampleRate int, amp float64, left []float64, right []float64) error {
	if err := validateWAV(sampleRate, left, right); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("error while closing %s: %v", path, err)
		}
	}()
	return WriteWAV(file, sampleRate, amp, left, right)
}
