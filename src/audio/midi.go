package audio

import (
	"fmt"

	"gitlab.com/gomidi/midi/smf"
	"gitlab.com/gomidi/midi/writer"
)

// ----- MIDI Sink ----- //

// TicksPerQuarter is the SMF writer's default resolution.
const TicksPerQuarter = 960

const defaultVelocity = 100

// NoteStep sounds Keys together for Duration ticks. No keys is a rest.
type NoteStep struct {
	Keys     []uint8
	Velocity uint8 // 0 means 100
	Duration uint32
}

// MelodySteps turns MIDI note numbers into one step per note.
func MelodySteps(notes []int, velocity uint8, duration uint32) ([]NoteStep, error) {
	steps := make([]NoteStep, len(notes))
	for i, n := range notes {
		if n < 0 || n > 127 {
			return nil, invalid("note", n, "out of MIDI range")
		}
		steps[i] = NoteStep{Keys: []uint8{uint8(n)}, Velocity: velocity, Duration: duration}
	}
	return steps, nil
}

func validateSteps(steps []NoteStep) error {
	for i, s := range steps {
		if s.Velocity > 127 {
			return invalid("velocity", s.Velocity, fmt.Sprintf("step %d out of MIDI range", i))
		}
		for _, k := range s.Keys {
			if k > 127 {
				return invalid("key", k, fmt.Sprintf("step %d out of MIDI range", i))
			}
		}
	}
	return nil
}

// WriteMIDIFile writes steps as a single-track standard MIDI file on
// channel 0.
func WriteMIDIFile(path string, steps []NoteStep) error {
	if err := validateSteps(steps); err != nil {
		return err
	}
	return writer.WriteSMF(path, 1, func(wr *writer.SMF) error {
		wr.SetChannel(0)
		var rest uint32
		for _, s := range steps {
			if len(s.Keys) == 0 {
				rest += s.Duration
				continue
			}
			velocity := s.Velocity
			if velocity == 0 {
				velocity = defaultVelocity
			}
			wr.SetDelta(rest)
			rest = 0
			for _, key := range s.Keys {
				if err := writer.NoteOn(wr, key, velocity); err != nil {
					return err
				}
			}
			wr.SetDelta(s.Duration)
			for _, key := range s.Keys {
				if err := writer.NoteOff(wr, key); err != nil {
					return err
				}
			}
		}
		wr.SetDelta(rest)
		// closing the last track reports ErrFinished
		if err := writer.EndOfTrack(wr); err != nil && err != smf.ErrFinished {
			return err
		}
		return nil
	})
}
