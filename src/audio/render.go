package audio

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ----- Render ----- //

// Render starts src and collects exactly count samples.
func Render(src Source, count int) ([]float64, error) {
	if src == nil {
		return nil, invalid("source", nil, "nil source")
	}
	if count < 0 {
		return nil, invalid("sample count", count, "must not be negative")
	}
	src.Start()
	out := make([]float64, count)
	for i := range out {
		v, err := src.Next()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SamplesFor returns the sample count of a duration in seconds.
func SamplesFor(sampleRate int, seconds float64) int {
	return int(float64(sampleRate) * seconds)
}

// Job is one independent render.
type Job struct {
	Source  Source
	Samples int
}

// RenderBatch renders jobs concurrently. Sources must not be shared between
// jobs. Results keep the order of jobs.
func RenderBatch(ctx context.Context, jobs []Job) ([][]float64, error) {
	out := make([][]float64, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			buf, err := Render(job.Source, job.Samples)
			if err != nil {
				return err
			}
			out[i] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
