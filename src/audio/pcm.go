package audio

import "math"

// ----- PCM ----- //

// Quantize converts samples in [-1, 1] to signed 16-bit values after scaling
// by amp. Out-of-range values are clamped.
func Quantize(samples []float64, amp float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = quantize(s * amp)
	}
	return out
}

func quantize(value float64) int16 {
	v := math.Round(value * maxInt16)
	switch {
	case math.IsNaN(v):
		return 0
	case v > maxInt16:
		return maxInt16
	case v < minInt16:
		return minInt16
	}
	return int16(v)
}

// Interleave builds stereo frames left, right, left, right, ...
func Interleave(left []int16, right []int16) ([]int16, error) {
	if len(left) != len(right) {
		return nil, invalid("channels", [2]int{len(left), len(right)}, "left and right lengths differ")
	}
	out := make([]int16, 0, len(left)*2)
	for i := range left {
		out = append(out, left[i], right[i])
	}
	return out, nil
}
