package poesy

import (
	"errors"
	"math"
)

var (
	// ErrEmptySource is returned when a draw is made from an empty set.
	ErrEmptySource = errors.New("cannot sample from an empty source")
	// ErrInsufficientSamples is returned when more distinct samples are
	// requested than a set holds.
	ErrInsufficientSamples = errors.New("not enough members to sample from")
)

// Picker chooses an index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// Sample draws one member uniformly from each source. bits is the total
// self-information of the draws, the sum of log2 of every source size.
func Sample[T any](p Picker, sources ...[]T) (result []T, bits float64, err error) {
	result = make([]T, 0, len(sources))
	for _, source := range sources {
		if len(source) == 0 {
			return nil, 0, ErrEmptySource
		}
		bits += math.Log2(float64(len(source)))
		result = append(result, source[p.Intn(len(source))])
	}
	return result, bits, nil
}

// SampleN draws n distinct members of source.
func SampleN[T any](p Picker, source []T, n int) ([]T, error) {
	if n < 0 {
		return nil, ErrBadCount
	}
	if n > len(source) {
		return nil, ErrInsufficientSamples
	}
	pool := make([]T, len(source))
	copy(pool, source)
	for i := 0; i < n; i++ {
		j := i + p.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n], nil
}
