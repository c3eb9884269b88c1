package race

import (
	"math/rand"
)

// A Sampler draws one noisy activation value per call. The long-run mean of
// the draws tracks baseLevel; the spread is up to the implementation.
// Repeated calls must be independent draws, and a call must never block.
type Sampler interface {
	Sample(baseLevel float64) float64
}

// GaussianSampler draws activation values from a normal distribution centered
// at the base level.
type GaussianSampler struct {
	stdDev float64
	rand   *rand.Rand
}

// NewGaussianSampler creates a sampler with the given noise standard
// deviation. Each sampler owns its random source, so samplers in different
// goroutines do not contend.
func NewGaussianSampler(stdDev float64, seed int64) *GaussianSampler {
	return &GaussianSampler{
		stdDev: stdDev,
		rand:   rand.New(rand.NewSource(seed)),
	}
}

// Sample returns one draw from N(baseLevel, stdDev^2).
func (s *GaussianSampler) Sample(baseLevel float64) float64 {
	return baseLevel + s.rand.NormFloat64()*s.stdDev
}
