package dataset

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws one value from a normal distribution.
type Sampler interface {
	Normal(mu, sigma float64) float64
}

// GaussianSampler draws from gonum's normal distribution over a PCG source.
type GaussianSampler struct {
	src rand.Source
}

// NewGaussianSampler returns a sampler whose draws are fully determined by seed.
func NewGaussianSampler(seed uint64) *GaussianSampler {
	return &GaussianSampler{src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}
}

func newTimeSeededSampler() *GaussianSampler {
	return NewGaussianSampler(uint64(time.Now().UnixNano()))
}

func (g *GaussianSampler) Normal(mu, sigma float64) float64 {
	if sigma <= 0 {
		return mu
	}
	d := distuv.Normal{Mu: mu, Sigma: sigma, Src: g.src}
	return d.Rand()
}
