package apod

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Epoch is the earliest instant the sampler will produce.
var Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Sampler draws uniformly random days between Epoch and now. It is safe for
// concurrent use.
type Sampler struct {
	Now  func() time.Time
	Rand *rand.Rand

	mu sync.Mutex
}

// NewSampler returns a Sampler on the wall clock with a randomly seeded source.
func NewSampler() *Sampler {
	return &Sampler{
		Now:  time.Now,
		Rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Sample returns the UTC calendar date (midnight) of an instant drawn
// uniformly from [Epoch, now]. A clock before Epoch yields Epoch.
func (s *Sampler) Sample() time.Time {
	now := s.Now().UTC()
	span := now.Sub(Epoch)
	if span <= 0 {
		return Epoch
	}
	s.mu.Lock()
	f := s.Rand.Float64()
	s.mu.Unlock()
	offset := time.Duration(f * float64(span))
	y, m, d := Epoch.Add(offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SampleString is Sample formatted as YYYY-MM-DD.
func (s *Sampler) SampleString() string {
	return FormatDate(s.Sample())
}
