package ads

import (
	"math/rand"
	"sync"
	"time"
)

// Selector picks a campaign for display. Every eligible campaign has an
// equal chance on every pick; there is no weighting or recency bias.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a selector seeded from the clock
func NewSelector() *Selector {
	return NewSelectorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSelectorWithSource creates a selector over the given generator.
// Tests pass a fixed seed for reproducible picks.
func NewSelectorWithSource(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Pick returns one campaign uniformly at random, or nil when the slice is
// empty
func (s *Selector) Pick(campaigns []Campaign) *Campaign {
	if len(campaigns) == 0 {
		return nil
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(campaigns))
	s.mu.Unlock()

	return &campaigns[idx]
}

// PickEligible filters to campaigns displayable at the given time, then
// picks uniformly among them
func (s *Selector) PickEligible(campaigns []Campaign, now time.Time) *Campaign {
	eligible := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.EligibleAt(now) {
			eligible = append(eligible, c)
		}
	}
	return s.Pick(eligible)
}
