package engine

import "math/rand"

// Variance factors applied to card power during resolution. Room battles
// use the tight 3% band; the standalone simulation path uses 5% per card
// and the card pool mints with an 8% spread.
const (
	RoomBattleVariance = 0.03
	SimulationVariance = 0.05
)

// Side identifies which of the two compared powers won a round.
type Side int

const (
	SideFirst Side = iota
	SideSecond
)

// Resolver computes round outcomes from card powers. The random source is
// injected so battles are reproducible under test; callers that share a
// resolver across goroutines must serialize access (a *rand.Rand is not
// safe for concurrent use).
type Resolver struct {
	rng      *rand.Rand
	variance float64
}

func NewResolver(src rand.Source, variance float64) *Resolver {
	return &Resolver{rng: rand.New(src), variance: variance}
}

// ResolveRound applies an independent uniform offset in [-variance,
// +variance] to each power and returns the side with the higher effective
// power. An exact tie goes to the first side.
func (r *Resolver) ResolveRound(firstPower, secondPower float64) Side {
	first := firstPower * (1 + r.offset())
	second := secondPower * (1 + r.offset())
	if second > first {
		return SideSecond
	}
	return SideFirst
}

func (r *Resolver) offset() float64 {
	return (r.rng.Float64()*2 - 1) * r.variance
}
