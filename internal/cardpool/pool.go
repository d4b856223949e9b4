package cardpool

import (
	"math"
	"math/rand"
	"sync"

	"github.com/siddharth-09/card-arena/internal/game"
)

// Draw weights per rarity, out of 100.
const (
	weightCommon = 50
	weightRare   = 35
	// legendary takes the remaining 15
)

// mintVariance is the per-instance power spread applied on every draw so
// each minted card feels unique.
const mintVariance = 0.08

// Pool generates card instances from a configured base card list. Draws
// are rarity-weighted; the power of each drawn instance varies within
// mintVariance of the base card's power. Safe for concurrent use.
type Pool struct {
	mu       sync.Mutex
	rng      *rand.Rand
	cards    []game.Card
	byRarity map[game.Rarity][]game.Card
}

func New(src rand.Source, base []game.Card) *Pool {
	byRarity := make(map[game.Rarity][]game.Card)
	for _, c := range base {
		byRarity[c.Rarity] = append(byRarity[c.Rarity], c)
	}
	return &Pool{
		rng:      rand.New(src),
		cards:    append([]game.Card(nil), base...),
		byRarity: byRarity,
	}
}

// Draw mints one card: roll a rarity, pick uniformly within that rarity,
// then vary the power. Falls back across rarities when the configured list
// has no card of the rolled rarity.
func (p *Pool) Draw() game.Card {
	p.mu.Lock()
	defer p.mu.Unlock()

	rarity := p.rollRarity()
	candidates := p.byRarity[rarity]
	if len(candidates) == 0 {
		candidates = p.cards
	}
	base := candidates[p.rng.Intn(len(candidates))]

	card := base
	card.Traits = append([]string(nil), base.Traits...)
	offset := (p.rng.Float64() - 0.5) * 2 * mintVariance
	card.Power = int(math.Round(float64(base.Power) * (1 + offset)))
	return card
}

// DrawHand mints n cards with rarity weighting.
func (p *Pool) DrawHand(n int) []game.Card {
	out := make([]game.Card, n)
	for i := range out {
		out[i] = p.Draw()
	}
	return out
}

// RandomHand picks n base cards uniformly, without rarity weighting or
// power variance. Used for simulated opponents.
func (p *Pool) RandomHand(n int) []game.Card {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]game.Card, n)
	for i := range out {
		base := p.cards[p.rng.Intn(len(p.cards))]
		out[i] = base
		out[i].Traits = append([]string(nil), base.Traits...)
	}
	return out
}

func (p *Pool) rollRarity() game.Rarity {
	roll := p.rng.Float64() * 100
	switch {
	case roll < weightCommon:
		return game.RarityCommon
	case roll < weightCommon+weightRare:
		return game.RarityRare
	default:
		return game.RarityLegendary
	}
}
