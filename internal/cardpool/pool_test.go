package cardpool

import (
	"math"
	"math/rand"
	"testing"

	"github.com/siddharth-09/card-arena/internal/game"
)

var testBase = []game.Card{
	{ID: 1, Name: "Anya", Power: 65, Rarity: game.RarityCommon},
	{ID: 2, Name: "Kael", Power: 70, Rarity: game.RarityCommon},
	{ID: 3, Name: "Borin", Power: 78, Rarity: game.RarityRare},
	{ID: 4, Name: "Lyra", Power: 82, Rarity: game.RarityRare},
	{ID: 5, Name: "Thorne", Power: 95, Rarity: game.RarityLegendary},
}

func baseByName(name string) game.Card {
	for _, c := range testBase {
		if c.Name == name {
			return c
		}
	}
	return game.Card{}
}

func TestDraw_PowerStaysWithinMintVariance(t *testing.T) {
	p := New(rand.NewSource(42), testBase)
	for i := 0; i < 1000; i++ {
		card := p.Draw()
		base := baseByName(card.Name)
		if base.Name == "" {
			t.Fatalf("drew unknown card %q", card.Name)
		}
		lo := float64(base.Power) * (1 - mintVariance)
		hi := float64(base.Power) * (1 + mintVariance)
		if float64(card.Power) < math.Floor(lo) || float64(card.Power) > math.Ceil(hi) {
			t.Fatalf("%s power %d outside [%f, %f]", card.Name, card.Power, lo, hi)
		}
	}
}

func TestDraw_RarityWeighting(t *testing.T) {
	p := New(rand.NewSource(42), testBase)
	counts := map[game.Rarity]int{}
	const draws = 5000
	for i := 0; i < draws; i++ {
		counts[p.Draw().Rarity]++
	}
	if counts[game.RarityCommon] <= counts[game.RarityRare] {
		t.Fatalf("commons should outnumber rares: %v", counts)
	}
	if counts[game.RarityRare] <= counts[game.RarityLegendary] {
		t.Fatalf("rares should outnumber legendaries: %v", counts)
	}
	// Legendary weight is 15/100; allow a generous band around it.
	share := float64(counts[game.RarityLegendary]) / draws
	if share < 0.08 || share > 0.25 {
		t.Fatalf("legendary share %f far from expected 0.15", share)
	}
}

func TestDraw_FallsBackWhenRarityMissing(t *testing.T) {
	commonsOnly := []game.Card{
		{ID: 1, Name: "Anya", Power: 65, Rarity: game.RarityCommon},
	}
	p := New(rand.NewSource(1), commonsOnly)
	for i := 0; i < 200; i++ {
		if card := p.Draw(); card.Name != "Anya" {
			t.Fatalf("expected fallback to the only configured card, got %q", card.Name)
		}
	}
}

func TestDrawHand_Count(t *testing.T) {
	p := New(rand.NewSource(7), testBase)
	hand := p.DrawHand(3)
	if len(hand) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(hand))
	}
}

func TestRandomHand_UsesBasePowers(t *testing.T) {
	p := New(rand.NewSource(7), testBase)
	for _, card := range p.RandomHand(50) {
		base := baseByName(card.Name)
		if card.Power != base.Power {
			t.Fatalf("%s power %d should equal base %d", card.Name, card.Power, base.Power)
		}
	}
}
