package engine

import (
	"math/rand"
	"testing"

	"github.com/siddharth-09/card-arena/internal/game"
)

func testPlayers(firstPowers, secondPowers [3]int) (*game.RoomPlayer, *game.RoomPlayer) {
	mk := func(addr string, powers [3]int) *game.RoomPlayer {
		cards := make([]game.Card, 3)
		for i, p := range powers {
			cards[i] = game.Card{ID: i + 1, Name: "Card", Power: p, Rarity: game.RarityCommon}
		}
		return &game.RoomPlayer{Address: addr, SelectedCards: cards, TotalPower: game.TotalPower(cards)}
	}
	return mk("0xaaa111", firstPowers), mk("0xbbb222", secondPowers)
}

// A zero-variance resolver makes the higher raw power win every round.
func fixedResolver() *Resolver {
	return NewResolver(rand.NewSource(1), 0)
}

func TestSubmitCard_WaitsForOpponent(t *testing.T) {
	first, second := testPlayers([3]int{65, 80, 95}, [3]int{70, 70, 70})
	st := NewBattleState(first, second)

	resolved, err := SubmitCard(st, first, second, first.Address, 0, fixedResolver())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved {
		t.Fatalf("round should not resolve after a single submission")
	}
	if len(st.Rounds) != 0 {
		t.Fatalf("no round should be recorded yet, got %d", len(st.Rounds))
	}
	if idx, ok := st.PendingCards[first.Address]; !ok || idx != 0 {
		t.Fatalf("pending selection not stored: %v", st.PendingCards)
	}
}

func TestSubmitCard_ResubmissionOverwritesPending(t *testing.T) {
	first, second := testPlayers([3]int{65, 80, 95}, [3]int{70, 70, 70})
	st := NewBattleState(first, second)
	res := fixedResolver()

	if _, err := SubmitCard(st, first, second, first.Address, 0, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := SubmitCard(st, first, second, first.Address, 2, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.PendingCards) != 1 || st.PendingCards[first.Address] != 2 {
		t.Fatalf("resubmission must overwrite, got %v", st.PendingCards)
	}
}

func TestSubmitCard_BothSubmittedResolvesRound(t *testing.T) {
	first, second := testPlayers([3]int{65, 80, 95}, [3]int{70, 70, 70})
	st := NewBattleState(first, second)
	res := fixedResolver()

	if _, err := SubmitCard(st, first, second, first.Address, 0, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resolved, err := SubmitCard(st, first, second, second.Address, 0, res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resolved {
		t.Fatalf("expected round to resolve once both players submitted")
	}
	if len(st.Rounds) != 1 {
		t.Fatalf("expected exactly one recorded round, got %d", len(st.Rounds))
	}
	// 65 vs 70 with zero variance: second wins, first loses a card.
	if st.Rounds[0].Winner != second.Address {
		t.Fatalf("expected %s to win round 1, got %s", second.Address, st.Rounds[0].Winner)
	}
	if got := st.DefeatedCount[first.Address] + st.DefeatedCount[second.Address]; got != 1 {
		t.Fatalf("exactly one defeat should be recorded, got %d", got)
	}
	if len(st.PendingCards) != 0 {
		t.Fatalf("pending map must be cleared with round recording, got %v", st.PendingCards)
	}
	if st.CurrentRound != 1 {
		t.Fatalf("current round should advance to 1, got %d", st.CurrentRound)
	}
}

func TestSubmitCard_InvalidIndices(t *testing.T) {
	first, second := testPlayers([3]int{65, 80, 95}, [3]int{70, 70, 70})
	st := NewBattleState(first, second)
	res := fixedResolver()

	if _, err := SubmitCard(st, first, second, first.Address, 3, res); err != ErrInvalidCardIndex {
		t.Fatalf("index 3 must be rejected, got %v", err)
	}
	if _, err := SubmitCard(st, first, second, first.Address, -1, res); err != ErrInvalidCardIndex {
		t.Fatalf("negative index must be rejected, got %v", err)
	}
	if _, err := SubmitCard(st, first, second, "0xunknown", 0, res); err != ErrPlayerNotInBattle {
		t.Fatalf("unknown player must be rejected, got %v", err)
	}

	// Lose round 1 as the first player, then index 0 is consumed for them.
	if _, err := SubmitCard(st, first, second, first.Address, 0, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := SubmitCard(st, first, second, second.Address, 0, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := SubmitCard(st, first, second, first.Address, 0, res); err != ErrInvalidCardIndex {
		t.Fatalf("defeated card index must no longer be selectable, got %v", err)
	}
}

func TestSubmitCard_CompletionAtThreeDefeats(t *testing.T) {
	// Every first-player card out-powers every second-player card, so with
	// zero variance the second player loses three straight rounds.
	first, second := testPlayers([3]int{90, 92, 95}, [3]int{10, 11, 12})
	st := NewBattleState(first, second)
	res := fixedResolver()

	for round := 0; round < 3; round++ {
		if _, err := SubmitCard(st, first, second, first.Address, round, res); err != nil {
			t.Fatalf("round %d: unexpected error: %v", round, err)
		}
		if _, err := SubmitCard(st, first, second, second.Address, round, res); err != nil {
			t.Fatalf("round %d: unexpected error: %v", round, err)
		}
	}

	if st.BattleStatus != game.BattleCompleted {
		t.Fatalf("battle should be completed, got %s", st.BattleStatus)
	}
	if st.Winner != first.Address {
		t.Fatalf("expected winner %s, got %s", first.Address, st.Winner)
	}
	if st.DefeatedCount[second.Address] != 3 {
		t.Fatalf("loser must have exactly 3 defeats, got %d", st.DefeatedCount[second.Address])
	}
	if st.DefeatedCount[first.Address] != 0 {
		t.Fatalf("winner should have 0 defeats, got %d", st.DefeatedCount[first.Address])
	}
	if len(st.Rounds) != 3 {
		t.Fatalf("expected 3 recorded rounds, got %d", len(st.Rounds))
	}

	if _, err := SubmitCard(st, first, second, first.Address, 0, res); err != ErrBattleAlreadyCompleted {
		t.Fatalf("submissions after completion must fail, got %v", err)
	}
}

func TestDefeatedCountersNeverDecrease(t *testing.T) {
	first, second := testPlayers([3]int{65, 80, 95}, [3]int{70, 82, 96})
	st := NewBattleState(first, second)
	res := NewResolver(rand.NewSource(3), RoomBattleVariance)

	prevFirst, prevSecond := 0, 0
	for st.BattleStatus != game.BattleCompleted {
		fIdx := st.DefeatedCount[first.Address]
		sIdx := st.DefeatedCount[second.Address]
		if _, err := SubmitCard(st, first, second, first.Address, fIdx, res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := SubmitCard(st, first, second, second.Address, sIdx, res); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f, s := st.DefeatedCount[first.Address], st.DefeatedCount[second.Address]
		if f < prevFirst || s < prevSecond {
			t.Fatalf("defeated counters decreased: %d->%d, %d->%d", prevFirst, f, prevSecond, s)
		}
		if f > 3 || s > 3 {
			t.Fatalf("defeated counters out of bounds: %d, %d", f, s)
		}
		prevFirst, prevSecond = f, s
	}
	if prevFirst != 3 && prevSecond != 3 {
		t.Fatalf("battle completed without a counter reaching 3: %d, %d", prevFirst, prevSecond)
	}
}
