package engine

import (
	"math"

	"github.com/siddharth-09/card-arena/internal/game"
)

// SimulationResult is the outcome of a whole-hand practice battle: every
// card's power is drawn once within the resolver's variance band and the
// totals are compared.
type SimulationResult struct {
	PlayerCards            []game.Card `json:"playerCards"`
	OpponentCards          []game.Card `json:"opponentCards"`
	Winner                 string      `json:"winner"`
	PlayerTotalPower       int         `json:"playerTotalPower"`
	OpponentTotalPower     int         `json:"opponentTotalPower"`
	PowerDiff              int         `json:"powerDiff"`
	PlayerCardsWithPower   []game.Card `json:"playerCardsWithPower"`
	OpponentCardsWithPower []game.Card `json:"opponentCardsWithPower"`
}

const (
	SimWinnerPlayer   = "player"
	SimWinnerOpponent = "opponent"
)

// Simulate runs the standalone power-total battle used by the practice and
// minting flows. Higher varied total wins; ties go to the opponent, which
// keeps raw power favored but never guaranteed.
func (r *Resolver) Simulate(playerCards, opponentCards []game.Card) SimulationResult {
	playerVaried := r.varyHand(playerCards)
	opponentVaried := r.varyHand(opponentCards)

	playerTotal := game.TotalPower(playerVaried)
	opponentTotal := game.TotalPower(opponentVaried)

	winner := SimWinnerOpponent
	if playerTotal > opponentTotal {
		winner = SimWinnerPlayer
	}

	return SimulationResult{
		PlayerCards:            playerCards,
		OpponentCards:          opponentCards,
		Winner:                 winner,
		PlayerTotalPower:       playerTotal,
		OpponentTotalPower:     opponentTotal,
		PowerDiff:              abs(playerTotal - opponentTotal),
		PlayerCardsWithPower:   playerVaried,
		OpponentCardsWithPower: opponentVaried,
	}
}

func (r *Resolver) varyHand(cards []game.Card) []game.Card {
	out := make([]game.Card, len(cards))
	for i, c := range cards {
		out[i] = c
		out[i].Power = int(math.Round(float64(c.Power) * (1 + r.offset())))
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
