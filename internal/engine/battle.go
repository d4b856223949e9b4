package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/siddharth-09/card-arena/internal/game"
)

var (
	ErrInvalidCardIndex       = errors.New("invalid card index")
	ErrBattleAlreadyCompleted = errors.New("battle already completed")
	ErrPlayerNotInBattle      = errors.New("player not in battle")
)

// defeatsToLose ends the battle once a player has lost this many cards.
const defeatsToLose = game.CardsPerPlayer

// NewBattleState initializes the best-of-three-losses battle between the
// two room players. Both players must already hold exactly three cards.
func NewBattleState(first, second *game.RoomPlayer) *game.BattleState {
	return &game.BattleState{
		CurrentRound: 0,
		DefeatedCount: map[string]int{
			first.Address:  0,
			second.Address: 0,
		},
		Rounds:       []game.Round{},
		PendingCards: map[string]int{},
		BattleStatus: game.BattleWaitingForCards,
		Message:      "Battle started! Both players select your first card.",
	}
}

// SubmitCard records addr's card selection for the current round and, once
// both players have a pending selection, resolves the round through the
// resolver. It reports whether a round was resolved by this call.
//
// Cards are consumed front-to-back: as a player's defeated counter grows,
// indices below it are spent and no longer selectable. A valid index lies
// in [defeatedCount, 3). Submitting again before the opponent overwrites
// the pending selection.
func SubmitCard(st *game.BattleState, first, second *game.RoomPlayer, addr string, cardIndex int, res *Resolver) (bool, error) {
	if st.BattleStatus == game.BattleCompleted {
		return false, ErrBattleAlreadyCompleted
	}

	norm := game.NormalizeAddress(addr)
	var player, opponent *game.RoomPlayer
	switch norm {
	case first.Address:
		player, opponent = first, second
	case second.Address:
		player, opponent = second, first
	default:
		return false, ErrPlayerNotInBattle
	}

	defeated := st.DefeatedCount[player.Address]
	if cardIndex < defeated || cardIndex >= len(player.SelectedCards) {
		return false, ErrInvalidCardIndex
	}

	st.PendingCards[player.Address] = cardIndex

	if _, ok := st.PendingCards[opponent.Address]; !ok {
		st.Message = "Waiting for opponent to select their card..."
		return false, nil
	}

	resolveRound(st, first, second, res)
	return true, nil
}

// resolveRound consumes both pending selections, decides the winner,
// advances defeat bookkeeping and records the immutable round. The pending
// map is cleared in the same step.
func resolveRound(st *game.BattleState, first, second *game.RoomPlayer, res *Resolver) {
	firstCard := first.SelectedCards[st.PendingCards[first.Address]]
	secondCard := second.SelectedCards[st.PendingCards[second.Address]]

	winner, loser := first, second
	if res.ResolveRound(float64(firstCard.Power), float64(secondCard.Power)) == SideSecond {
		winner, loser = second, first
	}
	st.DefeatedCount[loser.Address]++

	st.Rounds = append(st.Rounds, game.Round{
		Cards: map[string]game.Card{
			first.Address:  firstCard,
			second.Address: secondCard,
		},
		Winner:    winner.Address,
		Timestamp: time.Now().UnixMilli(),
	})
	st.PendingCards = map[string]int{}

	if st.DefeatedCount[loser.Address] >= defeatsToLose {
		st.Winner = winner.Address
		st.BattleStatus = game.BattleCompleted
		st.Message = fmt.Sprintf("%s won the battle! All opposing cards defeated.", game.ShortAddress(winner.Address))
		return
	}

	st.CurrentRound++
	st.BattleStatus = game.BattleWaitingForCards
	st.Message = fmt.Sprintf("Round %d: both players select a card.", st.CurrentRound+1)
}
