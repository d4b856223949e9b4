package game

import "strings"

// Rarity classifies a card. The rarity drives draw weights in the card
// pool; it has no effect on round resolution.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Card is an immutable card value. Instances are created by the card pool
// and never mutated afterwards; a room player owns its three cards for the
// duration of a match.
type Card struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Rarity      Rarity   `json:"rarity"`
	Power       int      `json:"power"`
	Traits      []string `json:"traits"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
}

// RoomStatus is the lifecycle status of a battle room. Transitions are
// monotonic: waiting -> ready -> battling -> completed.
type RoomStatus string

const (
	StatusWaiting   RoomStatus = "waiting"
	StatusReady     RoomStatus = "ready"
	StatusBattling  RoomStatus = "battling"
	StatusCompleted RoomStatus = "completed"
)

// BattleStatus tracks the in-flight battle loop.
type BattleStatus string

const (
	BattleWaitingForCards BattleStatus = "waiting-for-cards"
	BattleCompleted       BattleStatus = "completed"
)

// MaxRoomPlayers is fixed: a battle is always between exactly two players.
const MaxRoomPlayers = 2

// CardsPerPlayer is the hand size each player brings into a room.
const CardsPerPlayer = 3

type RoomPlayer struct {
	Address       string  `json:"address"`
	SelectedCards []Card  `json:"selectedCards"`
	StakeAmount   float64 `json:"stakeAmount"`
	JoinedAt      int64   `json:"joinedAt"`
	TotalPower    int     `json:"totalPower"`
	IsReady       bool    `json:"isReady"`
}

// Round is immutable once recorded. Cards are keyed by the normalized
// address of the player who played them; Winner holds the round winner's
// address.
type Round struct {
	Cards     map[string]Card `json:"cards"`
	Winner    string          `json:"winner"`
	Timestamp int64           `json:"timestamp"`
}

// BattleState is embedded in a room once both players are ready. Defeat
// counters and pending selections are keyed by normalized player address.
type BattleState struct {
	CurrentRound  int            `json:"currentRound"`
	DefeatedCount map[string]int `json:"defeatedCount"`
	Rounds        []Round        `json:"rounds"`
	PendingCards  map[string]int `json:"pendingCards,omitempty"`
	BattleStatus  BattleStatus   `json:"battleStatus"`
	Winner        string         `json:"winner,omitempty"`
	Message       string         `json:"message"`
}

type BattleResult struct {
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
}

// BattleRoom is owned exclusively by the room registry. Handlers only ever
// see deep-copied snapshots.
type BattleRoom struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	StakeAmount    float64       `json:"stakeAmount"`
	MaxPlayers     int           `json:"maxPlayers"`
	CurrentPlayers int           `json:"currentPlayers"`
	Players        []RoomPlayer  `json:"players"`
	Status         RoomStatus    `json:"status"`
	CreatedAt      int64         `json:"createdAt"`
	CreatedBy      string        `json:"createdBy"`
	BattleState    *BattleState  `json:"battleState,omitempty"`
	BattleResult   *BattleResult `json:"battleResult,omitempty"`
}

// NormalizeAddress canonicalizes a wallet address for comparisons and map
// keys. Addresses are case-insensitive.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// ShortAddress returns the display prefix used in human-readable messages
// (the original UI shows the first six characters of an address).
func ShortAddress(addr string) string {
	if len(addr) <= 6 {
		return addr
	}
	return addr[:6]
}

// FindPlayer returns the player with the given address, or nil.
func (r *BattleRoom) FindPlayer(addr string) *RoomPlayer {
	norm := NormalizeAddress(addr)
	for i := range r.Players {
		if r.Players[i].Address == norm {
			return &r.Players[i]
		}
	}
	return nil
}

// Opponent returns the other player in a two-player room, or nil when the
// room is not full yet.
func (r *BattleRoom) Opponent(addr string) *RoomPlayer {
	norm := NormalizeAddress(addr)
	for i := range r.Players {
		if r.Players[i].Address != norm {
			return &r.Players[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the room so callers never retain references
// into registry-owned state.
func (r *BattleRoom) Clone() *BattleRoom {
	out := *r
	out.Players = make([]RoomPlayer, len(r.Players))
	for i := range r.Players {
		out.Players[i] = r.Players[i]
		out.Players[i].SelectedCards = cloneCards(r.Players[i].SelectedCards)
	}
	if r.BattleState != nil {
		st := *r.BattleState
		st.DefeatedCount = cloneIntMap(r.BattleState.DefeatedCount)
		st.PendingCards = cloneIntMap(r.BattleState.PendingCards)
		st.Rounds = make([]Round, len(r.BattleState.Rounds))
		for i, rd := range r.BattleState.Rounds {
			st.Rounds[i] = rd
			st.Rounds[i].Cards = make(map[string]Card, len(rd.Cards))
			for k, v := range rd.Cards {
				c := v
				c.Traits = append([]string(nil), v.Traits...)
				st.Rounds[i].Cards[k] = c
			}
		}
		out.BattleState = &st
	}
	if r.BattleResult != nil {
		res := *r.BattleResult
		out.BattleResult = &res
	}
	return &out
}

func cloneCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		out[i] = c
		out[i].Traits = append([]string(nil), c.Traits...)
	}
	return out
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// TotalPower sums the powers of a hand at join time.
func TotalPower(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Power
	}
	return sum
}
