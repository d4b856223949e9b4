package arena

import (
	"errors"
	"fmt"
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/siddharth-09/card-arena/internal/engine"
	"github.com/siddharth-09/card-arena/internal/game"
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomFull            = errors.New("room is full")
	ErrRoomNotJoinable     = errors.New("room is no longer accepting players")
	ErrPlayerAlreadyInRoom = errors.New("player already in room")
	ErrPlayerNotInRoom     = errors.New("player not in room")
	ErrStakeMismatch       = errors.New("stake amount must match room stake")
	ErrInvalidCardCount    = errors.New("exactly 3 cards must be selected")
	ErrInvalidStake        = errors.New("stake amount must be positive")
	ErrBattleNotStarted    = errors.New("battle not in progress")
)

// Registry is the process-wide room store. The registry map is guarded by
// an RWMutex; every room additionally carries its own mutex so that
// read-modify-write operations on one room serialize, including two
// near-simultaneous play-card calls for the same round.
type Registry struct {
	mu          sync.RWMutex
	rooms       map[string]*roomEntry
	newResolver func() *engine.Resolver
	notifier    Notifier
}

type roomEntry struct {
	mu           sync.Mutex
	room         *game.BattleRoom
	resolver     *engine.Resolver
	lastActivity time.Time
	removed      bool
}

// NewRegistry builds a registry. newResolver is invoked once per battle so
// each room owns its resolver (a *rand.Rand must not be shared across
// rooms resolving concurrently). A nil notifier defaults to the polling
// no-op.
func NewRegistry(newResolver func() *engine.Resolver, notifier Notifier) *Registry {
	if notifier == nil {
		notifier = NoopNotifier()
	}
	return &Registry{
		rooms:       make(map[string]*roomEntry),
		newResolver: newResolver,
		notifier:    notifier,
	}
}

// CreateRoom opens a new room in waiting status with the creator as its
// only player.
func (r *Registry) CreateRoom(creator string, stake float64, cards []game.Card) (*game.BattleRoom, error) {
	if len(cards) != game.CardsPerPlayer {
		return nil, ErrInvalidCardCount
	}
	if stake <= 0 {
		return nil, ErrInvalidStake
	}

	addr := game.NormalizeAddress(creator)
	id := uuid.NewString()
	now := time.Now()
	room := &game.BattleRoom{
		ID:             id,
		Name:           "Battle Room " + id[len(id)-6:],
		StakeAmount:    stake,
		MaxPlayers:     game.MaxRoomPlayers,
		CurrentPlayers: 1,
		Players:        []game.RoomPlayer{newRoomPlayer(addr, stake, cards, now)},
		Status:         game.StatusWaiting,
		CreatedAt:      now.UnixMilli(),
		CreatedBy:      addr,
	}

	entry := &roomEntry{room: room, lastActivity: now}
	r.mu.Lock()
	r.rooms[id] = entry
	r.mu.Unlock()

	snap := room.Clone()
	r.notifier.RoomChanged(snap)
	return snap, nil
}

// AvailableRooms iterates over snapshots of rooms still accepting players
// (waiting status, below capacity). The sequence is restartable; iteration
// order is not guaranteed.
func (r *Registry) AvailableRooms() iter.Seq[*game.BattleRoom] {
	return func(yield func(*game.BattleRoom) bool) {
		r.mu.RLock()
		entries := make([]*roomEntry, 0, len(r.rooms))
		for _, e := range r.rooms {
			entries = append(entries, e)
		}
		r.mu.RUnlock()

		for _, e := range entries {
			e.mu.Lock()
			var snap *game.BattleRoom
			if !e.removed && e.room.Status == game.StatusWaiting && e.room.CurrentPlayers < e.room.MaxPlayers {
				snap = e.room.Clone()
			}
			e.mu.Unlock()
			if snap != nil && !yield(snap) {
				return
			}
		}
	}
}

// ListAvailableRooms collects AvailableRooms into a slice. Never fails:
// the UI renders an empty lobby rather than an error.
func (r *Registry) ListAvailableRooms() []*game.BattleRoom {
	out := []*game.BattleRoom{}
	for room := range r.AvailableRooms() {
		out = append(out, room)
	}
	return out
}

// GetRoom returns a snapshot of the room.
func (r *Registry) GetRoom(id string) (*game.BattleRoom, error) {
	var snap *game.BattleRoom
	err := r.withRoom(id, func(e *roomEntry) error {
		snap = e.room.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// JoinRoom appends a second player. The joining stake must equal the
// room's stake; reaching capacity transitions the room to ready.
func (r *Registry) JoinRoom(id, addr string, stake float64, cards []game.Card) (*game.BattleRoom, error) {
	if len(cards) != game.CardsPerPlayer {
		return nil, ErrInvalidCardCount
	}
	norm := game.NormalizeAddress(addr)

	var snap *game.BattleRoom
	err := r.withRoom(id, func(e *roomEntry) error {
		room := e.room
		if room.CurrentPlayers >= room.MaxPlayers {
			return ErrRoomFull
		}
		// A room whose battle has started (or ended by forfeit) never
		// accepts replacements; its battle state is keyed to the
		// original participants.
		if room.Status == game.StatusBattling || room.Status == game.StatusCompleted {
			return ErrRoomNotJoinable
		}
		if room.FindPlayer(norm) != nil {
			return ErrPlayerAlreadyInRoom
		}
		if stake != room.StakeAmount {
			return ErrStakeMismatch
		}

		room.Players = append(room.Players, newRoomPlayer(norm, stake, cards, time.Now()))
		room.CurrentPlayers = len(room.Players)
		if room.CurrentPlayers >= room.MaxPlayers {
			room.Status = game.StatusReady
		}
		e.lastActivity = time.Now()
		snap = room.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.notifier.RoomChanged(snap)
	return snap, nil
}

// MarkReady sets the player's ready flag. Once every seat is filled and
// ready, the room transitions to battling and a fresh battle state is
// initialized with a room-owned resolver.
func (r *Registry) MarkReady(id, addr string) (*game.BattleRoom, error) {
	norm := game.NormalizeAddress(addr)

	var snap *game.BattleRoom
	err := r.withRoom(id, func(e *roomEntry) error {
		room := e.room
		player := room.FindPlayer(norm)
		if player == nil {
			return ErrPlayerNotInRoom
		}
		player.IsReady = true

		if room.Status != game.StatusBattling && room.Status != game.StatusCompleted &&
			room.CurrentPlayers == room.MaxPlayers && allReady(room.Players) {
			room.Status = game.StatusBattling
			room.BattleState = engine.NewBattleState(&room.Players[0], &room.Players[1])
			e.resolver = r.newResolver()
		}
		e.lastActivity = time.Now()
		snap = room.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.notifier.RoomChanged(snap)
	return snap, nil
}

// PlayCard submits addr's card index for the current round. When the
// battle completes, the room moves to its terminal completed status and
// the battle result is recorded on the room. The returned bool reports
// completion by this call.
func (r *Registry) PlayCard(id, addr string, cardIndex int) (*game.BattleRoom, bool, error) {
	norm := game.NormalizeAddress(addr)

	var snap *game.BattleRoom
	completed := false
	err := r.withRoom(id, func(e *roomEntry) error {
		room := e.room
		if room.BattleState == nil || e.resolver == nil {
			return ErrBattleNotStarted
		}
		if room.FindPlayer(norm) == nil {
			return ErrPlayerNotInRoom
		}
		if room.BattleState.BattleStatus == game.BattleCompleted {
			return engine.ErrBattleAlreadyCompleted
		}
		if len(room.Players) < game.MaxRoomPlayers {
			return ErrBattleNotStarted
		}

		_, err := engine.SubmitCard(room.BattleState, &room.Players[0], &room.Players[1], norm, cardIndex, e.resolver)
		if err != nil {
			return err
		}

		if room.BattleState.BattleStatus == game.BattleCompleted && room.Status != game.StatusCompleted {
			room.Status = game.StatusCompleted
			winner := room.BattleState.Winner
			loser := room.Opponent(winner).Address
			room.BattleResult = &game.BattleResult{Winner: winner, Loser: loser}
			completed = true
		}
		e.lastActivity = time.Now()
		snap = room.Clone()
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	r.notifier.RoomChanged(snap)
	return snap, completed, nil
}

// LeaveRoom removes the player. Abandoning a live battle forfeits it: the
// remaining player wins, the room moves to completed and the returned bool
// reports that forfeit so the caller can persist the result. A room left
// empty is deleted immediately; nothing is archived.
func (r *Registry) LeaveRoom(id, addr string) (*game.BattleRoom, bool, error) {
	norm := game.NormalizeAddress(addr)

	var snap *game.BattleRoom
	empty := false
	forfeited := false
	err := r.withRoom(id, func(e *roomEntry) error {
		room := e.room
		idx := -1
		for i := range room.Players {
			if room.Players[i].Address == norm {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrPlayerNotInRoom
		}

		if room.Status == game.StatusBattling && room.BattleState != nil {
			if winner := room.Opponent(norm); winner != nil {
				room.BattleState.BattleStatus = game.BattleCompleted
				room.BattleState.Winner = winner.Address
				room.BattleState.Message = fmt.Sprintf("%s won the battle! Opponent left.", game.ShortAddress(winner.Address))
				room.Status = game.StatusCompleted
				room.BattleResult = &game.BattleResult{Winner: winner.Address, Loser: norm}
				forfeited = true
			}
		}

		room.Players = append(room.Players[:idx], room.Players[idx+1:]...)
		room.CurrentPlayers = len(room.Players)
		e.lastActivity = time.Now()
		if room.CurrentPlayers == 0 {
			e.removed = true
			empty = true
		}
		snap = room.Clone()
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if empty {
		r.remove(id)
		r.notifier.RoomRemoved(id)
	} else {
		r.notifier.RoomChanged(snap)
	}
	return snap, forfeited, nil
}

// ReapIdle removes rooms with no activity for at least ttl and returns how
// many were removed. Battles have no built-in round timeout, so this is
// the hook a deployment uses to clear abandoned rooms; it only runs when
// wired to a ticker in main.
func (r *Registry) ReapIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	r.mu.RLock()
	ids := make([]string, 0, len(r.rooms))
	for id := range r.rooms {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	reaped := 0
	for _, id := range ids {
		stale := false
		err := r.withRoom(id, func(e *roomEntry) error {
			if e.lastActivity.Before(cutoff) {
				e.removed = true
				stale = true
			}
			return nil
		})
		if err == nil && stale {
			r.remove(id)
			r.notifier.RoomRemoved(id)
			reaped++
		}
	}
	return reaped
}

// RoomCount reports the number of live rooms.
func (r *Registry) RoomCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms)
}

// withRoom runs fn with the room's mutex held. Entries flagged removed
// behave as missing: a concurrent caller that grabbed the entry before
// deletion still observes not-found.
func (r *Registry) withRoom(id string, fn func(e *roomEntry) error) error {
	r.mu.RLock()
	e, ok := r.rooms[id]
	r.mu.RUnlock()
	if !ok {
		return ErrRoomNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.removed {
		return ErrRoomNotFound
	}
	return fn(e)
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	delete(r.rooms, id)
	r.mu.Unlock()
}

func newRoomPlayer(addr string, stake float64, cards []game.Card, now time.Time) game.RoomPlayer {
	owned := make([]game.Card, len(cards))
	for i, c := range cards {
		owned[i] = c
		owned[i].Traits = append([]string(nil), c.Traits...)
	}
	return game.RoomPlayer{
		Address:       addr,
		SelectedCards: owned,
		StakeAmount:   stake,
		JoinedAt:      now.UnixMilli(),
		TotalPower:    game.TotalPower(owned),
		IsReady:       false,
	}
}

func allReady(players []game.RoomPlayer) bool {
	for i := range players {
		if !players[i].IsReady {
			return false
		}
	}
	return true
}
