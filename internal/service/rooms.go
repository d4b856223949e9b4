package service

import (
	"github.com/siddharth-09/card-arena/internal/arena"
	"github.com/siddharth-09/card-arena/internal/cardpool"
	"github.com/siddharth-09/card-arena/internal/constants"
	"github.com/siddharth-09/card-arena/internal/engine"
	"github.com/siddharth-09/card-arena/internal/game"
	"github.com/siddharth-09/card-arena/internal/logging"
)

// StatsRepo is the minimal repository surface the room service needs.
type StatsRepo interface {
	RecordBattleResult(rec *game.BattleRecord) error
	GetStatsByAddress(address string) (*game.PlayerProfile, error)
	GetTopPlayers(limit int) ([]game.PlayerProfile, error)
	UpsertProfile(address, username string) error
}

// RoomService exposes the registry as request-level operations and records
// finished battles into persistent storage.
type RoomService struct {
	registry  *arena.Registry
	repo      StatsRepo
	pool      *cardpool.Pool
	simulator *engine.Resolver
}

func NewRoomService(registry *arena.Registry, repo StatsRepo, pool *cardpool.Pool, simulator *engine.Resolver) *RoomService {
	return &RoomService{registry: registry, repo: repo, pool: pool, simulator: simulator}
}

func (s *RoomService) CreateRoom(creator string, stake float64, cards []game.Card) (*game.BattleRoom, error) {
	return s.registry.CreateRoom(creator, stake, cards)
}

func (s *RoomService) ListAvailableRooms() []*game.BattleRoom {
	return s.registry.ListAvailableRooms()
}

func (s *RoomService) GetRoom(id string) (*game.BattleRoom, error) {
	return s.registry.GetRoom(id)
}

func (s *RoomService) JoinRoom(id, addr string, stake float64, cards []game.Card) (*game.BattleRoom, error) {
	return s.registry.JoinRoom(id, addr, stake, cards)
}

func (s *RoomService) MarkReady(id, addr string) (*game.BattleRoom, error) {
	return s.registry.MarkReady(id, addr)
}

// PlayCard submits a card for the in-flight round. When this submission
// completes the battle, the result is persisted; a storage failure is
// logged but never surfaced, the battle outcome already happened.
func (s *RoomService) PlayCard(id, addr string, cardIndex int) (*game.BattleRoom, error) {
	room, completed, err := s.registry.PlayCard(id, addr, cardIndex)
	if err != nil {
		return nil, err
	}
	if completed {
		s.recordResult(room)
	}
	return room, nil
}

// LeaveRoom removes the player. Leaving a live battle forfeits it and the
// forfeit is persisted like any other completed battle.
func (s *RoomService) LeaveRoom(id, addr string) error {
	room, forfeited, err := s.registry.LeaveRoom(id, addr)
	if err != nil {
		return err
	}
	if forfeited {
		s.recordResult(room)
	}
	return nil
}

func (s *RoomService) recordResult(room *game.BattleRoom) {
	if room.BattleResult == nil {
		return
	}
	rec := &game.BattleRecord{
		RoomID:        room.ID,
		WinnerAddress: room.BattleResult.Winner,
		LoserAddress:  room.BattleResult.Loser,
		StakeAmount:   room.StakeAmount,
		RoundsPlayed:  len(room.BattleState.Rounds),
	}
	if err := s.repo.RecordBattleResult(rec); err != nil {
		logging.Error("failed to record battle result", err, logging.Fields{
			constants.LogFieldRoomID: room.ID,
			constants.LogFieldWinner: rec.WinnerAddress,
			constants.LogFieldLoser:  rec.LoserAddress,
		})
	}
}

// DrawCards mints count cards from the rarity-weighted pool.
func (s *RoomService) DrawCards(count int) []game.Card {
	return s.pool.DrawHand(count)
}

// SimulateBattle runs the practice path: the player's hand against a
// uniformly drawn opponent hand, whole-hand totals with per-card variance.
func (s *RoomService) SimulateBattle(playerCards []game.Card) (*engine.SimulationResult, error) {
	if len(playerCards) != game.CardsPerPlayer {
		return nil, arena.ErrInvalidCardCount
	}
	opponent := s.pool.RandomHand(game.CardsPerPlayer)
	result := s.simulator.Simulate(playerCards, opponent)
	return &result, nil
}
