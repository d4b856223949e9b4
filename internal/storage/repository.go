package storage

import "github.com/siddharth-09/card-arena/internal/game"

// Repository persists cross-session player statistics and battle history.
// Battle rooms themselves live only in memory; this layer records what
// outlives a room.
type Repository interface {
	// RecordBattleResult stores the battle record and applies the
	// win/loss/earnings deltas to both players' profiles atomically.
	RecordBattleResult(rec *game.BattleRecord) error
	// GetStatsByAddress returns the player's profile, or a zero-valued
	// profile when the address has never finished a battle.
	GetStatsByAddress(address string) (*game.PlayerProfile, error)
	// GetTopPlayers returns players with at least one win, ordered by
	// wins then earnings, both descending.
	GetTopPlayers(limit int) ([]game.PlayerProfile, error)
	// UpsertProfile creates or updates a player's display name.
	UpsertProfile(address, username string) error
}
