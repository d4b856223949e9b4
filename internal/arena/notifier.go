package arena

import "github.com/siddharth-09/card-arena/internal/game"

// Notifier receives room change events. Clients currently discover state
// by polling, so the default implementation does nothing; a push transport
// (websocket, SSE) can be plugged in here without touching the registry or
// the battle state machine.
type Notifier interface {
	RoomChanged(room *game.BattleRoom)
	RoomRemoved(roomID string)
}

type noopNotifier struct{}

func (noopNotifier) RoomChanged(*game.BattleRoom) {}
func (noopNotifier) RoomRemoved(string)           {}

// NoopNotifier returns the do-nothing notifier used by the polling
// transport.
func NoopNotifier() Notifier { return noopNotifier{} }
