package constants

// Environment variable keys
const (
	EnvConfigPath = "ARENA_CONFIG"
	EnvDBPath     = "ARENA_DB"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteRooms          = "/rooms"
	RouteRoomByID       = "/rooms/:roomID"
	RouteRoomJoin       = "/rooms/join"
	RouteRoomReady      = "/rooms/ready"
	RouteRoomPlayCard   = "/rooms/play-card"
	RouteRoomLeave      = "/rooms/leave"
	RouteCardsDraw      = "/cards/draw"
	RouteBattleSimulate = "/battles/simulate"
	RouteLeaderboard    = "/leaderboard"
	RouteProfile        = "/profile"
	RouteHealth         = "/health"
	RouteVersion        = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeySuccess = "success"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrMissingFields       = "Missing required fields"
	ErrRoomNotFound        = "Room not found"
	ErrRoomFull            = "Room is full"
	ErrRoomNotJoinable     = "Room is not accepting new players"
	ErrPlayerAlreadyInRoom = "Player already in room"
	ErrPlayerNotInRoom     = "Player not in room"
	ErrStakeMismatch       = "Stake amount must match room stake"
	ErrInvalidCardCount    = "Exactly 3 cards must be selected"
	ErrInvalidStake        = "Stake amount must be positive"
	ErrInvalidCardIndex    = "Invalid card selection"
	ErrBattleCompleted     = "Battle already completed"
	ErrBattleNotStarted    = "Battle not in progress"

	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchStats       = "Failed to fetch player stats"
	ErrInternal               = "Internal server error"
)

// Logging field names
const (
	LogFieldAddr   = "addr"
	LogFieldRoomID = "room_id"
	LogFieldWinner = "winner"
	LogFieldLoser  = "loser"
	LogFieldCount  = "count"
)
