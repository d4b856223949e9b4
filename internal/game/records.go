package game

import "gorm.io/gorm"

// PlayerProfile stores a player's cross-session aggregate stats. Profiles
// are created lazily the first time a player finishes a battle.
type PlayerProfile struct {
	gorm.Model
	Address  string  `gorm:"uniqueIndex" json:"address"`
	Username string  `json:"username"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Earnings float64 `json:"earnings"`
}

func (PlayerProfile) TableName() string { return "player_profiles" }

// BattleRecord is the persisted outcome of a completed room battle.
type BattleRecord struct {
	gorm.Model
	RoomID        string  `gorm:"index" json:"roomId"`
	WinnerAddress string  `gorm:"index" json:"winnerAddress"`
	LoserAddress  string  `gorm:"index" json:"loserAddress"`
	StakeAmount   float64 `json:"stakeAmount"`
	RoundsPlayed  int     `json:"roundsPlayed"`
}

func (BattleRecord) TableName() string { return "battle_records" }
