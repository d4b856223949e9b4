package service

import (
	"errors"
	"math"
	"strings"

	"github.com/siddharth-09/card-arena/internal/game"
)

var ErrInvalidUsername = errors.New("username must not be empty")

// PlayerStatsView is the leaderboard/profile shape consumed by the UI.
type PlayerStatsView struct {
	Rank     int     `json:"rank,omitempty"`
	Address  string  `json:"address"`
	Username string  `json:"username,omitempty"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Earnings float64 `json:"earnings"`
	WinRate  float64 `json:"winRate"`
}

// PlayerStats returns aggregate stats for one address. Unknown players get
// zero-valued stats rather than an error so the UI can always render a
// profile.
func (s *RoomService) PlayerStats(address string) (*PlayerStatsView, error) {
	p, err := s.repo.GetStatsByAddress(address)
	if err != nil {
		return nil, err
	}
	v := statsView(p)
	return &v, nil
}

// Leaderboard returns the top players ranked by wins then earnings.
func (s *RoomService) Leaderboard(limit int) ([]PlayerStatsView, error) {
	players, err := s.repo.GetTopPlayers(limit)
	if err != nil {
		return nil, err
	}
	out := make([]PlayerStatsView, len(players))
	for i, p := range players {
		out[i] = statsView(&p)
		out[i].Rank = i + 1
	}
	return out, nil
}

// SetUsername stores the display name shown on the leaderboard for an
// address, creating the profile if the player has no battles yet.
func (s *RoomService) SetUsername(address, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrInvalidUsername
	}
	return s.repo.UpsertProfile(address, username)
}

func statsView(p *game.PlayerProfile) PlayerStatsView {
	total := p.Wins + p.Losses
	rate := 0.0
	if total > 0 {
		rate = math.Round(float64(p.Wins)/float64(total)*100*100) / 100
	}
	return PlayerStatsView{
		Address:  p.Address,
		Username: p.Username,
		Wins:     p.Wins,
		Losses:   p.Losses,
		Earnings: p.Earnings,
		WinRate:  rate,
	}
}
