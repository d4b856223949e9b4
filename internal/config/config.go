package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/siddharth-09/card-arena/internal/game"
)

type cardEntry struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Rarity      string   `json:"rarity"`
	Power       int      `json:"power"`
	Traits      []string `json:"traits"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
}

type rawConfig struct {
	CardList []cardEntry `json:"card_list"`
	Server   *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	// Rooms with no activity for this many minutes are removed by the
	// idle reaper. 0 (or omitted) disables reaping entirely.
	RoomTTLMinutes int `json:"room_ttl_minutes"`
}

// LoadedConfig contains the card pool to seed and server settings.
type LoadedConfig struct {
	Cards         []game.Card
	ServerAddress string
	DatabasePath  string
	RoomTTL       time.Duration
}

var validRarities = map[game.Rarity]bool{
	game.RarityCommon:    true,
	game.RarityRare:      true,
	game.RarityLegendary: true,
}

// LoadConfig reads the configuration file at path. It requires a non-empty
// `card_list` with unique names, known rarities and positive powers.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.CardList) == 0 {
		return nil, fmt.Errorf("config file %s: card_list is empty (provide a 'card_list' array)", path)
	}

	out := make([]game.Card, 0, len(rc.CardList))
	nameSet := make(map[string]struct{}, len(rc.CardList))
	for _, c := range rc.CardList {
		if c.Name == "" {
			return nil, fmt.Errorf("config file %s: card entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(c.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate card name '%s'", path, c.Name)
		}
		nameSet[ln] = struct{}{}
		rarity := game.Rarity(strings.ToLower(strings.TrimSpace(c.Rarity)))
		if !validRarities[rarity] {
			return nil, fmt.Errorf("config file %s: card '%s' has unknown rarity '%s'", path, c.Name, c.Rarity)
		}
		if c.Power <= 0 {
			return nil, fmt.Errorf("config file %s: card '%s' must have a positive power", path, c.Name)
		}
		out = append(out, game.Card{
			ID:          c.ID,
			Name:        c.Name,
			Rarity:      rarity,
			Power:       c.Power,
			Traits:      c.Traits,
			ImageURL:    c.ImageURL,
			Description: c.Description,
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	dbPath := "./data/arena.db"
	if rc.Database != nil && rc.Database.Path != "" {
		dbPath = rc.Database.Path
	}
	if rc.RoomTTLMinutes < 0 {
		return nil, fmt.Errorf("config file %s: room_ttl_minutes must not be negative", path)
	}

	return &LoadedConfig{
		Cards:         out,
		ServerAddress: addr,
		DatabasePath:  dbPath,
		RoomTTL:       time.Duration(rc.RoomTTLMinutes) * time.Minute,
	}, nil
}
