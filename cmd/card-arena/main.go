package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/siddharth-09/card-arena/internal/api"
	"github.com/siddharth-09/card-arena/internal/arena"
	"github.com/siddharth-09/card-arena/internal/cardpool"
	"github.com/siddharth-09/card-arena/internal/config"
	"github.com/siddharth-09/card-arena/internal/constants"
	"github.com/siddharth-09/card-arena/internal/engine"
	"github.com/siddharth-09/card-arena/internal/logging"
	"github.com/siddharth-09/card-arena/internal/service"
	"github.com/siddharth-09/card-arena/internal/storage"
)

func main() {
	_ = godotenv.Load()

	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./arena_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid arena configuration", err, logging.Fields{"config_path": configPath, "hint": "create an arena_config.json with a 'card_list' array of card objects (id,name,rarity,power,traits,image_url,description) and optional keys: server.address, database.path, room_ttl_minutes"})
	}

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	pool := cardpool.New(rand.NewSource(time.Now().UnixNano()), cfg.Cards)
	registry := arena.NewRegistry(func() *engine.Resolver {
		return engine.NewResolver(rand.NewSource(time.Now().UnixNano()), engine.RoomBattleVariance)
	}, nil)
	simulator := engine.NewResolver(rand.NewSource(time.Now().UnixNano()), engine.SimulationVariance)
	svc := service.NewRoomService(registry, repo, pool, simulator)
	handler := api.NewRoomHandler(svc)

	// Background reaper: removes rooms with no activity past the
	// configured TTL. Disabled when room_ttl_minutes is 0.
	if cfg.RoomTTL > 0 {
		go func() {
			ticker := time.NewTicker(time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				if n := registry.ReapIdle(cfg.RoomTTL); n > 0 {
					logging.Info("reaped idle rooms", logging.Fields{constants.LogFieldCount: n})
				}
			}
		}()
	}

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.POST(constants.RouteRooms, handler.CreateRoom)
		apiRoutes.GET(constants.RouteRooms, handler.ListRooms)
		apiRoutes.GET(constants.RouteRoomByID, handler.GetRoom)
		apiRoutes.POST(constants.RouteRoomJoin, handler.JoinRoom)
		apiRoutes.POST(constants.RouteRoomReady, handler.MarkReady)
		apiRoutes.POST(constants.RouteRoomPlayCard, handler.PlayCard)
		apiRoutes.POST(constants.RouteRoomLeave, handler.LeaveRoom)

		apiRoutes.GET(constants.RouteCardsDraw, handler.DrawCards)
		apiRoutes.POST(constants.RouteBattleSimulate, handler.SimulateBattle)
		apiRoutes.GET(constants.RouteLeaderboard, handler.Leaderboard)
		apiRoutes.POST(constants.RouteProfile, handler.UpdateProfile)
	}

	router.GET(constants.RouteHealth, api.Health)
	router.GET(constants.RouteVersion, api.Version)

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
