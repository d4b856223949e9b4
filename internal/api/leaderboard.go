package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siddharth-09/card-arena/internal/constants"
	"github.com/siddharth-09/card-arena/internal/logging"
	"github.com/siddharth-09/card-arena/internal/service"
)

// Leaderboard returns either one player's stats (?player=address) or the
// global top list (?limit=N, default 50).
func (h *RoomHandler) Leaderboard(c *gin.Context) {
	if addr := c.Query("player"); addr != "" {
		stats, err := h.svc.PlayerStats(addr)
		if err != nil {
			logging.Warn("failed to fetch player stats", logging.Fields{constants.LogFieldAddr: addr})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchStats})
			return
		}
		c.JSON(http.StatusOK, stats)
		return
	}

	limit := 50
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	entries, err := h.svc.Leaderboard(limit)
	if err != nil {
		logging.Warn("failed to fetch leaderboard", logging.Fields{constants.LogFieldCount: limit})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type ProfilePayload struct {
	PlayerAddress string `json:"playerAddress"`
	Username      string `json:"username"`
}

// UpdateProfile sets the display name used on the leaderboard.
func (h *RoomHandler) UpdateProfile(c *gin.Context) {
	var req ProfilePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerAddress == "" || req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingFields})
		return
	}
	if err := h.svc.SetUsername(req.PlayerAddress, req.Username); err != nil {
		if err == service.ErrInvalidUsername {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrInternal})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySuccess: true})
}
