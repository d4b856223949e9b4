package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siddharth-09/card-arena/internal/constants"
	"github.com/siddharth-09/card-arena/internal/game"
)

const maxDrawCount = 10

// DrawCards mints cards from the rarity-weighted pool. ?count=N, default 3.
func (h *RoomHandler) DrawCards(c *gin.Context) {
	count := game.CardsPerPlayer
	if s := c.Query("count"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxDrawCount {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
			return
		}
		count = n
	}
	c.JSON(http.StatusOK, h.svc.DrawCards(count))
}

type SimulatePayload struct {
	PlayerCards []game.Card `json:"playerCards"`
}

// SimulateBattle runs a practice battle against a randomly drawn opponent
// hand.
func (h *RoomHandler) SimulateBattle(c *gin.Context) {
	var req SimulatePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerCards == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingFields})
		return
	}
	result, err := h.svc.SimulateBattle(req.PlayerCards)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
