package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddharth-09/card-arena/internal/constants"
	"github.com/siddharth-09/card-arena/internal/game"
)

type CreateRoomPayload struct {
	PlayerAddress string      `json:"playerAddress"`
	StakeAmount   float64     `json:"stakeAmount"`
	SelectedCards []game.Card `json:"selectedCards"`
}

// CreateRoom opens a new battle room with the caller as its first player.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerAddress == "" || req.StakeAmount == 0 || req.SelectedCards == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingFields})
		return
	}
	room, err := h.svc.CreateRoom(req.PlayerAddress, req.StakeAmount, req.SelectedCards)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// ListRooms returns all rooms still accepting players.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListAvailableRooms())
}

// GetRoom returns a room snapshot by ID.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.svc.GetRoom(c.Param("roomID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type JoinRoomPayload struct {
	RoomID        string      `json:"roomId"`
	PlayerAddress string      `json:"playerAddress"`
	StakeAmount   float64     `json:"stakeAmount"`
	SelectedCards []game.Card `json:"selectedCards"`
}

// JoinRoom adds the caller as the second player of an open room.
func (h *RoomHandler) JoinRoom(c *gin.Context) {
	var req JoinRoomPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.RoomID == "" || req.PlayerAddress == "" || req.SelectedCards == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingFields})
		return
	}
	room, err := h.svc.JoinRoom(req.RoomID, req.PlayerAddress, req.StakeAmount, req.SelectedCards)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type ReadyPayload struct {
	RoomID        string `json:"roomId"`
	PlayerAddress string `json:"playerAddress"`
}

// MarkReady flags the caller ready; with both players ready the room
// transitions to battling.
func (h *RoomHandler) MarkReady(c *gin.Context) {
	var req ReadyPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.RoomID == "" || req.PlayerAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingFields})
		return
	}
	room, err := h.svc.MarkReady(req.RoomID, req.PlayerAddress)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type PlayCardPayload struct {
	RoomID        string `json:"roomId"`
	PlayerAddress string `json:"playerAddress"`
	// Pointer so index 0 is distinguishable from a missing field.
	CardIndex *int `json:"cardIndex"`
}

// PlayCard submits the caller's card for the current round.
func (h *RoomHandler) PlayCard(c *gin.Context) {
	var req PlayCardPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.RoomID == "" || req.PlayerAddress == "" || req.CardIndex == nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingFields})
		return
	}
	room, err := h.svc.PlayCard(req.RoomID, req.PlayerAddress, *req.CardIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type LeaveRoomPayload struct {
	RoomID        string `json:"roomId"`
	PlayerAddress string `json:"playerAddress"`
}

// LeaveRoom removes the caller from the room; an emptied room disappears.
func (h *RoomHandler) LeaveRoom(c *gin.Context) {
	var req LeaveRoomPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.RoomID == "" || req.PlayerAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrMissingFields})
		return
	}
	if err := h.svc.LeaveRoom(req.RoomID, req.PlayerAddress); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySuccess: true})
}
