package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddharth-09/card-arena/internal/arena"
	"github.com/siddharth-09/card-arena/internal/constants"
	"github.com/siddharth-09/card-arena/internal/engine"
)

// respondError maps service/arena errors onto the API taxonomy:
// 400 invalid input, 404 not found, 409 conflict, 500 everything else.
func respondError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, constants.ErrInternal
	switch {
	case errors.Is(err, arena.ErrInvalidCardCount):
		status, msg = http.StatusBadRequest, constants.ErrInvalidCardCount
	case errors.Is(err, arena.ErrInvalidStake):
		status, msg = http.StatusBadRequest, constants.ErrInvalidStake
	case errors.Is(err, arena.ErrRoomNotFound):
		status, msg = http.StatusNotFound, constants.ErrRoomNotFound
	case errors.Is(err, arena.ErrPlayerNotInRoom), errors.Is(err, engine.ErrPlayerNotInBattle):
		status, msg = http.StatusNotFound, constants.ErrPlayerNotInRoom
	case errors.Is(err, arena.ErrRoomFull):
		status, msg = http.StatusConflict, constants.ErrRoomFull
	case errors.Is(err, arena.ErrRoomNotJoinable):
		status, msg = http.StatusConflict, constants.ErrRoomNotJoinable
	case errors.Is(err, arena.ErrPlayerAlreadyInRoom):
		status, msg = http.StatusConflict, constants.ErrPlayerAlreadyInRoom
	case errors.Is(err, arena.ErrStakeMismatch):
		status, msg = http.StatusConflict, constants.ErrStakeMismatch
	case errors.Is(err, arena.ErrBattleNotStarted):
		status, msg = http.StatusConflict, constants.ErrBattleNotStarted
	case errors.Is(err, engine.ErrInvalidCardIndex):
		status, msg = http.StatusConflict, constants.ErrInvalidCardIndex
	case errors.Is(err, engine.ErrBattleAlreadyCompleted):
		status, msg = http.StatusConflict, constants.ErrBattleCompleted
	}
	c.JSON(status, gin.H{constants.JSONKeyError: msg})
}
