package api

import "github.com/siddharth-09/card-arena/internal/service"

// RoomHandler groups all room and battle HTTP handlers.
type RoomHandler struct {
	svc *service.RoomService
}

func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{svc: svc}
}
