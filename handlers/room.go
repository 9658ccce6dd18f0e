package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"roomify/models"
	"roomify/services/room"
	"roomify/utils"
)

// RoomHandler exposes the room directory and the availability collaborator.
type RoomHandler struct {
	Svc    room.RoomService
	Logger *zap.Logger
}

// NewRoomHandler creates a new RoomHandler instance.
func NewRoomHandler(svc room.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Svc: svc, Logger: logger}
}

// GetRooms lists the room inventory.
func (h *RoomHandler) GetRooms(c *gin.Context) {
	rooms, err := h.Svc.GetRooms(c.Request.Context())
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, rooms)
}

// CreateRoom adds a room to the inventory.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req models.Room
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	created, err := h.Svc.CreateRoom(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}

	h.Logger.Info("room created", zap.String("roomNumber", created.RoomNumber))
	utils.JSONData(c, http.StatusCreated, created)
}

// GetRoom fetches a room by its business key.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	r, err := h.Svc.GetRoom(c.Request.Context(), c.Param("roomNumber"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, r)
}

// UpdateRoom edits room fields other than availability.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var req models.Room
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input: "+err.Error())
		return
	}

	updated, err := h.Svc.UpdateRoom(c.Request.Context(), c.Param("roomNumber"), req)
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, updated)
}

// DeleteRoom removes a room from the inventory.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomNumber := c.Param("roomNumber")
	if err := h.Svc.DeleteRoom(c.Request.Context(), roomNumber); err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}

	h.Logger.Info("room deleted", zap.String("roomNumber", roomNumber))
	utils.JSONMessage(c, http.StatusOK, "room deleted")
}

// MarkRoomAsBooked sets availability=false. Idempotent.
func (h *RoomHandler) MarkRoomAsBooked(c *gin.Context) {
	r, err := h.Svc.MarkRoomAsBooked(c.Request.Context(), c.Param("roomNumber"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, r)
}

// MarkRoomAsAvailable sets availability=true. Idempotent.
func (h *RoomHandler) MarkRoomAsAvailable(c *gin.Context) {
	r, err := h.Svc.MarkRoomAsAvailable(c.Request.Context(), c.Param("roomNumber"))
	if err != nil {
		utils.JSONError(c, utils.HTTPStatus(err), err.Error())
		return
	}
	utils.JSONData(c, http.StatusOK, r)
}
