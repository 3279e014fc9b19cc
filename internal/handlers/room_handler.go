package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"hotel-backend/internal/models"
	"hotel-backend/internal/repositories"
	"hotel-backend/pkg/utils"
)

type RoomHandler struct {
	Rooms *repositories.RoomRepository
}

func NewRoomHandler(rooms *repositories.RoomRepository) *RoomHandler {
	return &RoomHandler{Rooms: rooms}
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Number == "" || req.RoomTypeID == 0 {
		utils.Error(w, http.StatusBadRequest, "Room number and type are required")
		return
	}

	room := &models.Room{
		Number:     req.Number,
		RoomTypeID: req.RoomTypeID,
		Tariff:     req.Tariff,
	}
	if err := h.Rooms.Create(context.Background(), room); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, room)
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	room, err := h.Rooms.Get(context.Background(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Room not found")
		return
	}
	utils.JSON(w, http.StatusOK, room)
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.List(context.Background())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var req models.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Rooms.Update(context.Background(), id, &req); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	room, err := h.Rooms.Get(context.Background(), id)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Room not found")
		return
	}
	utils.JSON(w, http.StatusOK, room)
}

func (h *RoomHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Rooms.ListRoomTypes(context.Background())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, types)
}
