package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"hotel-backend/internal/cache"
	"hotel-backend/internal/models"
	"hotel-backend/internal/services"
	"hotel-backend/pkg/utils"
)

type FoodHandler struct {
	Food *services.FoodService
}

func NewFoodHandler(food *services.FoodService) *FoodHandler {
	return &FoodHandler{Food: food}
}

func (h *FoodHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.Error(w, http.StatusBadRequest, "Item name is required")
		return
	}

	item, err := h.Food.CreateItem(context.Background(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	cache.InvalidateMenu(context.Background())
	utils.JSON(w, http.StatusCreated, item)
}

// ListItems serves the menu, cached briefly since it rarely changes.
func (h *FoodHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()
	if data, ok := cache.GetCached(ctx, cache.MenuKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	items, err := h.Food.ListItems(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if data, err := json.Marshal(items); err == nil {
		cache.SetCached(ctx, cache.MenuKey, data, 10*time.Minute)
	}
	utils.JSON(w, http.StatusOK, items)
}

func (h *FoodHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFoodOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.Food.PlaceOrder(context.Background(), &req)
	if errors.Is(err, services.ErrEmptyOrder) {
		utils.Error(w, http.StatusBadRequest, "Order has no items")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusCreated, order)
}

// ListUnbilled returns a booking's food orders not yet on any invoice.
func (h *FoodHandler) ListUnbilled(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	orders, err := h.Food.ListUnbilled(context.Background(), bookingID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, orders)
}

// KitchenTicket prints an order for the kitchen. Used by the chef station.
func (h *FoodHandler) KitchenTicket(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}
	orderID, err := strconv.Atoi(mux.Vars(r)["orderId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	orders, err := h.Food.ListUnbilled(context.Background(), bookingID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	for _, order := range orders {
		if order.ID == orderID {
			booking, err := h.Food.Bookings.Get(context.Background(), bookingID)
			roomNumber := ""
			if err == nil {
				roomNumber = booking.RoomNumber
			}
			ticket, err := h.Food.KitchenTicket(order, roomNumber)
			if err != nil {
				utils.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
			utils.PDF(w, "kitchen-order-"+strconv.Itoa(order.ID)+".pdf", ticket)
			return
		}
	}
	utils.Error(w, http.StatusNotFound, "Order not found")
}
