package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/artifyai/storefront/internal/apperror"
	"github.com/artifyai/storefront/internal/model"
	"github.com/artifyai/storefront/internal/service"
)

// OrderHandler exposes print orders over HTTP.
type OrderHandler struct {
	orders *service.OrderService
	logger *slog.Logger
}

func NewOrderHandler(orders *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, logger: logger}
}

// HandleCreate places an order.
//
// HTTP: POST /api/orders
// REQUEST BODY: {"userId":1, "artworkId":2, "size":"large", "frame":"black", "price":8999}
func (h *OrderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in model.InsertOrder
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.logger.Warn("invalid order JSON", slog.String("error", err.Error()))
		writeError(w, apperror.ValidationFailed("Invalid order data", nil), "")
		return
	}

	order, err := h.orders.Create(r.Context(), in)
	if err != nil {
		writeError(w, err, "Failed to create order")
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// HandleListForUser returns a user's order history, oldest first.
//
// HTTP: GET /api/orders/{userId}
//
// A non-numeric userId matches no orders and yields an empty array.
func (h *OrderHandler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		writeJSON(w, http.StatusOK, []model.Order{})
		return
	}

	orders, err := h.orders.UserOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Failed to fetch orders")
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
