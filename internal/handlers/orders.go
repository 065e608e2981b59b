package handlers

import (
	"net/http"
	"strings"

	"buildmarket/internal/query"
	"buildmarket/models"

	"github.com/go-chi/chi/v5"
)

// GetMyOrdersHandler возвращает заказы покупателя (actor) и/или поставщика (supplier)
func (h *Handler) GetMyOrdersHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	scope := query.OrderScope{
		ActorID:  strings.TrimSpace(q.Get("actor")),
		Supplier: strings.TrimSpace(q.Get("supplier")),
	}
	if scope.ActorID == "" && scope.Supplier == "" {
		http.Error(w, "Missing actor or supplier parameter", http.StatusBadRequest)
		return
	}

	orders, err := h.Store.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	found, err := query.MyOrders(orders, scope, q.Get("status"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// UpdateOrderStatusHandler обрабатывает PUT /api/orders/{orderId}/status
func (h *Handler) UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var input struct {
		Status string `json:"status"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if input.Status == "" {
		writeError(w, r, models.Missing("status"))
		return
	}

	o, err := h.Engine.TransitionOrderStatus(r.Context(), orderID, models.OrderStatus(input.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
