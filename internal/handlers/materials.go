package handlers

import (
	"net/http"

	"buildmarket/internal/query"
	"buildmarket/internal/workflow"
	"buildmarket/models"

	"github.com/go-chi/chi/v5"
)

// CreateMaterialHandler обрабатывает POST /api/materials/new
func (h *Handler) CreateMaterialHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	var in workflow.MaterialInput
	if !decodeJSON(w, r, &in) {
		return
	}

	m, err := h.Engine.AddMaterial(r.Context(), actorID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// GetMaterialsHandler ищет материалы; ownerId или supplier дают вкладку "My Materials"
func (h *Handler) GetMaterialsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := query.MaterialFilter{
		Name:         q.Get("name"),
		Category:     q.Get("category"),
		Subcategory:  q.Get("subcategory"),
		Location:     q.Get("location"),
		Availability: q.Get("availability"),
		MinPrice:     q.Get("minPrice"),
		MaxPrice:     q.Get("maxPrice"),
		Supplier:     q.Get("supplier"),
		OwnerID:      q.Get("ownerId"),
	}

	materials, err := h.Store.ListMaterials(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	found, err := query.SearchMaterials(materials, f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// UpdateMaterialHandler обрабатывает PATCH /api/materials/{materialId}
func (h *Handler) UpdateMaterialHandler(w http.ResponseWriter, r *http.Request) {
	materialID := chi.URLParam(r, "materialId")

	var input struct {
		Price        string `json:"price"`
		MinimumOrder string `json:"minimumOrder"`
		Availability string `json:"availability"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	m, err := h.Engine.UpdateMaterial(r.Context(), materialID, input.Price, input.MinimumOrder, models.Availability(input.Availability))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// PlaceOrderHandler обрабатывает POST /api/materials/{materialId}/orders
func (h *Handler) PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
	materialID := chi.URLParam(r, "materialId")
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	var in workflow.OrderInput
	if !decodeJSON(w, r, &in) {
		return
	}

	o, err := h.Engine.PlaceOrder(r.Context(), materialID, actorID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
