package handlers

import (
	"net/http"

	"buildmarket/internal/query"
	"buildmarket/internal/workflow"
	"buildmarket/models"

	"github.com/go-chi/chi/v5"
)

type submitBidResponse struct {
	Bid      models.Bid         `json:"bid"`
	Warnings []workflow.Warning `json:"warnings"`
}

// SubmitBidHandler обрабатывает POST /api/projects/{projectId}/bids
func (h *Handler) SubmitBidHandler(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	var in workflow.BidInput
	if !decodeJSON(w, r, &in) {
		return
	}

	bid, res, err := h.Engine.SubmitBid(r.Context(), projectID, actorID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	warnings := res.Warnings
	if warnings == nil {
		warnings = []workflow.Warning{}
	}
	writeJSON(w, http.StatusOK, submitBidResponse{Bid: bid, Warnings: warnings})
}

// UpdateBidStatusHandler обрабатывает PUT /api/projects/{projectId}/bids/{bidId}/status
func (h *Handler) UpdateBidStatusHandler(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "projectId")
	bidID := chi.URLParam(r, "bidId")

	var input struct {
		Status string `json:"status"`
		Note   string `json:"note"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	if input.Status == "" {
		writeError(w, r, models.Missing("status"))
		return
	}

	bid, err := h.Engine.TransitionBidStatus(r.Context(), projectID, bidID, models.BidStatus(input.Status), input.Note)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bid)
}

// GetMyBidsHandler возвращает предложения пользователя, фильтр по status
func (h *Handler) GetMyBidsHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	projects, err := h.Store.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	bids, err := query.MyBids(projects, actorID, r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bids)
}
