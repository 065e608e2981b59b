package handlers

import (
	"net/http"

	"buildmarket/internal/query"
	"buildmarket/internal/workflow"
)

// CreateProjectHandler обрабатывает POST /api/projects/new
func (h *Handler) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	var in workflow.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}

	p, err := h.Engine.CreateProject(r.Context(), actorID, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetProjectsHandler ищет проекты по title, location, type, status и диапазону бюджета
func (h *Handler) GetProjectsHandler(w http.ResponseWriter, r *http.Request) {
	h.searchProjects(w, r, projectFilter(r))
}

// GetMyProjectsHandler возвращает проекты текущего застройщика
func (h *Handler) GetMyProjectsHandler(w http.ResponseWriter, r *http.Request) {
	actorID, ok := actor(w, r)
	if !ok {
		return
	}
	f := projectFilter(r)
	f.OwnerID = actorID
	h.searchProjects(w, r, f)
}

func (h *Handler) searchProjects(w http.ResponseWriter, r *http.Request, f query.ProjectFilter) {
	projects, err := h.Store.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	found, err := query.SearchProjects(projects, f)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

func projectFilter(r *http.Request) query.ProjectFilter {
	q := r.URL.Query()
	return query.ProjectFilter{
		Title:     q.Get("title"),
		Location:  q.Get("location"),
		Type:      q.Get("type"),
		MinBudget: q.Get("minBudget"),
		MaxBudget: q.Get("maxBudget"),
		Status:    q.Get("status"),
	}
}
