package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает маршруты API. metrics может быть nil.
func NewRouter(h *Handler, metrics http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)
		r.Get("/catalog", h.CatalogHandler)
		// проекты
		r.Post("/projects/new", h.CreateProjectHandler)
		r.Get("/projects", h.GetProjectsHandler)
		r.Get("/projects/my", h.GetMyProjectsHandler)
		// предложения (bids)
		r.Post("/projects/{projectId}/bids", h.SubmitBidHandler)
		r.Put("/projects/{projectId}/bids/{bidId}/status", h.UpdateBidStatusHandler)
		r.Get("/bids/my", h.GetMyBidsHandler)
		// материалы и заказы
		r.Post("/materials/new", h.CreateMaterialHandler)
		r.Get("/materials", h.GetMaterialsHandler)
		r.Patch("/materials/{materialId}", h.UpdateMaterialHandler)
		r.Post("/materials/{materialId}/orders", h.PlaceOrderHandler)
		r.Get("/orders/my", h.GetMyOrdersHandler)
		r.Put("/orders/{orderId}/status", h.UpdateOrderStatusHandler)
	})
	return r
}
