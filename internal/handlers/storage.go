package handlers

import (
	"context"

	"buildmarket/internal/catalog"
	"buildmarket/internal/workflow"
	"buildmarket/models"
)

// Workflow is the command side the handlers drive.
type Workflow interface {
	Catalog() *catalog.Catalog

	CreateProject(ctx context.Context, actorID string, in workflow.ProjectInput) (models.Project, error)
	SubmitBid(ctx context.Context, projectID, actorID string, in workflow.BidInput) (models.Bid, workflow.Result, error)
	TransitionBidStatus(ctx context.Context, projectID, bidID string, status models.BidStatus, note string) (models.Bid, error)

	AddMaterial(ctx context.Context, actorID string, in workflow.MaterialInput) (models.Material, error)
	UpdateMaterial(ctx context.Context, materialID, price, minimumOrder string, availability models.Availability) (models.Material, error)

	PlaceOrder(ctx context.Context, materialID, actorID string, in workflow.OrderInput) (models.Order, error)
	TransitionOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error)
}

// StorageInterface is the read side used by the search handlers.
type StorageInterface interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListMaterials(ctx context.Context) ([]models.Material, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}
