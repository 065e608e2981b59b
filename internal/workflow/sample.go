package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"buildmarket/models"
)

// SeedSampleData installs the demo projects and materials into collections
// that are still empty.
func (e *Engine) SeedSampleData(ctx context.Context) error {
	now := e.now()

	projects, err := e.store.ListProjects(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		for _, p := range sampleProjects() {
			p.ID = uuid.NewString()
			p.Status = models.ProjectOpen
			p.DatePosted = now
			p.Bids = []models.Bid{}
			if err := e.store.AddProject(ctx, p); err != nil {
				return fmt.Errorf("seed project %q: %w", p.Title, err)
			}
		}
	}

	materials, err := e.store.ListMaterials(ctx)
	if err != nil {
		return err
	}
	if len(materials) == 0 {
		for _, m := range sampleMaterials() {
			m.ID = uuid.NewString()
			m.LastUpdated = now
			if err := e.store.AddMaterial(ctx, m); err != nil {
				return fmt.Errorf("seed material %q: %w", m.Name, err)
			}
		}
	}
	e.log.InfoContext(ctx, "sample data ready")
	return nil
}

func sampleProjects() []models.Project {
	return []models.Project{
		{
			Title:       "Luxury Apartments in Costa del Este",
			Location:    "Costa del Este, Panama",
			Type:        models.ProjectHighRiseResidential,
			Budget:      decimal.NewFromInt(15000000),
			Description: "20-story luxury apartment building with ocean view",
		},
		{
			Title:       "Commercial Complex in Obarrio",
			Location:    "Obarrio, Panama",
			Type:        models.ProjectCommercialOffice,
			Budget:      decimal.NewFromInt(8000000),
			Description: "Modern office complex with retail space",
		},
	}
}

func sampleMaterials() []models.Material {
	return []models.Material{
		{
			Name:          "Portland Cement (94lb bag)",
			Category:      "Concrete & Cement",
			Subcategory:   "Cement Bags",
			Supplier:      "Argos",
			Price:         decimal.RequireFromString("8.50"),
			Availability:  models.InStock,
			Location:      "Panama City",
			ContactNumber: "6678-9900",
			MinimumOrder:  10,
		},
		{
			Name:          `PVC Pipe 4" (6m length)`,
			Category:      "Plumbing",
			Subcategory:   "PVC Pipes",
			Supplier:      "Tuberias SA",
			Price:         decimal.RequireFromString("12.75"),
			Availability:  models.InStock,
			Location:      "Panama City",
			ContactNumber: "6789-0123",
			MinimumOrder:  5,
		},
	}
}
