package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"buildmarket/internal/events"
	"buildmarket/models"
)

type MaterialInput struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory"`
	Supplier      string `json:"supplier"`
	Price         string `json:"price"`
	MinimumOrder  string `json:"minimumOrder"`
	Location      string `json:"location"`
	ContactNumber string `json:"contactNumber"`
	Availability  string `json:"availability"`
}

// AddMaterial lists a material for actorID.
func (e *Engine) AddMaterial(ctx context.Context, actorID string, in MaterialInput) (m models.Material, err error) {
	start := e.now()
	defer func() { e.observe(ctx, opAddMaterial, start, err) }()

	if err = required(
		field{"name", in.Name},
		field{"category", in.Category},
		field{"subcategory", in.Subcategory},
		field{"price", in.Price},
		field{"minimumOrder", in.MinimumOrder},
		field{"location", in.Location},
		field{"contactNumber", in.ContactNumber},
		field{"availability", in.Availability},
	); err != nil {
		return models.Material{}, err
	}
	if !e.catalog.Contains(in.Category, in.Subcategory) {
		f := "subcategory"
		if !e.catalog.Has(in.Category) {
			f = "category"
		}
		return models.Material{}, &models.ValidationError{
			Kind:    models.UnknownCategoryOrSubcategory,
			Field:   f,
			Message: fmt.Sprintf("%q / %q is not in the catalog", in.Category, in.Subcategory),
		}
	}
	price, err := positiveDecimal("price", in.Price)
	if err != nil {
		return models.Material{}, err
	}
	minOrder, err := positiveInt("minimumOrder", in.MinimumOrder)
	if err != nil {
		return models.Material{}, err
	}
	availability, err := models.ParseAvailability(in.Availability)
	if err != nil {
		return models.Material{}, err
	}

	supplier := in.Supplier
	if supplier == "" {
		supplier = e.supplier
	}
	m = models.Material{
		ID:            uuid.NewString(),
		OwnerID:       actorID,
		Name:          in.Name,
		Category:      in.Category,
		Subcategory:   in.Subcategory,
		Supplier:      supplier,
		Price:         price,
		Location:      in.Location,
		ContactNumber: in.ContactNumber,
		Availability:  availability,
		MinimumOrder:  minOrder,
		LastUpdated:   e.now(),
	}
	if err = e.store.AddMaterial(ctx, m); err != nil {
		return models.Material{}, err
	}
	e.log.InfoContext(ctx, "material listed", "material", m.ID, "supplier", m.Supplier)
	return m, nil
}

// UpdateMaterial replaces price, minimum order and availability. Orders
// already placed keep the values they were placed with.
func (e *Engine) UpdateMaterial(ctx context.Context, materialID, price, minimumOrder string, availability models.Availability) (m models.Material, err error) {
	start := e.now()
	defer func() { e.observe(ctx, opUpdateMaterial, start, err) }()

	p, err := positiveDecimal("price", price)
	if err != nil {
		return models.Material{}, err
	}
	minOrder, err := positiveInt("minimumOrder", minimumOrder)
	if err != nil {
		return models.Material{}, err
	}
	if _, err = models.ParseAvailability(string(availability)); err != nil {
		return models.Material{}, err
	}

	now := e.now()
	m, err = e.store.UpdateMaterial(ctx, materialID, func(m *models.Material) error {
		m.Price = p
		m.MinimumOrder = minOrder
		m.Availability = availability
		m.LastUpdated = now
		return nil
	})
	if err != nil {
		return models.Material{}, err
	}

	e.publish(ctx, events.KindMaterialUpdated, m.OwnerID, m.ID, events.MaterialUpdatedPayload{
		MaterialID:   m.ID,
		Price:        m.Price,
		MinimumOrder: m.MinimumOrder,
		Availability: m.Availability,
	})
	return m, nil
}
