package query

import (
	"buildmarket/models"
)

type MaterialFilter struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
	MinPrice     string `json:"minPrice"`
	MaxPrice     string `json:"maxPrice"`
	Supplier     string `json:"supplier"`
	OwnerID      string `json:"ownerId"`
}

// SearchMaterials returns the materials matching every set predicate.
func SearchMaterials(materials []models.Material, f MaterialFilter) ([]models.Material, error) {
	price, err := parseBounds("minPrice", f.MinPrice, "maxPrice", f.MaxPrice)
	if err != nil {
		return nil, err
	}
	if !unset(f.Availability) {
		if _, err := models.ParseAvailability(f.Availability); err != nil {
			return nil, err
		}
	}

	out := []models.Material{}
	for _, m := range materials {
		if !containsFold(m.Name, f.Name) {
			continue
		}
		if !unset(f.Category) && m.Category != f.Category {
			continue
		}
		if !unset(f.Subcategory) && m.Subcategory != f.Subcategory {
			continue
		}
		if !unset(f.Location) && m.Location != f.Location {
			continue
		}
		if !unset(f.Availability) && string(m.Availability) != f.Availability {
			continue
		}
		if f.Supplier != "" && m.Supplier != f.Supplier {
			continue
		}
		if f.OwnerID != "" && m.OwnerID != f.OwnerID {
			continue
		}
		if !price.contains(m.Price) {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
