package query

import (
	"buildmarket/models"
)

type ProjectFilter struct {
	Title     string `json:"title"`
	Location  string `json:"location"`
	Type      string `json:"type"`
	MinBudget string `json:"minBudget"`
	MaxBudget string `json:"maxBudget"`
	Status    string `json:"status"`
	OwnerID   string `json:"ownerId"`
}

// SearchProjects returns the projects matching every set predicate.
func SearchProjects(projects []models.Project, f ProjectFilter) ([]models.Project, error) {
	budget, err := parseBounds("minBudget", f.MinBudget, "maxBudget", f.MaxBudget)
	if err != nil {
		return nil, err
	}
	if !unset(f.Type) {
		if _, err := models.ParseProjectType(f.Type); err != nil {
			return nil, err
		}
	}
	if !unset(f.Status) {
		if _, err := models.ParseProjectStatus(f.Status); err != nil {
			return nil, err
		}
	}

	out := []models.Project{}
	for _, p := range projects {
		if !containsFold(p.Title, f.Title) {
			continue
		}
		if !unset(f.Location) && p.Location != f.Location {
			continue
		}
		if !unset(f.Type) && string(p.Type) != f.Type {
			continue
		}
		if !unset(f.Status) && string(p.Status) != f.Status {
			continue
		}
		if f.OwnerID != "" && p.OwnerID != f.OwnerID {
			continue
		}
		if !budget.contains(p.Budget) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// BidView is a bid together with the project it was placed on.
type BidView struct {
	ProjectID    string     `json:"projectId"`
	ProjectTitle string     `json:"projectTitle"`
	Location     string     `json:"location"`
	Bid          models.Bid `json:"bid"`
}

// MyBids returns the bids actorID submitted, in project order and then
// submission order.
func MyBids(projects []models.Project, actorID, status string) ([]BidView, error) {
	if !unset(status) {
		if _, err := models.ParseBidStatus(status); err != nil {
			return nil, err
		}
	}
	out := []BidView{}
	for _, p := range projects {
		for _, b := range p.Bids {
			if b.SubmittedBy != actorID {
				continue
			}
			if !unset(status) && string(b.Status) != status {
				continue
			}
			out = append(out, BidView{ProjectID: p.ID, ProjectTitle: p.Title, Location: p.Location, Bid: b})
		}
	}
	return out, nil
}
