package query

import (
	"buildmarket/models"
)

// OrderScope selects whose orders are visible: the placing actor's, the
// supplier's, or both when both are set.
type OrderScope struct {
	ActorID  string `json:"actorId"`
	Supplier string `json:"supplier"`
}

func (s OrderScope) matches(o models.Order) bool {
	if s.ActorID != "" && o.PlacedBy == s.ActorID {
		return true
	}
	return s.Supplier != "" && o.Supplier == s.Supplier
}

// MyOrders returns the orders in scope, optionally narrowed to one status.
// An empty scope matches nothing.
func MyOrders(orders []models.Order, scope OrderScope, status string) ([]models.Order, error) {
	if !unset(status) {
		if _, err := models.ParseOrderStatus(status); err != nil {
			return nil, err
		}
	}
	out := []models.Order{}
	for _, o := range orders {
		if !scope.matches(o) {
			continue
		}
		if !unset(status) && string(o.Status) != status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
