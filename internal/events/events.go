// Package events describes workflow events and ships them to a broker.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"buildmarket/models"
)

const (
	KindBidSubmitted       = "BidSubmitted"
	KindBidStatusChanged   = "BidStatusChanged"
	KindOrderPlaced        = "OrderPlaced"
	KindOrderStatusChanged = "OrderStatusChanged"
	KindMaterialUpdated    = "MaterialUpdated"
)

const (
	TopicBidSubmitted       = "buildmarket.bid.submitted"
	TopicBidStatusChanged   = "buildmarket.bid.status"
	TopicOrderPlaced        = "buildmarket.order.placed"
	TopicOrderStatusChanged = "buildmarket.order.status"
	TopicMaterialUpdated    = "buildmarket.material.updated"
)

var topics = map[string]string{
	KindBidSubmitted:       TopicBidSubmitted,
	KindBidStatusChanged:   TopicBidStatusChanged,
	KindOrderPlaced:        TopicOrderPlaced,
	KindOrderStatusChanged: TopicOrderStatusChanged,
	KindMaterialUpdated:    TopicMaterialUpdated,
}

// Topic returns the broker topic for an event kind.
func Topic(kind string) (string, bool) {
	t, ok := topics[kind]
	return t, ok
}

// Envelope wraps every event. CorrelationID is the aggregate id and doubles
// as the partition key so events of one aggregate stay ordered.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	Actor         string          `json:"actor,omitempty"`
	CorrelationID string          `json:"correlation_id"`
	Payload       json.RawMessage `json:"payload"`
}

// New builds an envelope around payload.
func New(kind, producer, actor, correlationID string, at time.Time, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", kind, err)
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     kind,
		EventVersion:  1,
		OccurredAt:    at.UTC(),
		Producer:      producer,
		Actor:         actor,
		CorrelationID: correlationID,
		Payload:       raw,
	}, nil
}

// Decode unpacks the payload of an envelope.
func Decode[T any](env Envelope) (T, error) {
	var t T
	if err := json.Unmarshal(env.Payload, &t); err != nil {
		return t, fmt.Errorf("decode %s payload: %w", env.EventType, err)
	}
	return t, nil
}

type BidSubmittedPayload struct {
	ProjectID  string          `json:"project_id"`
	BidID      string          `json:"bid_id"`
	Company    string          `json:"company"`
	Amount     decimal.Decimal `json:"amount"`
	OverBudget bool            `json:"over_budget"`
}

type BidStatusChangedPayload struct {
	ProjectID string           `json:"project_id"`
	BidID     string           `json:"bid_id"`
	From      models.BidStatus `json:"from"`
	To        models.BidStatus `json:"to"`
	Note      string           `json:"note,omitempty"`
}

type OrderPlacedPayload struct {
	OrderID    string          `json:"order_id"`
	MaterialID string          `json:"material_id"`
	Supplier   string          `json:"supplier"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type OrderStatusChangedPayload struct {
	OrderID string             `json:"order_id"`
	From    models.OrderStatus `json:"from"`
	To      models.OrderStatus `json:"to"`
}

type MaterialUpdatedPayload struct {
	MaterialID   string              `json:"material_id"`
	Price        decimal.Decimal     `json:"price"`
	MinimumOrder int                 `json:"minimum_order"`
	Availability models.Availability `json:"availability"`
}
