package workflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"buildmarket/internal/events"
	"buildmarket/models"
)

const orderPrefix = "ORD-"

type OrderInput struct {
	Quantity            string `json:"quantity"`
	DeliveryDate        string `json:"deliveryDate"`
	DeliveryAddress     string `json:"deliveryAddress"`
	ProjectName         string `json:"projectName"`
	SpecialInstructions string `json:"specialInstructions"`
	ContactPerson       string `json:"contactPerson"`
	ContactPhone        string `json:"contactPhone"`
}

// FormatOrderID renders n as ORD-0001. Numbers above 9999 keep all digits.
func FormatOrderID(n int64) string {
	return fmt.Sprintf("%s%04d", orderPrefix, n)
}

// ParseOrderNumber is the inverse of FormatOrderID.
func ParseOrderNumber(id string) (int64, bool) {
	digits, ok := strings.CutPrefix(id, orderPrefix)
	if !ok || digits == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// LastOrderNumber returns the highest order number in orders, or 0.
func LastOrderNumber(orders []models.Order) int64 {
	var last int64
	for _, o := range orders {
		if n, ok := ParseOrderNumber(o.ID); ok && n > last {
			last = n
		}
	}
	return last
}

// PlaceOrder orders a material for actorID. Material name, supplier and
// price are copied into the order. The minimum order check, the number draw
// and the insert see the same material version. The order number is drawn
// only after every check has passed.
func (e *Engine) PlaceOrder(ctx context.Context, materialID, actorID string, in OrderInput) (o models.Order, err error) {
	start := e.now()
	defer func() { e.observe(ctx, opPlaceOrder, start, err) }()

	if err = required(
		field{"quantity", in.Quantity},
		field{"deliveryDate", in.DeliveryDate},
		field{"deliveryAddress", in.DeliveryAddress},
		field{"projectName", in.ProjectName},
		field{"contactPerson", in.ContactPerson},
		field{"contactPhone", in.ContactPhone},
	); err != nil {
		return models.Order{}, err
	}
	qty, err := positiveInt("quantity", in.Quantity)
	if err != nil {
		return models.Order{}, err
	}
	now := e.now()
	delivery, err := deliveryDate(in.DeliveryDate, now)
	if err != nil {
		return models.Order{}, err
	}

	o, err = e.store.PlaceOrder(ctx, materialID, func(m models.Material) (models.Order, error) {
		if qty < m.MinimumOrder {
			return models.Order{}, &models.ValidationError{
				Kind:    models.BelowMinimumOrder,
				Field:   "quantity",
				Message: fmt.Sprintf("Minimum order quantity is %d", m.MinimumOrder),
			}
		}
		n, err := e.seq.Next(ctx)
		if err != nil {
			return models.Order{}, fmt.Errorf("next order number: %w", err)
		}
		return models.Order{
			ID:                  FormatOrderID(n),
			MaterialName:        m.Name,
			Supplier:            m.Supplier,
			Quantity:            qty,
			PricePerUnit:        m.Price,
			TotalPrice:          m.Price.Mul(decimal.NewFromInt(int64(qty))),
			DeliveryDate:        delivery,
			DeliveryAddress:     in.DeliveryAddress,
			ProjectName:         in.ProjectName,
			SpecialInstructions: in.SpecialInstructions,
			Status:              models.OrderPending,
			OrderDate:           now,
			LastUpdated:         now,
			ContactPerson:       in.ContactPerson,
			ContactPhone:        in.ContactPhone,
			PlacedBy:            actorID,
		}, nil
	})
	if err != nil {
		return models.Order{}, err
	}

	e.log.InfoContext(ctx, "order placed", "order", o.ID, "supplier", o.Supplier, "total", o.TotalPrice.StringFixed(2))
	e.publish(ctx, events.KindOrderPlaced, actorID, o.ID, events.OrderPlacedPayload{
		OrderID:    o.ID,
		MaterialID: materialID,
		Supplier:   o.Supplier,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
	})
	return o, nil
}

// TransitionOrderStatus sets the order status. Every status may follow every
// other; setting the current status again only refreshes LastUpdated.
func (e *Engine) TransitionOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (o models.Order, err error) {
	start := e.now()
	defer func() { e.observe(ctx, opTransitionOrderStatus, start, err) }()

	if _, err = models.ParseOrderStatus(string(status)); err != nil {
		return models.Order{}, err
	}

	var from models.OrderStatus
	now := e.now()
	o, err = e.store.UpdateOrder(ctx, orderID, func(o *models.Order) error {
		from = o.Status
		o.Status = status
		o.LastUpdated = now
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	e.publish(ctx, events.KindOrderStatusChanged, "", orderID, events.OrderStatusChangedPayload{
		OrderID: orderID,
		From:    from,
		To:      status,
	})
	return o, nil
}
