package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeRoundTrip(t *testing.T) {
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.FixedZone("PA", -5*3600))
	env, err := New(KindOrderPlaced, "buildmarket", "user_1", "ORD-0001", at, OrderPlacedPayload{
		OrderID:    "ORD-0001",
		Supplier:   "Argos",
		Quantity:   10,
		TotalPrice: decimal.RequireFromString("85.00"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, env.EventID)
	require.Equal(t, 1, env.EventVersion)
	require.Equal(t, time.UTC, env.OccurredAt.Location())

	got, err := Decode[OrderPlacedPayload](env)
	require.NoError(t, err)
	require.Equal(t, "Argos", got.Supplier)
	require.True(t, got.TotalPrice.Equal(decimal.NewFromInt(85)))
}

func TestMessageUsesTopicAndKey(t *testing.T) {
	env, err := New(KindBidStatusChanged, "buildmarket", "", "bid-1", time.Now(), BidStatusChangedPayload{BidID: "bid-1"})
	require.NoError(t, err)

	msg, err := message(env)
	require.NoError(t, err)
	require.Equal(t, TopicBidStatusChanged, msg.Topic)
	require.Equal(t, []byte("bid-1"), msg.Key)

	var back Envelope
	require.NoError(t, json.Unmarshal(msg.Value, &back))
	require.Equal(t, env.EventID, back.EventID)

	_, err = message(Envelope{EventType: "Unknown"})
	require.Error(t, err)
}

func TestKafkaPublisherRejectsAfterClose(t *testing.T) {
	// nothing is written, so the broker is never dialled
	p := NewKafkaPublisher([]string{"127.0.0.1:1"}, 1, nil)
	p.Start()
	p.Close()
	p.Close()

	env, err := New(KindOrderPlaced, "buildmarket", "", "ORD-0001", time.Now(), OrderPlacedPayload{})
	require.NoError(t, err)
	require.ErrorIs(t, p.Publish(context.Background(), env), ErrPublisherClosed)
}

func TestBufferKeepsOrder(t *testing.T) {
	var b Buffer
	ctx := context.Background()
	require.NoError(t, b.Publish(ctx, Envelope{EventType: KindBidSubmitted}))
	require.NoError(t, b.Publish(ctx, Envelope{EventType: KindOrderPlaced}))

	require.Equal(t, []string{KindBidSubmitted, KindOrderPlaced}, b.Kinds())
	require.Len(t, b.Events(), 2)
}
