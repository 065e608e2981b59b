package events

import (
	"context"
	"sync"
)

// Publisher delivers envelopes. Implementations must not block the caller
// on broker I/O.
type Publisher interface {
	Publish(ctx context.Context, env Envelope) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, Envelope) error { return nil }

// Buffer keeps published envelopes in memory.
type Buffer struct {
	mu   sync.Mutex
	envs []Envelope
}

func (b *Buffer) Publish(_ context.Context, env Envelope) error {
	b.mu.Lock()
	b.envs = append(b.envs, env)
	b.mu.Unlock()
	return nil
}

// Events returns a copy of everything published so far.
func (b *Buffer) Events() []Envelope {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Envelope(nil), b.envs...)
}

// Kinds returns the event types in publish order.
func (b *Buffer) Kinds() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.envs))
	for i, e := range b.envs {
		out[i] = e.EventType
	}
	return out
}
