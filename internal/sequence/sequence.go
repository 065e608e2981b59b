// Package sequence hands out monotonically increasing order numbers.
package sequence

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
)

// Sequence returns the next number in a gap-free series starting at 1.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// Counter is an in-process sequence.
type Counter struct {
	n atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{}
}

// Seed makes the next call to Next return last+1.
func (c *Counter) Seed(last int64) {
	c.n.Store(last)
}

func (c *Counter) Next(ctx context.Context) (int64, error) {
	return c.n.Add(1), nil
}

// KeyOrderSeq holds the last issued order number.
const KeyOrderSeq = "buildmarket:order:seq"

// Redis is a sequence shared by every process pointed at the same key.
type Redis struct {
	rdb *redis.Client
	key string
}

func NewRedis(rdb *redis.Client, key string) *Redis {
	if key == "" {
		key = KeyOrderSeq
	}
	return &Redis{rdb: rdb, key: key}
}

func (r *Redis) Next(ctx context.Context) (int64, error) {
	n, err := r.rdb.Incr(ctx, r.key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", r.key, err)
	}
	return n, nil
}

// SeedAtLeast raises the stored value to last when it is lower, so numbers
// already present in the store are never handed out again.
func (r *Redis) SeedAtLeast(ctx context.Context, last int64) error {
	for {
		err := r.rdb.Watch(ctx, func(tx *redis.Tx) error {
			cur, err := tx.Get(ctx, r.key).Int64()
			if err != nil && !errors.Is(err, redis.Nil) {
				return err
			}
			if cur >= last {
				return nil
			}
			_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
				p.Set(ctx, r.key, last, 0)
				return nil
			})
			return err
		}, r.key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed %s: %w", r.key, err)
		}
		return nil
	}
}
