// Package query filters store contents without mutating them. Every search
// keeps the input order.
package query

import (
	"strings"

	"github.com/shopspring/decimal"

	"buildmarket/models"
)

// bounds is an inclusive numeric range. An empty bound is open.
type bounds struct {
	min    decimal.Decimal
	max    decimal.Decimal
	hasMin bool
	hasMax bool
}

func parseBounds(minField, min, maxField, max string) (bounds, error) {
	var b bounds
	if s := strings.TrimSpace(min); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return bounds{}, models.NotANumber(minField, min)
		}
		b.min, b.hasMin = d, true
	}
	if s := strings.TrimSpace(max); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return bounds{}, models.NotANumber(maxField, max)
		}
		b.max, b.hasMax = d, true
	}
	return b, nil
}

// contains is inclusive on both ends; a missing lower bound is 0.
func (b bounds) contains(v decimal.Decimal) bool {
	lo := decimal.Zero
	if b.hasMin {
		lo = b.min
	}
	if v.LessThan(lo) {
		return false
	}
	return !b.hasMax || !v.GreaterThan(b.max)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// unset reports whether an enum or location filter is switched off.
func unset(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "All", "All Categories":
		return true
	}
	return false
}
