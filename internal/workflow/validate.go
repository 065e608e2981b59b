package workflow

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"buildmarket/models"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

type field struct {
	name  string
	value string
}

// required returns MissingField for the first blank field.
func required(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return models.Missing(f.name)
		}
	}
	return nil
}

// moneyPlaces matches the scale of the money columns.
const moneyPlaces = 2

// positiveDecimal parses a positive money amount with at most two decimal places.
func positiveDecimal(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, models.NotANumber(name, s)
	}
	if !d.Equal(d.Round(moneyPlaces)) {
		return decimal.Decimal{}, &models.ValidationError{
			Kind:    models.BadNumber,
			Field:   name,
			Message: fmt.Sprintf("%q has more than %d decimal places", s, moneyPlaces),
		}
	}
	return d, nil
}

func positiveInt(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, models.NotANumber(name, s)
	}
	return n, nil
}

// deliveryDate parses a YYYY-MM-DD date that must not be before today.
func deliveryDate(s string, now time.Time) (time.Time, error) {
	loc := now.Location()
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, &models.ValidationError{
			Kind:    models.BadDate,
			Field:   "deliveryDate",
			Message: fmt.Sprintf("%q is not a date in YYYY-MM-DD form", s),
		}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if d.Before(today) {
		return time.Time{}, &models.ValidationError{
			Kind:    models.BadDate,
			Field:   "deliveryDate",
			Message: "delivery date cannot be before the order date",
		}
	}
	return d, nil
}
