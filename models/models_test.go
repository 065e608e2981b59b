package models_test

import (
	"errors"
	"fmt"
	"testing"

	"buildmarket/models"

	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	typ, err := models.ParseProjectType("Healthcare")
	require.NoError(t, err)
	require.Equal(t, models.ProjectHealthcare, typ)

	st, err := models.ParseOrderStatus("In Transit")
	require.NoError(t, err)
	require.Equal(t, models.OrderInTransit, st)

	_, err = models.ParseBidStatus("under review")
	require.True(t, models.IsKind(err, models.InvalidChoice))

	_, err = models.ParseAvailability("")
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "availability", ve.Field)

	for _, s := range models.BidStatuses {
		require.True(t, s.Valid(), s)
	}
	for _, a := range models.Availabilities {
		require.True(t, a.Valid(), a)
	}
	for _, s := range models.OrderStatuses {
		require.True(t, s.Valid(), s)
	}
	require.Len(t, models.ProjectTypes, 7)
}

func TestNotFoundMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("lookup: %w", models.NotFoundError{Entity: "order", ID: "ORD-0001"})
	require.ErrorIs(t, err, models.ErrNotFound)
	require.Equal(t, "lookup: order ORD-0001 not found", err.Error())
	require.False(t, errors.Is(errors.New("order ORD-0001 not found"), models.ErrNotFound))
}

func TestValidationErrorMessage(t *testing.T) {
	require.Equal(t, "MissingField (title): title is required", models.Missing("title").Error())
	require.True(t, models.IsKind(models.NotANumber("budget", "x"), models.BadNumber))
	require.False(t, models.IsKind(errors.New("x"), models.BadNumber))
}

func TestCloneIsDeep(t *testing.T) {
	p := models.Project{
		ID:    "p1",
		Files: []models.Attachment{{Name: "a", Data: []byte{1, 2}}},
		Bids: []models.Bid{{
			ID:            "b1",
			StatusHistory: []models.StatusEntry{{Status: models.BidSubmitted}},
		}},
	}
	c := p.Clone()
	c.Files[0].Data[0] = 9
	c.Bids[0].StatusHistory[0].Status = models.BidAwarded
	c.Bids = append(c.Bids, models.Bid{ID: "b2"})

	require.Equal(t, byte(1), p.Files[0].Data[0])
	require.Equal(t, models.BidSubmitted, p.Bids[0].StatusHistory[0].Status)
	require.Len(t, p.Bids, 1)
	require.Nil(t, models.Project{}.Clone().Files)
}
