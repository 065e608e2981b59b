package db

import (
	"testing"
	"time"

	"buildmarket/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFlattenAndAssembleProject(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	p := models.Project{
		ID:     "p1",
		Title:  "Tower",
		Budget: decimal.NewFromInt(1000),
		Files:  []models.Attachment{{Name: "a.pdf", MIMEType: "application/pdf"}, {Name: "b.png", Data: []byte{1}}},
		Bids: []models.Bid{
			{
				ID:     "b1",
				Amount: decimal.NewFromInt(900),
				Status: models.BidUnderReview,
				Files:  []models.Attachment{{Name: "license.pdf", Data: []byte("x")}},
				StatusHistory: []models.StatusEntry{
					{Status: models.BidSubmitted, Date: day, Note: "Bid submitted successfully"},
					{Status: models.BidUnderReview, Date: day.Add(24 * time.Hour)},
				},
			},
			{ID: "b2", Status: models.BidSubmitted},
		},
	}

	files, bids, bidFiles, history := flattenProject(p)
	require.Len(t, files, 2)
	require.NotNil(t, files[0].Data)
	require.Len(t, bids, 2)
	require.Equal(t, "p1", bids[1].ProjectID)
	require.Equal(t, 1, bids[1].Position)
	require.Len(t, bidFiles, 1)
	require.Len(t, history, 2)

	head := p
	head.Files, head.Bids = nil, nil
	out := assembleProjects([]models.Project{head, {ID: "p2"}}, files, bids, bidFiles, history)
	require.Len(t, out, 2)

	got := out[0]
	require.Equal(t, "a.pdf", got.Files[0].Name)
	require.Len(t, got.Bids, 2)
	require.Equal(t, "b1", got.Bids[0].ID)
	require.Equal(t, "license.pdf", got.Bids[0].Files[0].Name)
	require.Len(t, got.Bids[0].StatusHistory, 2)
	require.Equal(t, models.BidUnderReview, got.Bids[0].StatusHistory[1].Status)
	require.Empty(t, out[1].Bids)
}
