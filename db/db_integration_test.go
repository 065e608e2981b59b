package db

import (
	"context"
	"os"
	"testing"
	"time"

	"buildmarket/db/migrations"
	"buildmarket/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// openJournal connects to POSTGRES_CONN and applies migrations.
func openJournal(t *testing.T) (*PostgresJournal, *sqlx.DB) {
	t.Helper()
	dsn := os.Getenv("POSTGRES_CONN")
	if dsn == "" {
		t.Skip("POSTGRES_CONN not set")
	}
	conn, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, migrations.Run(conn.DB))
	return NewPostgresJournal(conn), conn
}

func TestPostgresJournalRoundTrip(t *testing.T) {
	j, conn := openJournal(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	p := models.Project{
		ID:          uuid.NewString(),
		OwnerID:     "d1",
		Title:       "Tower",
		Location:    "Punta Pacifica",
		Type:        models.ProjectHighRiseResidential,
		Budget:      decimal.RequireFromString("2500000.50"),
		Description: "30 floors",
		Status:      models.ProjectOpen,
		DatePosted:  day,
		Files:       []models.Attachment{{Name: "plan.pdf", MIMEType: "application/pdf", Data: []byte("%PDF")}},
	}
	bid := models.Bid{
		ID:            uuid.NewString(),
		Amount:        decimal.RequireFromString("2400000"),
		TimelineDays:  300,
		Company:       "Constructora Istmo",
		ContactName:   "Ana Ruiz",
		Phone:         "6000-1111",
		Email:         "ana@istmo.pa",
		LicenseNumber: "LIC-778",
		Approach:      "Precast frame",
		Experience:    "12 towers",
		Files:         []models.Attachment{{Name: "license.pdf"}},
		SubmittedDate: day,
		Status:        models.BidSubmitted,
		StatusHistory: []models.StatusEntry{{Status: models.BidSubmitted, Date: day, Note: "Bid submitted successfully"}},
		SubmittedBy:   "c1",
	}
	t.Cleanup(func() {
		conn.ExecContext(context.Background(), `DELETE FROM project WHERE id = $1`, p.ID)
	})

	require.NoError(t, j.SaveProject(ctx, p))
	p.Bids = []models.Bid{bid}
	p.Bids[0].Status = models.BidUnderReview
	p.Bids[0].StatusHistory = append(p.Bids[0].StatusHistory, models.StatusEntry{Status: models.BidUnderReview, Date: day.Add(time.Hour)})
	require.NoError(t, j.SaveProject(ctx, p))

	m := models.Material{
		ID:            uuid.NewString(),
		OwnerID:       "s1",
		Name:          "Portland Cement (94lb bag)",
		Category:      "Concrete & Cement",
		Subcategory:   "Cement Bags",
		Supplier:      "Argos",
		Price:         decimal.RequireFromString("8.50"),
		Location:      "Panama City",
		ContactNumber: "6678-9900",
		Availability:  models.InStock,
		MinimumOrder:  10,
		LastUpdated:   day,
	}
	o := models.Order{
		ID:              "ORD-" + uuid.NewString(),
		MaterialName:    m.Name,
		Supplier:        m.Supplier,
		Quantity:        12,
		PricePerUnit:    m.Price,
		TotalPrice:      decimal.RequireFromString("102"),
		DeliveryDate:    time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
		DeliveryAddress: "Calle 50, Obarrio",
		ProjectName:     "Tower",
		Status:          models.OrderPending,
		OrderDate:       day,
		LastUpdated:     day,
		ContactPerson:   "Luis",
		ContactPhone:    "6222-3333",
		PlacedBy:        "c1",
	}
	t.Cleanup(func() {
		conn.ExecContext(context.Background(), `DELETE FROM material WHERE id = $1`, m.ID)
		conn.ExecContext(context.Background(), `DELETE FROM purchase_order WHERE id = $1`, o.ID)
	})

	require.NoError(t, j.SaveMaterial(ctx, m))
	m.Price = decimal.RequireFromString("9.25")
	require.NoError(t, j.SaveMaterial(ctx, m))
	require.NoError(t, j.SaveOrder(ctx, o))
	o.Status = models.OrderConfirmed
	require.NoError(t, j.SaveOrder(ctx, o))

	snap, err := j.Load(ctx)
	require.NoError(t, err)

	var gotProject *models.Project
	for i := range snap.Projects {
		if snap.Projects[i].ID == p.ID {
			gotProject = &snap.Projects[i]
		}
	}
	require.NotNil(t, gotProject)
	require.True(t, gotProject.Budget.Equal(p.Budget))
	require.True(t, gotProject.DatePosted.Equal(day))
	require.Equal(t, []byte("%PDF"), gotProject.Files[0].Data)
	require.Len(t, gotProject.Bids, 1)
	gotBid := gotProject.Bids[0]
	require.Equal(t, bid.ID, gotBid.ID)
	require.Equal(t, models.BidUnderReview, gotBid.Status)
	require.True(t, gotBid.Amount.Equal(bid.Amount))
	require.Equal(t, "license.pdf", gotBid.Files[0].Name)
	require.Len(t, gotBid.StatusHistory, 2)
	require.Equal(t, "Bid submitted successfully", gotBid.StatusHistory[0].Note)

	var gotMaterial *models.Material
	for i := range snap.Materials {
		if snap.Materials[i].ID == m.ID {
			gotMaterial = &snap.Materials[i]
		}
	}
	require.NotNil(t, gotMaterial)
	require.True(t, gotMaterial.Price.Equal(decimal.RequireFromString("9.25")))
	require.Equal(t, 10, gotMaterial.MinimumOrder)

	var gotOrder *models.Order
	for i := range snap.Orders {
		if snap.Orders[i].ID == o.ID {
			gotOrder = &snap.Orders[i]
		}
	}
	require.NotNil(t, gotOrder)
	require.Equal(t, models.OrderConfirmed, gotOrder.Status)
	require.True(t, gotOrder.PricePerUnit.Equal(decimal.RequireFromString("8.50")))
	require.True(t, gotOrder.TotalPrice.Equal(decimal.RequireFromString("102")))
	require.Equal(t, "2026-03-20", gotOrder.DeliveryDate.Format("2006-01-02"))
}
