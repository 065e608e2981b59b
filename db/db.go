package db

import (
	"context"
	"fmt"
	"time"

	"buildmarket/models"

	"github.com/jmoiron/sqlx"
)

// PostgresJournal persists aggregates written to MemoryStorage and loads them
// back on startup. Bids, their files and history are stored under the project id.
type PostgresJournal struct {
	db *sqlx.DB
}

func NewPostgresJournal(db *sqlx.DB) *PostgresJournal {
	return &PostgresJournal{db: db}
}

type attachmentRow struct {
	OwnerID  string `db:"owner_id"`
	Position int    `db:"position"`
	Name     string `db:"name"`
	MIMEType string `db:"mime_type"`
	Data     []byte `db:"data"`
}

type bidRow struct {
	models.Bid
	Position int `db:"position"`
}

type historyRow struct {
	BidID    string           `db:"bid_id"`
	Position int              `db:"position"`
	Status   models.BidStatus `db:"status"`
	Date     time.Time        `db:"entry_date"`
	Note     string           `db:"note"`
}

// Project (Проект)

func (s *PostgresJournal) SaveProject(ctx context.Context, p models.Project) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
        INSERT INTO project
            (id, owner_id, title, location, type, budget, description, status, date_posted)
        VALUES
            (:id, :owner_id, :title, :location, :type, :budget, :description, :status, :date_posted)
        ON CONFLICT (id) DO UPDATE SET
            title = EXCLUDED.title, location = EXCLUDED.location, type = EXCLUDED.type,
            budget = EXCLUDED.budget, description = EXCLUDED.description, status = EXCLUDED.status`
	if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("save project %s: %w", p.ID, err)
	}

	// the aggregate is rewritten as a whole; cascades clear bid files and history
	if _, err := tx.ExecContext(ctx, `DELETE FROM project_file WHERE project_id = $1`, p.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM bid WHERE project_id = $1`, p.ID); err != nil {
		return err
	}

	files, bids, bidFiles, history := flattenProject(p)
	if len(files) > 0 {
		_, err := tx.NamedExecContext(ctx, `
            INSERT INTO project_file (project_id, position, name, mime_type, data)
            VALUES (:owner_id, :position, :name, :mime_type, :data)`, files)
		if err != nil {
			return fmt.Errorf("save project files: %w", err)
		}
	}
	if len(bids) > 0 {
		_, err := tx.NamedExecContext(ctx, `
            INSERT INTO bid
                (id, project_id, position, amount, timeline_days, company, contact_name, phone, email,
                 license_number, approach, experience, submitted_date, status, submitted_by)
            VALUES
                (:id, :project_id, :position, :amount, :timeline_days, :company, :contact_name, :phone, :email,
                 :license_number, :approach, :experience, :submitted_date, :status, :submitted_by)`, bids)
		if err != nil {
			return fmt.Errorf("save bids: %w", err)
		}
	}
	if len(bidFiles) > 0 {
		_, err := tx.NamedExecContext(ctx, `
            INSERT INTO bid_file (bid_id, position, name, mime_type, data)
            VALUES (:owner_id, :position, :name, :mime_type, :data)`, bidFiles)
		if err != nil {
			return fmt.Errorf("save bid files: %w", err)
		}
	}
	if len(history) > 0 {
		_, err := tx.NamedExecContext(ctx, `
            INSERT INTO bid_status_history (bid_id, position, status, entry_date, note)
            VALUES (:bid_id, :position, :status, :entry_date, :note)`, history)
		if err != nil {
			return fmt.Errorf("save bid history: %w", err)
		}
	}
	return tx.Commit()
}

// Material (Материал)

func (s *PostgresJournal) SaveMaterial(ctx context.Context, m models.Material) error {
	query := `
        INSERT INTO material
            (id, owner_id, name, category, subcategory, supplier, price, location,
             contact_number, availability, minimum_order, last_updated)
        VALUES
            (:id, :owner_id, :name, :category, :subcategory, :supplier, :price, :location,
             :contact_number, :availability, :minimum_order, :last_updated)
        ON CONFLICT (id) DO UPDATE SET
            price = EXCLUDED.price, minimum_order = EXCLUDED.minimum_order,
            availability = EXCLUDED.availability, last_updated = EXCLUDED.last_updated`
	_, err := s.db.NamedExecContext(ctx, query, m)
	return err
}

// Order (Заказ)

func (s *PostgresJournal) SaveOrder(ctx context.Context, o models.Order) error {
	query := `
        INSERT INTO purchase_order
            (id, material_name, supplier, quantity, price_per_unit, total_price, delivery_date,
             delivery_address, project_name, special_instructions, status, order_date, last_updated,
             contact_person, contact_phone, placed_by)
        VALUES
            (:id, :material_name, :supplier, :quantity, :price_per_unit, :total_price, :delivery_date,
             :delivery_address, :project_name, :special_instructions, :status, :order_date, :last_updated,
             :contact_person, :contact_phone, :placed_by)
        ON CONFLICT (id) DO UPDATE SET
            status = EXCLUDED.status, last_updated = EXCLUDED.last_updated`
	_, err := s.db.NamedExecContext(ctx, query, o)
	return err
}

// Load reads everything back in insertion order.
func (s *PostgresJournal) Load(ctx context.Context) (Snapshot, error) {
	var snap Snapshot

	projects := []models.Project{}
	err := s.db.SelectContext(ctx, &projects, `
        SELECT id, owner_id, title, location, type, budget, description, status, date_posted
        FROM project ORDER BY seq`)
	if err != nil {
		return snap, fmt.Errorf("load projects: %w", err)
	}
	files := []attachmentRow{}
	err = s.db.SelectContext(ctx, &files, `
        SELECT project_id AS owner_id, position, name, mime_type, data
        FROM project_file ORDER BY project_id, position`)
	if err != nil {
		return snap, fmt.Errorf("load project files: %w", err)
	}
	bids := []bidRow{}
	err = s.db.SelectContext(ctx, &bids, `
        SELECT id, project_id, position, amount, timeline_days, company, contact_name, phone, email,
               license_number, approach, experience, submitted_date, status, submitted_by
        FROM bid ORDER BY project_id, position`)
	if err != nil {
		return snap, fmt.Errorf("load bids: %w", err)
	}
	bidFiles := []attachmentRow{}
	err = s.db.SelectContext(ctx, &bidFiles, `
        SELECT bid_id AS owner_id, position, name, mime_type, data
        FROM bid_file ORDER BY bid_id, position`)
	if err != nil {
		return snap, fmt.Errorf("load bid files: %w", err)
	}
	history := []historyRow{}
	err = s.db.SelectContext(ctx, &history, `
        SELECT bid_id, position, status, entry_date, note
        FROM bid_status_history ORDER BY bid_id, position`)
	if err != nil {
		return snap, fmt.Errorf("load bid history: %w", err)
	}
	snap.Projects = assembleProjects(projects, files, bids, bidFiles, history)

	snap.Materials = []models.Material{}
	err = s.db.SelectContext(ctx, &snap.Materials, `
        SELECT id, owner_id, name, category, subcategory, supplier, price, location,
               contact_number, availability, minimum_order, last_updated
        FROM material ORDER BY seq`)
	if err != nil {
		return snap, fmt.Errorf("load materials: %w", err)
	}

	snap.Orders = []models.Order{}
	err = s.db.SelectContext(ctx, &snap.Orders, `
        SELECT id, material_name, supplier, quantity, price_per_unit, total_price, delivery_date,
               delivery_address, project_name, special_instructions, status, order_date, last_updated,
               contact_person, contact_phone, placed_by
        FROM purchase_order ORDER BY seq`)
	if err != nil {
		return snap, fmt.Errorf("load orders: %w", err)
	}
	return snap, nil
}

func flattenProject(p models.Project) (files []attachmentRow, bids []bidRow, bidFiles []attachmentRow, history []historyRow) {
	for i, f := range p.Files {
		files = append(files, attachmentRow{OwnerID: p.ID, Position: i, Name: f.Name, MIMEType: f.MIMEType, Data: nonNil(f.Data)})
	}
	for i, b := range p.Bids {
		b.ProjectID = p.ID
		bids = append(bids, bidRow{Bid: b, Position: i})
		for j, f := range b.Files {
			bidFiles = append(bidFiles, attachmentRow{OwnerID: b.ID, Position: j, Name: f.Name, MIMEType: f.MIMEType, Data: nonNil(f.Data)})
		}
		for j, h := range b.StatusHistory {
			history = append(history, historyRow{BidID: b.ID, Position: j, Status: h.Status, Date: h.Date, Note: h.Note})
		}
	}
	return files, bids, bidFiles, history
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}

// assembleProjects nests child rows back under their projects. Child rows must
// be sorted by owner and position.
func assembleProjects(projects []models.Project, files []attachmentRow, bids []bidRow, bidFiles []attachmentRow, history []historyRow) []models.Project {
	filesByBid := make(map[string][]models.Attachment)
	for _, f := range bidFiles {
		filesByBid[f.OwnerID] = append(filesByBid[f.OwnerID], models.Attachment{Name: f.Name, MIMEType: f.MIMEType, Data: f.Data})
	}
	historyByBid := make(map[string][]models.StatusEntry)
	for _, h := range history {
		historyByBid[h.BidID] = append(historyByBid[h.BidID], models.StatusEntry{Status: h.Status, Date: h.Date, Note: h.Note})
	}
	filesByProject := make(map[string][]models.Attachment)
	for _, f := range files {
		filesByProject[f.OwnerID] = append(filesByProject[f.OwnerID], models.Attachment{Name: f.Name, MIMEType: f.MIMEType, Data: f.Data})
	}
	bidsByProject := make(map[string][]models.Bid)
	for _, row := range bids {
		b := row.Bid
		b.Files = filesByBid[b.ID]
		b.StatusHistory = historyByBid[b.ID]
		bidsByProject[b.ProjectID] = append(bidsByProject[b.ProjectID], b)
	}

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		p.Files = filesByProject[p.ID]
		p.Bids = bidsByProject[p.ID]
		out = append(out, p)
	}
	return out
}
