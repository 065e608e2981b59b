package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"buildmarket/internal/events"
	"buildmarket/models"
)

// overageFactor is the budget multiple above which a bid is flagged.
var overageFactor = decimal.RequireFromString("1.2")

const submittedNote = "Bid submitted successfully"

type ProjectInput struct {
	Title       string              `json:"title"`
	Location    string              `json:"location"`
	Type        string              `json:"type"`
	Budget      string              `json:"budget"`
	Description string              `json:"description"`
	Files       []models.Attachment `json:"files"`
}

type BidInput struct {
	Amount        string              `json:"amount"`
	TimelineDays  string              `json:"timelineDays"`
	Company       string              `json:"company"`
	ContactName   string              `json:"contactName"`
	Phone         string              `json:"phone"`
	Email         string              `json:"email"`
	LicenseNumber string              `json:"licenseNumber"`
	Approach      string              `json:"approach"`
	Experience    string              `json:"experience"`
	Files         []models.Attachment `json:"files"`
}

// CreateProject posts a new project owned by actorID.
func (e *Engine) CreateProject(ctx context.Context, actorID string, in ProjectInput) (p models.Project, err error) {
	start := e.now()
	defer func() { e.observe(ctx, opCreateProject, start, err) }()

	if err = required(
		field{"title", in.Title},
		field{"location", in.Location},
		field{"type", in.Type},
		field{"budget", in.Budget},
		field{"description", in.Description},
	); err != nil {
		return models.Project{}, err
	}
	budget, err := positiveDecimal("budget", in.Budget)
	if err != nil {
		return models.Project{}, err
	}
	typ, err := models.ParseProjectType(in.Type)
	if err != nil {
		return models.Project{}, err
	}

	p = models.Project{
		ID:          uuid.NewString(),
		OwnerID:     actorID,
		Title:       in.Title,
		Location:    in.Location,
		Type:        typ,
		Budget:      budget,
		Description: in.Description,
		Status:      models.ProjectOpen,
		DatePosted:  e.now(),
		Files:       in.Files,
		Bids:        []models.Bid{},
	}
	if err = e.store.AddProject(ctx, p); err != nil {
		return models.Project{}, err
	}
	e.log.InfoContext(ctx, "project created", "project", p.ID, "owner", actorID)
	return e.store.GetProject(ctx, p.ID)
}

// SubmitBid appends a bid to the project. A bid above 120% of the budget is
// stored anyway and reported as a BudgetOverage warning.
func (e *Engine) SubmitBid(ctx context.Context, projectID, actorID string, in BidInput) (b models.Bid, res Result, err error) {
	start := e.now()
	defer func() { e.observe(ctx, opSubmitBid, start, err) }()

	if err = required(
		field{"amount", in.Amount},
		field{"timelineDays", in.TimelineDays},
		field{"company", in.Company},
		field{"contactName", in.ContactName},
		field{"phone", in.Phone},
		field{"email", in.Email},
		field{"licenseNumber", in.LicenseNumber},
		field{"approach", in.Approach},
		field{"experience", in.Experience},
	); err != nil {
		return models.Bid{}, Result{}, err
	}
	amount, err := positiveDecimal("amount", in.Amount)
	if err != nil {
		return models.Bid{}, Result{}, err
	}
	timeline, err := positiveInt("timelineDays", in.TimelineDays)
	if err != nil {
		return models.Bid{}, Result{}, err
	}

	now := e.now()
	b = models.Bid{
		ID:            uuid.NewString(),
		ProjectID:     projectID,
		Amount:        amount,
		TimelineDays:  timeline,
		Company:       in.Company,
		ContactName:   in.ContactName,
		Phone:         in.Phone,
		Email:         in.Email,
		LicenseNumber: in.LicenseNumber,
		Approach:      in.Approach,
		Experience:    in.Experience,
		Files:         in.Files,
		SubmittedDate: now,
		Status:        models.BidSubmitted,
		StatusHistory: []models.StatusEntry{{Status: models.BidSubmitted, Date: now, Note: submittedNote}},
		SubmittedBy:   actorID,
	}

	var budget decimal.Decimal
	_, err = e.store.UpdateProject(ctx, projectID, func(p *models.Project) error {
		budget = p.Budget
		p.Bids = append(p.Bids, b.Clone())
		return nil
	})
	if err != nil {
		return models.Bid{}, Result{}, err
	}

	if limit := budget.Mul(overageFactor); amount.GreaterThan(limit) {
		w := Warning{
			Kind:    BudgetOverage,
			Field:   "amount",
			Message: fmt.Sprintf("bid amount %s exceeds the project budget %s by more than 20%%", amount.StringFixed(2), budget.StringFixed(2)),
		}
		res.Add(w)
		e.warn(ctx, opSubmitBid, w)
	}

	e.publish(ctx, events.KindBidSubmitted, actorID, b.ID, events.BidSubmittedPayload{
		ProjectID:  projectID,
		BidID:      b.ID,
		Company:    b.Company,
		Amount:     b.Amount,
		OverBudget: res.Has(BudgetOverage),
	})
	return b.Clone(), res, nil
}

// TransitionBidStatus moves a bid to status and records it in the history.
// Every status may follow every other, including itself.
func (e *Engine) TransitionBidStatus(ctx context.Context, projectID, bidID string, status models.BidStatus, note string) (b models.Bid, err error) {
	start := e.now()
	defer func() { e.observe(ctx, opTransitionBidStatus, start, err) }()

	if _, err = models.ParseBidStatus(string(status)); err != nil {
		return models.Bid{}, err
	}

	var from models.BidStatus
	now := e.now()
	_, err = e.store.UpdateProject(ctx, projectID, func(p *models.Project) error {
		for i := range p.Bids {
			if p.Bids[i].ID != bidID {
				continue
			}
			bid := &p.Bids[i]
			from = bid.Status
			bid.Status = status
			bid.StatusHistory = append(bid.StatusHistory, models.StatusEntry{Status: status, Date: now, Note: note})
			b = bid.Clone()
			return nil
		}
		return models.NotFoundError{Entity: "bid", ID: bidID}
	})
	if err != nil {
		return models.Bid{}, err
	}

	e.publish(ctx, events.KindBidStatusChanged, "", bidID, events.BidStatusChangedPayload{
		ProjectID: projectID,
		BidID:     bidID,
		From:      from,
		To:        status,
		Note:      note,
	})
	return b, nil
}
