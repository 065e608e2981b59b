package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attachment is an uploaded file kept as an opaque blob.
type Attachment struct {
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// Project posted by a Developer. Bids live inside their project.
type Project struct {
	ID          string          `db:"id" json:"id"`
	OwnerID     string          `db:"owner_id" json:"ownerId"`
	Title       string          `db:"title" json:"title"`
	Location    string          `db:"location" json:"location"`
	Type        ProjectType     `db:"type" json:"type"`
	Budget      decimal.Decimal `db:"budget" json:"budget"`
	Description string          `db:"description" json:"description"`
	Status      ProjectStatus   `db:"status" json:"status"`
	DatePosted  time.Time       `db:"date_posted" json:"datePosted"`
	Files       []Attachment    `db:"-" json:"files"`
	Bids        []Bid           `db:"-" json:"bids"`
}

// StatusEntry is one step of a bid's status history.
type StatusEntry struct {
	Status BidStatus `json:"status"`
	Date   time.Time `json:"date"`
	Note   string    `json:"note"`
}

// Bid submitted by a Contractor on a project.
type Bid struct {
	ID            string          `db:"id" json:"id"`
	ProjectID     string          `db:"project_id" json:"projectId"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	TimelineDays  int             `db:"timeline_days" json:"timelineDays"`
	Company       string          `db:"company" json:"company"`
	ContactName   string          `db:"contact_name" json:"contactName"`
	Phone         string          `db:"phone" json:"phone"`
	Email         string          `db:"email" json:"email"`
	LicenseNumber string          `db:"license_number" json:"licenseNumber"`
	Approach      string          `db:"approach" json:"approach"`
	Experience    string          `db:"experience" json:"experience"`
	Files         []Attachment    `db:"-" json:"files"`
	SubmittedDate time.Time       `db:"submitted_date" json:"submittedDate"`
	Status        BidStatus       `db:"status" json:"status"`
	StatusHistory []StatusEntry   `db:"-" json:"statusHistory"`
	SubmittedBy   string          `db:"submitted_by" json:"submittedBy"`
}

// Material listed by a Supplier.
type Material struct {
	ID            string          `db:"id" json:"id"`
	OwnerID       string          `db:"owner_id" json:"ownerId"`
	Name          string          `db:"name" json:"name"`
	Category      string          `db:"category" json:"category"`
	Subcategory   string          `db:"subcategory" json:"subcategory"`
	Supplier      string          `db:"supplier" json:"supplier"`
	Price         decimal.Decimal `db:"price" json:"price"`
	Location      string          `db:"location" json:"location"`
	ContactNumber string          `db:"contact_number" json:"contactNumber"`
	Availability  Availability    `db:"availability" json:"availability"`
	MinimumOrder  int             `db:"minimum_order" json:"minimumOrder"`
	LastUpdated   time.Time       `db:"last_updated" json:"lastUpdated"`
}

// Order for a material. Material fields are copied at placement time.
type Order struct {
	ID                  string          `db:"id" json:"orderId"`
	MaterialName        string          `db:"material_name" json:"material"`
	Supplier            string          `db:"supplier" json:"supplier"`
	Quantity            int             `db:"quantity" json:"quantity"`
	PricePerUnit        decimal.Decimal `db:"price_per_unit" json:"pricePerUnit"`
	TotalPrice          decimal.Decimal `db:"total_price" json:"totalPrice"`
	DeliveryDate        time.Time       `db:"delivery_date" json:"deliveryDate"`
	DeliveryAddress     string          `db:"delivery_address" json:"deliveryAddress"`
	ProjectName         string          `db:"project_name" json:"projectName"`
	SpecialInstructions string          `db:"special_instructions" json:"specialInstructions,omitempty"`
	Status              OrderStatus     `db:"status" json:"status"`
	OrderDate           time.Time       `db:"order_date" json:"orderDate"`
	LastUpdated         time.Time       `db:"last_updated" json:"lastUpdated"`
	ContactPerson       string          `db:"contact_person" json:"contactPerson"`
	ContactPhone        string          `db:"contact_phone" json:"contactPhone"`
	PlacedBy            string          `db:"placed_by" json:"placedBy"`
}
