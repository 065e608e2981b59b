package models

import "fmt"

type ProjectType string

const (
	ProjectHighRiseResidential ProjectType = "High-rise Residential"
	ProjectCommercialOffice    ProjectType = "Commercial Office"
	ProjectCommercialRetail    ProjectType = "Commercial Retail"
	ProjectIndustrial          ProjectType = "Industrial"
	ProjectHealthcare          ProjectType = "Healthcare"
	ProjectInfrastructure      ProjectType = "Infrastructure"
	ProjectRenovation          ProjectType = "Renovation"
)

// ProjectTypes lists every project type in display order.
var ProjectTypes = []ProjectType{
	ProjectHighRiseResidential,
	ProjectCommercialOffice,
	ProjectCommercialRetail,
	ProjectIndustrial,
	ProjectHealthcare,
	ProjectInfrastructure,
	ProjectRenovation,
}

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectHighRiseResidential, ProjectCommercialOffice, ProjectCommercialRetail,
		ProjectIndustrial, ProjectHealthcare, ProjectInfrastructure, ProjectRenovation:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectOpen    ProjectStatus = "Open"
	ProjectClosed  ProjectStatus = "Closed"
	ProjectAwarded ProjectStatus = "Awarded"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectOpen, ProjectClosed, ProjectAwarded:
		return true
	}
	return false
}

type BidStatus string

const (
	BidSubmitted   BidStatus = "Submitted"
	BidUnderReview BidStatus = "Under Review"
	BidAwarded     BidStatus = "Awarded"
	BidNotSelected BidStatus = "Not Selected"
	BidPending     BidStatus = "Pending"
)

// BidStatuses lists every bid status in display order.
var BidStatuses = []BidStatus{BidSubmitted, BidUnderReview, BidAwarded, BidNotSelected, BidPending}

func (s BidStatus) Valid() bool {
	switch s {
	case BidSubmitted, BidUnderReview, BidAwarded, BidNotSelected, BidPending:
		return true
	}
	return false
}

type Availability string

const (
	InStock          Availability = "In Stock"
	LimitedStock     Availability = "Limited Stock"
	OutOfStock       Availability = "Out of Stock"
	AvailableOnOrder Availability = "Available on Order"
)

// Availabilities lists every availability value in display order.
var Availabilities = []Availability{InStock, LimitedStock, OutOfStock, AvailableOnOrder}

func (a Availability) Valid() bool {
	switch a {
	case InStock, LimitedStock, OutOfStock, AvailableOnOrder:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderInTransit OrderStatus = "In Transit"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// OrderStatuses lists every order status in display order.
var OrderStatuses = []OrderStatus{OrderPending, OrderConfirmed, OrderInTransit, OrderDelivered, OrderCancelled}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInTransit, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// ParseProjectType converts free text into a ProjectType.
func ParseProjectType(s string) (ProjectType, error) {
	t := ProjectType(s)
	if !t.Valid() {
		return "", invalidChoice("type", s)
	}
	return t, nil
}

func ParseProjectStatus(s string) (ProjectStatus, error) {
	st := ProjectStatus(s)
	if !st.Valid() {
		return "", invalidChoice("status", s)
	}
	return st, nil
}

func ParseBidStatus(s string) (BidStatus, error) {
	st := BidStatus(s)
	if !st.Valid() {
		return "", invalidChoice("status", s)
	}
	return st, nil
}

func ParseAvailability(s string) (Availability, error) {
	a := Availability(s)
	if !a.Valid() {
		return "", invalidChoice("availability", s)
	}
	return a, nil
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	st := OrderStatus(s)
	if !st.Valid() {
		return "", invalidChoice("status", s)
	}
	return st, nil
}

func invalidChoice(field, value string) *ValidationError {
	return &ValidationError{
		Kind:    InvalidChoice,
		Field:   field,
		Message: fmt.Sprintf("%q is not a valid %s", value, field),
	}
}
