package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OfferStatus is the review state of an offer.
type OfferStatus string

const (
	OfferStatusSubmitted     OfferStatus = "submitted"
	OfferStatusApproved      OfferStatus = "approved"
	OfferStatusRejected      OfferStatus = "rejected"
	OfferStatusNeedsRevision OfferStatus = "needs_revision"
)

// IsValid checks if the status is a known value.
func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusSubmitted, OfferStatusApproved, OfferStatusRejected, OfferStatusNeedsRevision:
		return true
	default:
		return false
	}
}

// IsReview reports whether moving to s records a review (approve or reject).
func (s OfferStatus) IsReview() bool {
	return s == OfferStatusApproved || s == OfferStatusRejected
}

// DailyQuantities maps a day name (Sunday..Saturday) to a quantity. Only days present in the
// submitted data have entries.
type DailyQuantities map[string]decimal.Decimal

// Sum returns the total of all daily quantities.
func (d DailyQuantities) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, q := range d {
		total = total.Add(q)
	}

	return total
}

// Clone returns an independent copy.
func (d DailyQuantities) Clone() DailyQuantities {
	if d == nil {
		return nil
	}

	out := make(DailyQuantities, len(d))
	for k, v := range d {
		out[k] = v
	}

	return out
}

// DeliveryAllocations maps a supermarket id to the daily quantities allocated to it.
type DeliveryAllocations map[string]DailyQuantities

// OfferProduct is one line item of an offer.
type OfferProduct struct {
	ID              string          `json:"id,omitempty"`
	ProductID       string          `json:"productId"`
	ProductName     string          `json:"productName,omitempty"`
	Variety         string          `json:"variety,omitempty"`
	Price           decimal.Decimal `json:"price"`
	TotalQuantity   decimal.Decimal `json:"totalQuantity"`
	DailyQuantities DailyQuantities `json:"dailyQuantities"`
}

// Offer is a producer's supply offer for one week. It owns its line items, which in turn own
// their daily quantities.
type Offer struct {
	ID                  string              `json:"id"`
	ProducerID          string              `json:"producerId"`
	ProducerName        string              `json:"producerName,omitempty"`
	WeekNumber          int                 `json:"weekNumber"`
	Description         string              `json:"description,omitempty"`
	Status              OfferStatus         `json:"status"`
	Feedback            string              `json:"feedback,omitempty"`
	Products            []OfferProduct      `json:"products"`
	DeliveryAllocations DeliveryAllocations `json:"deliveryAllocations,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	ReviewedAt          *time.Time          `json:"reviewedAt,omitempty"`
	LastModified        *time.Time          `json:"lastModified,omitempty"`
}

// OfferFilter narrows an offer listing. Empty fields impose no constraint; set fields are ANDed.
type OfferFilter struct {
	ProducerID string
	Status     OfferStatus
}

// OfferUpdate is a partial offer change. Nil fields are left untouched; non-nil collection
// fields replace the stored value wholesale.
type OfferUpdate struct {
	WeekNumber          *int
	Description         *string
	Status              *OfferStatus
	Feedback            *string
	Products            []OfferProduct
	DeliveryAllocations DeliveryAllocations
	ReviewedAt          *time.Time
	LastModified        *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u *OfferUpdate) IsEmpty() bool {
	return u == nil || (u.WeekNumber == nil && u.Description == nil && u.Status == nil &&
		u.Feedback == nil && u.Products == nil && u.DeliveryAllocations == nil &&
		u.ReviewedAt == nil && u.LastModified == nil)
}

// Apply merges u into o in memory.
func (u *OfferUpdate) Apply(o *Offer) {
	if u == nil || o == nil {
		return
	}

	if u.WeekNumber != nil {
		o.WeekNumber = *u.WeekNumber
	}

	if u.Description != nil {
		o.Description = *u.Description
	}

	if u.Status != nil {
		o.Status = *u.Status
	}

	if u.Feedback != nil {
		o.Feedback = *u.Feedback
	}

	if u.Products != nil {
		o.Products = u.Products
	}

	if u.DeliveryAllocations != nil {
		o.DeliveryAllocations = u.DeliveryAllocations
	}

	if u.ReviewedAt != nil {
		o.ReviewedAt = u.ReviewedAt
	}

	if u.LastModified != nil {
		o.LastModified = u.LastModified
	}
}
