// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// User is a marketplace account. Email, Role and CreatedAt are fixed once the account exists.
type User struct {
	ID             string                               `json:"id"`
	Email          string                               `json:"email"`
	PasswordHash   string                               `json:"-"`
	Role           Role                                 `json:"role"`
	Name           string                               `json:"name"`
	CompanyName    string                               `json:"companyName,omitempty"`
	VATNumber      string                               `json:"vatNumber,omitempty"`
	Address        *Address                             `json:"address,omitempty"`
	Certifications map[CertificationType]*Certification `json:"certifications,omitempty"`
	CreatedAt      time.Time                            `json:"createdAt"`
	UpdatedAt      *time.Time                           `json:"updatedAt,omitempty"`
	LastLogin      *time.Time                           `json:"lastLogin,omitempty"`
}

// IsProducer reports whether the user submits offers.
func (u *User) IsProducer() bool {
	return u != nil && u.Role == RoleProducer
}

// DisplayName prefers the company name over the personal name.
func (u *User) DisplayName() string {
	if u.CompanyName != "" {
		return u.CompanyName
	}

	return u.Name
}

// Address is a postal address with an optional map location.
type Address struct {
	Street     string     `json:"street"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	Country    string     `json:"country"`
	PostalCode string     `json:"postalCode"`
	Location   *orb.Point `json:"location,omitempty"` // [lng, lat]
}

// ProfileUpdate carries the user-editable profile fields. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name           *string
	CompanyName    *string
	VATNumber      *string
	Address        *Address
	Certifications map[CertificationType]*Certification
}

// Apply merges the update into u. Identity fields are never touched.
func (p *ProfileUpdate) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}

	if p.CompanyName != nil {
		u.CompanyName = *p.CompanyName
	}

	if p.VATNumber != nil {
		u.VATNumber = *p.VATNumber
	}

	if p.Address != nil {
		u.Address = p.Address
	}

	if p.Certifications != nil {
		u.Certifications = p.Certifications
	}
}

// NearbyProducer is a producer together with its distance from a search point.
type NearbyProducer struct {
	User     *User   `json:"user"`
	Distance float64 `json:"distanceMeters"`
}
