package models

import (
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	SupplierID     *uint           `json:"supplier_id"`
	Quantity       int             `json:"quantity"`
	ReorderLevel   *int            `json:"reorder_level"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	AvgDailyDemand *float64        `json:"avg_daily_demand"`
	SigmaDemand    *float64        `json:"sigma_demand"`
	LeadTimeDays   *float64        `json:"lead_time_days"`
}

// DefaultReorderLevel is applied when a product is created without one.
const DefaultReorderLevel = 5

var maxPrice = decimal.New(1, 8) // decimal(10,2)

// trimmed returns the payload with surrounding whitespace removed from its
// text fields. Validate and Apply both work on this form.
func (in ProductInput) trimmed() ProductInput {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	return in
}

// Validate checks the payload and returns a description of the first problem, or "".
func (in ProductInput) Validate() string {
	in = in.trimmed()
	if in.SKU == "" {
		return "missing sku"
	}
	if len(in.SKU) > 20 {
		return "sku longer than 20 characters"
	}
	if in.Name == "" {
		return "missing name"
	}
	if len(in.Name) > 100 {
		return "name longer than 100 characters"
	}
	if len(in.Category) > 50 {
		return "category longer than 50 characters"
	}
	if in.Quantity < 0 {
		return "quantity cannot be negative"
	}
	if in.ReorderLevel != nil && *in.ReorderLevel < 0 {
		return "reorder_level cannot be negative"
	}
	if in.UnitPrice.IsNegative() {
		return "unit_price cannot be negative"
	}
	if in.UnitPrice.GreaterThanOrEqual(maxPrice) {
		return "unit_price too large"
	}
	for name, v := range map[string]*float64{
		"avg_daily_demand": in.AvgDailyDemand,
		"sigma_demand":     in.SigmaDemand,
		"lead_time_days":   in.LeadTimeDays,
	} {
		if v != nil && *v < 0 {
			return name + " cannot be negative"
		}
	}
	return ""
}

// Apply copies the payload onto a product.
func (in ProductInput) Apply(p *Product) {
	in = in.trimmed()
	p.SKU = in.SKU
	p.Name = in.Name
	p.Category = in.Category
	p.SupplierID = in.SupplierID
	p.Supplier = nil
	p.Quantity = in.Quantity
	p.ReorderLevel = DefaultReorderLevel
	if in.ReorderLevel != nil {
		p.ReorderLevel = *in.ReorderLevel
	}
	p.UnitPrice = in.UnitPrice.Round(2)
	p.AvgDailyDemand = in.AvgDailyDemand
	p.SigmaDemand = in.SigmaDemand
	p.LeadTimeDays = in.LeadTimeDays
}

// SupplierInput is the payload for creating or updating a supplier.
type SupplierInput struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

func (in SupplierInput) trimmed() SupplierInput {
	in.Name = strings.TrimSpace(in.Name)
	in.ContactPerson = strings.TrimSpace(in.ContactPerson)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	return in
}

// Validate checks the payload and returns a description of the first problem, or "".
func (in SupplierInput) Validate() string {
	in = in.trimmed()
	if in.Name == "" {
		return "missing name"
	}
	if len(in.Name) > 100 {
		return "name longer than 100 characters"
	}
	if len(in.ContactPerson) > 100 {
		return "contact_person longer than 100 characters"
	}
	if len(in.Phone) > 20 {
		return "phone longer than 20 characters"
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return "invalid email"
		}
	}
	return ""
}

// Apply copies the payload onto a supplier.
func (in SupplierInput) Apply(s *Supplier) {
	in = in.trimmed()
	s.Name = in.Name
	s.ContactPerson = in.ContactPerson
	s.Phone = in.Phone
	s.Email = in.Email
	s.Address = in.Address
}
