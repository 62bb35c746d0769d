package models

import (
	"time"

	"inventory-manager/core/listing"
	"inventory-manager/core/utils"

	"github.com/shopspring/decimal"
)

// Supplier represents the 'suppliers' table.
type Supplier struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	Name          string    `gorm:"column:name;size:100;not null" json:"name"`
	ContactPerson string    `gorm:"column:contact_person;size:100" json:"contact_person"`
	Phone         string    `gorm:"column:phone;size:20" json:"phone"`
	Email         string    `gorm:"column:email;size:254" json:"email"`
	Address       string    `gorm:"column:address;type:text" json:"address"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Supplier) TableName() string {
	return "suppliers"
}

// FieldValue implements listing.Record. Suppliers carry name and contact person.
func (s *Supplier) FieldValue(f listing.Field) (listing.Value, error) {
	switch f {
	case listing.FieldName:
		return listing.Text(s.Name), nil
	case listing.FieldContactPerson:
		return listing.Text(s.ContactPerson), nil
	default:
		return listing.Value{}, listing.NotSupported(f, s.Name)
	}
}

// Product represents the 'products' table.
type Product struct {
	ID           uint            `gorm:"column:id;primaryKey" json:"id"`
	SKU          string          `gorm:"column:sku;size:20;uniqueIndex;not null" json:"sku"`
	Name         string          `gorm:"column:name;size:100;not null" json:"name"`
	Category     string          `gorm:"column:category;size:50" json:"category"`
	SupplierID   *uint           `gorm:"column:supplier_id;index" json:"supplier_id"`
	Supplier     *Supplier       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"supplier,omitempty"`
	Quantity     int             `gorm:"column:quantity;not null;default:0" json:"quantity"`
	ReorderLevel int             `gorm:"column:reorder_level;not null;default:5" json:"reorder_level"`
	UnitPrice    decimal.Decimal `gorm:"column:unit_price;type:decimal(10,2);not null" json:"unit_price"`
	// Demand statistics are optional; products without them fall back to ReorderLevel.
	AvgDailyDemand *float64  `gorm:"column:avg_daily_demand" json:"avg_daily_demand"`
	SigmaDemand    *float64  `gorm:"column:sigma_demand" json:"sigma_demand"`
	LeadTimeDays   *float64  `gorm:"column:lead_time_days" json:"lead_time_days"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the quantity is at or below the reorder level.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// FieldValue implements listing.Record.
func (p *Product) FieldValue(f listing.Field) (listing.Value, error) {
	switch f {
	case listing.FieldIdentifier:
		return listing.Text(p.SKU), nil
	case listing.FieldName:
		return listing.Text(p.Name), nil
	case listing.FieldCategory:
		return listing.Text(p.Category), nil
	case listing.FieldSupplier:
		if p.Supplier == nil {
			return listing.Value{}, listing.MissingReference(f, p.SKU)
		}
		return listing.Text(p.Supplier.Name), nil
	case listing.FieldQuantity:
		return listing.Int(int64(p.Quantity)), nil
	case listing.FieldReorderThreshold:
		return listing.Int(int64(p.ReorderLevel)), nil
	case listing.FieldPrice:
		return listing.Number(p.UnitPrice), nil
	case listing.FieldContactPerson:
		if p.Supplier == nil {
			return listing.Value{}, listing.MissingReference(f, p.SKU)
		}
		return listing.Text(p.Supplier.ContactPerson), nil
	default:
		return listing.Value{}, listing.NotSupported(f, p.SKU)
	}
}

// OnHand implements reorder.Item.
func (p *Product) OnHand() utils.Number {
	return utils.Valid(float64(p.Quantity))
}

// DailyDemand implements reorder.Item.
func (p *Product) DailyDemand() utils.Number {
	return utils.OptionalFloat(p.AvgDailyDemand)
}

// DemandDeviation implements reorder.Item.
func (p *Product) DemandDeviation() utils.Number {
	return utils.OptionalFloat(p.SigmaDemand)
}

// LeadTime implements reorder.Item.
func (p *Product) LeadTime() utils.Number {
	return utils.OptionalFloat(p.LeadTimeDays)
}

// Threshold implements reorder.Item.
func (p *Product) Threshold() utils.Number {
	return utils.Valid(float64(p.ReorderLevel))
}

// ReorderAlert represents the 'reorder_alerts' table.
type ReorderAlert struct {
	ID           uint     `gorm:"column:id;primaryKey" json:"id"`
	ProductID    uint     `gorm:"column:product_id;index;not null" json:"product_id"`
	Product      *Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"product,omitempty"`
	SafetyStock  float64  `gorm:"column:safety_stock;not null;default:0" json:"safety_stock"`
	ReorderPoint float64  `gorm:"column:reorder_point;not null;default:0" json:"reorder_point"`
	// DaysToStockout is nil when demand is unknown.
	DaysToStockout *float64  `gorm:"column:days_to_stockout" json:"days_to_stockout"`
	Mode           string    `gorm:"column:mode;size:16" json:"mode"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (ReorderAlert) TableName() string {
	return "reorder_alerts"
}

// All lists every model for auto-migration, parents first.
func All() []any {
	return []any{&Supplier{}, &Product{}, &ReorderAlert{}}
}

// Columns lists the columns each table is expected to have.
var Columns = map[string][]string{
	"suppliers": {"id", "name", "contact_person", "phone", "email", "address", "created_at", "updated_at"},
	"products": {"id", "sku", "name", "category", "supplier_id", "quantity", "reorder_level", "unit_price",
		"avg_daily_demand", "sigma_demand", "lead_time_days", "created_at", "updated_at"},
	"reorder_alerts": {"id", "product_id", "safety_stock", "reorder_point", "days_to_stockout", "mode", "created_at"},
}

// Snapshot keys shared by every feature that caches or mutates these tables.
const (
	ProductsSnapshot  = "products"
	SuppliersSnapshot = "suppliers"
)
