package reorder

import (
	"inventory-manager/core/utils"
)

const (
	// DefaultServiceLevel is the z-score for a 95% service level.
	DefaultServiceLevel = 1.65
	// DefaultLeadTime is the lead time in days used when an item has none.
	DefaultLeadTime = 7.0
)

// Item is anything that can report the stock figures the engine needs.
// Every accessor returns a parsed number so that absent and malformed inputs
// are explicit rather than silently zero.
type Item interface {
	// OnHand is the quantity currently in stock.
	OnHand() utils.Number
	// DailyDemand is the average units sold per day.
	DailyDemand() utils.Number
	// DemandDeviation is the standard deviation of daily demand.
	DemandDeviation() utils.Number
	// LeadTime is the replenishment lead time in days.
	LeadTime() utils.Number
	// Threshold is the static reorder level.
	Threshold() utils.Number
}

// Config holds the engine parameters.
type Config struct {
	// ServiceLevel is the z-score applied to demand deviation.
	ServiceLevel float64 `mapstructure:"service_level" default:"1.65"`
	// DefaultLeadTime is used for items without a usable lead time.
	DefaultLeadTime float64 `mapstructure:"default_lead_time" default:"7"`
}

// DefaultConfig returns the standard engine parameters.
func DefaultConfig() Config {
	return Config{
		ServiceLevel:    DefaultServiceLevel,
		DefaultLeadTime: DefaultLeadTime,
	}
}

// Mode describes how an item was assessed.
type Mode string

const (
	// ModeDemand means the reorder point came from demand statistics.
	ModeDemand Mode = "demand"
	// ModeThreshold means demand was unknown and the static reorder level was used.
	ModeThreshold Mode = "threshold"
	// ModeSkipped means the item could not be assessed at all.
	ModeSkipped Mode = "skipped"
)

// Assessment is the full result of evaluating a single item.
type Assessment struct {
	Mode           Mode
	OnHand         float64
	SafetyStock    float64
	ReorderPoint   float64
	DaysToStockout float64
	NeedsReorder   bool
	// Degraded lists every input that fell back to a default, with its reason.
	Degraded []string
}

// Candidate is an item at or below its reorder point.
type Candidate[T Item] struct {
	Item           T
	ReorderPoint   float64
	SafetyStock    float64
	DaysToStockout float64
	Mode           Mode
}

// Suggestion is one row of the heuristic reorder suggestion report.
type Suggestion[T Item] struct {
	Item         T
	SafetyStock  float64
	ReorderPoint float64
	NeedsReorder bool
	Estimated    bool
}
