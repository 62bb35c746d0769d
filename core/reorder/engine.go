package reorder

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"inventory-manager/core/utils"
)

// SafetyStock returns z * sigma * sqrt(lead). It is zero unless sigma is
// non-negative and lead is positive.
func SafetyStock(z, sigma, lead float64) float64 {
	if sigma < 0 || lead <= 0 {
		return 0
	}
	return z * sigma * math.Sqrt(lead)
}

// ReorderPoint returns lead * avg + safety.
func ReorderPoint(lead, avg, safety float64) float64 {
	return lead*avg + safety
}

// Assess evaluates a single item.
//
// Items with a positive daily demand are assessed from demand statistics.
// Items without one fall back to their static reorder level; their
// days-to-stockout is +Inf because it cannot be estimated. Items with neither
// are skipped.
func Assess(item Item, cfg Config) Assessment {
	a := &Assessment{}

	qty := item.OnHand()
	if qty.State == utils.NumberMalformed {
		a.note("quantity", qty, "0")
	}
	a.OnHand = qty.Or(0)

	avg := item.DailyDemand()
	if !avg.IsValid() || avg.Value <= 0 {
		if avg.State == utils.NumberMalformed {
			a.note("daily demand", avg, "reorder level")
		}
		assessThreshold(item, a)
		return *a
	}

	lead := item.LeadTime()
	if !lead.IsValid() {
		if lead.State == utils.NumberMalformed {
			a.note("lead time", lead, fmt.Sprintf("%g days", cfg.DefaultLeadTime))
		}
		lead = utils.Valid(cfg.DefaultLeadTime)
	}

	sigma := item.DemandDeviation()
	if sigma.State == utils.NumberMalformed {
		a.note("demand deviation", sigma, "0")
	}

	a.Mode = ModeDemand
	a.SafetyStock = SafetyStock(cfg.ServiceLevel, sigma.Or(0), lead.Value)
	a.ReorderPoint = ReorderPoint(lead.Value, avg.Value, a.SafetyStock)
	a.DaysToStockout = a.OnHand / avg.Value
	a.NeedsReorder = a.OnHand <= a.ReorderPoint
	return *a
}

// note records why n was replaced by fallback.
func (a *Assessment) note(name string, n utils.Number, fallback string) {
	a.Degraded = append(a.Degraded, fmt.Sprintf("%s %s (%s), using %s", name, n.State, n.Reason, fallback))
}

func assessThreshold(item Item, a *Assessment) {
	a.DaysToStockout = math.Inf(1)

	level := item.Threshold()
	if !level.IsValid() {
		if level.State == utils.NumberMalformed {
			a.note("reorder level", level, "nothing, item skipped")
		}
		a.Mode = ModeSkipped
		return
	}

	a.Mode = ModeThreshold
	a.ReorderPoint = level.Value
	a.NeedsReorder = a.OnHand <= level.Value
}

// Candidates returns the items at or below their reorder point, most urgent
// first. Urgency is days-to-stockout ascending; items whose demand is unknown
// (+Inf) come last. Items with equal urgency keep their input order.
func Candidates[T Item](items []T, cfg Config) []Candidate[T] {
	out := make([]Candidate[T], 0)
	for _, it := range items {
		a := Assess(it, cfg)
		if !a.NeedsReorder {
			continue
		}
		out = append(out, Candidate[T]{
			Item:           it,
			ReorderPoint:   a.ReorderPoint,
			SafetyStock:    a.SafetyStock,
			DaysToStockout: a.DaysToStockout,
			Mode:           a.Mode,
		})
	}

	slices.SortStableFunc(out, func(x, y Candidate[T]) int {
		return cmp.Compare(x.DaysToStockout, y.DaysToStockout)
	})
	return out
}

// Suggest assesses every item, estimating demand for those without demand
// statistics: average daily demand is max(1, quantity/30) and deviation is a
// quarter of that. Figures are rounded to two decimals.
func Suggest[T Item](items []T, cfg Config) []Suggestion[T] {
	out := make([]Suggestion[T], 0, len(items))
	for _, it := range items {
		est := estimated{Item: it}
		avg := it.DailyDemand()
		if !avg.IsValid() || avg.Value <= 0 {
			est.estimate()
		}

		a := Assess(est, cfg)
		out = append(out, Suggestion[T]{
			Item:         it,
			SafetyStock:  utils.RoundTo(a.SafetyStock, 2),
			ReorderPoint: utils.RoundTo(a.ReorderPoint, 2),
			NeedsReorder: a.NeedsReorder,
			Estimated:    est.replaced,
		})
	}
	return out
}

// estimated overrides the demand statistics of an item that has none.
type estimated struct {
	Item
	replaced bool
	avg      float64
	sigma    float64
}

func (e *estimated) estimate() {
	qty := e.Item.OnHand().Or(0)
	e.avg = math.Max(1, math.Floor(qty/30))
	e.sigma = e.avg * 0.25
	e.replaced = true
}

func (e estimated) DailyDemand() utils.Number {
	if e.replaced {
		return utils.Valid(e.avg)
	}
	return e.Item.DailyDemand()
}

func (e estimated) DemandDeviation() utils.Number {
	if e.replaced {
		return utils.Valid(e.sigma)
	}
	return e.Item.DemandDeviation()
}
