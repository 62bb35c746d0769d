package reorder

import (
	"inventory-manager/core/utils"
)

// MapItem adapts a key-value record to Item. Missing keys are absent values.
type MapItem map[string]any

func (m MapItem) OnHand() utils.Number          { return utils.ParseNumber(m["quantity"]) }
func (m MapItem) DailyDemand() utils.Number     { return utils.ParseNumber(m["avg_daily_demand"]) }
func (m MapItem) DemandDeviation() utils.Number { return utils.ParseNumber(m["sigma_demand"]) }
func (m MapItem) LeadTime() utils.Number        { return utils.ParseNumber(m["lead_time"]) }
func (m MapItem) Threshold() utils.Number       { return utils.ParseNumber(m["reorder_level"]) }
