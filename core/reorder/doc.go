// Package reorder computes safety stock and reorder points and ranks items by
// how soon they will run out.
//
// # Formula
//
//	safety_stock  = z * sigma_demand * sqrt(lead_time)
//	reorder_point = lead_time * avg_daily_demand + safety_stock
//
// z is the service-level z-score (1.65 for 95%). Items without a lead time use
// Config.DefaultLeadTime.
//
// # Fallback
//
// An item with no positive average daily demand cannot use the formula. It is
// compared against its static reorder level instead and, if at or below it,
// reported with an infinite days-to-stockout so it ranks after every item with
// a known demand.
//
// # Degradation
//
// Inputs are read through utils.Number. Absent and malformed values fall back
// to defaults instead of failing; Assess lists every such fallback in
// Assessment.Degraded so callers can surface them.
//
// # Usage
//
//	for _, c := range reorder.Candidates(products, reorder.DefaultConfig()) {
//	    fmt.Println(c.Item.SKU, c.ReorderPoint, c.DaysToStockout)
//	}
package reorder
