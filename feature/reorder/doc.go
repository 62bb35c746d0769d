// Package reorder exposes the reorder engine over HTTP.
//
// Reports are computed from the inventory product snapshot with the configured
// service level and default lead time, which a request may override with the
// z and lead_time query parameters.
//
// # HTTP Endpoints
//
//   - GET    /reorder               : Ranked reorder candidates.
//   - GET    /reorder/suggestions   : Heuristic figures for every product.
//   - POST   /reorder/alerts        : Store an alert per current candidate.
//   - GET    /reorder/alerts        : Stored alerts, newest first.
//   - POST   /reorder/export        : Write the report to reports/reorder/ in object storage.
//   - GET    /reorder/exports       : List exported reports.
//   - GET    /reorder/exports/:name : Read an exported report.
//   - DELETE /reorder/exports/:name : Remove an exported report.
package reorder
