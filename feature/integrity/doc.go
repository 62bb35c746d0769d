// Package integrity provides health checks for the inventory deployment.
//
// # Checks Provided
//
//   - Storage: the bucket exists and holds the reports/ and reports/reorder/
//     folders the reorder exports are written to.
//   - Schema: every table has the columns of its gorm model, and columns with
//     an explicit type (unit_price, address) have it.
//   - Data: products referencing a missing supplier, alerts of a deleted
//     product, negative quantities or reorder levels, negative demand data.
//
// Storage and data problems can be repaired. Schema problems are fixed with
// the migrate command.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Storage check (supports ?fix=true).
//   - GET /integrity/schema : Schema check.
//   - GET /integrity/data : Data check (supports ?fix=true).
package integrity
