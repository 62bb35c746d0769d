// Package inventory implements the product management feature.
//
// Product listings are computed from a snapshot of every product held in the
// shared snapshot.Store and invalidated on each write, so repeated sort and
// search requests do not hit the database.
//
// # Components
//
//   - Repository: gorm access to products, with suppliers preloaded.
//   - Service: validation, listing through core/listing, dashboard and schema checks.
//   - Handler: Exposes the HTTP endpoints below.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /dashboard        : Totals, low-stock products and recent additions.
//   - GET    /inventory        : Sorted listing (?sort=), optional exact search (?search_field=&search_query=).
//   - GET    /inventory/schema : Columns missing from the inventory tables.
//   - GET    /inventory/:id    : A single product.
//   - POST   /inventory        : Create a product.
//   - PUT    /inventory/:id    : Replace a product.
//   - DELETE /inventory/:id    : Delete a product and its reorder alerts.
package inventory
