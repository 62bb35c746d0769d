// Package supplier implements supplier CRUD and the sorted, searchable
// supplier listing (name and contact_person).
//
// Deleting a supplier keeps its products and clears their supplier reference.
// Writes drop both the supplier and product snapshots, since products carry
// their supplier's name.
package supplier
