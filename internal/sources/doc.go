// Package sources reads the foreign systems whose records are mirrored locally.
//
// Two sources exist:
//   - InventorySource: the inventory service, an HTTP API exposing /lists and /items
//   - AppointmentSource: the secondary store, a Postgres database with a citas table
//
// Both are always read in full. Sources never write; writing belongs to the
// sync engine through the write router.
package sources
