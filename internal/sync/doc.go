// Package sync mirrors records owned by foreign systems into local tables on the
// cluster primary.
//
// # Core Interfaces
//
//   - Engine: runs one synchronization of a source on demand
//
// The sync/coordinator subpackage runs the same Engine periodically, and the
// sync/writer subpackage holds the MirrorWriter used for the upserts.
//
// # Procedure
//
// Every call discovers the primary afresh, opens scoped write access to it
// through the router, reads the whole foreign collection and upserts each record
// keyed by its foreign id. Inventory lists are written before items.
//
// # Failure semantics
//
// A foreign read failure aborts the call before anything is written. A write
// failure aborts the remaining upserts; rows already written stay unless the
// router runs in atomic mode. Both are returned as *Error with a Kind telling
// them apart. Counts report the number of foreign records read.
//
// # Status and metrics
//
// When a status.Tracker is configured every call is recorded as a run with its
// own id. Durations and record counts go to the sync meter.
package sync
