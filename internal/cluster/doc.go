// Package cluster discovers which node of the replicated database currently
// accepts writes.
//
// Discovery walks an ordered candidate list and stops at the first node that
// connects and reports that it is not read-only. Probe failures never escape:
// an unreachable, slow or misbehaving node is skipped, and when no node
// confirms it is writable the first candidate is returned unconfirmed (or the
// "unknown" label, for identity lookups). Results are never cached; every call
// re-probes from scratch.
package cluster
