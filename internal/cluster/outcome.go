package cluster

import "fmt"

// Outcome kinds, used as metric and log attribute values
const (
	KindWritable    = "writable"
	KindReadOnly    = "read-only"
	KindUnreachable = "unreachable"
	KindTimedOut    = "timed-out"
)

// ProbeOutcome is the result of probing a single candidate node. It is one of
// Reachable, Unreachable or TimedOut.
type ProbeOutcome interface {
	// Kind returns one of the Kind* constants
	Kind() string
	isProbeOutcome()
}

// Reachable means the node accepted a connection and answered the status query
type Reachable struct {
	// Writable is true when the node reports it is not read-only
	Writable bool
	// Identity is the node's self-reported name; may be empty
	Identity string
}

// Unreachable means the connection or the status query failed
type Unreachable struct {
	Err error
}

// TimedOut means the node did not answer within the probe timeout
type TimedOut struct {
	Err error
}

// Kind implements ProbeOutcome
func (r Reachable) Kind() string {
	if r.Writable {
		return KindWritable
	}
	return KindReadOnly
}

// Kind implements ProbeOutcome
func (Unreachable) Kind() string { return KindUnreachable }

// Kind implements ProbeOutcome
func (TimedOut) Kind() string { return KindTimedOut }

func (Reachable) isProbeOutcome()   {}
func (Unreachable) isProbeOutcome() {}
func (TimedOut) isProbeOutcome()    {}

func (r Reachable) String() string {
	return fmt.Sprintf("%s (identity %q)", r.Kind(), r.Identity)
}

func (u Unreachable) String() string {
	return fmt.Sprintf("%s: %v", KindUnreachable, u.Err)
}

func (t TimedOut) String() string {
	return fmt.Sprintf("%s: %v", KindTimedOut, t.Err)
}

// IsWritable reports whether the outcome confirms a writable node
func IsWritable(o ProbeOutcome) bool {
	r, ok := o.(Reachable)
	return ok && r.Writable
}
