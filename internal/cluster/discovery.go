package cluster

import (
	"net"
	"strconv"
)

// UnknownPrimary is the label reported when no candidate confirms it is writable
const UnknownPrimary = "unknown"

// State is the phase of a discovery
type State int

const (
	// StateProbing means candidates remain to be probed
	StateProbing State = iota
	// StateFound means a writable node was found; discovery is over
	StateFound
	// StateExhausted means every candidate was probed and none is writable
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateProbing:
		return "probing"
	case StateFound:
		return "found"
	case StateExhausted:
		return "exhausted"
	default:
		return "invalid"
	}
}

// Node is a cluster member addressed by host name. Its role is inferred from the
// latest probe and never cached.
type Node struct {
	Address string
}

// Attempt records one probe made during a discovery
type Attempt struct {
	Node    Node
	Outcome ProbeOutcome
}

// Discovery is the state of one walk over the candidate list. Next is the index of
// the candidate to probe while Probing; Primary and Identity are set once Found.
type Discovery struct {
	Candidates []string
	State      State
	Next       int
	Primary    Node
	Identity   string
	Attempts   []Attempt
}

// NewDiscovery starts a discovery over candidates. An empty list is exhausted at once.
func NewDiscovery(candidates []string) Discovery {
	d := Discovery{Candidates: candidates}
	if len(candidates) == 0 {
		d.State = StateExhausted
	}
	return d
}

// Current returns the candidate to probe next. Only meaningful while Probing.
func (d Discovery) Current() Node {
	return Node{Address: d.Candidates[d.Next]}
}

// Step applies the outcome of probing Current and returns the next state. Steps on a
// terminal discovery are ignored.
func (d Discovery) Step(outcome ProbeOutcome) Discovery {
	if d.State != StateProbing {
		return d
	}

	node := d.Current()
	attempts := make([]Attempt, len(d.Attempts), len(d.Attempts)+1)
	copy(attempts, d.Attempts)
	d.Attempts = append(attempts, Attempt{Node: node, Outcome: outcome})

	if r, ok := outcome.(Reachable); ok && r.Writable {
		d.State = StateFound
		d.Primary = node
		d.Identity = r.Identity
		return d
	}

	d.Next++
	if d.Next >= len(d.Candidates) {
		d.State = StateExhausted
	}
	return d
}

// Address returns the writable node, or the first candidate when none was found.
// The fallback has not been confirmed writable and may reject writes.
func (d Discovery) Address() string {
	if d.State == StateFound {
		return d.Primary.Address
	}
	if len(d.Candidates) == 0 {
		return ""
	}
	return d.Candidates[0]
}

// Label returns "<identity>:<port>" for the writable node, or UnknownPrimary.
// A node that reports no identity is labelled with its address.
func (d Discovery) Label(port int) string {
	if d.State != StateFound {
		return UnknownPrimary
	}
	identity := d.Identity
	if identity == "" {
		identity = d.Primary.Address
	}
	return net.JoinHostPort(identity, strconv.Itoa(port))
}
