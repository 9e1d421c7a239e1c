package cluster

import (
	"context"
	"errors"
	"fmt"
	"net"
	"reflect"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// mapChecker answers from a fixed table and counts calls per address
type mapChecker struct {
	outcomes map[string]ProbeOutcome
	calls    map[string]int
}

func (c *mapChecker) Check(_ context.Context, address string) ProbeOutcome {
	c.calls[address]++
	if o, ok := c.outcomes[address]; ok {
		return o
	}
	return Unreachable{Err: errors.New("no such host")}
}

// outcomeFor maps a generated code to an outcome: 0 writable, 1 read-only,
// 2 unreachable, 3 timed out
func outcomeFor(code int, identity string) ProbeOutcome {
	switch code {
	case 0:
		return Reachable{Writable: true, Identity: identity}
	case 1:
		return Reachable{Writable: false, Identity: identity}
	case 2:
		return Unreachable{Err: errors.New("connection refused")}
	default:
		return TimedOut{Err: errors.New("i/o timeout")}
	}
}

func buildCluster(codes []int) ([]string, *mapChecker) {
	candidates := make([]string, len(codes))
	checker := &mapChecker{outcomes: map[string]ProbeOutcome{}, calls: map[string]int{}}
	for i, code := range codes {
		addr := fmt.Sprintf("node-%d", i)
		candidates[i] = addr
		checker.outcomes[addr] = outcomeFor(code, "id-"+addr)
	}
	return candidates, checker
}

func firstWritable(codes []int) int {
	for i, c := range codes {
		if c == 0 {
			return i
		}
	}
	return -1
}

func TestProberInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	clusterGen := gen.IntRange(1, 6).FlatMap(func(n interface{}) gopter.Gen {
		return gen.SliceOfN(n.(int), gen.IntRange(0, 3))
	}, reflect.TypeOf([]int{}))

	properties.Property("returns the first writable candidate in list order", prop.ForAll(
		func(codes []int) bool {
			candidates, checker := buildCluster(codes)
			p, err := NewProber(candidates, checker)
			if err != nil {
				return false
			}

			got := p.DiscoverPrimary(context.Background())
			idx := firstWritable(codes)
			if idx < 0 {
				return got == candidates[0]
			}
			return got == candidates[idx]
		},
		clusterGen,
	))

	properties.Property("never probes past the first writable candidate", prop.ForAll(
		func(codes []int) bool {
			candidates, checker := buildCluster(codes)
			p, _ := NewProber(candidates, checker)
			p.Discover(context.Background())

			idx := firstWritable(codes)
			for i, addr := range candidates {
				probed := checker.calls[addr]
				switch {
				case idx >= 0 && i > idx && probed != 0:
					return false
				case (idx < 0 || i <= idx) && probed != 1:
					return false
				}
			}
			return true
		},
		clusterGen,
	))

	properties.Property("identity is unknown exactly when nothing is writable", prop.ForAll(
		func(codes []int, port int) bool {
			candidates, checker := buildCluster(codes)
			p, _ := NewProber(candidates, checker, WithPort(port))

			label := p.DiscoverPrimaryIdentity(context.Background())
			idx := firstWritable(codes)
			if idx < 0 {
				return label == UnknownPrimary
			}
			return label == net.JoinHostPort("id-"+candidates[idx], strconv.Itoa(port))
		},
		clusterGen,
		gen.IntRange(1, 65535),
	))

	properties.TestingRun(t)
}
