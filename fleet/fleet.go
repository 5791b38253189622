// Package fleet puts EC2 Fleet, Spot Fleet and Auto Scaling Group capacity
// behind one contract. Backends are stateless: every call is a blocking
// round trip to AWS and nothing is cached between calls.
package fleet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/sirupsen/logrus"
)

// ErrFleetNotFound is returned by GetState when the backend reports no
// fleet for the requested id.
var ErrFleetNotFound = errors.New("fleet not found")

// Fleet is implemented by each capacity backend.
//
// Callers must not run two Modify calls against the same fleet id at once;
// backends do no locking of their own.
type Fleet interface {
	// Label names the backend family, e.g. "EC2 Fleet".
	Label() string

	// Describe adds every fleet visible to conn to sel. Unless showAll is
	// set, only persistent fleets in an active state are listed; the fleet
	// named by selectedID is always listed. Nothing is added to sel when any
	// page fails.
	Describe(ctx context.Context, conn awsclient.Connection, sel Selector, selectedID string, showAll bool) error

	// Modify asks the backend to converge to targetCapacity. Backends that
	// know about size bounds apply min and max too.
	Modify(ctx context.Context, conn awsclient.Connection, id string, targetCapacity, min, max int) error

	// GetState returns a fresh snapshot of one fleet. The error wraps
	// ErrFleetNotFound when the fleet does not exist.
	GetState(ctx context.Context, conn awsclient.Connection, id string) (*FleetStateStats, error)

	// GetStateBatch returns snapshots keyed by fleet id. Ids unknown to the
	// backend are left out of the map rather than reported as errors.
	GetStateBatch(ctx context.Context, conn awsclient.Connection, ids []string) (map[string]*FleetStateStats, error)
}

// Selector collects the fleets listed by Describe.
type Selector interface {
	Add(label, id string, selected bool)
}

type Option struct {
	Label    string
	ID       string
	Selected bool
}

// Options is a Selector that keeps entries in the order they were added.
type Options []Option

func (o *Options) Add(label, id string, selected bool) {
	*o = append(*o, Option{Label: label, ID: id, Selected: selected})
}

func (o Options) addTo(sel Selector) {
	for _, opt := range o {
		sel.Add(opt.Label, opt.ID, opt.Selected)
	}
}

func (o Options) String() string {
	items := make([]string, 0, len(o))
	for _, opt := range o {
		items = append(items, fmt.Sprintf("%s=%s", opt.Label, opt.ID))
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func notFound(id string) error {
	return fmt.Errorf("fleet %s doesn't exist: %w", id, ErrFleetNotFound)
}

func loggerOrDefault(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	ret := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		ret = append(ret, id)
	}
	return ret
}
