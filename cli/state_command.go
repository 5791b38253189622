package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/ryotarai/ec2fleet/fleet"
)

type StateCommand struct {
	*Meta
}

func (c *StateCommand) Help() string {
	return "Usage: ec2fleet state -region REGION ID [ID...]"
}

func (c *StateCommand) Synopsis() string {
	return "Show current state of fleets"
}

func (c *StateCommand) Run(args []string) int {
	flags := c.flagSet("state")
	conn := connectionFlags(flags)
	if !c.parse(flags, args) {
		return 1
	}

	ids := flags.Args()
	if len(ids) == 0 {
		c.Ui.Error("fleet id is required")
		return 1
	}

	ctx := context.Background()
	registry := c.registry()

	if len(ids) == 1 {
		stats, err := registry.Resolve(ids[0]).GetState(ctx, *conn, ids[0])
		if errors.Is(err, fleet.ErrFleetNotFound) {
			c.Ui.Warn(fmt.Sprint(err))
			return 1
		}
		if err != nil {
			c.Ui.Error(fmt.Sprint(err))
			return 1
		}
		c.Ui.Output(formatStats(stats))
		return 0
	}

	results, err := c.batch(ctx, registry, *conn, ids)
	if err != nil {
		c.Ui.Error(fmt.Sprint(err))
		return 1
	}

	exitCode := 0
	for _, id := range ids {
		stats, ok := results[id]
		if !ok {
			c.Ui.Warn(fmt.Sprintf("fleet %s doesn't exist", id))
			exitCode = 1
			continue
		}
		c.Ui.Output(formatStats(stats))
	}
	return exitCode
}

// batch calls GetStateBatch once per backend family.
func (c *StateCommand) batch(ctx context.Context, registry fleet.Resolver, conn awsclient.Connection, ids []string) (map[string]*fleet.FleetStateStats, error) {
	labels := []string{}
	backends := map[string]fleet.Fleet{}
	grouped := map[string][]string{}
	for _, id := range ids {
		f := registry.Resolve(id)
		if _, ok := backends[f.Label()]; !ok {
			backends[f.Label()] = f
			labels = append(labels, f.Label())
		}
		grouped[f.Label()] = append(grouped[f.Label()], id)
	}

	results := map[string]*fleet.FleetStateStats{}
	for _, label := range labels {
		stats, err := backends[label].GetStateBatch(ctx, conn, grouped[label])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		for id, s := range stats {
			results[id] = s
		}
	}
	return results, nil
}

func formatStats(s *fleet.FleetStateStats) string {
	state := s.State()
	lines := []string{
		fmt.Sprintf("%s:", s.FleetID()),
		fmt.Sprintf("  state: %s (active=%t, modifying=%t)", state.Detailed, state.Active, state.Modifying),
		fmt.Sprintf("  capacity: %d/%d", s.NumActive(), s.NumDesired()),
		fmt.Sprintf("  instances: %s", strings.Join(s.Instances(), ", ")),
	}

	weights := s.InstanceTypeWeights()
	if len(weights) > 0 {
		types := make([]string, 0, len(weights))
		for t := range weights {
			types = append(types, t)
		}
		sort.Strings(types)

		pairs := []string{}
		for _, t := range types {
			pairs = append(pairs, fmt.Sprintf("%s=%g", t, weights[t]))
		}
		lines = append(lines, fmt.Sprintf("  weights: %s", strings.Join(pairs, ", ")))
	}
	return strings.Join(lines, "\n")
}
