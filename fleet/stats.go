package fleet

import (
	"sort"
)

// State is the lifecycle of a fleet as reported by its backend. A fleet can
// be active and modifying at the same time.
type State struct {
	Active    bool
	Modifying bool
	// Detailed is the raw backend status, kept for display.
	Detailed string
}

// FleetStateStats is a point-in-time snapshot of one fleet. It is never
// modified after construction.
type FleetStateStats struct {
	fleetID             string
	numDesired          int
	state               State
	instances           map[string]struct{}
	instanceTypeWeights map[string]float64
}

func NewFleetStateStats(fleetID string, numDesired int, state State, instances []string, instanceTypeWeights map[string]float64) *FleetStateStats {
	if numDesired < 0 {
		numDesired = 0
	}

	set := make(map[string]struct{}, len(instances))
	for _, i := range instances {
		set[i] = struct{}{}
	}

	weights := make(map[string]float64, len(instanceTypeWeights))
	for t, w := range instanceTypeWeights {
		weights[t] = w
	}

	return &FleetStateStats{
		fleetID:             fleetID,
		numDesired:          numDesired,
		state:               state,
		instances:           set,
		instanceTypeWeights: weights,
	}
}

func (s *FleetStateStats) FleetID() string {
	return s.fleetID
}

func (s *FleetStateStats) NumDesired() int {
	return s.numDesired
}

func (s *FleetStateStats) NumActive() int {
	return len(s.instances)
}

func (s *FleetStateStats) State() State {
	return s.state
}

// Instances returns the active instance ids in sorted order.
func (s *FleetStateStats) Instances() []string {
	ret := make([]string, 0, len(s.instances))
	for i := range s.instances {
		ret = append(ret, i)
	}
	sort.Strings(ret)
	return ret
}

func (s *FleetStateStats) HasInstance(id string) bool {
	_, ok := s.instances[id]
	return ok
}

// InstanceTypeWeights returns a copy of the capacity weight per instance
// type. Only EC2 Fleet reports weights; the map is empty for other backends.
func (s *FleetStateStats) InstanceTypeWeights() map[string]float64 {
	ret := make(map[string]float64, len(s.instanceTypeWeights))
	for t, w := range s.instanceTypeWeights {
		ret[t] = w
	}
	return ret
}

// Weight returns the capacity weight of instanceType, 1 when unknown.
func (s *FleetStateStats) Weight(instanceType string) float64 {
	if w, ok := s.instanceTypeWeights[instanceType]; ok {
		return w
	}
	return 1
}

func (s *FleetStateStats) Equal(o *FleetStateStats) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.fleetID != o.fleetID || s.numDesired != o.numDesired || s.state != o.state {
		return false
	}
	if len(s.instances) != len(o.instances) || len(s.instanceTypeWeights) != len(o.instanceTypeWeights) {
		return false
	}
	for i := range s.instances {
		if !o.HasInstance(i) {
			return false
		}
	}
	for t, w := range s.instanceTypeWeights {
		if ow, ok := o.instanceTypeWeights[t]; !ok || ow != w {
			return false
		}
	}
	return true
}

// collectWeight records one launch template override in weights. Overrides
// without an instance type or a weight are skipped. A repeated instance type
// only replaces the recorded weight when the new one is strictly greater.
func collectWeight(weights map[string]float64, instanceType *string, weight *float64) {
	if instanceType == nil || weight == nil {
		return
	}
	if existing, ok := weights[*instanceType]; ok && existing >= *weight {
		return
	}
	weights[*instanceType] = *weight
}
