package fleet

import (
	"testing"

	"github.com/ryotarai/ec2fleet/mock"
	"github.com/stretchr/testify/assert"
)

func TestIsSpotFleet(t *testing.T) {
	assert.True(t, IsSpotFleet("sfr-123"))
	assert.False(t, IsEC2Fleet("sfr-123"))
	assert.False(t, IsSpotFleet("SFR-123"))
	assert.False(t, IsSpotFleet(""))
}

func TestIsEC2Fleet(t *testing.T) {
	assert.True(t, IsEC2Fleet("fleet-123"))
	assert.False(t, IsSpotFleet("fleet-123"))
	assert.False(t, IsEC2Fleet("my-fleet-123"))
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry(&mock.Factory{})

	assert.IsType(t, &SpotFleet{}, r.Resolve("sfr-1"))
	assert.IsType(t, &EC2Fleet{}, r.Resolve("fleet-1"))
	assert.IsType(t, &AutoScalingGroupFleet{}, r.Resolve("workers"))
	assert.IsType(t, &AutoScalingGroupFleet{}, r.Resolve(""))

	assert.Same(t, r.Resolve("sfr-1"), r.Resolve("sfr-2"))
	assert.Same(t, r.Resolve("fleet-1"), r.Resolve("fleet-2"))
	assert.Equal(t, r.Resolve("a"), r.Resolve("b"))
}

func TestRegistryOverride(t *testing.T) {
	fixed := &EC2Fleet{}
	r := NewRegistry(&mock.Factory{}, WithFixedBackend(fixed))

	assert.Same(t, fixed, r.Resolve("sfr-1"))
	assert.Same(t, fixed, r.Resolve("workers"))

	r.SetOverride(nil)
	assert.IsType(t, &SpotFleet{}, r.Resolve("sfr-1"))

	other := NewRegistry(&mock.Factory{})
	other.SetOverride(fixed)
	assert.Same(t, fixed, other.Resolve("workers"))
	assert.IsType(t, &AutoScalingGroupFleet{}, r.Resolve("workers"))
}

func TestRegistryAll(t *testing.T) {
	labels := []string{}
	for _, f := range NewRegistry(&mock.Factory{}).All() {
		labels = append(labels, f.Label())
	}
	assert.Equal(t, []string{"Spot Fleet", "EC2 Fleet", "Auto Scaling Group"}, labels)
}
