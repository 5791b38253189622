package fleet

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
)

func TestCollectWeight(t *testing.T) {
	weights := map[string]float64{}
	collectWeight(weights, aws.String("t1"), aws.Float64(0.1))
	collectWeight(weights, aws.String("t2"), aws.Float64(12.0))
	assert.Equal(t, map[string]float64{"t1": 0.1, "t2": 12.0}, weights)
}

func TestCollectWeightSkipsIncompleteOverrides(t *testing.T) {
	weights := map[string]float64{}
	collectWeight(weights, aws.String("t1"), nil)
	collectWeight(weights, nil, aws.Float64(12.0))
	assert.Equal(t, map[string]float64{}, weights)
}

func TestCollectWeightKeepsMaximum(t *testing.T) {
	weights := map[string]float64{}
	collectWeight(weights, aws.String("t1"), aws.Float64(0.3))
	collectWeight(weights, aws.String("t1"), aws.Float64(0.3))
	assert.Equal(t, 0.3, weights["t1"])

	collectWeight(weights, aws.String("t1"), aws.Float64(0.2))
	assert.Equal(t, 0.3, weights["t1"])

	collectWeight(weights, aws.String("t1"), aws.Float64(2))
	assert.Equal(t, 2.0, weights["t1"])
}

func TestFleetStateStatsIsImmutable(t *testing.T) {
	weights := map[string]float64{"t1": 2}
	instances := []string{"i-2", "i-1", "i-2"}
	s := NewFleetStateStats("f", 3, State{Active: true}, instances, weights)

	weights["t1"] = 5
	instances[0] = "i-9"
	s.InstanceTypeWeights()["t1"] = 7

	assert.Equal(t, 2.0, s.Weight("t1"))
	assert.Equal(t, 1.0, s.Weight("t2"))
	assert.Equal(t, []string{"i-1", "i-2"}, s.Instances())
	assert.Equal(t, 2, s.NumActive())
	assert.True(t, s.HasInstance("i-1"))
	assert.False(t, s.HasInstance("i-9"))
}

func TestFleetStateStatsEqual(t *testing.T) {
	a := NewFleetStateStats("f", 1, State{Active: true}, []string{"i-1"}, nil)
	b := NewFleetStateStats("f", 1, State{Active: true}, []string{"i-1"}, map[string]float64{})
	c := NewFleetStateStats("f", 1, State{Active: true}, []string{"i-2"}, nil)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestNewFleetStateStatsClampsDesired(t *testing.T) {
	s := NewFleetStateStats("f", -1, State{}, nil, nil)
	assert.Equal(t, 0, s.NumDesired())
	assert.Equal(t, 0, s.NumActive())
}
