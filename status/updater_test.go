package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/ryotarai/ec2fleet/config"
	"github.com/ryotarai/ec2fleet/fleet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFleet struct {
	mock.Mock
	label string
}

func (m *MockFleet) Label() string {
	return m.label
}

func (m *MockFleet) Describe(ctx context.Context, conn awsclient.Connection, sel fleet.Selector, selectedID string, showAll bool) error {
	args := m.Called(conn, selectedID, showAll)
	return args.Error(0)
}

func (m *MockFleet) Modify(ctx context.Context, conn awsclient.Connection, id string, targetCapacity, min, max int) error {
	args := m.Called(conn, id, targetCapacity, min, max)
	return args.Error(0)
}

func (m *MockFleet) GetState(ctx context.Context, conn awsclient.Connection, id string) (*fleet.FleetStateStats, error) {
	args := m.Called(conn, id)
	s, _ := args.Get(0).(*fleet.FleetStateStats)
	return s, args.Error(1)
}

func (m *MockFleet) GetStateBatch(ctx context.Context, conn awsclient.Connection, ids []string) (map[string]*fleet.FleetStateStats, error) {
	args := m.Called(conn, ids)
	s, _ := args.Get(0).(map[string]*fleet.FleetStateStats)
	return s, args.Error(1)
}

type prefixResolver struct {
	spot, asg fleet.Fleet
}

func (r *prefixResolver) Resolve(id string) fleet.Fleet {
	if fleet.IsSpotFleet(id) {
		return r.spot
	}
	return r.asg
}

var (
	east = awsclient.Connection{Region: "us-east-1"}
	west = awsclient.Connection{Region: "us-west-2"}
)

func stats(id string, desired int, detailed string, instances ...string) *fleet.FleetStateStats {
	return fleet.NewFleetStateStats(id, desired, fleet.State{Active: true, Detailed: detailed}, instances, nil)
}

func TestRunOnceGroupsByConnectionAndBackend(t *testing.T) {
	spot := &MockFleet{label: "Spot Fleet"}
	asg := &MockFleet{label: "Auto Scaling Group"}

	spot.On("GetStateBatch", east, []string{"sfr-1", "sfr-2"}).Return(map[string]*fleet.FleetStateStats{
		"sfr-1": stats("sfr-1", 3, "active", "i-1", "i-2"),
		"sfr-2": stats("sfr-2", 1, "modifying"),
	}, nil).Once()
	spot.On("GetStateBatch", west, []string{"sfr-3"}).Return(map[string]*fleet.FleetStateStats{}, nil).Once()
	asg.On("GetStateBatch", east, []string{"workers"}).Return(map[string]*fleet.FleetStateStats{
		"workers": stats("workers", 2, "active", "i-3"),
	}, nil).Once()

	store := NewMemoryStore()
	u := NewUpdater([]config.Cloud{
		{Name: "a", Region: "us-east-1", Fleet: "sfr-1", Label: "linux"},
		{Name: "b", Region: "us-east-1", Fleet: "workers", Label: "asg"},
		{Name: "c", Region: "us-west-2", Fleet: "sfr-3"},
		{Name: "d", Region: "us-east-1", Fleet: "sfr-2", Label: "windows"},
	}, &prefixResolver{spot: spot, asg: asg}, store)
	now := time.Unix(1500000000, 0)
	u.now = func() time.Time { return now }

	require.NoError(t, u.RunOnce(context.Background()))
	spot.AssertExpectations(t)
	asg.AssertExpectations(t)

	snapshot, err := store.Latest()
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.NotEmpty(t, snapshot.ID)
	assert.Equal(t, now, snapshot.Time)
	assert.Equal(t, []Info{
		{Fleet: "sfr-1", State: "active", Label: "linux", NumActive: 2, NumDesired: 3},
		{Fleet: "workers", State: "active", Label: "asg", NumActive: 1, NumDesired: 2},
		{Fleet: "sfr-2", State: "modifying", Label: "windows", NumActive: 0, NumDesired: 1},
	}, snapshot.Fleets)
}

func TestRunOnceSkipsFailedGroup(t *testing.T) {
	spot := &MockFleet{label: "Spot Fleet"}
	asg := &MockFleet{label: "Auto Scaling Group"}
	spot.On("GetStateBatch", east, []string{"sfr-1"}).Return(nil, errors.New("throttled"))
	asg.On("GetStateBatch", east, []string{"workers"}).Return(map[string]*fleet.FleetStateStats{
		"workers": stats("workers", 0, "active"),
	}, nil)

	store := NewMemoryStore()
	u := NewUpdater([]config.Cloud{
		{Name: "a", Region: "us-east-1", Fleet: "sfr-1"},
		{Name: "b", Region: "us-east-1", Fleet: "workers"},
	}, &prefixResolver{spot: spot, asg: asg}, store)

	require.NoError(t, u.RunOnce(context.Background()))

	snapshot, _ := store.Latest()
	if assert.Len(t, snapshot.Fleets, 1) {
		assert.Equal(t, "workers", snapshot.Fleets[0].Fleet)
	}
}

func TestRunOnceNoClouds(t *testing.T) {
	store := NewMemoryStore()
	u := NewUpdater(nil, &prefixResolver{}, store)

	require.NoError(t, u.RunOnce(context.Background()))

	snapshot, _ := store.Latest()
	assert.Equal(t, []Info{}, snapshot.Fleets)
}

func TestStartStopsWithContext(t *testing.T) {
	asg := &MockFleet{label: "Auto Scaling Group"}
	asg.On("GetStateBatch", east, []string{"workers"}).Return(map[string]*fleet.FleetStateStats{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	store := NewMemoryStore()
	u := NewUpdater([]config.Cloud{{Name: "b", Region: "us-east-1", Fleet: "workers"}}, &prefixResolver{asg: asg}, store)

	done := make(chan error)
	go func() { done <- u.Start(ctx, time.Hour) }()

	assert.Eventually(t, func() bool {
		s, _ := store.Latest()
		return s != nil
	}, time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("Start did not return")
	}
}
