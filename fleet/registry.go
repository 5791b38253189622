package fleet

import (
	"strings"
	"sync"

	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/sirupsen/logrus"
)

const (
	spotFleetPrefix = "sfr-"
	ec2FleetPrefix  = "fleet-"
)

// IsSpotFleet reports whether id names a Spot Fleet request.
func IsSpotFleet(id string) bool {
	return strings.HasPrefix(id, spotFleetPrefix)
}

// IsEC2Fleet reports whether id names an EC2 Fleet.
func IsEC2Fleet(id string) bool {
	return strings.HasPrefix(id, ec2FleetPrefix)
}

// Resolver picks the backend that owns a fleet id.
type Resolver interface {
	Resolve(id string) Fleet
}

// Registry dispatches fleet ids to backends by prefix. Anything that is not
// a Spot Fleet or EC2 Fleet id is treated as an Auto Scaling Group name.
type Registry struct {
	clients awsclient.Factory
	logger  logrus.FieldLogger

	spot *SpotFleet
	ec2  *EC2Fleet

	mu       sync.RWMutex
	override Fleet
}

type RegistryOption func(*Registry)

// WithFixedBackend makes Resolve return f for every id.
func WithFixedBackend(f Fleet) RegistryOption {
	return func(r *Registry) {
		r.override = f
	}
}

func WithLogger(l logrus.FieldLogger) RegistryOption {
	return func(r *Registry) {
		r.logger = l
	}
}

func NewRegistry(clients awsclient.Factory, opts ...RegistryOption) *Registry {
	r := &Registry{clients: clients}
	for _, opt := range opts {
		opt(r)
	}
	r.spot = &SpotFleet{Clients: clients, Logger: r.logger}
	r.ec2 = &EC2Fleet{Clients: clients, Logger: r.logger}
	return r
}

func (r *Registry) Resolve(id string) Fleet {
	r.mu.RLock()
	override := r.override
	r.mu.RUnlock()
	if override != nil {
		return override
	}

	switch {
	case IsSpotFleet(id):
		return r.spot
	case IsEC2Fleet(id):
		return r.ec2
	default:
		return &AutoScalingGroupFleet{Clients: r.clients, Logger: r.logger}
	}
}

// SetOverride replaces prefix dispatch with f until it is called again with
// nil.
func (r *Registry) SetOverride(f Fleet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.override = f
}

// All returns one backend of each family.
func (r *Registry) All() []Fleet {
	return []Fleet{
		r.spot,
		r.ec2,
		&AutoScalingGroupFleet{Clients: r.clients, Logger: r.logger},
	}
}
