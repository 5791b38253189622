package status

import (
	"context"
	"time"

	"github.com/ryotarai/ec2fleet/awsclient"
	"github.com/ryotarai/ec2fleet/config"
	"github.com/ryotarai/ec2fleet/fleet"
	"github.com/sirupsen/logrus"
)

// Updater polls every configured cloud and publishes a Snapshot to Store.
type Updater struct {
	Clouds   []config.Cloud
	Resolver fleet.Resolver
	Store    Store
	Logger   logrus.FieldLogger

	now func() time.Time
}

func NewUpdater(clouds []config.Cloud, resolver fleet.Resolver, store Store) *Updater {
	return &Updater{
		Clouds:   clouds,
		Resolver: resolver,
		Store:    store,
		Logger:   logrus.StandardLogger(),
		now:      time.Now,
	}
}

type groupKey struct {
	conn    awsclient.Connection
	backend string
}

type group struct {
	backend fleet.Fleet
	ids     []string
}

// Start runs RunOnce every interval until ctx is done.
func (u *Updater) Start(ctx context.Context, interval time.Duration) error {
	u.logger().Info("Status loop started")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := u.RunOnce(ctx); err != nil {
			u.logger().Error(err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// RunOnce queries every fleet once and publishes the result. Fleets of the
// same family behind the same connection are queried in one batch. A failed
// batch is logged and its fleets are left out of the snapshot.
func (u *Updater) RunOnce(ctx context.Context) error {
	snapshot := NewSnapshot(u.clock(), u.collect(ctx))
	return u.Store.Publish(snapshot)
}

func (u *Updater) collect(ctx context.Context) []Info {
	keys := []groupKey{}
	groups := map[groupKey]*group{}
	for _, c := range u.Clouds {
		backend := u.Resolver.Resolve(c.Fleet)
		k := groupKey{conn: c.Connection(), backend: backend.Label()}
		g, ok := groups[k]
		if !ok {
			g = &group{backend: backend}
			groups[k] = g
			keys = append(keys, k)
		}
		g.ids = append(g.ids, c.Fleet)
	}

	states := map[groupKey]map[string]*fleet.FleetStateStats{}
	for _, k := range keys {
		g := groups[k]
		log := u.logger().WithFields(logrus.Fields{"connection": k.conn.String(), "backend": k.backend})
		log.Debugf("GetStateBatch %v", g.ids)
		stats, err := g.backend.GetStateBatch(ctx, k.conn, g.ids)
		if err != nil {
			log.WithError(err).Warn("Failed to get fleet states")
			continue
		}
		states[k] = stats
	}

	infos := []Info{}
	for _, c := range u.Clouds {
		k := groupKey{conn: c.Connection(), backend: u.Resolver.Resolve(c.Fleet).Label()}
		stats, ok := states[k][c.Fleet]
		if !ok {
			continue
		}
		infos = append(infos, Info{
			Fleet:      c.Fleet,
			State:      stats.State().Detailed,
			Label:      c.Label,
			NumActive:  stats.NumActive(),
			NumDesired: stats.NumDesired(),
		})
	}
	return infos
}

func (u *Updater) clock() time.Time {
	if u.now == nil {
		return time.Now()
	}
	return u.now()
}

func (u *Updater) logger() logrus.FieldLogger {
	if u.Logger == nil {
		return logrus.StandardLogger()
	}
	return u.Logger
}
