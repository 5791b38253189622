// Package status polls the configured fleets and keeps the latest view of
// their capacity.
package status

import (
	"time"

	"github.com/google/uuid"
)

// Info is the state of one configured fleet.
type Info struct {
	Fleet      string `json:"fleet"`
	State      string `json:"state"`
	Label      string `json:"label"`
	NumActive  int    `json:"numActive"`
	NumDesired int    `json:"numDesired"`
}

// Snapshot is the result of one poll over every configured fleet.
type Snapshot struct {
	ID     string    `json:"id"`
	Time   time.Time `json:"time"`
	Fleets []Info    `json:"fleets"`
}

func NewSnapshot(now time.Time, fleets []Info) *Snapshot {
	if fleets == nil {
		fleets = []Info{}
	}
	return &Snapshot{
		ID:     uuid.New().String(),
		Time:   now,
		Fleets: fleets,
	}
}
