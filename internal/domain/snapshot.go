package domain

import "time"

// Snapshot is a profile saved to the local store under a label. Snapshots
// are the reinstated local-storage feature: entirely optional, entirely
// on-device.
type Snapshot struct {
	ID        string
	Name      string
	Profile   Profile
	CreatedAt time.Time
}
