package domain

import "time"

// Archive is one named, timestamped backup snapshot as reported by the
// archive store. Timestamps are UTC with second precision.
type Archive struct {
	Name      string
	Timestamp time.Time
}
