package component

import "time"

// TTL destroys its entity once the clock reaches Deadline.
type TTL struct {
	Deadline time.Time
}

var TTLComponent = NewComponent[TTL]()
