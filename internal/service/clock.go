package service

import "time"

// Clock returns the current time. Production wires time.Now.
type Clock func() time.Time
