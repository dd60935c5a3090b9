package odrive

import "time"

// Protocol-level timing. These are fixed properties of the exchange, not
// user configuration; tests substitute the client's clock and sleep seams
// instead of changing them.
const (
	// ReadTimeout bounds how long ReadString waits for an idle stream
	// before returning the bytes accumulated so far.
	ReadTimeout = 1000 * time.Millisecond

	// PollInterval is the delay between state polls in RunState.
	PollInterval = 100 * time.Millisecond

	// PollIterations caps the number of state polls in RunState, bounding
	// the wait at roughly ten seconds.
	PollIterations = 100
)
