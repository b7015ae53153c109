package core

// Scheduler is a single-threaded periodic tick source.
// Start begins delivering ticks; Stop halts them and discards any tick
// already scheduled. Both are idempotent.
type Scheduler interface {
	Start()
	Stop()
}

// KeyValueStore persists small string values under stable keys.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}
