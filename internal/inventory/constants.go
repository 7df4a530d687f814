package inventory

// DefaultSubscriberBuffer is the number of snapshots a subscriber may lag
// behind before older ones are dropped
const DefaultSubscriberBuffer = 16

// Log messages
const (
	LogMsgLoadStarted   = "Loading inventory"
	LogMsgLoadSucceeded = "Inventory loaded"
	LogMsgLoadFailed    = "Error loading inventory"
	LogMsgLoadStale     = "Discarding stale inventory response"
	LogMsgLoadPanicked  = "Inventory load panicked"
)
