package ports

// EventSink receives hand events as the round service emits them.
// Kind is the event name, handID the hand it belongs to.
type EventSink interface {
	Publish(kind, handID string, payload any)
}
