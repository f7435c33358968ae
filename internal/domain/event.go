package domain

// Event types broadcast on entity lifecycle changes.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// Event describes an entity lifecycle change fanned out to subscribers.
type Event struct {
	Type     string `json:"type"`
	Resource string `json:"resource"`
	ID       string `json:"id"`
	Body     any    `json:"body,omitempty"`
}
