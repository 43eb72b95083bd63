// Package queue carries record.created events over RabbitMQ: a publisher
// used by the write operations and an audit consumer that appends each
// event to logs/records.log.
package queue

// RecordCreatedEvent is published after a write operation stores a row.
// ID is zero for entities keyed by a pair (equipment usage); the pair is
// then found in Attributes.
type RecordCreatedEvent struct {
	Entity     string         `json:"entity"`
	ID         uint64         `json:"id,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	CreatedAt  string         `json:"created_at"`
}
