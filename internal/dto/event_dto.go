package dto

import "time"

// ChangeEvent is broadcast after every successful mutation so other
// sessions (and other nodes via the message bus) can invalidate their
// derived views. NodeID identifies the publishing node; subscribers drop
// their own events.
type ChangeEvent struct {
	NodeID   string    `json:"node_id"`
	OwnerID  string    `json:"owner_id"`
	Entity   string    `json:"entity"`
	Action   string    `json:"action"`
	EntityID uint      `json:"entity_id,omitempty"`
	At       time.Time `json:"at"`
}

// Change-event actions.
const (
	ChangeActionCreated = "created"
	ChangeActionUpdated = "updated"
	ChangeActionDeleted = "deleted"
)
