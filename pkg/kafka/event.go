package kafka

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionCreated Action = "CREATED"
	ActionUpdated Action = "UPDATED"
	ActionDeleted Action = "DELETED"
)

// CatalogEvent is published after every successful catalog write.
type CatalogEvent struct {
	Kind      string    `json:"kind"`
	Action    Action    `json:"action"`
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}
