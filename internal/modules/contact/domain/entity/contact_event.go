package entity

import "time"

const (
	EventContactAdded   = "contact.added"
	EventContactRemoved = "contact.removed"
)

// ContactEvent 关系变更后对外发布的事件
type ContactEvent struct {
	Type       string    `json:"type"`
	OwnerId    string    `json:"owner_id"`
	ContactId  string    `json:"contact_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
