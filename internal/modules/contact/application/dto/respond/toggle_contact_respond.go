package respond

import "time"

type ToggleContactRespond struct {
	OwnerId   string `json:"owner_id"`
	ContactId string `json:"contact_id"`
	Outcome   string `json:"outcome"`
	// Present 权威存在状态，前端用它重建本地视图
	Present bool `json:"present"`
}

type ContactStatusRespond struct {
	OwnerId   string `json:"owner_id"`
	ContactId string `json:"contact_id"`
	Present   bool   `json:"present"`
}

type ContactListItem struct {
	ContactId string    `json:"contact_id"`
	CreatedAt time.Time `json:"created_at"`
}
