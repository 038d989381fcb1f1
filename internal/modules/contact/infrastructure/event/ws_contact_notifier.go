package event

import (
	"time"

	contactEntity "OssLarare/internal/modules/contact/domain/entity"
	contactRepository "OssLarare/internal/modules/contact/domain/repository"
	"OssLarare/pkg/ws"
)

type wsContactNotifier struct {
	hub *ws.Hub
	now func() time.Time
}

func NewWsContactNotifier(hub *ws.Hub) contactRepository.ContactNotifier {
	return &wsContactNotifier{hub: hub, now: time.Now}
}

// NotifyContactAdded 告知被添加方；对方离线时静默跳过
func (n *wsContactNotifier) NotifyContactAdded(ownerID, contactID string) error {
	_, err := n.hub.SendJSON(contactID, map[string]interface{}{
		"type":         contactEntity.EventContactAdded,
		"from_user_id": ownerID,
		"created_at":   n.now().Format(time.RFC3339),
	})
	return err
}
