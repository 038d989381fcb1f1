package repository

import (
	"context"

	"OssLarare/internal/modules/contact/domain/entity"
)

// ContactEventPublisher 关系变更事件出口（Kafka / 无操作）
type ContactEventPublisher interface {
	PublishContactEvent(ctx context.Context, evt entity.ContactEvent) error
}

// ContactNotifier 向在线用户推送实时通知
type ContactNotifier interface {
	NotifyContactAdded(ownerID, contactID string) error
}
