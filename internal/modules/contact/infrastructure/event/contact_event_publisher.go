package event

import (
	"context"
	"encoding/json"

	contactEntity "OssLarare/internal/modules/contact/domain/entity"
	contactRepository "OssLarare/internal/modules/contact/domain/repository"
	"OssLarare/internal/modules/contact/infrastructure/mq"
)

const headerEventType = "event_type"

type mqContactEventPublisher struct {
	pub   mq.Publisher
	topic string
}

// NewContactEventPublisher 以 owner_id 作为消息 key
func NewContactEventPublisher(pub mq.Publisher, topic string) contactRepository.ContactEventPublisher {
	return &mqContactEventPublisher{pub: pub, topic: topic}
}

func (p *mqContactEventPublisher) PublishContactEvent(ctx context.Context, evt contactEntity.ContactEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, err = p.pub.Publish(ctx, mq.Message{
		Topic:   p.topic,
		Key:     []byte(evt.OwnerId),
		Value:   value,
		Headers: map[string]string{headerEventType: evt.Type},
	})
	return err
}
