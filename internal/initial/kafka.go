package initial

import (
	"OssLarare/internal/config"
	contactRepository "OssLarare/internal/modules/contact/domain/repository"
	"OssLarare/internal/modules/contact/infrastructure/event"
	"OssLarare/internal/modules/contact/infrastructure/mq"
	"OssLarare/internal/modules/contact/infrastructure/mq/kafka"
	"OssLarare/pkg/zlog"

	"go.uber.org/zap"
)

// NewContactEventPublisher 未配置 broker 时不发布事件，返回的 mq.Publisher 需要在退出时关闭
func NewContactEventPublisher(conf config.KafkaConfig) (contactRepository.ContactEventPublisher, mq.Publisher, error) {
	if len(conf.Brokers) == 0 {
		zlog.Info("Kafka 未配置，联系人事件不发布")
		return nil, nil, nil
	}
	pub, err := kafka.NewSaramaPublisher(kafka.PublisherConfig{
		Brokers:  conf.Brokers,
		ClientID: conf.ClientID,
	})
	if err != nil {
		return nil, nil, err
	}
	zlog.Info("Kafka publisher ready",
		zap.Strings("brokers", conf.Brokers),
		zap.String("topic", conf.ContactTopic))
	return event.NewContactEventPublisher(pub, conf.ContactTopic), pub, nil
}
