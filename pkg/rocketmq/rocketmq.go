package rocketmq

import (
	"context"

	"Worklog/config"
	"Worklog/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

const defaultTopic = "worklog-note-events"

func init() {
	rlog.SetLogLevel("error")
}

// Producer 未配置 nameserver 时为空实现
type Producer struct {
	producer rocketmq.Producer
	topic    string
}

func InitProducer(cfg *config.RocketMQConfig) (*Producer, func(), error) {
	if !cfg.Enabled() {
		log.L.Info("rocketmq not configured, note events disabled")
		return &Producer{}, func() {}, nil
	}
	group := cfg.Producer.Group
	if group == "" {
		group = "worklog-api"
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		return nil, nil, err
	}
	if err = p.Start(); err != nil {
		return nil, nil, err
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))

	topic := cfg.Topic
	if topic == "" {
		topic = defaultTopic
	}
	cleanup := func() {
		if err := p.Shutdown(); err != nil {
			log.L.Warn("rocketmq producer shutdown", zap.Error(err))
		}
	}
	return &Producer{producer: p, topic: topic}, cleanup, nil
}

func (p *Producer) Enabled() bool {
	return p != nil && p.producer != nil
}

func (p *Producer) Topic() string {
	return p.topic
}

// SendMsg 发送同步消息
func (p *Producer) SendMsg(ctx context.Context, topic string, body []byte) error {
	if !p.Enabled() {
		return nil
	}
	res, err := p.producer.SendSync(ctx, primitive.NewMessage(topic, body))
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("topic", topic), zap.String("msg_id", res.MsgID))
	return nil
}
