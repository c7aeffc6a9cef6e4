package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/events"
)

type producerConfig interface {
	Brokers() []string
	EventsTopic() string
}

// Producer publishes ledger events, keyed by table so changes to one table
// stay ordered.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func newSaramaConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	return config
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := newSaramaConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new kafka producer")
	}
	return &Producer{
		producer: producer,
		topic:    cfg.EventsTopic(),
	}, nil
}

func (p *Producer) Publish(_ context.Context, ev events.Event) error {
	payload, err := ev.Marshal()
	if err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.Table),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return errors.Wrap(err, "send kafka message")
	}
	return nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
