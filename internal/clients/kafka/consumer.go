package kafka

import (
	"context"
	"fmt"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/home-ledger/internal/logger"
	"max.ks1230/home-ledger/internal/model/events"
)

type consumerConfig interface {
	producerConfig
	ConsumerGroup() string
}

// Consumer tails the events topic and hands every decoded event to handle.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topic         string
	handle        func(ctx context.Context, ev events.Event) error
}

func NewConsumer(cfg consumerConfig, handle func(ctx context.Context, ev events.Event) error) (*Consumer, error) {
	config := newSaramaConfig()
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers(), cfg.ConsumerGroup(), config)
	if err != nil {
		return nil, errors.Wrap(err, "new kafka consumer group")
	}
	return &Consumer{
		consumerGroup: consumerGroup,
		topic:         cfg.EventsTopic(),
		handle:        handle,
	}, nil
}

func (c *Consumer) StartConsuming(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			err := c.consumerGroup.Consume(ctx, []string{c.topic}, c)
			if err != nil {
				return errors.Wrap(err, fmt.Sprintf("consume from %s", c.topic))
			}
		}
	}
}

func (c *Consumer) Close() error {
	return c.consumerGroup.Close()
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup")
	return nil
}

func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log := logger.With(zap.String("topic", claim.Topic()), zap.Int32("partition", claim.Partition()))
	for message := range claim.Messages() {
		ev, err := events.Unmarshal(message.Value)
		if err != nil {
			log.Error("cannot unmarshal kafka message", zap.Int64("offset", message.Offset), zap.Error(err))
		} else {
			log.Info(
				"received ledger event",
				zap.ByteString("key", message.Key),
				zap.String("kind", string(ev.Kind)),
				zap.Int64("record", ev.RecordID),
			)
			if err = c.handle(session.Context(), ev); err != nil {
				log.Error("failed to handle event", zap.Error(err))
			}
		}
		session.MarkMessage(message, "")
	}

	return nil
}
