package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"max.ks1230/home-ledger/internal/logger"
)

type messageSender interface {
	SendMessage(text string, chatID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string) (string, error)
}

// Service answers bot commands from the one chat it is configured for.
type Service struct {
	tgClient messageSender
	handler  MessageHandler
	chatID   int64
}

func NewService(tgClient messageSender, reporter reporter, allocator homeAllocator, config config, chatID int64) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(reporter, allocator, config),
		chatID:   chatID,
	}
}

type Message struct {
	Text   string
	ChatID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	if msg.ChatID != s.chatID {
		logger.Warn("message from unknown chat ignored", zap.Int64("chat", msg.ChatID))
		return nil
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	cmd, _ := parseCommand(msg.Text)
	observeResponse(cmd, elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text)
	if err != nil {
		_ = s.tgClient.SendMessage("Sorry, something wrong happened...\n"+resp, msg.ChatID)
		return err
	}
	return s.tgClient.SendMessage(resp, msg.ChatID)
}
