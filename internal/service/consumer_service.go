package service

import (
	"context"
	"encoding/json"

	"dp-ai-be/internal/dto"
	"dp-ai-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the transcript topic and writes each exchange to the
// isolated transcript log, keeping audit I/O off the request path.
type consumerService struct {
	pubSub           *gochannel.GoChannel
	topicName        string
	transcriptLogger logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	transcriptLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:           pubSub,
		topicName:        topicName,
		transcriptLogger: transcriptLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.ChatTranscriptMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.transcriptLogger.Warn("transcript", "failed to unmarshal transcript message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	cs.transcriptLogger.Info("transcript", "exchange", map[string]interface{}{
		"id":          payload.Id,
		"session_key": payload.SessionKey,
		"message":     payload.Message,
		"reply":       payload.Reply,
		"fallback":    payload.Fallback,
		"occurred_at": payload.OccurredAt,
	})
	msg.Ack()
}
