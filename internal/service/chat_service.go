package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"dp-ai-be/internal/constant"
	"dp-ai-be/internal/dto"
	"dp-ai-be/internal/pkg/logger"
	"dp-ai-be/internal/repository/memory"
	"dp-ai-be/pkg/identity"
	"dp-ai-be/pkg/llm"
	"dp-ai-be/pkg/recall"
	"dp-ai-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	sessionRepo *memory.SessionRepository
	llmProvider llm.Provider
	pubSub      *gochannel.GoChannel
	topicName   string
	temperature float64
	logger      logger.ILogger
}

func NewChatService(
	sessionRepo *memory.SessionRepository,
	llmProvider llm.Provider,
	pubSub *gochannel.GoChannel,
	topicName string,
	temperature float64,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		sessionRepo: sessionRepo,
		llmProvider: llmProvider,
		pubSub:      pubSub,
		topicName:   topicName,
		temperature: temperature,
		logger:      sysLogger,
	}
}

// Chat runs one exchange: normalize identity, extract facts, short-circuit on
// direct recall, otherwise relay to the completion service. Upstream failures
// never propagate; the caller always gets a reply string.
func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	key, err := identity.Normalize(firstNonBlank(req.SessionID, req.Email, req.Name))
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(req.Username)
	if displayName == "" {
		displayName = strings.TrimSpace(req.Name)
	}

	sess := s.sessionRepo.GetOrCreate(key, displayName)
	userMessage := req.Message

	// Fact extraction runs on a case-insensitivized copy inside recall; the
	// original text is what goes into history and the prompt.
	if name, ok := recall.ExtractName(userMessage); ok {
		s.sessionRepo.SetDisplayName(key, name)
		sess.DisplayName = name
	}
	if like, ok := recall.ExtractLike(userMessage); ok {
		s.sessionRepo.AddLike(key, like)
		sess.AddLike(like)
	}

	// Direct recall and creator questions answer without a completion call
	// and without touching history.
	if answer, ok := recall.Answer(userMessage, sess.DisplayName, sess.Likes); ok {
		return &dto.ChatResponse{Reply: answer}, nil
	}
	if recall.IsCreatorQuestion(userMessage) {
		return &dto.ChatResponse{Reply: constant.CreatorReply}, nil
	}

	messages := buildMessages(sess.History, userMessage)

	// The user turn lands before the relay call so chronology holds even if
	// the upstream hangs or fails.
	s.sessionRepo.AppendTurn(key, store.Turn{Role: store.RoleUser, Content: userMessage})

	reply, llmErr := s.llmProvider.Chat(ctx, messages, llm.WithTemperature(s.temperature))
	fallback := llmErr != nil
	if fallback {
		s.logger.Error("chat", "completion request failed", map[string]interface{}{
			"key":   key,
			"error": llmErr.Error(),
		})
		reply = constant.FallbackReply
	} else {
		reply = cleanReply(reply)
	}

	// Every returned reply is append-worthy, fallback text included.
	s.sessionRepo.AppendTurn(key, store.Turn{Role: store.RoleAssistant, Content: reply})

	s.publishTranscript(key, userMessage, reply, fallback)

	return &dto.ChatResponse{Reply: reply}, nil
}

func buildMessages(history []store.Turn, newMessage string) []llm.Message {
	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: store.RoleSystem, Content: constant.SystemPrompt})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: store.RoleUser, Content: newMessage})
	return messages
}

// cleanReply trims whitespace and strips a leading role label the model
// occasionally echoes. Cosmetic only.
func cleanReply(reply string) string {
	reply = strings.TrimSpace(reply)
	for _, label := range []string{"Assistant:", "User:"} {
		if strings.HasPrefix(reply, label) {
			reply = strings.TrimSpace(strings.TrimPrefix(reply, label))
			break
		}
	}
	return reply
}

func (s *chatService) publishTranscript(key, userMessage, reply string, fallback bool) {
	if s.pubSub == nil {
		return
	}

	payload, err := json.Marshal(dto.ChatTranscriptMessage{
		Id:         uuid.NewString(),
		SessionKey: key,
		Message:    userMessage,
		Reply:      reply,
		Fallback:   fallback,
		OccurredAt: time.Now(),
	})
	if err != nil {
		s.logger.Warn("chat", "failed to marshal transcript", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Warn("chat", "failed to publish transcript", map[string]interface{}{"error": err.Error()})
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
