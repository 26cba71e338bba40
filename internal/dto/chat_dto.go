package dto

import "time"

type ChatRequest struct {
	Message string `json:"message" validate:"required"`

	// Identity: the first non-blank of SessionID, Email, Name is normalized
	// into the session lookup key.
	SessionID string `json:"sessionId"`
	Email     string `json:"email"`
	Name      string `json:"name"`

	// Optional display name used when the session is first created.
	Username string `json:"username"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatTranscriptMessage is the payload published per exchange on the
// transcript topic.
type ChatTranscriptMessage struct {
	Id         string    `json:"id"`
	SessionKey string    `json:"session_key"`
	Message    string    `json:"message"`
	Reply      string    `json:"reply"`
	Fallback   bool      `json:"fallback"`
	OccurredAt time.Time `json:"occurred_at"`
}
