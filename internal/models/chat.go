package models

import "time"

// Sender — автор сообщения в чате.
type Sender string

const (
	// SenderUser: сообщение клиента.
	SenderUser Sender = "user"
	// SenderAssistant: ответ ассистента.
	SenderAssistant Sender = "assistant"
)

// SessionState — состояние сессии чата.
type SessionState string

const (
	// StateIdle: можно отправлять сообщение.
	StateIdle SessionState = "idle"
	// StateAwaitingReply: ждём ответ ассистента, новые сообщения отклоняются.
	StateAwaitingReply SessionState = "awaiting_reply"
)

// ChatMessage описывает сообщение в переписке. Переписка только дополняется.
type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Error     bool      `json:"error,omitempty"` // ответ-заглушка вместо ответа модели
	CreatedAt time.Time `json:"created_at"`
}

// ChatSession содержит снимок сессии чата.
type ChatSession struct {
	ID       string        `json:"id"`
	UserID   string        `json:"user_id"`
	State    SessionState  `json:"state"`
	Messages []ChatMessage `json:"messages"`
}

// OpenChatRequest описывает тело запроса на открытие сессии.
type OpenChatRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// SendMessageRequest описывает тело запроса на отправку сообщения.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}
