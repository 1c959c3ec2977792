package send

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/dreambody-studio/internal/models"
	"github.com/magabrotheeeer/dreambody-studio/internal/services/chat"
)

// MockService реализует интерфейс send.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Send(ctx context.Context, sessionID, text string) (models.ChatMessage, error) {
	args := m.Called(ctx, sessionID, text)
	return args.Get(0).(models.ChatMessage), args.Error(1)
}

func TestSendHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "ответ ассистента",
			requestBody: `{"text":"How many squats?"}`,
			setupMock: func(m *MockService) {
				m.On("Send", mock.Anything, "s1", "How many squats?").Return(models.ChatMessage{
					ID:     "m2",
					Sender: models.SenderAssistant,
					Text:   "Three sets of ten.",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"text":"Three sets of ten."`,
		},
		{
			name:        "ответ-заглушка при недоступной модели",
			requestBody: `{"text":"hi"}`,
			setupMock: func(m *MockService) {
				m.On("Send", mock.Anything, "s1", "hi").Return(models.ChatMessage{
					ID:     "m2",
					Sender: models.SenderAssistant,
					Text:   chat.FallbackReply,
					Error:  true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"error":true`,
		},
		{
			name:        "пустое сообщение",
			requestBody: `{"text":"   "}`,
			setupMock: func(m *MockService) {
				m.On("Send", mock.Anything, "s1", "   ").
					Return(models.ChatMessage{}, fmt.Errorf("chat.Send: %w", chat.ErrEmptyMessage))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"errors":["field text is a required field"]`,
		},
		{
			name:        "сессия ждёт ответа",
			requestBody: `{"text":"again"}`,
			setupMock: func(m *MockService) {
				m.On("Send", mock.Anything, "s1", "again").
					Return(models.ChatMessage{}, fmt.Errorf("chat.Send: %w", chat.ErrSessionBusy))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"previous message is still awaiting a reply"}`,
		},
		{
			name:        "сессия не найдена",
			requestBody: `{"text":"hi"}`,
			setupMock: func(m *MockService) {
				m.On("Send", mock.Anything, "s1", "hi").
					Return(models.ChatMessage{}, fmt.Errorf("chat.Send: %w", chat.ErrSessionNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"chat session not found"}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    `{`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/chat/sessions/s1/messages", strings.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", "s1")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
