// Package gemini содержит клиент модели Gemini, отвечающий на вопросы клиентов студии.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/magabrotheeeer/dreambody-studio/internal/config"
)

// ErrEmptyResponse возвращается, если модель не вернула ни одного текстового фрагмента.
var ErrEmptyResponse = errors.New("model returned empty response")

const systemInstruction = `You are Dream Body AI, a friendly and knowledgeable fitness coach at a gym.
Give concise, practical advice about workouts, nutrition and exercise form.
Use the member profile provided with each question to personalise the answer.
Do not give medical diagnoses; suggest seeing a doctor for injuries or health conditions.`

// Client обращается к модели Gemini.
type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

// New создаёт клиента по настройкам из конфига.
func New(ctx context.Context, cfg config.Gemini) (*Client, error) {
	const op = "gemini.New"

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", op, errors.New("api key is empty"))
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(cfg.Temperature)
	if cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &Client{client: client, model: model, timeout: cfg.Timeout}, nil
}

// GenerateAdvice отправляет вопрос клиента вместе с его профилем и возвращает ответ модели.
func (c *Client) GenerateAdvice(ctx context.Context, message, userContext string) (string, error) {
	const op = "gemini.GenerateAdvice"

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(buildPrompt(message, userContext)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	text, err := extractText(resp)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return text, nil
}

// Close освобождает соединение с API.
func (c *Client) Close() error {
	return c.client.Close()
}

func buildPrompt(message, userContext string) string {
	var b strings.Builder
	b.WriteString("Member profile:\n")
	b.WriteString(strings.TrimSpace(userContext))
	b.WriteString("\n\nQuestion:\n")
	b.WriteString(strings.TrimSpace(message))
	return b.String()
}

// extractText склеивает текстовые части первого кандидата.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyResponse
	}
	return out, nil
}
