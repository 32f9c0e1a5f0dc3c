package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/andriansah/cv-audit/internal/config"
	"github.com/andriansah/cv-audit/internal/model"
)

// GroqService talks to the Groq OpenAI-compatible chat completions API.
type GroqService struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *resty.Client
}

func NewGroqService() (*GroqService, error) {
	cfg := config.LoadGroqConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY not set")
	}
	return &GroqService{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		client:  resty.New().SetTimeout(90 * time.Second),
	}, nil
}

func (s *GroqService) Complete(ctx context.Context, messages []model.ChatMessage, structured bool) string {
	body := map[string]any{
		"model":    s.Model,
		"messages": messages,
	}
	if structured {
		body["response_format"] = map[string]string{"type": "json_object"}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(s.BaseURL + "/chat/completions")
	if err != nil {
		log.Printf("groq request failed: %v", err)
		return fallbackReply(structured)
	}
	if resp.IsError() {
		log.Printf("groq returned %s: %s", resp.Status(), resp.String())
		return fallbackReply(structured)
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		log.Println("groq returned no choices")
		return fallbackReply(structured)
	}
	return text
}
