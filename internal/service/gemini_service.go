package service

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/andriansah/cv-audit/internal/config"
	"github.com/andriansah/cv-audit/internal/model"
)

// GeminiService is the alternate model backend, selected with
// MODEL_PROVIDER=gemini.
type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context) (*GeminiService, error) {
	cfg := config.LoadGeminiConfig()
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiService{client: client, model: cfg.Model}, nil
}

func (s *GeminiService) Complete(ctx context.Context, messages []model.ChatMessage, structured bool) string {
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}
	if structured {
		genConfig.ResponseMIMEType = "application/json"
	}

	var contents []*genai.Content
	for _, m := range messages {
		switch m.Role {
		case model.RoleSystem:
			genConfig.SystemInstruction = genai.NewContentFromText(m.Content, genai.RoleUser)
		case model.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, genConfig)
	if err != nil {
		log.Printf("gemini request failed: %v", err)
		return fallbackReply(structured)
	}

	text := result.Text()
	if text == "" {
		log.Println("gemini returned no text content")
		return fallbackReply(structured)
	}
	return text
}
