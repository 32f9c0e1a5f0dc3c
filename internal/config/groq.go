package config

import (
	"os"
	"sync"
)

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

var (
	groqConfig *GroqConfig
	groqOnce   sync.Once
)

func LoadGroqConfig() *GroqConfig {
	groqOnce.Do(func() {
		baseURL := os.Getenv("GROQ_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.groq.com/openai/v1"
		}
		model := os.Getenv("GROQ_MODEL")
		if model == "" {
			model = "llama-3.3-70b-versatile"
		}
		groqConfig = &GroqConfig{
			APIKey:  os.Getenv("GROQ_API_KEY"),
			BaseURL: baseURL,
			Model:   model,
		}
	})
	return groqConfig
}
