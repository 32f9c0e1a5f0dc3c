package service

import (
	"context"

	"github.com/andriansah/cv-audit/internal/model"
)

// Safe defaults returned when the remote model service fails. Callers can
// always parse or display the return value; remote failures never surface
// as errors above the client boundary.
const (
	StructuredFallback = "{}"
	FreeTextFallback   = "Error"
)

type ModelService interface {
	// Complete sends the message sequence to the model and returns the
	// reply text. When structured is true the model is constrained to a
	// single JSON object with no surrounding prose.
	Complete(ctx context.Context, messages []model.ChatMessage, structured bool) string
}

func fallbackReply(structured bool) string {
	if structured {
		return StructuredFallback
	}
	return FreeTextFallback
}
