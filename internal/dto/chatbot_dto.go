package dto

import "pdf-chatbot-be/pkg/store"

type ChatRequest struct {
	Question string `json:"question" validate:"required"`
}

type ChatResponse struct {
	UserId   string              `json:"user_id"`
	Question string              `json:"question"`
	Answer   string              `json:"answer"`
	Sources  []store.SourceChunk `json:"sources,omitempty"`
}
