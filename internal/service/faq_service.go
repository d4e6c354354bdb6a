package service

import (
	"context"
	"strings"
)

// TextGenerator is the slice of the AI collaborator the FAQ needs: one
// completion per question, no retries, no streaming.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// FAQService answers visitor questions with a generated summary.
type FAQService interface {
	Answer(ctx context.Context, question string) (string, error)
}

type faqService struct {
	gen TextGenerator
}

// NewFAQService creates a FAQService. gen may be nil when no AI provider is
// configured; Answer then returns ErrAssistantUnavailable.
func NewFAQService(gen TextGenerator) FAQService {
	return &faqService{gen: gen}
}

const faqPrompt = `You are the assistant of The LUU Visa Consultant, a visa
consultancy. Answer the visitor's question about visa applications,
requirements and processing in two or three short sentences. If the question
is unrelated to visas or travel, politely say you can only help with visa
topics.

Question: `

func (s *faqService) Answer(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", invalid("question_required")
	}
	if s.gen == nil {
		return "", ErrAssistantUnavailable
	}
	return s.gen.Complete(ctx, faqPrompt+question)
}
