package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockGenerator struct {
	completeFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, prompt)
	}
	return "", nil
}

func TestFAQService_AnswerWrapsQuestionInPrompt(t *testing.T) {
	var gotPrompt string
	svc := NewFAQService(&mockGenerator{
		completeFunc: func(_ context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "Processing usually takes two weeks.", nil
		},
	})

	answer, err := svc.Answer(context.Background(), "How long does a tourist visa take?")
	if err != nil {
		t.Fatalf("answer: %v", err)
	}
	if answer != "Processing usually takes two weeks." {
		t.Errorf("unexpected answer: %q", answer)
	}
	if !strings.Contains(gotPrompt, "How long does a tourist visa take?") {
		t.Errorf("prompt missing the question: %q", gotPrompt)
	}
	if !strings.HasSuffix(gotPrompt, "How long does a tourist visa take?") {
		t.Errorf("question should terminate the prompt: %q", gotPrompt)
	}
}

func TestFAQService_AnswerWithoutProvider(t *testing.T) {
	svc := NewFAQService(nil)
	_, err := svc.Answer(context.Background(), "Do I need a visa?")
	if !errors.Is(err, ErrAssistantUnavailable) {
		t.Errorf("expected ErrAssistantUnavailable, got %v", err)
	}
}

func TestFAQService_AnswerRejectsBlankQuestion(t *testing.T) {
	svc := NewFAQService(&mockGenerator{})
	_, err := svc.Answer(context.Background(), "   ")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Code != "question_required" {
		t.Errorf("expected question_required, got %v", err)
	}
}
