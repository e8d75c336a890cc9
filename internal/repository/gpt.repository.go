package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	// Complete sends a single prompt and returns the first answer
	Complete(ctx context.Context, prompt string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

func (h gptRepositoryHandler) Complete(ctx context.Context, prompt string) (string, error) {
	res, err := h.GptClient.SimpleSend(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to query gpt: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", errors.New("gpt returned no choices")
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}
