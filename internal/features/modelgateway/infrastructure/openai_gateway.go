package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"prompt-optimizer/backend/internal/apperr"
	"prompt-optimizer/backend/internal/features/modelgateway/domain"
)

// chatAPI is the subset of [*openai.Client] the gateway calls.
type chatAPI interface {
	// CreateChatCompletion maps to [openai.Client.CreateChatCompletion]
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)

	// CreateEmbeddings maps to [openai.Client.CreateEmbeddings]
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// openAIGateway serves Generate and Embed through an OpenAI-compatible chat completions API.
type openAIGateway struct {
	client         chatAPI
	defaultModel   string
	embeddingModel string
	timeout        time.Duration
}

func newOpenAIGateway(client chatAPI, defaultModel, embeddingModel string, timeout time.Duration) *openAIGateway {
	return &openAIGateway{
		client:         client,
		defaultModel:   defaultModel,
		embeddingModel: embeddingModel,
		timeout:        timeout,
	}
}

func (g *openAIGateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

// Generate sends the prompt as a single user message and returns the first choice.
// An empty choice list is not an error; callers decide what empty output means.
func (g *openAIGateway) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = g.defaultModel
	}
	if model == "" {
		return "", &apperr.GatewayError{Op: "generate", Err: fmt.Errorf("no model configured")}
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxOutputLength,
		Temperature: float32(req.Temperature),
		TopP:        float32(req.TopP),
		N:           1,
	})
	if err != nil {
		slog.Warn("chat completion failed", "model", model, "error", err)
		return "", &apperr.GatewayError{Op: "generate", Model: model, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// Embed embeds all texts in one request.
func (g *openAIGateway) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(g.embeddingModel),
	})
	if err != nil {
		return nil, &apperr.GatewayError{Op: "embed", Model: g.embeddingModel, Err: err}
	}
	if len(resp.Data) != len(texts) {
		return nil, &apperr.GatewayError{
			Op:    "embed",
			Model: g.embeddingModel,
			Err:   fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data)),
		}
	}

	data := resp.Data
	sort.SliceStable(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	vectors := make([][]float32, len(data))
	for i, d := range data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}
