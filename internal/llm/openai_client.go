package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates the OpenAI response carried no usable content.
	ErrOpenAIResponse = errors.New("empty OpenAI response")
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Request is one structured generation call.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	// SchemaName and Schema constrain the reply to a JSON document.
	SchemaName string
	Schema     map[string]any
}

// InsightsLLM produces the raw JSON the insight parser validates.
type InsightsLLM interface {
	// Complete returns the model reply verbatim. It never interprets the
	// content; validation belongs to the caller.
	Complete(ctx context.Context, req Request) ([]byte, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = DefaultModel
	}

	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// Complete calls the chat completions API with a JSON schema response format.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) ([]byte, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	params := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
	}
	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.SchemaName,
					Schema: req.Schema,
				},
			},
		}
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: empty message content", ErrOpenAIResponse)
	}

	return []byte(content), nil
}
