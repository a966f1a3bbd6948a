package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// language display names for the translation prompt; anything not listed is
// passed through as the raw code
var languageNames = map[string]string{
	"ka": "Georgian",
	"sk": "Slovak",
	"sl": "Slovenian",
	"lv": "Latvian",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"vi": "Vietnamese",
}

// analysisSchema is the function-calling parameter schema for structured
// meeting analysis
var analysisSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "summary": {
      "type": "string",
      "description": "A concise summary of the meeting"
    },
    "action_items": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "task": {"type": "string"},
          "owner": {"type": "string"},
          "deadline": {"type": "string"}
        }
      },
      "description": "List of action items from the meeting"
    },
    "decisions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "decision": {"type": "string"},
          "context": {"type": "string"}
        }
      },
      "description": "Key decisions made during the meeting"
    }
  },
  "required": ["summary", "action_items", "decisions"]
}`)

// OpenAIClient wraps an OpenAI-compatible inference endpoint. It covers the
// five collaborator contracts the service consumes: embeddings, audio
// transcription, structured analysis, translation and image generation.
type OpenAIClient struct {
	client *openai.Client
	cfg    *config.OpenAIConfig
}

// NewOpenAIClient creates a client from the provided config. A custom
// BaseURL points it at any OpenAI-compatible provider.
func NewOpenAIClient(cfg *config.OpenAIConfig) *OpenAIClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}
}

// Embed maps text to a fixed-length vector
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.EmbeddingModel(c.cfg.EmbeddingModel),
		Dimensions: c.cfg.EmbeddingDimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("create embeddings failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}

	vector := resp.Data[0].Embedding
	if len(vector) != c.cfg.EmbeddingDimensions {
		return nil, fmt.Errorf("embedding dimension mismatch: got %d, want %d", len(vector), c.cfg.EmbeddingDimensions)
	}
	return vector, nil
}

// Transcribe converts meeting audio to text via the Whisper endpoint
func (c *OpenAIClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.cfg.TranscriptionModel,
		FilePath: filename,
		Reader:   audio,
		Format:   openai.AudioResponseFormatText,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	return resp.Text, nil
}

// AnalyzeTranscript asks the chat model to extract summary, action items and
// decisions via function calling and returns the raw JSON arguments. Parsing
// and shape validation happen in the meeting usecase.
func (c *OpenAIClient) AnalyzeTranscript(ctx context.Context, transcription string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a meeting analyst. Extract key insights, action items, and decisions from meeting transcriptions.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Analyze this meeting transcription and extract insights:\n\n%s", transcription),
			},
		},
		Functions: []openai.FunctionDefinition{
			{
				Name:        "extract_meeting_insights",
				Description: "Extract key insights from meeting transcription",
				Parameters:  analysisSchema,
			},
		},
		FunctionCall: openai.FunctionCall{Name: "extract_meeting_insights"},
	})
	if err != nil {
		return "", fmt.Errorf("analysis failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from analysis model")
	}

	msg := resp.Choices[0].Message
	if msg.FunctionCall != nil && msg.FunctionCall.Arguments != "" {
		return msg.FunctionCall.Arguments, nil
	}
	// Some providers return plain content instead of a function call
	return msg.Content, nil
}

// Translate translates text to the target language, keeping meaning and tone
func (c *OpenAIClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	langName := targetLanguage
	if name, ok := languageNames[targetLanguage]; ok {
		langName = name
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.ChatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("You are a professional translator. Translate the following text to %s. Maintain the original meaning and tone.", langName),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from translation model")
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage renders the visual summary and returns its URL
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Model:   c.cfg.ImageModel,
		Prompt:  prompt,
		Size:    openai.CreateImageSize1024x1024,
		Quality: openai.CreateImageQualityStandard,
		N:       1,
	})
	if err != nil {
		return "", fmt.Errorf("image generation failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("empty response from image model")
	}
	return resp.Data[0].URL, nil
}
