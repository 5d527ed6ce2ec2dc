package whisper

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Config represents configuration specific to the OpenAI Whisper provider
type Config struct {
	APIKey      string
	Model       string
	Language    string
	Prompt      string
	Temperature float32
	BaseURL     string
}

// RemoteTranscriber implements remote transcription using the OpenAI API.
type RemoteTranscriber struct {
	client *openai.Client
	config Config
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{
		client: client,
		config: Config{Model: string(openai.Whisper1)},
	}
}

// NewRemoteTranscriberWithConfig creates a RemoteTranscriber with explicit
// provider configuration.
func NewRemoteTranscriberWithConfig(config Config) *RemoteTranscriber {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	if config.Model == "" {
		config.Model = string(openai.Whisper1)
	}

	return &RemoteTranscriber{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}
}

// Transcript uses the OpenAI API for remote transcription.
func (rt *RemoteTranscriber) Transcript(inputFilePath string) (string, error) {
	ctx := context.Background()

	req := openai.AudioRequest{
		Model:       rt.config.Model,
		FilePath:    inputFilePath,
		Language:    rt.config.Language,
		Prompt:      rt.config.Prompt,
		Temperature: rt.config.Temperature,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %s", err)
	}

	return resp.Text, nil
}
