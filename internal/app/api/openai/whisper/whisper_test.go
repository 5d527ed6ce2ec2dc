package whisper

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

// TestRemoteTranscriber_Transcript tests the RemoteTranscriber against a
// mock OpenAI endpoint.
func TestRemoteTranscriber_Transcript(t *testing.T) {
	tests := []struct {
		name          string
		mockResponse  string
		mockStatus    int
		expectedText  string
		expectError   bool
		errorContains string
	}{
		{
			name:         "successful transcription",
			mockResponse: `{"text": "I led the whole platform team."}`,
			mockStatus:   http.StatusOK,
			expectedText: "I led the whole platform team.",
		},
		{
			name:         "transcription with special characters",
			mockResponse: `{"text": "Hello, 世界! Testimony with émojis 🎵"}`,
			mockStatus:   http.StatusOK,
			expectedText: "Hello, 世界! Testimony with émojis 🎵",
		},
		{
			name:          "API error - unauthorized",
			mockResponse:  `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			mockStatus:    http.StatusUnauthorized,
			expectError:   true,
			errorContains: "401",
		},
		{
			name:          "API error - rate limit",
			mockResponse:  `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:    http.StatusTooManyRequests,
			expectError:   true,
			errorContains: "429",
		},
		{
			name:         "empty transcription",
			mockResponse: `{"text": ""}`,
			mockStatus:   http.StatusOK,
			expectedText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") == "" {
					t.Error("Missing Authorization header")
				}
				if r.Method != http.MethodPost {
					t.Errorf("Expected POST method, got %s", r.Method)
				}
				if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
					t.Errorf("Expected multipart/form-data content type, got %s", r.Header.Get("Content-Type"))
				}

				if err := r.ParseMultipartForm(32 << 20); err != nil {
					t.Errorf("Failed to parse multipart form: %v", err)
				}
				if model := r.FormValue("model"); model != "whisper-1" {
					t.Errorf("Expected model whisper-1, got %s", model)
				}

				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			}))
			defer server.Close()

			config := openai.DefaultConfig("test-api-key")
			config.BaseURL = server.URL + "/v1"
			client := openai.NewClientWithConfig(config)
			rt := NewRemoteTranscriber(client)

			tempFile := createTempTestFile(t, "audio.mp3")

			result, err := rt.Transcript(tempFile)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("Expected error containing '%s', got '%s'", tt.errorContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if result != tt.expectedText {
				t.Errorf("Expected text '%s', got '%s'", tt.expectedText, result)
			}
		})
	}
}

// TestRemoteTranscriber_FileNotFound tests handling of non-existent files
func TestRemoteTranscriber_FileNotFound(t *testing.T) {
	config := openai.DefaultConfig("test-api-key")
	client := openai.NewClientWithConfig(config)
	rt := NewRemoteTranscriber(client)

	_, err := rt.Transcript("/non/existent/file.mp3")
	if err == nil {
		t.Error("Expected error for non-existent file, got none")
	}
}

// TestRemoteTranscriberWithConfig verifies settings reach the request.
func TestRemoteTranscriberWithConfig(t *testing.T) {
	var gotModel, gotLanguage, gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("Failed to parse multipart form: %v", err)
		}
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")
		gotPrompt = r.FormValue("prompt")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"text": "ok"}`))
	}))
	defer server.Close()

	rt := NewRemoteTranscriberWithConfig(Config{
		APIKey:   "test-api-key",
		Model:    "whisper-1",
		Language: "en",
		Prompt:   "testimony recording",
		BaseURL:  server.URL + "/v1",
	})

	tempFile := createTempTestFile(t, "audio.mp3")

	result, err := rt.Transcript(tempFile)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result != "ok" {
		t.Errorf("Expected 'ok', got '%s'", result)
	}
	if gotModel != "whisper-1" {
		t.Errorf("Expected model whisper-1, got %s", gotModel)
	}
	if gotLanguage != "en" {
		t.Errorf("Expected language en, got %s", gotLanguage)
	}
	if gotPrompt != "testimony recording" {
		t.Errorf("Expected prompt to be forwarded, got %s", gotPrompt)
	}
}

// TestCreateOpenAIProvider_MissingKey verifies the creator rejects a
// configuration with no API key anywhere.
func TestCreateOpenAIProvider_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := createOpenAIProvider(map[string]interface{}{
		"auth":     map[string]interface{}{},
		"settings": map[string]interface{}{},
	})
	if err == nil {
		t.Fatal("Expected error for missing API key, got none")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("Expected error mentioning OPENAI_API_KEY, got '%s'", err.Error())
	}
}

func TestCreateOpenAIProvider_ConfiguredKey(t *testing.T) {
	transcriber, err := createOpenAIProvider(map[string]interface{}{
		"auth": map[string]interface{}{"api_key": "sk-test-1234567890abcdef"},
		"settings": map[string]interface{}{
			"model":    "whisper-1",
			"language": "en",
		},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if transcriber == nil {
		t.Fatal("Expected a transcriber, got nil")
	}
}

// Helper function to create temporary test files
func createTempTestFile(t *testing.T, name string) string {
	t.Helper()

	tempFile := filepath.Join(t.TempDir(), filepath.Base(name))

	// Minimal valid WAV header
	wavHeader := []byte{
		0x52, 0x49, 0x46, 0x46, // "RIFF"
		0x24, 0x00, 0x00, 0x00, // File size
		0x57, 0x41, 0x56, 0x45, // "WAVE"
		0x66, 0x6D, 0x74, 0x20, // "fmt "
		0x10, 0x00, 0x00, 0x00, // Chunk size
		0x01, 0x00, // Audio format (PCM)
		0x01, 0x00, // Channels (mono)
		0x80, 0x3E, 0x00, 0x00, // Sample rate (16000)
		0x00, 0x7D, 0x00, 0x00, // Byte rate
		0x02, 0x00, // Block align
		0x10, 0x00, // Bits per sample
		0x64, 0x61, 0x74, 0x61, // "data"
		0x00, 0x00, 0x00, 0x00, // Data size
	}

	if err := os.WriteFile(tempFile, wavHeader, 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	return tempFile
}
