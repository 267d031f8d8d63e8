package transcribe

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/logging"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/model"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/utils"
)

const (
	providerName     = "openai"
	defaultModelName = "whisper-1"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Transcriber submits local audio files whole (no chunking or streaming) to
// the speech-to-text API and returns the transcript text.
type Transcriber struct {
	apiClient openai.Client
	modelName string
}

func New(cfg Config) *Transcriber {
	requestOpts := make([]option.RequestOption, 0, 2)
	if cfg.BaseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		requestOpts = append(requestOpts, option.WithAPIKey(cfg.APIKey))
	}

	modelName := strings.TrimSpace(cfg.Model)
	if modelName == "" {
		modelName = defaultModelName
	}

	return &Transcriber{
		apiClient: openai.NewClient(requestOpts...),
		modelName: modelName,
	}
}

// Transcribe opens the file read-only and issues one transcription request.
// The service's text is returned verbatim.
func (t *Transcriber) Transcribe(ctx context.Context, path string) (string, model.RunMetadata, error) {
	start := time.Now()
	meta := model.NewRunMetadata(providerName, t.modelName)
	defer meta.SetLatency(start)

	log := logging.NewLogger(ctx)
	log.Infof("transcription_request model=%q file=%q", t.modelName, path)

	file, err := os.Open(path)
	if err != nil {
		return "", meta, utils.WrapIfNotNil(err)
	}
	defer func() {
		_ = file.Close()
	}()

	response, err := t.apiClient.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:           file,
		Model:          openai.AudioModel(t.modelName),
		ResponseFormat: openai.AudioResponseFormatJSON,
	})
	if err != nil {
		log.Errorf("error: %v", err)
		return "", meta, utils.WrapIfNotNil(err)
	}
	if response == nil {
		return "", meta, utils.WrapIfNotNil(errors.New("audio transcriptions API returned nil response"))
	}

	meta.SetTokenUsage(
		response.Usage.InputTokens,
		response.Usage.OutputTokens,
		response.Usage.TotalTokens,
	)
	return response.Text, meta, nil
}
