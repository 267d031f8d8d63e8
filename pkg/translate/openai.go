package translate

import (
	"context"
	"errors"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/logging"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/model"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/utils"
)

const (
	openAIProviderName     = "openai"
	defaultOpenAIModelName = "gpt-3.5-turbo"
)

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAITranslator issues one chat completion per translation: a fixed
// translator persona as the system message and the prompt as the only user
// message.
type OpenAITranslator struct {
	apiClient openai.Client
	modelName string
}

func NewOpenAI(cfg OpenAIConfig) *OpenAITranslator {
	requestOpts := make([]option.RequestOption, 0, 2)
	if cfg.BaseURL != "" {
		requestOpts = append(requestOpts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		requestOpts = append(requestOpts, option.WithAPIKey(cfg.APIKey))
	}

	modelName := strings.TrimSpace(cfg.Model)
	if modelName == "" {
		modelName = defaultOpenAIModelName
	}

	return &OpenAITranslator{
		apiClient: openai.NewClient(requestOpts...),
		modelName: modelName,
	}
}

func (t *OpenAITranslator) Translate(ctx context.Context, text, targetLanguage string) (string, model.RunMetadata, error) {
	start := time.Now()
	meta := model.NewRunMetadata(openAIProviderName, t.modelName)
	defer meta.SetLatency(start)

	log := logging.NewLogger(ctx)
	log.Infof("translation_request model=%q target_language=%q chars=%d", t.modelName, targetLanguage, len(text))

	completion, err := t.apiClient.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(t.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(translatorPersona),
			openai.UserMessage(buildPrompt(text, targetLanguage)),
		},
	})
	if err != nil {
		log.Errorf("error: %v", err)
		return "", meta, utils.WrapIfNotNil(err)
	}
	if completion == nil || len(completion.Choices) == 0 {
		return "", meta, utils.WrapIfNotNil(errors.New("chat completions API returned no choices"))
	}

	meta.SetTokenUsage(
		completion.Usage.PromptTokens,
		completion.Usage.CompletionTokens,
		completion.Usage.TotalTokens,
	)
	return completion.Choices[0].Message.Content, meta, nil
}
