package translate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	bedrocktypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/logging"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/model"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/utils"
)

const (
	bedrockProviderName     = "bedrock"
	defaultBedrockModelName = "us.anthropic.claude-3-5-sonnet-20241022-v2:0"
)

// BedrockTranslator is the alternate provider: one Converse call against a
// Claude model, reusing the AWS credentials the storage layer already
// requires. No tool rounds; translation is a single-shot completion.
type BedrockTranslator struct {
	api     *bedrockruntime.Client
	modelID string
}

func NewBedrock(awsCfg aws.Config, modelID string) *BedrockTranslator {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		modelID = defaultBedrockModelName
	}

	return &BedrockTranslator{
		api:     bedrockruntime.NewFromConfig(awsCfg),
		modelID: modelID,
	}
}

func (t *BedrockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, model.RunMetadata, error) {
	start := time.Now()
	meta := model.NewRunMetadata(bedrockProviderName, t.modelID)
	defer meta.SetLatency(start)

	log := logging.NewLogger(ctx)
	log.Infof("translation_request model=%q target_language=%q chars=%d", t.modelID, targetLanguage, len(text))

	output, err := t.api.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(t.modelID),
		System: []bedrocktypes.SystemContentBlock{
			&bedrocktypes.SystemContentBlockMemberText{Value: translatorPersona},
		},
		Messages: []bedrocktypes.Message{
			{
				Role: bedrocktypes.ConversationRoleUser,
				Content: []bedrocktypes.ContentBlock{
					&bedrocktypes.ContentBlockMemberText{Value: buildPrompt(text, targetLanguage)},
				},
			},
		},
	})
	if err != nil {
		log.Errorf("error: %v", err)
		return "", meta, utils.WrapIfNotNil(err)
	}

	if output.Usage != nil {
		meta.SetTokenUsage(
			int64(aws.ToInt32(output.Usage.InputTokens)),
			int64(aws.ToInt32(output.Usage.OutputTokens)),
			int64(aws.ToInt32(output.Usage.TotalTokens)),
		)
	}

	message, err := extractOutputMessage(output.Output)
	if err != nil {
		return "", meta, err
	}

	translated := extractTextFromMessage(message)
	if translated == "" {
		return "", meta, utils.WrapIfNotNil(errors.New("converse response contains no text"))
	}
	return translated, meta, nil
}

func extractOutputMessage(output bedrocktypes.ConverseOutput) (bedrocktypes.Message, error) {
	if output == nil {
		return bedrocktypes.Message{}, utils.WrapIfNotNil(errors.New("converse output is nil"))
	}

	messageOutput, ok := output.(*bedrocktypes.ConverseOutputMemberMessage)
	if !ok || messageOutput == nil {
		return bedrocktypes.Message{}, utils.WrapIfNotNil(errors.New("converse output is not a message"))
	}
	return messageOutput.Value, nil
}

func extractTextFromMessage(message bedrocktypes.Message) string {
	parts := make([]string, 0)
	for _, block := range message.Content {
		textBlock, ok := block.(*bedrocktypes.ContentBlockMemberText)
		if !ok || textBlock == nil {
			continue
		}
		value := strings.TrimSpace(textBlock.Value)
		if value == "" {
			continue
		}
		parts = append(parts, value)
	}
	return strings.Join(parts, "\n")
}
