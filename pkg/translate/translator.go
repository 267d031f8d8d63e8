package translate

import (
	"context"
	"fmt"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/model"
)

// Translator turns transcript text into the named target language. The
// returned text is the model's first completion, verbatim.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, model.RunMetadata, error)
}

const translatorPersona = "You are a professional translator."

func buildPrompt(text, targetLanguage string) string {
	return fmt.Sprintf("Translate the following English text to %s:\n\n%s", targetLanguage, text)
}
