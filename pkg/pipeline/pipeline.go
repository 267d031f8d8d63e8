package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/logging"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/model"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/translate"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/utils"
)

const tempFilePrefix = "temp_audio_"

// Fetcher downloads one object key to a local path.
type Fetcher interface {
	Download(ctx context.Context, bucket, key, dest string) error
}

// Transcriber turns a local audio file into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, model.RunMetadata, error)
}

// Pipeline runs one execution per user action: download the selected object
// to a temp file, transcribe it, optionally translate, and always clean up
// the temp file before the outcome settles.
type Pipeline struct {
	bucket      string
	fetcher     Fetcher
	transcriber Transcriber
	translator  translate.Translator
}

func New(bucket string, fetcher Fetcher, transcriber Transcriber, translator translate.Translator) *Pipeline {
	return &Pipeline{
		bucket:      bucket,
		fetcher:     fetcher,
		transcriber: transcriber,
		translator:  translator,
	}
}

// Run executes the linear pipeline for one key and language choice. Any
// stage error aborts the remaining stages; cleanup still runs. A temp file
// that cannot be removed is logged as a warning, never returned as an error.
func (p *Pipeline) Run(ctx context.Context, key string, choice model.LanguageChoice) (model.Result, error) {
	log := logging.NewLogger(ctx)
	tempPath := tempAudioPath(key)
	defer removeTempFile(tempPath, log)

	log.Infof("pipeline_download bucket=%q key=%q dest=%q", p.bucket, key, tempPath)
	if err := p.fetcher.Download(ctx, p.bucket, key, tempPath); err != nil {
		return model.Result{}, utils.WrapIfNotNil(err)
	}

	transcript, meta, err := p.transcriber.Transcribe(ctx, tempPath)
	if err != nil {
		return model.Result{}, utils.WrapIfNotNil(err)
	}
	log.Infof("pipeline_transcribed key=%q meta=%v", key, meta)

	var translation *model.Translation
	if choice.Translate() {
		translated, meta, err := p.translator.Translate(ctx, transcript, choice.Target)
		if err != nil {
			return model.Result{}, utils.WrapIfNotNil(err)
		}
		log.Infof("pipeline_translated key=%q language=%q meta=%v", key, choice.Target, meta)
		translation = &model.Translation{Language: choice.Target, Text: translated}
	}

	return model.Result{
		Key:         key,
		Transcript:  transcript,
		Translation: translation,
		Downloads:   model.TranscriptDownloads(key, transcript, translation),
	}, nil
}

// tempAudioPath derives the per-execution temp file path. The name embeds
// the process id so concurrent processes never collide, and keeps the
// original extension so the transcription service can infer the format.
func tempAudioPath(key string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s%d%s", tempFilePrefix, os.Getpid(), filepath.Ext(key)))
}

func removeTempFile(path string, log logging.Logger) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warnf("could not remove temporary file %q: %v", path, err)
	}
}
