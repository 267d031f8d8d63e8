package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/config"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/httpapi"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/logging"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/pipeline"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/server"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/storage"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/transcribe"
	"github.com/kri-sh27/S3-Audio-Transcription-Translation-App/pkg/translate"
)

func main() {
	cfg := config.Load()
	logging.Configure(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logging.NewLogger(ctx)

	awsCfg, err := storage.LoadAWSConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("aws config: %v", err)
	}
	store := storage.New(awsCfg)

	transcriber := transcribe.New(transcribe.Config{
		APIKey:  cfg.TranslationAPIKey,
		BaseURL: cfg.TranslationAPIURL,
		Model:   cfg.TranscriptionModel,
	})

	var translator translate.Translator
	switch cfg.TranslationProvider {
	case config.ProviderBedrock:
		translator = translate.NewBedrock(awsCfg, cfg.BedrockTranslationModel)
	default:
		translator = translate.NewOpenAI(translate.OpenAIConfig{
			APIKey:  cfg.TranslationAPIKey,
			BaseURL: cfg.TranslationAPIURL,
			Model:   cfg.TranslationModel,
		})
	}

	pipe := pipeline.New(cfg.StorageBucket, store, transcriber, translator)
	api := httpapi.NewAPI(store, pipe, cfg.StorageBucket, httpapi.NewSessionStore())
	srv := server.New(cfg, httpapi.NewRouter(api))

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
