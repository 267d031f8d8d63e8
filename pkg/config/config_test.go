package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestDefaults() {
	for _, key := range []string{
		"TRANSCRIPTION_MODEL", "TRANSLATION_MODEL", "TRANSLATION_PROVIDER",
		"HTTP_PORT", "HTTP_SHUTDOWN_TIMEOUT",
	} {
		s.T().Setenv(key, "")
	}

	cfg := Load()

	s.Assert().Equal("whisper-1", cfg.TranscriptionModel)
	s.Assert().Equal("gpt-3.5-turbo", cfg.TranslationModel)
	s.Assert().Equal(ProviderOpenAI, cfg.TranslationProvider)
	s.Assert().Equal("8080", cfg.HTTPPort)
	s.Assert().Equal(10*time.Second, cfg.ShutdownTimeout)
}

func (s *ConfigSuite) TestEnvironmentOverrides() {
	s.T().Setenv("STORAGE_BUCKET_NAME", "my-audio")
	s.T().Setenv("STORAGE_REGION", "eu-west-1")
	s.T().Setenv("TRANSLATION_PROVIDER", "Bedrock")
	s.T().Setenv("HTTP_SHUTDOWN_TIMEOUT", "3")

	cfg := Load()

	s.Assert().Equal("my-audio", cfg.StorageBucket)
	s.Assert().Equal("eu-west-1", cfg.StorageRegion)
	s.Assert().Equal(ProviderBedrock, cfg.TranslationProvider)
	s.Assert().Equal(3*time.Second, cfg.ShutdownTimeout)
}

func (s *ConfigSuite) TestCredentialsAreNotValidatedAtLoad() {
	s.T().Setenv("STORAGE_ACCESS_KEY", "")
	s.T().Setenv("TRANSLATION_API_KEY", "")

	cfg := Load()
	s.Assert().Empty(cfg.StorageAccessKey)
	s.Assert().Empty(cfg.TranslationAPIKey)
}
