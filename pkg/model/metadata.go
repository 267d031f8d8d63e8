package model

import (
	"strconv"
	"time"
)

// RunMetadata carries provider/model/usage details of one remote AI call.
// It feeds log lines only and is never persisted.
type RunMetadata map[string]string

const (
	MetadataKeyProvider     = "provider"
	MetadataKeyModel        = "model"
	MetadataKeyLatencyMs    = "latency_ms"
	MetadataKeyInputTokens  = "input_tokens"
	MetadataKeyOutputTokens = "output_tokens"
	MetadataKeyTotalTokens  = "total_tokens"
)

func NewRunMetadata(provider, modelName string) RunMetadata {
	if modelName == "" {
		modelName = "unknown"
	}

	return RunMetadata{
		MetadataKeyProvider: provider,
		MetadataKeyModel:    modelName,
	}
}

func (m RunMetadata) SetLatency(start time.Time) {
	if m == nil {
		return
	}
	m[MetadataKeyLatencyMs] = strconv.FormatInt(time.Since(start).Milliseconds(), 10)
}

func (m RunMetadata) SetTokenUsage(input, output, total int64) {
	if m == nil {
		return
	}
	m[MetadataKeyInputTokens] = strconv.FormatInt(input, 10)
	m[MetadataKeyOutputTokens] = strconv.FormatInt(output, 10)
	m[MetadataKeyTotalTokens] = strconv.FormatInt(total, 10)
}
