package storage

import "strings"

// Extension set accepted by the transcription service.
var audioExtensions = []string{".mp3", ".mp4", ".mpeg", ".mpga", ".m4a", ".wav", ".webm"}

// IsAudioKey reports whether the object key carries a recognized audio
// extension. Matching is case insensitive on the suffix only.
func IsAudioKey(key string) bool {
	lowered := strings.ToLower(key)
	for _, ext := range audioExtensions {
		if strings.HasSuffix(lowered, ext) {
			return true
		}
	}
	return false
}

// FilterAudioKeys keeps audio keys only, preserving their listing order.
func FilterAudioKeys(keys []string) []string {
	filtered := make([]string, 0, len(keys))
	for _, key := range keys {
		if IsAudioKey(key) {
			filtered = append(filtered, key)
		}
	}
	return filtered
}
