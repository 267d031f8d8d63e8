package model

import "strings"

// Translation pairs translated text with the target language that produced it.
type Translation struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

// Download is one offered text file: the original transcript or a translation.
type Download struct {
	FileName string
	Content  []byte
}

// Result is the settled outcome of one successful pipeline execution. It is
// held in the session store only; nothing is persisted.
type Result struct {
	Key         string
	Transcript  string
	Translation *Translation
	Downloads   []Download
}

// Download returns the download payload with the given file name.
func (r *Result) Download(fileName string) (Download, bool) {
	for _, d := range r.Downloads {
		if d.FileName == fileName {
			return d, true
		}
	}
	return Download{}, false
}

// TranscriptDownloads builds the download payloads for a settled execution.
// Without a translation a single "{key}_transcript.txt" is offered; with one,
// the original and the translation are offered side by side.
func TranscriptDownloads(key, transcript string, translation *Translation) []Download {
	if translation == nil {
		return []Download{
			{FileName: key + "_transcript.txt", Content: []byte(transcript)},
		}
	}

	return []Download{
		{FileName: key + "_transcript_original.txt", Content: []byte(transcript)},
		{
			FileName: key + "_transcript_" + strings.ToLower(translation.Language) + ".txt",
			Content:  []byte(translation.Text),
		},
	}
}
