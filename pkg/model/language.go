package model

import "strings"

// LanguageChoice is one entry of the fixed translation dropdown. An empty
// Target means the transcript is kept as-is and the translator is skipped.
type LanguageChoice struct {
	Label  string
	Target string
}

// Translate reports whether this choice requires a translation stage.
func (c LanguageChoice) Translate() bool {
	return c.Target != ""
}

const NoTranslationLabel = "Original (No Translation)"

var supportedLanguages = []LanguageChoice{
	{Label: NoTranslationLabel},
	{Label: "Hindi", Target: "Hindi"},
	{Label: "Marathi", Target: "Marathi"},
	{Label: "Japanese", Target: "Japanese"},
	{Label: "Spanish", Target: "Spanish"},
	{Label: "French", Target: "French"},
	{Label: "German", Target: "German"},
}

// SupportedLanguages returns the dropdown entries in display order.
func SupportedLanguages() []LanguageChoice {
	choices := make([]LanguageChoice, len(supportedLanguages))
	copy(choices, supportedLanguages)
	return choices
}

// LanguageByLabel resolves a dropdown label (case insensitive) to its choice.
func LanguageByLabel(label string) (LanguageChoice, bool) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for _, choice := range supportedLanguages {
		if strings.ToLower(choice.Label) == normalized {
			return choice, true
		}
	}
	return LanguageChoice{}, false
}
