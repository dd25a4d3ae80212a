package extract

import "strings"

var summaryKeywords = []string{
	"decided", "agreed", "action", "task", "deadline", "next", "meeting", "project",
}

// Summarize produces an extractive summary bounded to maxLength characters.
// Sentences containing decision or task keywords are preferred; when none
// qualify, the first few substantial sentences are used instead.
func Summarize(transcript string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = 200
	}

	sentences := strings.Split(transcript, ".")
	var picked []string

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= 20 {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, kw := range summaryKeywords {
			if strings.Contains(lower, kw) {
				picked = append(picked, sentence)
				break
			}
		}
	}

	if len(picked) == 0 {
		for _, sentence := range sentences {
			sentence = strings.TrimSpace(sentence)
			if len(sentence) > 20 {
				picked = append(picked, sentence)
			}
			if len(picked) == 3 {
				break
			}
		}
	}

	summary := strings.Join(picked, ". ")
	// Rune-based cut: a multi-byte character must never be split.
	if runes := []rune(summary); len(runes) > maxLength {
		if maxLength > 3 {
			summary = string(runes[:maxLength-3]) + "..."
		} else {
			summary = string(runes[:maxLength])
		}
	}
	return summary
}
