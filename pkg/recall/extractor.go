package recall

import (
	"regexp"
	"strings"
)

// Heuristic fact extraction over chat messages. These are best-effort string
// matches, not a parser. All matching runs on a lower-cased copy of the
// message; callers keep the original text for history and prompting.

var (
	namePattern = regexp.MustCompile(`(?i)my name is (.+)`)
	likePattern = regexp.MustCompile(`(?i)i love (.+)`)
)

var creatorPhrases = []string{
	"who created you",
	"who is your creator",
	"who made you",
	"who is divy",
	"about developer",
	"about creator",
}

// ExtractName returns the self-disclosed name from a "my name is <X>" message.
// The captured value runs to end of string, trimmed of surrounding whitespace
// only; trailing punctuation stays part of the name.
func ExtractName(message string) (string, bool) {
	m := namePattern.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	return name, true
}

// ExtractLike returns the preference from an "i love <X>" message.
func ExtractLike(message string) (string, bool) {
	m := likePattern.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	like := strings.TrimSpace(m[1])
	if like == "" {
		return "", false
	}
	return like, true
}

// IsCreatorQuestion reports whether the message asks about the assistant's creator.
func IsCreatorQuestion(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range creatorPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// Answer produces a direct reply for recall questions ("what is my name",
// "what do i love") against the known session facts. When it matches, the
// caller short-circuits: no completion call is made and nothing is appended
// to history.
func Answer(message, displayName string, likes []string) (string, bool) {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "what is my name") {
		if displayName != "" {
			return "Your name is " + displayName + " 😊", true
		}
		return "You haven’t told me your name yet 🙂", true
	}

	if strings.Contains(lower, "what do i love") {
		if len(likes) > 0 {
			return "You love " + strings.Join(likes, ", ") + " 😊", true
		}
		return "You haven’t told me what you love yet 🙂", true
	}

	return "", false
}
