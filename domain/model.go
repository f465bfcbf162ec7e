package domain

import (
	"regexp"
	"strings"
)

const (
	DefaultAge    = "6-8"
	DefaultStyle  = "warm"
	DefaultLength = "medium"

	DefaultSpeaker = "nara"
	DefaultSpeed   = "0"

	// MaxSpeechRunes is the largest input the speech provider accepts.
	MaxSpeechRunes = 3000
)

// StoryRequest carries the user's wishes for one story. Title and outline
// may be empty; the pipeline then produces degenerate output.
type StoryRequest struct {
	Title   string
	Outline string
	Age     string
	Style   string
	Length  string
	Moral   bool
}

type StoryResult struct {
	Title     string
	Story     string
	Images    []ImageResult
	AudioPath string
}

// ImageResult describes the illustration for one story paragraph.
// Index is 1-based. On failure FilePath is empty and Prompt holds the
// failure description instead of the prompt that was used.
type ImageResult struct {
	Index    int
	FilePath string
	Prompt   string
}

type SpeechRequest struct {
	Text    string
	Speaker string
	Speed   string
}

// LoginResult is what the OAuth callback hands back to the client. Profile
// is the provider's profile object, passed through verbatim.
type LoginResult struct {
	Message string
	Profile []byte
}

var titleStripPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

// SanitizeTitle turns a story title into a filesystem-safe identifier:
// everything outside letters, digits, underscore, whitespace and hyphen is
// removed, then whitespace runs collapse to a single underscore.
func SanitizeTitle(title string) string {
	stripped := titleStripPattern.ReplaceAllString(title, "")
	return strings.Join(strings.Fields(stripped), "_")
}

// Paragraphs splits a story on blank lines, dropping empty chunks.
func Paragraphs(story string) []string {
	var out []string
	for _, p := range strings.Split(story, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// TruncateSpeechText clips text to the provider limit, counting runes so
// multibyte text is cut at the same point the provider counts to.
func TruncateSpeechText(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxSpeechRunes {
		return text
	}
	return string(runes[:MaxSpeechRunes])
}
