package reminder

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pathakanu/myAssistant/internal/locale"
)

// MinTitleLength is the shortest title kept before falling back to the placeholder.
const MinTitleLength = 3

// Stripper removes time expressions from text.
type Stripper interface {
	Strip(text string) string
}

// TitleExtractor derives a display title from the raw reminder text.
type TitleExtractor struct {
	keywords    *regexp.Regexp
	times       Stripper
	placeholder string
}

// NewTitleExtractor removes the create keywords and title noise of loc plus
// whatever times strips.
func NewTitleExtractor(loc locale.Locale, times Stripper) *TitleExtractor {
	words := append(append([]string{}, loc.CreateKeywords...), loc.TitleNoise...)
	return &TitleExtractor{
		keywords:    alternation(words),
		times:       times,
		placeholder: loc.UntitledReminder,
	}
}

// Extract never returns an empty title.
func (e *TitleExtractor) Extract(text string) string {
	title := text
	if e.keywords != nil {
		title = e.keywords.ReplaceAllString(title, "")
	}
	if e.times != nil {
		title = e.times.Strip(title)
	}
	title = strings.Join(strings.Fields(title), " ")
	if utf8.RuneCountInString(title) < MinTitleLength {
		return e.placeholder
	}
	return title
}

// alternation matches any of words case-insensitively, longest first so that
// "add a reminder" is removed before "reminder".
func alternation(words []string) *regexp.Regexp {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			quoted = append(quoted, regexp.QuoteMeta(w))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
}
