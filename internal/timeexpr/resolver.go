// Package timeexpr turns the small set of recognised time expressions in a
// message into a concrete instant.
package timeexpr

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pathakanu/myAssistant/internal/locale"
)

// Default hours applied to relative-day words.
const (
	MorningHour   = 9
	TomorrowHour  = 9
	AfternoonHour = 15
	TonightHour   = 20
)

// DefaultDelay is added to "now" when nothing in the text is recognised.
const DefaultDelay = time.Hour

// clockPattern finds HH:MM not embedded in a longer run of digits, so
// "14:00h" and "ore18:00" match while "114:00" does not. The guards are
// captured because RE2 has no lookaround.
var clockPattern = regexp.MustCompile(`(^|\D)([01]?\d|2[0-3]):([0-5]\d)(\D|$)`)

// Resolver resolves time expressions for one locale.
type Resolver struct {
	tomorrow  *regexp.Regexp
	tonight   *regexp.Regexp
	morning   *regexp.Regexp
	afternoon *regexp.Regexp
	today     *regexp.Regexp
}

// New compiles the relative-day words of loc.
func New(loc locale.Locale) *Resolver {
	return &Resolver{
		tomorrow:  wordPattern(loc.Tomorrow),
		tonight:   wordPattern(loc.Tonight),
		morning:   wordPattern(loc.Morning),
		afternoon: wordPattern(loc.Afternoon),
		today:     wordPattern(loc.Today),
	}
}

// Resolve returns the instant described by text, relative to now. The first
// matching rule wins: explicit HH:MM, tomorrow, tonight, morning, afternoon.
// With no match the result is now plus DefaultDelay. It never fails.
func (r *Resolver) Resolve(text string, now time.Time) time.Time {
	if m := clockPattern.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[2])
		minute, _ := strconv.Atoi(m[3])
		at := atClock(now, hour, minute)
		if !at.After(now) {
			at = at.AddDate(0, 0, 1)
		}
		return at
	}

	switch {
	case matches(r.tomorrow, text):
		return atClock(now, TomorrowHour, 0).AddDate(0, 0, 1)
	case matches(r.tonight, text):
		return atClock(now, TonightHour, 0)
	case matches(r.morning, text):
		return atClock(now, MorningHour, 0)
	case matches(r.afternoon, text):
		return atClock(now, AfternoonHour, 0)
	}
	return now.Add(DefaultDelay)
}

// Strip removes every recognised time expression from text.
func (r *Resolver) Strip(text string) string {
	// Adjacent times share a guard character, so repeat until none is left.
	for clockPattern.MatchString(text) {
		text = clockPattern.ReplaceAllString(text, "${1}${4}")
	}
	for _, p := range []*regexp.Regexp{r.tomorrow, r.tonight, r.morning, r.afternoon, r.today} {
		if p != nil {
			text = p.ReplaceAllString(text, "")
		}
	}
	return text
}

func atClock(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func matches(p *regexp.Regexp, text string) bool {
	return p != nil && p.MatchString(text)
}

// wordPattern builds a case-insensitive whole-word alternation, or nil for no words.
func wordPattern(words []string) *regexp.Regexp {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			quoted = append(quoted, regexp.QuoteMeta(w))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
