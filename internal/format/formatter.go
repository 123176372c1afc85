// Package format renders reminders and canned chat replies as user-facing text.
package format

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/pathakanu/myAssistant/internal/calc"
	"github.com/pathakanu/myAssistant/internal/intent"
	"github.com/pathakanu/myAssistant/internal/locale"
	"github.com/pathakanu/myAssistant/internal/model"
)

// Formatter builds replies in one locale and time zone.
type Formatter struct {
	loc  locale.Locale
	tz   *time.Location
	pick func(n int) int
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithPicker replaces the uniform random choice used for greetings and
// generic replies. pick must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(f *Formatter) { f.pick = pick }
}

// New returns a Formatter. A nil tz means time.Local.
func New(loc locale.Locale, tz *time.Location, opts ...Option) *Formatter {
	if tz == nil {
		tz = time.Local
	}
	f := &Formatter{loc: loc, tz: tz, pick: rand.IntN}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Time renders t in the formatter's zone with the locale date layout.
func (f *Formatter) Time(t time.Time) string {
	return t.In(f.tz).Format(f.loc.DateLayout)
}

// ReminderCreated confirms a newly stored reminder.
func (f *Formatter) ReminderCreated(r model.Reminder) string {
	return fmt.Sprintf(f.loc.ReminderSaved, r.Title, f.Time(r.ScheduledAt))
}

// ReminderList numbers reminders from 1, matching store positions.
func (f *Formatter) ReminderList(reminders []model.Reminder) string {
	if len(reminders) == 0 {
		return f.loc.EmptyList
	}
	var sb strings.Builder
	sb.WriteString(f.loc.ListHeader)
	for i, r := range reminders {
		sb.WriteString(fmt.Sprintf(f.loc.ListItem, i+1, r.Title, f.Time(r.ScheduledAt)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ReminderDeleted names the removed reminder.
func (f *Formatter) ReminderDeleted(r model.Reminder) string {
	return fmt.Sprintf(f.loc.ReminderDeleted, r.Title)
}

// ReminderNotFound explains how to delete by position.
func (f *Formatter) ReminderNotFound() string {
	return f.loc.ReminderNotFound
}

// ReminderDue is the notification body for a reminder that has come due.
func (f *Formatter) ReminderDue(r model.Reminder) string {
	return fmt.Sprintf(f.loc.ReminderDue, r.Title, f.Time(r.ScheduledAt))
}

// AIUnavailable is the reply used when the AI collaborator fails.
func (f *Formatter) AIUnavailable() string {
	return f.loc.AIUnavailable
}

// InternalFailure is the reply used on unexpected server faults.
func (f *Formatter) InternalFailure() string {
	return f.loc.InternalFailure
}

// Chat answers without an AI collaborator: greetings, identity, help,
// well-being, simple arithmetic, and otherwise a random acknowledgement.
func (f *Formatter) Chat(message string) string {
	lower := strings.ToLower(message)

	switch {
	case intent.ContainsAny(lower, f.loc.GreetingCues):
		return f.choose(f.loc.Greetings)
	case intent.ContainsAny(lower, f.loc.IdentityCues):
		return f.loc.IdentityReply
	case intent.ContainsAny(lower, f.loc.HelpCues):
		return f.loc.HelpReply
	case intent.ContainsAny(lower, f.loc.WellBeingCues):
		return f.loc.WellBeingReply
	}

	if strings.ContainsAny(message, "+-*/") {
		if reply, ok := f.arithmetic(message); ok {
			return reply
		}
	}
	return f.choose(f.loc.GenericReplies)
}

// arithmetic reports ok=false when the message holds no expression at all.
func (f *Formatter) arithmetic(message string) (string, bool) {
	expr := calc.Extract(message)
	if !calc.Allowed(expr) {
		return "", false
	}
	v, err := calc.Eval(expr)
	if err != nil {
		return f.loc.CalcFailed, true
	}
	return fmt.Sprintf(f.loc.CalcResult, expr, calc.Format(v)), true
}

func (f *Formatter) choose(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[f.pick(len(options))]
}
