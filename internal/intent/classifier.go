// Package intent classifies a message into one of the assistant's actions by
// substring keyword matching.
//
// Matching is plain substring containment, so a keyword hidden inside an
// unrelated word still counts.
package intent

import (
	"strings"

	"github.com/pathakanu/myAssistant/internal/locale"
)

// Intent is the action a message asks for.
type Intent string

const (
	// CreateReminder stores a new reminder.
	CreateReminder Intent = "create_reminder"
	// ListReminders shows the stored reminders.
	ListReminders Intent = "list_reminders"
	// DeleteReminder removes a reminder by list position.
	DeleteReminder Intent = "delete_reminder"
	// Chat is anything else.
	Chat Intent = "chat"
)

// Classifier holds the ordered keyword sets.
type Classifier struct {
	rules []rule
}

type rule struct {
	intent   Intent
	keywords []string
}

// New builds a classifier from the keyword sets of loc.
func New(loc locale.Locale) *Classifier {
	return &Classifier{
		rules: []rule{
			{intent: CreateReminder, keywords: lowerAll(loc.CreateKeywords)},
			{intent: ListReminders, keywords: lowerAll(loc.ListKeywords)},
			{intent: DeleteReminder, keywords: lowerAll(loc.DeleteKeywords)},
		},
	}
}

// Classify expects an already lower-cased message. Create is tested first,
// then list, then delete; the first set with a contained keyword wins.
func (c *Classifier) Classify(lower string) Intent {
	for _, r := range c.rules {
		if ContainsAny(lower, r.keywords) {
			return r.intent
		}
	}
	return Chat
}

// ContainsAny reports whether s contains at least one of the non-empty keywords.
func ContainsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
