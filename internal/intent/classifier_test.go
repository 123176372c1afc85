package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathakanu/myAssistant/internal/locale"
)

func TestClassifyEnglish(t *testing.T) {
	t.Parallel()
	c := New(locale.English)

	cases := map[string]Intent{
		"remind me to call luca tomorrow at 14:00":  CreateReminder,
		"don't forget the dentist":                  CreateReminder,
		"note that the wifi password changed":       CreateReminder,
		"show my reminders":                         ListReminders,
		"list reminders please":                     ListReminders,
		"delete reminder 5":                         DeleteReminder,
		"cancel reminder two":                       DeleteReminder,
		"what's the weather like?":                  Chat,
		"":                                          Chat,
		"remind me to buy bread and show reminders": CreateReminder,
		"show reminders and delete reminder 1":      ListReminders,
	}
	for msg, want := range cases {
		assert.Equal(t, want, c.Classify(msg), msg)
	}
}

func TestClassifyItalian(t *testing.T) {
	t.Parallel()
	c := New(locale.Italian)

	cases := map[string]Intent{
		"ricordami di comprare il latte domani alle 18:00": CreateReminder,
		"nuovo promemoria appuntamento medico":             CreateReminder,
		"mostra promemoria":                                ListReminders,
		"cosa devo ricordare?":                             ListReminders,
		"elimina promemoria 1":                             DeleteReminder,
		"i miei promemoria":                                ListReminders,
		"cancella promemoria 2":                            DeleteReminder,
		"memo: pagare l'affitto":                           CreateReminder,
		"ciao, come stai?":                                 Chat,
	}
	for msg, want := range cases {
		assert.Equal(t, want, c.Classify(msg), msg)
	}
}

func TestListAndDeleteCuesAreReachable(t *testing.T) {
	t.Parallel()
	for _, loc := range []locale.Locale{locale.Italian, locale.English} {
		c := New(loc)
		for _, kw := range loc.ListKeywords {
			assert.Equal(t, ListReminders, c.Classify(kw), "%s: %q", loc.Name, kw)
		}
		for _, kw := range loc.DeleteKeywords {
			assert.Equal(t, DeleteReminder, c.Classify(kw+" 1"), "%s: %q", loc.Name, kw)
		}
	}
}

func TestClassifyMatchesInsideWords(t *testing.T) {
	t.Parallel()
	c := New(locale.English)

	// "memo" is a create cue and is found inside "memories".
	assert.Equal(t, CreateReminder, c.Classify("tell me about your memories"))
}

func TestClassifyIsDeterministic(t *testing.T) {
	t.Parallel()
	c := New(locale.English)
	msg := strings.ToLower("Remind me and SHOW REMINDERS and delete reminder 3")

	first := c.Classify(msg)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Classify(msg))
	}
	assert.Equal(t, CreateReminder, first)
}

func TestClassifyCustomKeywords(t *testing.T) {
	t.Parallel()
	loc := locale.English
	loc.CreateKeywords = []string{"  TODO "}
	loc.ListKeywords = nil
	c := New(loc)

	assert.Equal(t, CreateReminder, c.Classify("todo: water plants"))
	assert.Equal(t, Chat, c.Classify("show reminders"))
	assert.Equal(t, DeleteReminder, c.Classify("delete reminder 1"))
}
