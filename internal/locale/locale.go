// Package locale holds the keyword sets and reply texts for each supported language.
package locale

import "strings"

// Locale groups every language-specific string the assistant matches against or replies with.
type Locale struct {
	Name string

	// Intent cues, matched as substrings of the lower-cased message.
	CreateKeywords []string
	ListKeywords   []string
	DeleteKeywords []string

	// TitleNoise is removed from reminder titles in addition to CreateKeywords.
	TitleNoise []string

	// Relative time words recognised by the time expression resolver.
	Tomorrow  []string
	Tonight   []string
	Morning   []string
	Afternoon []string
	// Today is stripped from titles but does not move the schedule.
	Today []string

	// DateLayout renders reminder timestamps (time.Format layout).
	DateLayout string

	UntitledReminder string
	ReminderSaved    string // title, date
	EmptyList        string
	ListHeader       string
	ListItem         string // position, title, date
	ReminderDeleted  string // title
	ReminderNotFound string
	ReminderDue      string // title, date

	GreetingCues    []string
	Greetings       []string
	IdentityCues    []string
	IdentityReply   string
	HelpCues        []string
	HelpReply       string
	WellBeingCues   []string
	WellBeingReply  string
	CalcResult      string // expression, result
	CalcFailed      string
	GenericReplies  []string
	AIUnavailable   string
	InternalFailure string

	InvalidMessage   string
	MethodNotAllowed string
	InternalError    string

	// SystemPrompt is sent to the AI collaborator ahead of the user message.
	SystemPrompt string
}

// Italian is the default locale.
var Italian = Locale{
	Name: "it",

	CreateKeywords: []string{
		"ricordami", "ricorda di", "non dimenticare", "nota che", "salva che",
		"memo:", "appuntamento", "nuovo promemoria", "crea promemoria",
		"aggiungi promemoria", "imposta promemoria",
	},
	ListKeywords: []string{
		"i miei promemoria", "mostra promemoria", "promemoria salvati",
		"cosa devo ricordare", "che promemoria ho", "lista promemoria",
	},
	DeleteKeywords: []string{"elimina promemoria", "cancella promemoria", "rimuovi promemoria"},
	TitleNoise:     []string{"promemoria"},

	Tomorrow:  []string{"domani"},
	Tonight:   []string{"stasera"},
	Morning:   []string{"mattina"},
	Afternoon: []string{"pomeriggio"},
	Today:     []string{"oggi"},

	DateLayout: "2/1/2006, 15:04:05",

	UntitledReminder: "Promemoria generico",
	ReminderSaved:    "✅ Promemoria salvato!\n📌 %s\n🕒 %s",
	EmptyList:        "📋 Non hai promemoria salvati al momento.",
	ListHeader:       "📋 I tuoi promemoria:\n\n",
	ListItem:         "%d. 📌 %s\n   🕒 %s\n\n",
	ReminderDeleted:  "✅ Promemoria \"%s\" eliminato!",
	ReminderNotFound: "❌ Promemoria non trovato. Usa 'elimina promemoria 1' per eliminare il primo della lista.",
	ReminderDue:      "⏰ Promemoria: %s\n🕒 %s",

	GreetingCues: []string{"ciao", "salve", "buongiorno", "buonasera"},
	Greetings: []string{
		"Ciao! 🧌 Come posso aiutarti oggi?",
		"Salve! Sono qui per assisterti. Cosa ti serve?",
		"Ciao! Sono il tuo assistente personale. Posso aiutarti con promemoria o rispondere alle tue domande!",
		"Buongiorno! 🌟 Come va? Posso fare qualcosa per te?",
	},
	IdentityCues:  []string{"chi sei", "cosa sei", "come ti chiami"},
	IdentityReply: "Sono il tuo assistente personale 🧌! Posso aiutarti a gestire promemoria, rispondere a domande e chattare con te. Cosa ti serve?",
	HelpCues:      []string{"aiuto", "help", "cosa puoi fare"},
	HelpReply: `🧌 Ecco cosa posso fare per te:

📝 **Promemoria**:
- "Ricordami di comprare il latte domani alle 18:00"
- "Nuovo promemoria appuntamento medico stasera"

📋 **Gestione**:
- "Mostra promemoria"
- "Elimina promemoria 1"

💬 **Chat**: Posso rispondere a domande e chattare normalmente!

Cosa ti serve?`,
	WellBeingCues:  []string{"come stai", "come va"},
	WellBeingReply: "Sto bene, grazie! 😊 Sono sempre pronto ad aiutarti. Tu come stai?",
	CalcResult:     "🧮 %s = %s",
	CalcFailed:     "Non riesco a calcolare questa espressione. Prova con operazioni più semplici!",
	GenericReplies: []string{
		"Interessante! Dimmi di più su questo argomento.",
		"Capisco quello che dici. Hai bisogno di aiuto con qualcosa di specifico?",
		"Hmm, fammi pensare... Puoi fornirmi più dettagli?",
		"È un punto di vista interessante! Come posso assisterti al meglio?",
		"Grazie per avermi detto questo. C'è qualcosa in particolare che vuoi sapere?",
		"Sono qui per aiutarti! Se hai domande specifiche o vuoi creare promemoria, dimmi pure.",
		"Mi fa piacere chattare con te! Hai bisogno di assistenza con qualcosa?",
	},
	AIUnavailable:   "Mi dispiace, al momento non riesco a rispondere. Riprova tra poco!",
	InternalFailure: "Mi dispiace, ho avuto un problema tecnico. Riprova!",

	InvalidMessage:   "Messaggio richiesto",
	MethodNotAllowed: "Metodo non consentito",
	InternalError:    "Errore interno del server",

	SystemPrompt: "Sei un assistente personale amichevole e conciso. Rispondi sempre in italiano.",
}

// English mirrors Italian for English-speaking front-ends.
var English = Locale{
	Name: "en",

	CreateKeywords: []string{
		"remind me", "set a reminder", "new reminder", "add reminder", "add a reminder",
		"don't forget", "dont forget", "note that", "save that", "memo", "appointment",
	},
	ListKeywords: []string{
		"my reminders", "show reminders", "list reminders", "saved reminders",
		"what do i need to remember", "what reminders",
	},
	DeleteKeywords: []string{"delete reminder", "remove reminder", "cancel reminder"},
	TitleNoise:     []string{"reminder"},

	Tomorrow:  []string{"tomorrow"},
	Tonight:   []string{"tonight"},
	Morning:   []string{"morning"},
	Afternoon: []string{"afternoon"},
	Today:     []string{"today"},

	DateLayout: "1/2/2006, 3:04:05 PM",

	UntitledReminder: "Untitled reminder",
	ReminderSaved:    "✅ Reminder saved!\n📌 %s\n🕒 %s",
	EmptyList:        "📋 You have no saved reminders right now.",
	ListHeader:       "📋 Your reminders:\n\n",
	ListItem:         "%d. 📌 %s\n   🕒 %s\n\n",
	ReminderDeleted:  "✅ Reminder \"%s\" deleted!",
	ReminderNotFound: "❌ Reminder not found. Use 'delete reminder 1' to delete the first one in the list.",
	ReminderDue:      "⏰ Reminder: %s\n🕒 %s",

	GreetingCues: []string{"hello", "hey", "good morning", "good evening"},
	Greetings: []string{
		"Hello! 🧌 How can I help you today?",
		"Hi there! I'm here to assist you. What do you need?",
		"Hello! I'm your personal assistant. I can help with reminders or answer your questions!",
		"Good day! 🌟 How's it going? Can I do anything for you?",
	},
	IdentityCues:  []string{"who are you", "what are you", "what's your name", "what is your name"},
	IdentityReply: "I'm your personal assistant 🧌! I can manage reminders, answer questions and chat with you. What do you need?",
	HelpCues:      []string{"help", "what can you do"},
	HelpReply: `🧌 Here's what I can do for you:

📝 **Reminders**:
- "Remind me to buy milk tomorrow at 18:00"
- "New reminder doctor appointment tonight"

📋 **Management**:
- "Show reminders"
- "Delete reminder 1"

💬 **Chat**: I can answer questions and chat normally!

What do you need?`,
	WellBeingCues:  []string{"how are you", "how's it going"},
	WellBeingReply: "I'm fine, thanks! 😊 Always ready to help. How are you?",
	CalcResult:     "🧮 %s = %s",
	CalcFailed:     "I can't compute this expression. Try simpler operations!",
	GenericReplies: []string{
		"Interesting! Tell me more about it.",
		"I see what you mean. Do you need help with something specific?",
		"Hmm, let me think... Can you give me more details?",
		"That's an interesting point of view! How can I best assist you?",
		"Thanks for telling me. Is there anything in particular you want to know?",
		"I'm here to help! If you have specific questions or want to create reminders, just say so.",
		"I enjoy chatting with you! Do you need help with anything?",
	},
	AIUnavailable:   "Sorry, I can't answer right now. Please try again shortly!",
	InternalFailure: "Sorry, I had a technical problem. Please try again!",

	InvalidMessage:   "Message required",
	MethodNotAllowed: "Method not allowed",
	InternalError:    "Internal server error",

	SystemPrompt: "You are a friendly, concise personal assistant. Always answer in English.",
}

// Lookup returns the locale registered under name (case-insensitive).
func Lookup(name string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "it", "it-it", "italian":
		return Italian, true
	case "en", "en-us", "en-gb", "english":
		return English, true
	default:
		return Locale{}, false
	}
}
