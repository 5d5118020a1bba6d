package language

// Language is one of the five languages SautiNa speaks. The zero value is
// not valid; use Default or Parse.
type Language string

const (
	Hausa   Language = "ha"
	Yoruba  Language = "yo"
	Igbo    Language = "ig"
	Pidgin  Language = "pcm"
	English Language = "en"
)

// Default is used whenever the caller expresses no preference and nothing
// could be detected.
const Default = English

// All lists every supported language in display order.
var All = []Language{Hausa, Yoruba, Igbo, Pidgin, English}

// Parse maps a caller-supplied code to a Language. Unknown codes are not an
// error; they mean "no preference" and report ok=false.
func Parse(code string) (Language, bool) {
	switch Language(code) {
	case Hausa, Yoruba, Igbo, Pidgin, English:
		return Language(code), true
	}
	return Default, false
}

// FromDetection maps an ISO-639-1-ish code coming out of a speech recognizer
// to a Language. Recognizers have no Pidgin detector, so anything outside
// ha/yo/ig/en lands on English.
func FromDetection(code string) Language {
	switch Language(code) {
	case Hausa, Yoruba, Igbo, English:
		return Language(code)
	}
	return English
}

// Mode selects how the assistant behaves for one request.
type Mode string

const (
	// ModeChat is normal conversation, with real-time search augmentation
	// when the message asks for it.
	ModeChat Mode = "chat"
	// ModeLearn puts the assistant in teacher mode. It never searches.
	ModeLearn Mode = "learn"
)

// ParseMode defaults to ModeChat for unknown or empty values.
func ParseMode(v string) Mode {
	if Mode(v) == ModeLearn {
		return ModeLearn
	}
	return ModeChat
}
