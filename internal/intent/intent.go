package intent

import "strings"

// Intent is the advisory classification of one user message. It only gates
// contextual web search; it never blocks the pipeline.
type Intent string

const (
	Search    Intent = "search"    // needs real-time data (weather, prices, news)
	Translate Intent = "translate" // translation request
	Learn     Intent = "learn"     // educational request
	Chat      Intent = "chat"      // general conversation
)

// Keyword lists span all five supported languages so mixed-language input
// still matches. These are a starting configuration, not a precision
// contract; ambiguous messages fall through to the model pass.
var translatePatterns = []string{
	"translate", "translation", "how do you say",
	"in hausa", "in yoruba", "in igbo", "in pidgin", "in english",
	"to hausa", "to yoruba", "to igbo", "to pidgin", "to english",
	"tumọ", "fassara", "kowaa",
}

var searchPatterns = []string{
	"weather", "price", "market price", "news", "today",
	"current", "now", "latest", "how much is", "cost of",
	"oju ojo", "iroyin", "owo", // Yoruba
	"yanayi", "labarai", "nawa ne", // Hausa
	"ihu igwe", "ozi", "ego ole", // Igbo
}

var learnPatterns = []string{
	"teach me", "explain", "learn about", "tell me about",
	"what is", "how do i", "how to", "guide me", "help me understand",
	"kọ mi", "koya min", "kuziere m",
}

// QuickClassify runs the heuristic pass. It checks categories in fixed
// priority order (Translate, Search, Learn) and reports ok=false when no
// list matches, which is the signal to fall through to the model pass.
func QuickClassify(message string) (Intent, bool) {
	m := strings.ToLower(message)

	for _, p := range translatePatterns {
		if strings.Contains(m, p) {
			return Translate, true
		}
	}
	for _, p := range searchPatterns {
		if strings.Contains(m, p) {
			return Search, true
		}
	}
	for _, p := range learnPatterns {
		if strings.Contains(m, p) {
			return Learn, true
		}
	}
	return Chat, false
}
