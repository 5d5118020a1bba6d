package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIsTotal(t *testing.T) {
	for _, l := range All {
		assert.NotEmpty(t, DisplayName(l), "display name for %s", l)
		assert.NotEmpty(t, Voice(l), "voice for %s", l)
		assert.NotEmpty(t, ChatPrompt(l), "chat prompt for %s", l)
		assert.NotEmpty(t, TeacherPrompt(l), "teacher prompt for %s", l)
		assert.NotEmpty(t, Fallback(l), "fallback for %s", l)
	}
}

func TestLookupFallsBackToEnglish(t *testing.T) {
	bogus := Language("xx")
	assert.Equal(t, ChatPrompt(English), ChatPrompt(bogus))
	assert.Equal(t, Fallback(English), Fallback(bogus))
	assert.Equal(t, Voice(English), Voice(bogus))
}

func TestParse(t *testing.T) {
	l, ok := Parse("yo")
	require.True(t, ok)
	assert.Equal(t, Yoruba, l)

	l, ok = Parse("fr")
	assert.False(t, ok)
	assert.Equal(t, Default, l)

	_, ok = Parse("")
	assert.False(t, ok)
}

func TestFromDetection(t *testing.T) {
	assert.Equal(t, Hausa, FromDetection("ha"))
	assert.Equal(t, Igbo, FromDetection("ig"))
	// No Pidgin detector exists; anything unknown lands on English.
	assert.Equal(t, English, FromDetection("pcm"))
	assert.Equal(t, English, FromDetection("sw"))
	assert.Equal(t, English, FromDetection(""))
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeLearn, ParseMode("learn"))
	assert.Equal(t, ModeChat, ParseMode("chat"))
	assert.Equal(t, ModeChat, ParseMode(""))
	assert.Equal(t, ModeChat, ParseMode("bogus"))
}

func TestInfosCoversAllLanguages(t *testing.T) {
	infos := Infos()
	require.Len(t, infos, len(All))
	codes := map[string]bool{}
	for _, i := range infos {
		assert.NotEmpty(t, i.Name)
		assert.NotEmpty(t, i.Native)
		codes[i.Code] = true
	}
	for _, l := range All {
		assert.True(t, codes[string(l)], "missing info for %s", l)
	}
}
