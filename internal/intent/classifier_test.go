package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/Yuguda999/SautiNa/internal/providers/llm"
)

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Complete(ctx context.Context, req llm.Request) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) Close() error { return nil }

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestQuickClassify(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
		matched bool
	}{
		{"translate this to yoruba", Translate, true},
		{"how do you say water in igbo", Translate, true},
		{"weather in Lagos today", Search, true},
		{"nawa ne price of rice", Search, true},
		{"teach me about farming", Learn, true},
		{"kọ mi about health", Learn, true},
		{"how far", Chat, false},
		{"", Chat, false},
		{"   ", Chat, false},
	}
	for _, tc := range cases {
		got, ok := QuickClassify(tc.message)
		assert.Equal(t, tc.want, got, "message %q", tc.message)
		assert.Equal(t, tc.matched, ok, "message %q", tc.message)
	}
}

func TestQuickClassifyPriority(t *testing.T) {
	// Contains a translate marker and a search marker; translate wins.
	got, ok := QuickClassify("translate the weather today")
	assert.True(t, ok)
	assert.Equal(t, Translate, got)

	// Search outranks learn.
	got, ok = QuickClassify("explain the news today")
	assert.True(t, ok)
	assert.Equal(t, Search, got)
}

func TestClassifySkipsModelOnHeuristicMatch(t *testing.T) {
	f := &fakeLLM{reply: "search"}
	c := NewClassifier(f, testLogger())

	got := c.Classify(context.Background(), "translate hello to hausa")
	assert.Equal(t, Translate, got)
	assert.Zero(t, f.calls, "model pass should not run when the heuristic matches")
}

func TestClassifyModelPass(t *testing.T) {
	f := &fakeLLM{reply: "learn"}
	c := NewClassifier(f, testLogger())

	got := c.Classify(context.Background(), "I wonder about photosynthesis in plants?")
	assert.Equal(t, Learn, got)
	assert.Equal(t, 1, f.calls)
}

func TestClassifyModelPassTrimsAndLowercases(t *testing.T) {
	f := &fakeLLM{reply: "  SEARCH \n"}
	c := NewClassifier(f, testLogger())

	assert.Equal(t, Search, c.Classify(context.Background(), "hmm interesting question"))
}

func TestClassifyGarbledModelOutputDefaultsToChat(t *testing.T) {
	f := &fakeLLM{reply: "I think this is probably a search query"}
	c := NewClassifier(f, testLogger())

	assert.Equal(t, Chat, c.Classify(context.Background(), "hmm"))
}

func TestClassifyModelErrorDefaultsToChat(t *testing.T) {
	f := &fakeLLM{err: errors.New("backend down")}
	c := NewClassifier(f, testLogger())

	assert.Equal(t, Chat, c.Classify(context.Background(), "hmm"))
}
