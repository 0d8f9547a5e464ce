package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
)

func testRules() model.RuleSet {
	return model.RuleSet{
		WatchedIdentity:     "approvebot",
		TriggerPhrases:      []string{"review", "please review"},
		QuickTriggerPhrases: []string{"asap", "now please"},
		ApprovalMessages:    []string{"Looks good!"},
		DelayBounds:         model.DelayBounds{MinSeconds: 10, MaxSeconds: 60},
	}
}

func newTestEvaluator(t *testing.T, rules model.RuleSet) *Evaluator {
	t.Helper()
	e, err := NewEvaluator(rules)
	require.NoError(t, err)
	return e
}

func TestEvaluateMention(t *testing.T) {
	e := newTestEvaluator(t, testRules())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain mention", "@approvebot take a look", true},
		{"mention at end", "take a look @approvebot", true},
		{"case insensitive", "hey @APPROVEBOT", true},
		{"mention followed by punctuation", "@approvebot, hello", true},
		{"no mention", "please review this", false},
		{"longer login is not a mention", "@approvebot2 hello", false},
		{"bare name without at-sign", "approvebot hello", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Evaluate(tt.text).MentionsWatchedIdentity)
		})
	}
}

func TestEvaluateTriggerPhrases(t *testing.T) {
	e := newTestEvaluator(t, testRules())

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"whole word match", "please review this PR", true},
		{"case insensitive", "REVIEW requested", true},
		{"multi-word phrase", "could you please review this", true},
		{"substring is not a word match", "reviewer wanted", false},
		{"prefix inside word", "previewing the change", false},
		{"no trigger", "just a comment", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Evaluate(tt.text).HasTriggerPhrase)
		})
	}
}

func TestEvaluateQuickTriggerIndependence(t *testing.T) {
	e := newTestEvaluator(t, testRules())

	// A quick-trigger phrase alone sets only the quick flag; the trigger
	// check consults its own list and stays false.
	v := e.Evaluate("@approvebot asap 🚀")
	assert.True(t, v.MentionsWatchedIdentity)
	assert.True(t, v.HasQuickTriggerPhrase)
	assert.False(t, v.HasTriggerPhrase)
	assert.True(t, v.HasEmoji)
	assert.False(t, v.Qualifies())

	// Both lists matching sets both flags.
	v = e.Evaluate("@approvebot review asap 🚀")
	assert.True(t, v.HasTriggerPhrase)
	assert.True(t, v.HasQuickTriggerPhrase)
	assert.True(t, v.Qualifies())
}

func TestEvaluateIsIdempotent(t *testing.T) {
	e := newTestEvaluator(t, testRules())

	text := "@approvebot please review 🙏"
	first := e.Evaluate(text)
	second := e.Evaluate(text)

	assert.Equal(t, first, second)
}

func TestNewEvaluatorEmptyQuickList(t *testing.T) {
	rules := testRules()
	rules.QuickTriggerPhrases = nil

	e := newTestEvaluator(t, rules)
	assert.False(t, e.Evaluate("@approvebot review asap 🚀").HasQuickTriggerPhrase)
}
