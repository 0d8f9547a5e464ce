package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
)

// stubRand returns canned values in sequence, then zeroes.
type stubRand struct {
	values []int
	calls  int
}

func (s *stubRand) IntN(n int) int {
	if s.calls >= len(s.values) {
		s.calls++
		return 0
	}
	v := s.values[s.calls] % n
	s.calls++
	return v
}

func qualifyingVerdict() model.Verdict {
	return model.Verdict{
		MentionsWatchedIdentity: true,
		HasTriggerPhrase:        true,
		HasEmoji:                true,
	}
}

func TestDecideSkip(t *testing.T) {
	rules := testRules()

	tests := []struct {
		name    string
		verdict model.Verdict
	}{
		{"nothing set", model.Verdict{}},
		{"mention only", model.Verdict{MentionsWatchedIdentity: true}},
		{"mention and trigger, no emoji", model.Verdict{MentionsWatchedIdentity: true, HasTriggerPhrase: true}},
		{"mention and emoji, no trigger", model.Verdict{MentionsWatchedIdentity: true, HasEmoji: true}},
		{"quick trigger alone never suffices", model.Verdict{
			MentionsWatchedIdentity: true,
			HasQuickTriggerPhrase:   true,
			HasEmoji:                true,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.verdict, rules, &stubRand{})
			assert.Equal(t, model.DecisionSkip, d.Kind)
		})
	}
}

func TestDecideApproveNow(t *testing.T) {
	v := qualifyingVerdict()
	v.HasQuickTriggerPhrase = true

	d := Decide(v, testRules(), &stubRand{})
	assert.Equal(t, model.DecisionApproveNow, d.Kind)
	assert.Zero(t, d.Delay)
}

func TestDecideApproveAfterSamplesWithinBounds(t *testing.T) {
	rules := testRules() // bounds 10..60

	// Stub at both ends and in the middle of the span.
	for _, sample := range []int{0, 25, 50} {
		d := Decide(qualifyingVerdict(), rules, &stubRand{values: []int{sample}})
		require.Equal(t, model.DecisionApproveAfter, d.Kind)

		seconds := int(d.Delay / time.Second)
		assert.Equal(t, rules.DelayBounds.MinSeconds+sample, seconds)
		assert.GreaterOrEqual(t, seconds, rules.DelayBounds.MinSeconds)
		assert.LessOrEqual(t, seconds, rules.DelayBounds.MaxSeconds)
	}
}

func TestDecideApproveAfterWithSystemRandStaysInBounds(t *testing.T) {
	rules := testRules()
	rng := SystemRand()

	for range 100 {
		d := Decide(qualifyingVerdict(), rules, rng)
		require.Equal(t, model.DecisionApproveAfter, d.Kind)

		seconds := int(d.Delay / time.Second)
		assert.GreaterOrEqual(t, seconds, rules.DelayBounds.MinSeconds)
		assert.LessOrEqual(t, seconds, rules.DelayBounds.MaxSeconds)
	}
}

func TestDecideEqualBoundsAreDeterministic(t *testing.T) {
	rules := testRules()
	rules.DelayBounds = model.DelayBounds{MinSeconds: 45, MaxSeconds: 45}

	d := Decide(qualifyingVerdict(), rules, SystemRand())
	require.Equal(t, model.DecisionApproveAfter, d.Kind)
	assert.Equal(t, 45*time.Second, d.Delay)
}
