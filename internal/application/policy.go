package application

import (
	"math/rand/v2"
	"time"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
)

// Rand is the injected randomness source for delay sampling and message
// selection. Implementations must be safe for concurrent use.
type Rand interface {
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
}

// systemRand delegates to the top-level math/rand/v2 generator, which is
// safe for concurrent use.
type systemRand struct{}

func (systemRand) IntN(n int) int { return rand.IntN(n) }

// SystemRand returns the process-wide randomness source.
func SystemRand() Rand { return systemRand{} }

// Decide maps a verdict to an action. It is pure apart from the explicit
// randomness dependency:
//   - mention, trigger, and emoji must all hold, otherwise Skip;
//   - a quick-trigger phrase on top of that approves immediately;
//   - otherwise approval is deferred by a whole number of seconds sampled
//     uniformly from the rule set's inclusive delay bounds.
func Decide(verdict model.Verdict, rules model.RuleSet, rng Rand) model.Decision {
	if !verdict.Qualifies() {
		return model.Skip()
	}
	if verdict.HasQuickTriggerPhrase {
		return model.ApproveNow()
	}

	span := rules.DelayBounds.MaxSeconds - rules.DelayBounds.MinSeconds
	seconds := rules.DelayBounds.MinSeconds + rng.IntN(span+1)
	return model.ApproveAfter(time.Duration(seconds) * time.Second)
}
