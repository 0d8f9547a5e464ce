package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
)

// rulesFile is the on-disk schema of the trigger rules. YAML is a superset
// of JSON, so both rules.yaml and rules.json files load through the same
// decoder.
type rulesFile struct {
	Comments          []string `yaml:"comments"`
	TriggerWords      []string `yaml:"triggerWords"`
	QuickTriggerWords []string `yaml:"quickTriggerWords"`
	Delay             struct {
		MinSeconds int `yaml:"minSeconds"`
		MaxSeconds int `yaml:"maxSeconds"`
	} `yaml:"delay"`
}

// LoadRules reads the rules file at path and returns a validated RuleSet
// with the given acting identity filled in. Any load, parse, or validation
// failure is startup-fatal to the caller.
func LoadRules(path, watchedIdentity string) (model.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RuleSet{}, fmt.Errorf("reading rules file %s: %w", path, err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return model.RuleSet{}, fmt.Errorf("parsing rules file %s: %w", path, err)
	}

	rules := model.RuleSet{
		WatchedIdentity:     watchedIdentity,
		TriggerPhrases:      rf.TriggerWords,
		QuickTriggerPhrases: rf.QuickTriggerWords,
		ApprovalMessages:    rf.Comments,
		DelayBounds: model.DelayBounds{
			MinSeconds: rf.Delay.MinSeconds,
			MaxSeconds: rf.Delay.MaxSeconds,
		},
	}
	if err := rules.Validate(); err != nil {
		return model.RuleSet{}, fmt.Errorf("invalid rules file %s: %w", path, err)
	}

	return rules, nil
}
