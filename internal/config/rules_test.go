package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/approvebot/internal/domain/model"
)

func writeRulesFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadRules_YAML(t *testing.T) {
	path := writeRulesFile(t, "rules.yaml", `
comments:
  - "Looks good! 🚀"
  - "Ship it."
triggerWords:
  - review
  - lgtm
quickTriggerWords:
  - asap
delay:
  minSeconds: 30
  maxSeconds: 300
`)

	rules, err := LoadRules(path, "approvebot")

	require.NoError(t, err)
	assert.Equal(t, "approvebot", rules.WatchedIdentity)
	assert.Equal(t, []string{"review", "lgtm"}, rules.TriggerPhrases)
	assert.Equal(t, []string{"asap"}, rules.QuickTriggerPhrases)
	assert.Equal(t, []string{"Looks good! 🚀", "Ship it."}, rules.ApprovalMessages)
	assert.Equal(t, model.DelayBounds{MinSeconds: 30, MaxSeconds: 300}, rules.DelayBounds)
}

func TestLoadRules_JSONIsValidYAML(t *testing.T) {
	path := writeRulesFile(t, "rules.json", `{
  "comments": ["Approved."],
  "triggerWords": ["review"],
  "quickTriggerWords": [],
  "delay": {"minSeconds": 0, "maxSeconds": 60}
}`)

	rules, err := LoadRules(path, "approvebot")

	require.NoError(t, err)
	assert.Equal(t, []string{"review"}, rules.TriggerPhrases)
	assert.Empty(t, rules.QuickTriggerPhrases)
	assert.Equal(t, 60, rules.DelayBounds.MaxSeconds)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"), "approvebot")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading rules file")
}

func TestLoadRules_MalformedFile(t *testing.T) {
	path := writeRulesFile(t, "rules.yaml", "comments: [unclosed")

	_, err := LoadRules(path, "approvebot")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing rules file")
}

func TestLoadRules_InvalidDelayBounds(t *testing.T) {
	path := writeRulesFile(t, "rules.yaml", `
comments: ["ok"]
triggerWords: ["review"]
delay:
  minSeconds: 120
  maxSeconds: 30
`)

	_, err := LoadRules(path, "approvebot")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rules file")
}

func TestLoadRules_EmptyTriggerList(t *testing.T) {
	path := writeRulesFile(t, "rules.yaml", `
comments: ["ok"]
triggerWords: []
delay: {minSeconds: 0, maxSeconds: 0}
`)

	_, err := LoadRules(path, "approvebot")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trigger phrase list")
}
