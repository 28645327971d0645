package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/skikt/manifest"
)

func TestRules_PathsAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, len(Rules))

	for _, rule := range Rules {
		assert.False(t, seen[rule.Path], "duplicate rule path %s", rule.Path)
		seen[rule.Path] = true
	}
}

func TestRules_AccessorMatchesKind(t *testing.T) {
	t.Parallel()

	for _, rule := range Rules {
		switch rule.Kind {
		case KindString:
			assert.NotNil(t, rule.str, "rule %s", rule.Path)
		case KindBool:
			assert.NotNil(t, rule.boolean, "rule %s", rule.Path)
		case KindInt:
			assert.NotNil(t, rule.integer, "rule %s", rule.Path)
		case KindStringList:
			assert.NotNil(t, rule.stringList, "rule %s", rule.Path)
		}
	}
}

func TestRules_AccessorsNilSafeOnEmptyDocument(t *testing.T) {
	t.Parallel()

	doc := &manifest.Manifest{}

	for _, rule := range Rules {
		switch rule.Kind {
		case KindString:
			assert.Nil(t, rule.str(doc), "rule %s", rule.Path)
		case KindBool:
			assert.Nil(t, rule.boolean(doc), "rule %s", rule.Path)
		case KindInt:
			assert.Nil(t, rule.integer(doc), "rule %s", rule.Path)
		case KindStringList:
			assert.Nil(t, rule.stringList(doc), "rule %s", rule.Path)
		}
	}
}

func TestRules_OnlyIDIsRequired(t *testing.T) {
	t.Parallel()

	for _, rule := range Rules {
		if rule.Path == "id" {
			assert.True(t, rule.Required)

			continue
		}

		assert.False(t, rule.Required, "rule %s", rule.Path)
	}
}

func TestRules_SentinelFieldsAreArnFormatted(t *testing.T) {
	t.Parallel()

	wantSentinel := map[string]bool{
		"federation.saml.roleArn":        true,
		"pipeline.existingRepositoryArn": true,
	}

	for _, rule := range Rules {
		assert.Equal(t, wantSentinel[rule.Path], rule.EmptyMeansAbsent, "rule %s", rule.Path)

		if rule.EmptyMeansAbsent {
			assert.Equal(t, FormatArn, rule.Format, "rule %s", rule.Path)
		}
	}
}

func TestRules_TraversalOrder(t *testing.T) {
	t.Parallel()

	// Root scalars first, then groups in declaration order. The merge
	// engine's change log relies on the same ordering.
	wantPrefixOrder := []string{"id", "adminEmail", "domainName", "enableWaf", "logRetentionDays", "vpc.", "federation.", "guardrails.", "retrieval.", "pipeline."}

	cursor := 0

	for _, prefix := range wantPrefixOrder {
		found := false

		for ; cursor < len(Rules); cursor++ {
			if Rules[cursor].Path == prefix || hasPrefix(Rules[cursor].Path, prefix) {
				found = true

				break
			}
		}

		require.True(t, found, "no rule found at or after position for prefix %s", prefix)
	}
}

func hasPrefix(path, prefix string) bool {
	return len(path) >= len(prefix) && path[:len(prefix)] == prefix
}

func TestEntryRules_RequiredFields(t *testing.T) {
	t.Parallel()

	for _, rules := range [][]EntryRule{ModelEntryRules, ExternalIndexEntryRules} {
		byField := make(map[string]EntryRule, len(rules))
		for _, rule := range rules {
			byField[rule.Field] = rule
		}

		assert.True(t, byField["name"].Required)
		assert.True(t, byField["crossAccountRoleArn"].EmptyMeansAbsent)
		assert.Equal(t, FormatArn, byField["crossAccountRoleArn"].Format)
	}

	assert.Equal(t, FormatModelID, ModelEntryRules[1].Format)
	assert.Equal(t, FormatIndexID, ExternalIndexEntryRules[1].Format)
}
