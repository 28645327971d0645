package merge

import (
	"github.com/0xalexb/skikt/deployment"
	"github.com/0xalexb/skikt/manifest"
)

// Policy selects how a plan step applies its part of the override.
type Policy int

const (
	// ReplaceScalar replaces a single root scalar field.
	ReplaceScalar Policy = iota

	// MergeFields merges a settings group leaf by leaf, preserving base
	// values for leaves the override omits.
	MergeFields

	// ReplaceAtomic replaces a settings group wholesale. Used for groups
	// whose fields are only valid in certain combinations, where a partial
	// merge could assemble a mix that never passed validation.
	ReplaceAtomic

	// ReplaceList replaces a list wholesale; there is no element-level
	// union or merge-by-key.
	ReplaceList
)

// Step is one entry of the merge plan.
type Step struct {
	// Path is the dotted path the step covers.
	Path string

	// Policy is how the override is applied at that path.
	Policy Policy

	apply func(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder)
}

// Plan is the ordered merge plan: root scalars, groups in declaration
// order, the atomic group, then lists. The change log follows this order.
//
//nolint:gochecknoglobals // the plan is static pure data
var Plan = []Step{
	{Path: "id", Policy: ReplaceScalar, apply: applyID},
	{Path: "adminEmail", Policy: ReplaceScalar, apply: applyAdminEmail},
	{Path: "domainName", Policy: ReplaceScalar, apply: applyDomainName},
	{Path: "enableWaf", Policy: ReplaceScalar, apply: applyEnableWaf},
	{Path: "logRetentionDays", Policy: ReplaceScalar, apply: applyLogRetentionDays},
	{Path: "vpc", Policy: MergeFields, apply: applyVpc},
	{Path: "federation", Policy: MergeFields, apply: applyFederation},
	{Path: "guardrails", Policy: MergeFields, apply: applyGuardrails},
	{Path: "retrieval", Policy: MergeFields, apply: applyRetrieval},
	{Path: "pipeline", Policy: ReplaceAtomic, apply: applyPipeline},
	{Path: "models", Policy: ReplaceList, apply: applyModels},
	{Path: "externalIndexes", Policy: ReplaceList, apply: applyExternalIndexes},
}
