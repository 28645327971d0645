package merge

import (
	"github.com/0xalexb/skikt/deployment"
	"github.com/0xalexb/skikt/manifest"
)

// DefaultPipelineBranch is used when an atomic pipeline replacement omits
// the branch.
const DefaultPipelineBranch = "main"

// Merge applies the override document onto a deep copy of base and returns
// the resulting configuration plus the ordered change log. The base value
// is never mutated. A nil document returns the copy unchanged with zero
// change records.
//
// The document is assumed to have passed schema validation; an invalid
// combination surfacing here is a programming defect, not a runtime
// condition this engine recovers from.
func Merge(base deployment.SystemConfig, doc *manifest.Manifest) (deployment.SystemConfig, []ChangeRecord) {
	resolved := base.Clone()

	if doc == nil {
		return resolved, nil
	}

	rec := &recorder{}

	for _, step := range Plan {
		step.apply(&resolved, doc, rec)
	}

	return resolved, rec.records
}

func applyID(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	setString(rec, "id", &dst.ID, doc.ID)
}

func applyAdminEmail(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	setString(rec, "adminEmail", &dst.AdminEmail, doc.AdminEmail)
}

func applyDomainName(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	setString(rec, "domainName", &dst.DomainName, doc.DomainName)
}

func applyEnableWaf(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	setBool(rec, "enableWaf", &dst.EnableWaf, doc.EnableWaf)
}

func applyLogRetentionDays(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	setInt(rec, "logRetentionDays", &dst.LogRetentionDays, doc.LogRetentionDays)
}

func applyVpc(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	override := doc.Vpc
	if override == nil {
		return
	}

	setString(rec, "vpc.vpcId", &dst.Vpc.VpcID, override.VpcID)
	setString(rec, "vpc.s3EndpointId", &dst.Vpc.S3EndpointID, override.S3EndpointID)

	// Leaf list last within the group; replaced wholesale.
	if override.S3EndpointIps != nil {
		newIps := make([]string, len(override.S3EndpointIps))
		copy(newIps, override.S3EndpointIps)
		rec.record("vpc.s3EndpointIps", dst.Vpc.S3EndpointIps, newIps)
		dst.Vpc.S3EndpointIps = newIps
	}
}

func applyFederation(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	override := doc.Federation
	if override == nil {
		return
	}

	setString(rec, "federation.provider", &dst.Federation.Provider, override.Provider)
	setString(rec, "federation.customDomain", &dst.Federation.CustomDomain, override.CustomDomain)

	if override.Saml != nil {
		setString(rec, "federation.saml.metadataUrl", &dst.Federation.Saml.MetadataURL, override.Saml.MetadataURL)
		setStringSentinel(rec, "federation.saml.roleArn", &dst.Federation.Saml.RoleArn, override.Saml.RoleArn)
	}

	if override.Oidc != nil {
		setString(rec, "federation.oidc.issuerUrl", &dst.Federation.Oidc.IssuerURL, override.Oidc.IssuerURL)
		setString(rec, "federation.oidc.clientId", &dst.Federation.Oidc.ClientID, override.Oidc.ClientID)
	}
}

func applyGuardrails(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	override := doc.Guardrails
	if override == nil {
		return
	}

	setBool(rec, "guardrails.enabled", &dst.Guardrails.Enabled, override.Enabled)
	setString(rec, "guardrails.identifier", &dst.Guardrails.Identifier, override.Identifier)
	setString(rec, "guardrails.version", &dst.Guardrails.Version, override.Version)
}

func applyRetrieval(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	override := doc.Retrieval
	if override == nil {
		return
	}

	setBool(rec, "retrieval.enabled", &dst.Retrieval.Enabled, override.Enabled)

	if override.Engines != nil {
		setBool(rec, "retrieval.engines.opensearch", &dst.Retrieval.Engines.OpenSearch, override.Engines.OpenSearch)
		setBool(rec, "retrieval.engines.kendra", &dst.Retrieval.Engines.Kendra, override.Engines.Kendra)
		setBool(rec, "retrieval.engines.aurora", &dst.Retrieval.Engines.Aurora, override.Engines.Aurora)
	}
}

func applyPipeline(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	override := doc.Pipeline
	if override == nil {
		return
	}

	replacement := deployment.PipelineConfig{Branch: DefaultPipelineBranch}

	// Empty string is the "absent" sentinel for the ARN field.
	if override.ExistingRepositoryArn != nil && *override.ExistingRepositoryArn != "" {
		replacement.ExistingRepositoryArn = *override.ExistingRepositoryArn
	}

	if override.NewRepositoryName != nil {
		replacement.NewRepositoryName = *override.NewRepositoryName
	}

	if override.Branch != nil {
		replacement.Branch = *override.Branch
	}

	rec.record("pipeline", dst.Pipeline, replacement)
	dst.Pipeline = replacement
}

func applyModels(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	if doc.Models == nil {
		return
	}

	replacement := make([]deployment.ModelDescriptor, 0, len(doc.Models))

	for _, entry := range doc.Models {
		replacement = append(replacement, deployment.ModelDescriptor{
			Name:                entry.Name,
			ModelID:             entry.ModelID,
			CrossAccountRoleArn: entry.CrossAccountRoleArn,
			Enabled:             entry.Enabled == nil || *entry.Enabled,
		})
	}

	rec.record("models", dst.Models, replacement)
	dst.Models = replacement
}

func applyExternalIndexes(dst *deployment.SystemConfig, doc *manifest.Manifest, rec *recorder) {
	if doc.ExternalIndexes == nil {
		return
	}

	replacement := make([]deployment.ExternalIndexDescriptor, 0, len(doc.ExternalIndexes))

	for _, entry := range doc.ExternalIndexes {
		replacement = append(replacement, deployment.ExternalIndexDescriptor{
			Name:                entry.Name,
			IndexID:             entry.IndexID,
			CrossAccountRoleArn: entry.CrossAccountRoleArn,
			Enabled:             entry.Enabled == nil || *entry.Enabled,
		})
	}

	rec.record("externalIndexes", dst.ExternalIndexes, replacement)
	dst.ExternalIndexes = replacement
}

// setString applies a scalar string override. The record is emitted
// unconditionally, even when the new value equals the old one.
func setString(rec *recorder, path string, dst *string, src *string) {
	if src == nil {
		return
	}

	rec.record(path, *dst, *src)
	*dst = *src
}

// setStringSentinel is setString for ARN-like fields where an explicit
// empty string means "absent" and does not trigger an override.
func setStringSentinel(rec *recorder, path string, dst *string, src *string) {
	if src == nil || *src == "" {
		return
	}

	rec.record(path, *dst, *src)
	*dst = *src
}

func setBool(rec *recorder, path string, dst *bool, src *bool) {
	if src == nil {
		return
	}

	rec.record(path, *dst, *src)
	*dst = *src
}

func setInt(rec *recorder, path string, dst *int, src *int) {
	if src == nil {
		return
	}

	rec.record(path, *dst, *src)
	*dst = *src
}
