package manifest

// Manifest is the parsed override document. Nil fields were omitted and
// leave the base configuration untouched.
type Manifest struct {
	ID               *string `yaml:"id"`
	AdminEmail       *string `yaml:"adminEmail"`
	DomainName       *string `yaml:"domainName"`
	EnableWaf        *bool   `yaml:"enableWaf"`
	LogRetentionDays *int    `yaml:"logRetentionDays"`

	Vpc        *VpcOverride        `yaml:"vpc"`
	Federation *FederationOverride `yaml:"federation"`
	Guardrails *GuardrailsOverride `yaml:"guardrails"`
	Retrieval  *RetrievalOverride  `yaml:"retrieval"`
	Pipeline   *PipelineOverride   `yaml:"pipeline"`

	Models          []ModelEntry         `yaml:"models"`
	ExternalIndexes []ExternalIndexEntry `yaml:"externalIndexes"`
}

// VpcOverride selectively overrides network settings.
type VpcOverride struct {
	VpcID         *string  `yaml:"vpcId"`
	S3EndpointID  *string  `yaml:"s3EndpointId"`
	S3EndpointIps []string `yaml:"s3EndpointIps"`
}

// FederationOverride selectively overrides identity-federation settings.
type FederationOverride struct {
	Provider     *string       `yaml:"provider"`
	CustomDomain *string       `yaml:"customDomain"`
	Saml         *SamlOverride `yaml:"saml"`
	Oidc         *OidcOverride `yaml:"oidc"`
}

// SamlOverride selectively overrides SAML federation settings.
type SamlOverride struct {
	MetadataURL *string `yaml:"metadataUrl"`
	RoleArn     *string `yaml:"roleArn"`
}

// OidcOverride selectively overrides OIDC federation settings.
type OidcOverride struct {
	IssuerURL *string `yaml:"issuerUrl"`
	ClientID  *string `yaml:"clientId"`
}

// GuardrailsOverride selectively overrides guarded-content settings.
type GuardrailsOverride struct {
	Enabled    *bool   `yaml:"enabled"`
	Identifier *string `yaml:"identifier"`
	Version    *string `yaml:"version"`
}

// RetrievalOverride selectively overrides retrieval-engine settings.
type RetrievalOverride struct {
	Enabled *bool            `yaml:"enabled"`
	Engines *EnginesOverride `yaml:"engines"`
}

// EnginesOverride selectively overrides retrieval engine toggles.
type EnginesOverride struct {
	OpenSearch *bool `yaml:"opensearch"`
	Kendra     *bool `yaml:"kendra"`
	Aurora     *bool `yaml:"aurora"`
}

// PipelineOverride replaces pipeline settings. Unlike the other groups it
// is applied atomically: its fields are only valid in certain combinations,
// so a partial merge could produce a mix that never passed validation.
type PipelineOverride struct {
	ExistingRepositoryArn *string `yaml:"existingRepositoryArn"`
	NewRepositoryName     *string `yaml:"newRepositoryName"`
	Branch                *string `yaml:"branch"`
}

// ModelEntry is one model descriptor in an override list. Enabled defaults
// to true when omitted.
type ModelEntry struct {
	Name                string  `yaml:"name"`
	ModelID             string  `yaml:"modelId"`
	CrossAccountRoleArn string  `yaml:"crossAccountRoleArn"`
	Enabled             *bool   `yaml:"enabled"`
}

// ExternalIndexEntry is one external index descriptor in an override list.
// Enabled defaults to true when omitted.
type ExternalIndexEntry struct {
	Name                string `yaml:"name"`
	IndexID             string `yaml:"indexId"`
	CrossAccountRoleArn string `yaml:"crossAccountRoleArn"`
	Enabled             *bool  `yaml:"enabled"`
}
