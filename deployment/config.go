package deployment

// SystemConfig is the complete deployment configuration: root scalars,
// named settings groups, and ordered descriptor lists.
type SystemConfig struct {
	ID               string `json:"id"`
	AdminEmail       string `json:"adminEmail"`
	DomainName       string `json:"domainName"`
	EnableWaf        bool   `json:"enableWaf"`
	LogRetentionDays int    `json:"logRetentionDays"`

	Vpc        VpcConfig        `json:"vpc"`
	Federation FederationConfig `json:"federation"`
	Guardrails GuardrailsConfig `json:"guardrails"`
	Retrieval  RetrievalConfig  `json:"retrieval"`
	Pipeline   PipelineConfig   `json:"pipeline"`

	Models          []ModelDescriptor         `json:"models"`
	ExternalIndexes []ExternalIndexDescriptor `json:"externalIndexes"`
}

// VpcConfig holds network settings.
type VpcConfig struct {
	VpcID        string   `json:"vpcId"`
	S3EndpointID string   `json:"s3EndpointId"`
	S3EndpointIps []string `json:"s3EndpointIps"`
}

// FederationConfig holds identity-federation settings. Provider selects
// which sub-group must be populated.
type FederationConfig struct {
	Provider     string     `json:"provider"`
	CustomDomain string     `json:"customDomain"`
	Saml         SamlConfig `json:"saml"`
	Oidc         OidcConfig `json:"oidc"`
}

// SamlConfig holds SAML federation settings.
type SamlConfig struct {
	MetadataURL string `json:"metadataUrl"`
	RoleArn     string `json:"roleArn"`
}

// OidcConfig holds OIDC federation settings.
type OidcConfig struct {
	IssuerURL string `json:"issuerUrl"`
	ClientID  string `json:"clientId"`
}

// GuardrailsConfig holds guarded-content settings.
type GuardrailsConfig struct {
	Enabled    bool   `json:"enabled"`
	Identifier string `json:"identifier"`
	Version    string `json:"version"`
}

// RetrievalConfig holds retrieval-engine settings. When Enabled is true at
// least one engine toggle must be on.
type RetrievalConfig struct {
	Enabled bool          `json:"enabled"`
	Engines EngineToggles `json:"engines"`
}

// EngineToggles enables individual retrieval engines.
type EngineToggles struct {
	OpenSearch bool `json:"opensearch"`
	Kendra     bool `json:"kendra"`
	Aurora     bool `json:"aurora"`
}

// PipelineConfig holds pipeline settings. Exactly one of
// ExistingRepositoryArn and NewRepositoryName is valid at a time, which is
// why the merge engine replaces this group atomically.
type PipelineConfig struct {
	ExistingRepositoryArn string `json:"existingRepositoryArn"`
	NewRepositoryName     string `json:"newRepositoryName"`
	Branch                string `json:"branch"`
}

// ModelDescriptor names one model made available to the application.
type ModelDescriptor struct {
	Name                string `json:"name"`
	ModelID             string `json:"modelId"`
	CrossAccountRoleArn string `json:"crossAccountRoleArn"`
	Enabled             bool   `json:"enabled"`
}

// ExternalIndexDescriptor names one pre-existing external search index.
type ExternalIndexDescriptor struct {
	Name                string `json:"name"`
	IndexID             string `json:"indexId"`
	CrossAccountRoleArn string `json:"crossAccountRoleArn"`
	Enabled             bool   `json:"enabled"`
}

// Clone returns a deep copy of the configuration. Slices are copied so the
// clone shares no memory with the receiver.
func (c SystemConfig) Clone() SystemConfig {
	clone := c

	if c.Vpc.S3EndpointIps != nil {
		clone.Vpc.S3EndpointIps = make([]string, len(c.Vpc.S3EndpointIps))
		copy(clone.Vpc.S3EndpointIps, c.Vpc.S3EndpointIps)
	}

	if c.Models != nil {
		clone.Models = make([]ModelDescriptor, len(c.Models))
		copy(clone.Models, c.Models)
	}

	if c.ExternalIndexes != nil {
		clone.ExternalIndexes = make([]ExternalIndexDescriptor, len(c.ExternalIndexes))
		copy(clone.ExternalIndexes, c.ExternalIndexes)
	}

	return clone
}
