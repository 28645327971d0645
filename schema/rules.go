package schema

import "github.com/0xalexb/skikt/manifest"

// Kind is the primitive kind of a field.
type Kind int

// Primitive field kinds.
const (
	KindString Kind = iota
	KindBool
	KindInt
	KindStringList
)

// FieldRule describes one recognized override field: its dotted path,
// primitive kind, optionality, bounds, format constraint, and enumerated
// sets. The rule table is pure data; the accessor funcs return nil when the
// field (or any enclosing group) is absent from the document.
type FieldRule struct {
	Path     string
	Kind     Kind
	Required bool

	// MinLen and MaxLen bound string length. Zero MaxLen means unbounded.
	MinLen, MaxLen int

	// Format constrains the string value (each element for KindStringList).
	Format *Format

	// IntEnum is the allow-list of permitted integer values.
	IntEnum []int

	// StringEnum is the allow-list of permitted string values.
	StringEnum []string

	// EmptyMeansAbsent treats an explicit empty string as "field omitted".
	// Applied only to ARN-like optional fields; see the merge engine, which
	// honors the same sentinel.
	EmptyMeansAbsent bool

	str        func(doc *manifest.Manifest) *string
	boolean    func(doc *manifest.Manifest) *bool
	integer    func(doc *manifest.Manifest) *int
	stringList func(doc *manifest.Manifest) []string
}

// Rules is the ordered rule table for every recognized scalar, group leaf,
// and leaf list. Order follows document traversal order: root scalars
// first, then groups in declaration order, with list-valued fields last
// within each group. List entry fields are covered by ModelEntryRules and
// ExternalIndexEntryRules.
//
//nolint:gochecknoglobals // the schema is static pure data
var Rules = []FieldRule{
	{
		Path:     "id",
		Kind:     KindString,
		Required: true,
		Format:   FormatDeploymentID,
		str:      func(doc *manifest.Manifest) *string { return doc.ID },
	},
	{
		Path:   "adminEmail",
		Kind:   KindString,
		Format: FormatEmail,
		str:    func(doc *manifest.Manifest) *string { return doc.AdminEmail },
	},
	{
		Path:   "domainName",
		Kind:   KindString,
		Format: FormatDomain,
		str:    func(doc *manifest.Manifest) *string { return doc.DomainName },
	},
	{
		Path:    "enableWaf",
		Kind:    KindBool,
		boolean: func(doc *manifest.Manifest) *bool { return doc.EnableWaf },
	},
	{
		Path:    "logRetentionDays",
		Kind:    KindInt,
		IntEnum: []int{1, 3, 5, 7, 14, 30, 60, 90, 120, 150, 180, 365, 400, 545, 731, 1827, 3653},
		integer: func(doc *manifest.Manifest) *int { return doc.LogRetentionDays },
	},
	{
		Path:   "vpc.vpcId",
		Kind:   KindString,
		Format: FormatVpcID,
		str: func(doc *manifest.Manifest) *string {
			if doc.Vpc == nil {
				return nil
			}

			return doc.Vpc.VpcID
		},
	},
	{
		Path:   "vpc.s3EndpointId",
		Kind:   KindString,
		Format: FormatVpceID,
		str: func(doc *manifest.Manifest) *string {
			if doc.Vpc == nil {
				return nil
			}

			return doc.Vpc.S3EndpointID
		},
	},
	{
		Path:   "vpc.s3EndpointIps",
		Kind:   KindStringList,
		Format: FormatIPv4,
		stringList: func(doc *manifest.Manifest) []string {
			if doc.Vpc == nil {
				return nil
			}

			return doc.Vpc.S3EndpointIps
		},
	},
	{
		Path:       "federation.provider",
		Kind:       KindString,
		StringEnum: []string{"saml", "oidc"},
		str: func(doc *manifest.Manifest) *string {
			if doc.Federation == nil {
				return nil
			}

			return doc.Federation.Provider
		},
	},
	{
		Path:   "federation.customDomain",
		Kind:   KindString,
		Format: FormatDomain,
		str: func(doc *manifest.Manifest) *string {
			if doc.Federation == nil {
				return nil
			}

			return doc.Federation.CustomDomain
		},
	},
	{
		Path:   "federation.saml.metadataUrl",
		Kind:   KindString,
		Format: FormatHTTPSURL,
		str: func(doc *manifest.Manifest) *string {
			if doc.Federation == nil || doc.Federation.Saml == nil {
				return nil
			}

			return doc.Federation.Saml.MetadataURL
		},
	},
	{
		Path:             "federation.saml.roleArn",
		Kind:             KindString,
		Format:           FormatArn,
		EmptyMeansAbsent: true,
		str: func(doc *manifest.Manifest) *string {
			if doc.Federation == nil || doc.Federation.Saml == nil {
				return nil
			}

			return doc.Federation.Saml.RoleArn
		},
	},
	{
		Path:   "federation.oidc.issuerUrl",
		Kind:   KindString,
		Format: FormatHTTPSURL,
		str: func(doc *manifest.Manifest) *string {
			if doc.Federation == nil || doc.Federation.Oidc == nil {
				return nil
			}

			return doc.Federation.Oidc.IssuerURL
		},
	},
	{
		Path:   "federation.oidc.clientId",
		Kind:   KindString,
		MinLen: 1,
		MaxLen: 128,
		str: func(doc *manifest.Manifest) *string {
			if doc.Federation == nil || doc.Federation.Oidc == nil {
				return nil
			}

			return doc.Federation.Oidc.ClientID
		},
	},
	{
		Path: "guardrails.enabled",
		Kind: KindBool,
		boolean: func(doc *manifest.Manifest) *bool {
			if doc.Guardrails == nil {
				return nil
			}

			return doc.Guardrails.Enabled
		},
	},
	{
		Path:   "guardrails.identifier",
		Kind:   KindString,
		Format: FormatGuardrailID,
		str: func(doc *manifest.Manifest) *string {
			if doc.Guardrails == nil {
				return nil
			}

			return doc.Guardrails.Identifier
		},
	},
	{
		Path:   "guardrails.version",
		Kind:   KindString,
		Format: FormatGuardrailVersion,
		str: func(doc *manifest.Manifest) *string {
			if doc.Guardrails == nil {
				return nil
			}

			return doc.Guardrails.Version
		},
	},
	{
		Path: "retrieval.enabled",
		Kind: KindBool,
		boolean: func(doc *manifest.Manifest) *bool {
			if doc.Retrieval == nil {
				return nil
			}

			return doc.Retrieval.Enabled
		},
	},
	{
		Path: "retrieval.engines.opensearch",
		Kind: KindBool,
		boolean: func(doc *manifest.Manifest) *bool {
			if doc.Retrieval == nil || doc.Retrieval.Engines == nil {
				return nil
			}

			return doc.Retrieval.Engines.OpenSearch
		},
	},
	{
		Path: "retrieval.engines.kendra",
		Kind: KindBool,
		boolean: func(doc *manifest.Manifest) *bool {
			if doc.Retrieval == nil || doc.Retrieval.Engines == nil {
				return nil
			}

			return doc.Retrieval.Engines.Kendra
		},
	},
	{
		Path: "retrieval.engines.aurora",
		Kind: KindBool,
		boolean: func(doc *manifest.Manifest) *bool {
			if doc.Retrieval == nil || doc.Retrieval.Engines == nil {
				return nil
			}

			return doc.Retrieval.Engines.Aurora
		},
	},
	{
		Path:             "pipeline.existingRepositoryArn",
		Kind:             KindString,
		Format:           FormatArn,
		EmptyMeansAbsent: true,
		str: func(doc *manifest.Manifest) *string {
			if doc.Pipeline == nil {
				return nil
			}

			return doc.Pipeline.ExistingRepositoryArn
		},
	},
	{
		Path:   "pipeline.newRepositoryName",
		Kind:   KindString,
		Format: FormatRepositoryName,
		str: func(doc *manifest.Manifest) *string {
			if doc.Pipeline == nil {
				return nil
			}

			return doc.Pipeline.NewRepositoryName
		},
	},
	{
		Path:   "pipeline.branch",
		Kind:   KindString,
		MinLen: 1,
		MaxLen: 255,
		str: func(doc *manifest.Manifest) *string {
			if doc.Pipeline == nil {
				return nil
			}

			return doc.Pipeline.Branch
		},
	},
}

// EntryRule constrains one field of a list entry. Entries are uniform
// records, so the accessor works on a normalized view of the entry.
type EntryRule struct {
	Field    string
	Required bool

	MinLen, MaxLen int

	Format *Format

	EmptyMeansAbsent bool

	value func(view entryView) string
}

// entryView is the normalized shape shared by all list entry types.
type entryView struct {
	name       string
	identifier string
	roleArn    string
}

// ModelEntryRules constrains each entry of the models list.
//
//nolint:gochecknoglobals // static pure data
var ModelEntryRules = []EntryRule{
	{
		Field:    "name",
		Required: true,
		MinLen:   1,
		MaxLen:   64,
		value:    func(view entryView) string { return view.name },
	},
	{
		Field:    "modelId",
		Required: true,
		Format:   FormatModelID,
		value:    func(view entryView) string { return view.identifier },
	},
	{
		Field:            "crossAccountRoleArn",
		Format:           FormatArn,
		EmptyMeansAbsent: true,
		value:            func(view entryView) string { return view.roleArn },
	},
}

// ExternalIndexEntryRules constrains each entry of the externalIndexes list.
//
//nolint:gochecknoglobals // static pure data
var ExternalIndexEntryRules = []EntryRule{
	{
		Field:    "name",
		Required: true,
		MinLen:   1,
		MaxLen:   64,
		value:    func(view entryView) string { return view.name },
	},
	{
		Field:    "indexId",
		Required: true,
		Format:   FormatIndexID,
		value:    func(view entryView) string { return view.identifier },
	},
	{
		Field:            "crossAccountRoleArn",
		Format:           FormatArn,
		EmptyMeansAbsent: true,
		value:            func(view entryView) string { return view.roleArn },
	},
}
