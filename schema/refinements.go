package schema

import (
	"fmt"

	"github.com/0xalexb/skikt/manifest"
)

// Refinement is a named cross-field constraint, evaluated after every
// primitive rule. A failed refinement yields one error per violated field,
// attributed to the most specific path implicated.
type Refinement struct {
	Name  string
	check func(doc *manifest.Manifest) []*FieldError
}

// Check evaluates the refinement against the document.
func (r Refinement) Check(doc *manifest.Manifest) []*FieldError {
	return r.check(doc)
}

// presence reports whether a field is set in the document.
type presence func(doc *manifest.Manifest) bool

// Refinements is the ordered set of cross-field constraints.
//
//nolint:gochecknoglobals // static pure data
var Refinements = []Refinement{
	companionPair(
		"s3-endpoint-companions",
		"vpc.s3EndpointIps",
		func(doc *manifest.Manifest) bool {
			return doc.Vpc != nil && len(doc.Vpc.S3EndpointIps) > 0
		},
		"vpc.s3EndpointId",
		func(doc *manifest.Manifest) bool {
			return doc.Vpc != nil && doc.Vpc.S3EndpointID != nil
		},
	),
	requiredWhenEquals(
		"saml-provider-settings",
		"federation.provider", "saml",
		func(doc *manifest.Manifest) *string {
			if doc.Federation == nil {
				return nil
			}

			return doc.Federation.Provider
		},
		requiredField{
			path: "federation.saml.metadataUrl",
			present: func(doc *manifest.Manifest) bool {
				return doc.Federation != nil && doc.Federation.Saml != nil && doc.Federation.Saml.MetadataURL != nil
			},
		},
	),
	requiredWhenEquals(
		"oidc-provider-settings",
		"federation.provider", "oidc",
		func(doc *manifest.Manifest) *string {
			if doc.Federation == nil {
				return nil
			}

			return doc.Federation.Provider
		},
		requiredField{
			path: "federation.oidc.issuerUrl",
			present: func(doc *manifest.Manifest) bool {
				return doc.Federation != nil && doc.Federation.Oidc != nil && doc.Federation.Oidc.IssuerURL != nil
			},
		},
		requiredField{
			path: "federation.oidc.clientId",
			present: func(doc *manifest.Manifest) bool {
				return doc.Federation != nil && doc.Federation.Oidc != nil && doc.Federation.Oidc.ClientID != nil
			},
		},
	),
	requiredWhenTrue(
		"guardrails-gate",
		"guardrails.enabled",
		func(doc *manifest.Manifest) *bool {
			if doc.Guardrails == nil {
				return nil
			}

			return doc.Guardrails.Enabled
		},
		requiredField{
			path: "guardrails.identifier",
			present: func(doc *manifest.Manifest) bool {
				return doc.Guardrails != nil && doc.Guardrails.Identifier != nil
			},
		},
		requiredField{
			path: "guardrails.version",
			present: func(doc *manifest.Manifest) bool {
				return doc.Guardrails != nil && doc.Guardrails.Version != nil
			},
		},
	),
	anyActiveMember(
		"retrieval-active-engine",
		"retrieval.enabled",
		func(doc *manifest.Manifest) *bool {
			if doc.Retrieval == nil {
				return nil
			}

			return doc.Retrieval.Enabled
		},
		"retrieval.engines",
		func(doc *manifest.Manifest) []*bool {
			if doc.Retrieval == nil || doc.Retrieval.Engines == nil {
				return nil
			}

			engines := doc.Retrieval.Engines

			return []*bool{engines.OpenSearch, engines.Kendra, engines.Aurora}
		},
	),
	exactlyOneOf(
		"pipeline-repository-source",
		func(doc *manifest.Manifest) bool { return doc.Pipeline != nil },
		"pipeline.existingRepositoryArn",
		func(doc *manifest.Manifest) bool {
			arn := doc.Pipeline.ExistingRepositoryArn

			// Empty string is the "absent" sentinel for ARN fields.
			return arn != nil && *arn != ""
		},
		"pipeline.newRepositoryName",
		func(doc *manifest.Manifest) bool {
			return doc.Pipeline.NewRepositoryName != nil
		},
	),
}

// requiredField pairs a dotted path with its presence check.
type requiredField struct {
	path    string
	present presence
}

// companionPair requires the scalar field whenever the list field is
// present and non-empty. The dependency is asymmetric: the scalar alone is
// fine.
func companionPair(name, listPath string, listSet presence, scalarPath string, scalarSet presence) Refinement {
	return Refinement{
		Name: name,
		check: func(doc *manifest.Manifest) []*FieldError {
			if listSet(doc) && !scalarSet(doc) {
				return []*FieldError{{
					Path:    scalarPath,
					Message: fmt.Sprintf("required when %s is set", listPath),
				}}
			}

			return nil
		},
	}
}

// requiredWhenTrue requires every listed field when the gate flag is
// explicitly true.
func requiredWhenTrue(name, flagPath string, flag func(doc *manifest.Manifest) *bool, required ...requiredField) Refinement {
	return Refinement{
		Name: name,
		check: func(doc *manifest.Manifest) []*FieldError {
			gate := flag(doc)
			if gate == nil || !*gate {
				return nil
			}

			var errs []*FieldError

			for _, field := range required {
				if !field.present(doc) {
					errs = append(errs, &FieldError{
						Path:    field.path,
						Message: fmt.Sprintf("required when %s is true", flagPath),
					})
				}
			}

			return errs
		},
	}
}

// requiredWhenEquals requires every listed field when the discriminant has
// the given enumerated value.
func requiredWhenEquals(name, discPath, value string, disc func(doc *manifest.Manifest) *string, required ...requiredField) Refinement {
	return Refinement{
		Name: name,
		check: func(doc *manifest.Manifest) []*FieldError {
			got := disc(doc)
			if got == nil || *got != value {
				return nil
			}

			var errs []*FieldError

			for _, field := range required {
				if !field.present(doc) {
					errs = append(errs, &FieldError{
						Path:    field.path,
						Message: fmt.Sprintf("required when %s is %q", discPath, value),
					})
				}
			}

			return errs
		},
	}
}

// anyActiveMember requires at least one member toggle to be true when the
// umbrella flag is explicitly true.
func anyActiveMember(name, flagPath string, flag func(doc *manifest.Manifest) *bool, membersPath string, members func(doc *manifest.Manifest) []*bool) Refinement {
	return Refinement{
		Name: name,
		check: func(doc *manifest.Manifest) []*FieldError {
			gate := flag(doc)
			if gate == nil || !*gate {
				return nil
			}

			for _, member := range members(doc) {
				if member != nil && *member {
					return nil
				}
			}

			return []*FieldError{{
				Path:    membersPath,
				Message: fmt.Sprintf("at least one engine must be enabled when %s is true", flagPath),
			}}
		},
	}
}

// exactlyOneOf requires exactly one of two mutually exclusive fields
// whenever the enclosing group is present: both set and neither set are
// each a violation.
func exactlyOneOf(name string, groupSet presence, pathA string, aSet presence, pathB string, bSet presence) Refinement {
	return Refinement{
		Name: name,
		check: func(doc *manifest.Manifest) []*FieldError {
			if !groupSet(doc) {
				return nil
			}

			hasA, hasB := aSet(doc), bSet(doc)

			switch {
			case hasA && hasB:
				return []*FieldError{{
					Path:    pathA,
					Message: fmt.Sprintf("mutually exclusive with %s", pathB),
				}}
			case !hasA && !hasB:
				return []*FieldError{{
					Path:    pathA,
					Message: fmt.Sprintf("exactly one of %s and %s must be set", pathA, pathB),
				}}
			default:
				return nil
			}
		},
	}
}
