package schema

import "regexp"

// Format is a named fixed-pattern matcher for string fields.
type Format struct {
	// Name identifies the format in messages, e.g. "email address".
	Name string

	pattern *regexp.Regexp
}

// Match reports whether the value satisfies the format.
func (f *Format) Match(value string) bool {
	return f.pattern.MatchString(value)
}

func newFormat(name, pattern string) *Format {
	return &Format{
		Name:    name,
		pattern: regexp.MustCompile(pattern),
	}
}

// Fixed-pattern matchers for every formatted field the validator knows.
//
//nolint:gochecknoglobals // the format set is static pure data, shared by the rule table
var (
	// FormatDeploymentID matches the short deployment identifier:
	// 1-16 characters, starts with a letter, alphanumeric or hyphen.
	FormatDeploymentID = newFormat("deployment identifier", `^[A-Za-z][A-Za-z0-9-]{0,15}$`)

	// FormatEmail matches an email address.
	FormatEmail = newFormat("email address", `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// FormatDomain matches a fully-qualified DNS domain name.
	FormatDomain = newFormat("domain name", `^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

	// FormatVpcID matches a VPC identifier: service prefix plus a
	// hexadecimal suffix of bounded length.
	FormatVpcID = newFormat("VPC identifier", `^vpc-[0-9a-f]{8,17}$`)

	// FormatVpceID matches a VPC endpoint identifier.
	FormatVpceID = newFormat("VPC endpoint identifier", `^vpce-[0-9a-f]{8,17}$`)

	// FormatArn matches a fully-qualified resource name with an embedded
	// region/account segment.
	FormatArn = newFormat("ARN", `^arn:aws[a-z0-9-]*:[a-z0-9-]+:[a-z0-9-]*:[0-9]{12}:.+$`)

	// FormatGuardrailID matches a guardrail identifier: fixed-length
	// uppercase alphanumeric.
	FormatGuardrailID = newFormat("guardrail identifier", `^[A-Z0-9]{12}$`)

	// FormatGuardrailVersion matches a numeric guardrail version or DRAFT.
	FormatGuardrailVersion = newFormat("guardrail version", `^(?:[0-9]+|DRAFT)$`)

	// FormatIndexID matches an external index identifier: fixed-length
	// uppercase alphanumeric.
	FormatIndexID = newFormat("index identifier", `^[A-Z0-9]{16}$`)

	// FormatModelID matches a model identifier such as
	// "anthropic.claude-sonnet:1".
	FormatModelID = newFormat("model identifier", `^[a-z0-9-]+\.[a-z0-9-]+(?::[0-9]+(?:\.[0-9]+)*)?$`)

	// FormatHTTPSURL matches an https URL.
	FormatHTTPSURL = newFormat("https URL", `^https://[^\s]+$`)

	// FormatIPv4 matches a dotted-quad IPv4 address.
	FormatIPv4 = newFormat("IPv4 address", `^(?:(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])\.){3}(?:25[0-5]|2[0-4][0-9]|1[0-9]{2}|[1-9]?[0-9])$`)

	// FormatRepositoryName matches a repository name.
	FormatRepositoryName = newFormat("repository name", `^[A-Za-z0-9._-]{1,100}$`)
)
