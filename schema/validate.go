package schema

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/0xalexb/skikt/manifest"
)

// ErrNilDocument is returned when Validate is given a nil document.
var ErrNilDocument = errors.New("nil document")

// Validate checks the document against every field rule, every list entry
// rule, and every refinement, in that order. All violations are collected
// before returning; the result aggregates one *FieldError per violation and
// can be unpacked with FieldErrors. A nil return means the document is
// valid.
func Validate(doc *manifest.Manifest) error {
	if doc == nil {
		return ErrNilDocument
	}

	var fieldErrs []*FieldError

	for _, rule := range Rules {
		fieldErrs = append(fieldErrs, checkRule(rule, doc)...)
	}

	for i, entry := range doc.Models {
		view := entryView{name: entry.Name, identifier: entry.ModelID, roleArn: entry.CrossAccountRoleArn}
		fieldErrs = append(fieldErrs, checkEntry(ModelEntryRules, "models", i, view)...)
	}

	for i, entry := range doc.ExternalIndexes {
		view := entryView{name: entry.Name, identifier: entry.IndexID, roleArn: entry.CrossAccountRoleArn}
		fieldErrs = append(fieldErrs, checkEntry(ExternalIndexEntryRules, "externalIndexes", i, view)...)
	}

	for _, refinement := range Refinements {
		fieldErrs = append(fieldErrs, refinement.Check(doc)...)
	}

	var combined error

	for _, fieldErr := range fieldErrs {
		combined = multierr.Append(combined, fieldErr)
	}

	return combined
}

func checkRule(rule FieldRule, doc *manifest.Manifest) []*FieldError {
	switch rule.Kind {
	case KindString:
		return checkStringRule(rule, doc)
	case KindInt:
		return checkIntRule(rule, doc)
	case KindStringList:
		return checkStringListRule(rule, doc)
	case KindBool:
		// Type correctness is enforced by the typed decode; a present bool
		// has nothing further to check.
		if rule.Required && rule.boolean(doc) == nil {
			return []*FieldError{{Path: rule.Path, Message: "required"}}
		}

		return nil
	default:
		return nil
	}
}

func checkStringRule(rule FieldRule, doc *manifest.Manifest) []*FieldError {
	value := rule.str(doc)

	absent := value == nil || (rule.EmptyMeansAbsent && *value == "")
	if absent {
		if rule.Required {
			return []*FieldError{{Path: rule.Path, Message: "required"}}
		}

		return nil
	}

	return checkStringValue(rule.Path, *value, rule.MinLen, rule.MaxLen, rule.Format, rule.StringEnum)
}

func checkIntRule(rule FieldRule, doc *manifest.Manifest) []*FieldError {
	value := rule.integer(doc)
	if value == nil {
		if rule.Required {
			return []*FieldError{{Path: rule.Path, Message: "required"}}
		}

		return nil
	}

	if len(rule.IntEnum) > 0 && !containsInt(rule.IntEnum, *value) {
		return []*FieldError{{
			Path:    rule.Path,
			Message: fmt.Sprintf("must be one of %v, got %d", rule.IntEnum, *value),
		}}
	}

	return nil
}

func checkStringListRule(rule FieldRule, doc *manifest.Manifest) []*FieldError {
	values := rule.stringList(doc)
	if values == nil {
		if rule.Required {
			return []*FieldError{{Path: rule.Path, Message: "required"}}
		}

		return nil
	}

	var errs []*FieldError

	for i, element := range values {
		path := fmt.Sprintf("%s[%d]", rule.Path, i)
		errs = append(errs, checkStringValue(path, element, rule.MinLen, rule.MaxLen, rule.Format, rule.StringEnum)...)
	}

	return errs
}

func checkEntry(rules []EntryRule, listPath string, index int, view entryView) []*FieldError {
	var errs []*FieldError

	for _, rule := range rules {
		path := fmt.Sprintf("%s[%d].%s", listPath, index, rule.Field)
		value := rule.value(view)

		// List entry fields are plain strings, so empty always reads as
		// absent here; the sentinel flag only documents which fields share
		// the merge engine's ARN convention.
		if value == "" {
			if rule.Required {
				errs = append(errs, &FieldError{Path: path, Message: "required"})
			}

			continue
		}

		errs = append(errs, checkStringValue(path, value, rule.MinLen, rule.MaxLen, rule.Format, nil)...)
	}

	return errs
}

func checkStringValue(path, value string, minLen, maxLen int, format *Format, enum []string) []*FieldError {
	var errs []*FieldError

	if minLen > 0 && len(value) < minLen {
		errs = append(errs, &FieldError{
			Path:    path,
			Message: fmt.Sprintf("must be at least %d characters", minLen),
		})
	}

	if maxLen > 0 && len(value) > maxLen {
		errs = append(errs, &FieldError{
			Path:    path,
			Message: fmt.Sprintf("must be at most %d characters", maxLen),
		})
	}

	if format != nil && !format.Match(value) {
		errs = append(errs, &FieldError{
			Path:    path,
			Message: fmt.Sprintf("must be a valid %s, got %q", format.Name, value),
		})
	}

	if len(enum) > 0 && !containsString(enum, value) {
		errs = append(errs, &FieldError{
			Path:    path,
			Message: fmt.Sprintf("must be one of %s, got %q", quoteJoin(enum), value),
		})
	}

	return errs
}

func containsInt(values []int, want int) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}

	return false
}

func containsString(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}

	return false
}

func quoteJoin(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, value := range values {
		quoted = append(quoted, fmt.Sprintf("%q", value))
	}

	return strings.Join(quoted, ", ")
}
