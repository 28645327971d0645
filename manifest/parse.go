package manifest

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrParse is returned when the document is not well-formed YAML or
// contains unrecognized fields.
var ErrParse = errors.New("parse error")

// Parse parses an override document. Decoding is strict: unknown fields
// and duplicate keys are rejected so an operator typo cannot silently turn
// into "field omitted".
func Parse(data []byte) (*Manifest, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var doc Manifest

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &doc, nil
}
