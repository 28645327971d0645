// Package schema validates override documents field by field.
//
// The recognized fields are described by an ordered, declarative rule table
// (Rules, ModelEntryRules, ExternalIndexEntryRules) covering primitive kind,
// optionality, length and numeric bounds, format matchers, and enumerated
// sets. Cross-field constraints are expressed as named refinements built
// from a small set of composable constructors and evaluated only after
// every primitive check has run.
//
// Validate never short-circuits: all violations are collected and returned
// as one aggregated error so an operator can fix a batch of mistakes in a
// single pass. FieldErrors unpacks the aggregate into the ordered list of
// (dotted path, message) pairs; ordering follows document traversal order,
// with refinement failures after primitive failures.
package schema
