// Package skikt resolves the final deployment configuration for a cloud
// application from layered sources: a fully-populated base configuration
// supplied by the caller and an optional user-authored override document
// located on the filesystem.
//
// Resolution is a one-way pipeline: locate the override document, parse it,
// validate it against the declarative schema, and merge it onto a deep copy
// of the base configuration. Validation is all-or-nothing: a partially
// valid override is never applied, and every violation is reported in one
// pass. The merge emits an ordered change log describing exactly what the
// override changed.
//
// Each Resolve call is a pure function of its inputs plus a single
// filesystem read; there is no shared mutable state, so concurrent calls
// need no coordination.
//
// The subpackages mirror the pipeline:
//
//   - deployment: the SystemConfig model
//   - manifest: override document model, locator, and strict YAML parsing
//   - schema: declarative field rules, refinements, exhaustive validation
//   - merge: policy-driven merge engine and change records
//   - logging: slog construction shared by the CLI and Fx integration
//
// NewModule exposes the pipeline as an Fx module for applications composed
// with go.uber.org/fx.
package skikt
