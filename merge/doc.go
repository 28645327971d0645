// Package merge applies a validated override document onto a base
// deployment configuration.
//
// The merge is driven by an ordered plan: root scalars first, then settings
// groups in declaration order, then list-valued fields. Each plan step
// carries one of three policies (field-by-field group merge, atomic group
// replacement, or wholesale list replacement), so the policy per group is
// data, not per-field code paths.
//
// The base configuration is never mutated; Merge works on a deep copy.
// Every applied override emits a ChangeRecord, including no-op overrides
// where the new value equals the old one: presence in the override document
// is itself meaningful signal to operators.
package merge
