// Package manifest models the user-authored override document and locates
// and parses it.
//
// A Manifest is a partial view over the deployment configuration: every
// field is a pointer (or nil-able slice), so "field omitted" and "field
// present with an empty value" stay distinguishable after parsing. That
// distinction is the core invariant of the resolution engine: nil means
// "do not touch", non-nil means "replace", including an explicit false or
// empty value.
//
// Locate finds the document by fixed priority: an explicit path from the
// SKIKT_MANIFEST variable, then deployment-manifest.yaml, then
// deployment-manifest.yml in the working directory. Absence of all
// candidates is a normal outcome, not an error.
package manifest
