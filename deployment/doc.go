// Package deployment defines the fully-populated deployment configuration
// model consumed by provisioning. A SystemConfig is always complete: optional
// groups are present as zero values, never partially constructed. The base
// document is produced by an earlier setup step and handed to this engine as
// a value; this package carries no persistence logic.
package deployment
