// Package catalog holds the AFLUX keyword registry data: one descriptor per
// searchable field, extracted from the upstream AFLOW keyword declarations
// and embedded as YAML.
//
// The catalog is pure data. It records, per keyword, the declared value
// kind (number, text, list-of-numbers, list-of-strings or none), the unit
// string, the inclusion status (mandatory keywords are returned by every
// search; optional and conditional ones must be requested), and the
// human-readable title and description used by the CLI.
//
// Loading is lazy and idempotent: the embedded document is parsed exactly
// once behind a sync.Once and every caller shares the same immutable slice.
// Structural integrity beyond what the YAML decoder enforces (allowed kinds
// and statuses, name uniqueness, name syntax) is specified in schema.cue
// and checked by Vet.
package catalog
