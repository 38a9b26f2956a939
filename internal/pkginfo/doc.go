// Package pkginfo parses the per-package metadata files found in the
// packageinfo directory of an installed package. The format is line-oriented
// "key: value" text with indented continuation lines for the file list. It is
// close to YAML but not YAML, so it is read with a small dedicated parser that
// never rejects input: malformed fields fall back to documented defaults.
//
// The package also models the well-known public package numbers and can
// validate a parsed record against an embedded JSON schema describing an
// installable package.
package pkginfo
