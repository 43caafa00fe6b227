// Package config holds the few constants shared across the front end that
// aren't naturally owned by any single stage.
package config

// SourceFileExt is the canonical minimoe source extension.
const SourceFileExt = ".moe"

// SourceFileExtensions lists every extension cmd/minimoe accepts as source
// without printing an extension-mismatch warning.
var SourceFileExtensions = []string{".moe"}
