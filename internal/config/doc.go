// Package config persists the grid's column layout as an opaque TOML
// blob: per-column visibility, the column order sequence, and
// per-column widths. Save and load are a lossless round trip,
// including flex widths.
//
// Decoding is strict. Unknown keys are a construction-time caller bug
// and fail immediately rather than being silently dropped.
package config
