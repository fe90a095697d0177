// Package match finds near-miss names for diagnostics, e.g. a field type that
// differs from a declared record name by a typo.
//
// Names are compared case-insensitively by edit distance. A suggestion is only
// made when exactly one candidate is closest and similar enough.
package match
