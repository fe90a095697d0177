// Package field decodes the delimiter-encoded field names used by result-set
// columns to describe where a value lands in the client object model.
//
// # Grammar
//
//	Name(!TypeName(!TypeSpec(!MapKey(:MapKey)*)?)?)?
//
// Segments are positional:
//
//   - Name is the property name. An empty name marks a hidden column; a dotted
//     name ("Agent.Name") marks a complex field that the caller expands.
//   - TypeName names the nested type. Its presence alone makes the field an Object.
//   - TypeSpec selects the structural kind (Array, Tree, Group, Map, ...) and, for
//     scalar, array and json kinds, the spec role (Id, ParentId, RowCount, ...).
//     The substrings "Lazy" and "Main" are modifiers that may be combined with any
//     structural token, e.g. "LazyArray" or "MainObject".
//   - MapKey lists the key fields of a map object and forces the MapObject kind.
//
// # Examples
//
//	"Name"                      scalar, visible
//	"!TDocument"                hidden, object of TDocument
//	"Documents!TDocument!Array" array of TDocument
//	"Id!!Id"                    scalar with the Id spec role
//	"Rows!TRow!LazyArray"       lazily loaded array
//	"Items!TItem!Map!Key:Kind"  map object keyed by Key and Kind
//
// Decoding is a pure function of the input string and the two vocabulary tables
// in vocabulary.go.
package field
