// Package metadata holds the per-type shape description consumed by the model
// script compiler, and the Builder that aggregates decoded result-set columns
// into that description.
//
// A Collection is an ordered set of Records keyed by type name. Insertion order
// is part of the generated-code contract: it fixes declaration order, property
// order and the order of the constructor registry.
//
// # Result-set mapping
//
// The first column of every result set is a header naming the type of the rows
// and the root property they populate:
//
//	Documents!TDocument!Array   TRoot.Documents is a TDocumentArray
//	Document!TDocument!Object   TRoot.Document is a TDocument
//	!TDocument                  rows describe TDocument without a root property
//
// The remaining columns are fields of that type. See Builder.AddResultSet for
// how spec roles, nested objects and complex (dotted) names are mapped.
package metadata
