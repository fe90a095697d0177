// Package source loads model source documents: the YAML description of one
// model's result sets, explicit records and system values.
//
// # Schema Overview
//
//	version: "1"
//	model: Document            # defaults to the file name
//	system:                    # order is kept; values typed by their YAML tag
//	  ReadOnly: true
//	  Title: Invoice
//	  Created: 2024-01-02T03:04:05Z
//	  Filter: {period: month}
//	resultSets:                # encoded column names, see package field
//	  - columns:
//	      - name: Documents!TDocument!Array
//	      - {name: "Id!!Id", type: number}
//	      - {name: Name, type: string, length: 255}
//	records:                   # explicit records, merged after result sets
//	  - name: TDocument
//	    nameField: Name
//	    fields:
//	      - {name: Period, type: TPeriod}
//
// A document with neither result sets nor records, or with "empty: true",
// compiles to the empty-model skeleton.
package source
