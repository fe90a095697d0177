package source

import (
	"errors"
	"fmt"

	"datamodel-generator/internal/metadata"
	"datamodel-generator/internal/script"
)

// System keys added from builder annotations unless the document sets them.
const (
	MainKey     = "$main"
	RowCountKey = "$rowCount"
)

// Model is a document turned into compiler input.
type Model struct {
	Name string
	// Metadata is nil for empty models.
	Metadata *metadata.Collection
	// System is nil when the document has no system block.
	System *script.SystemValues
	// MainElement is the element annotated as main, if any.
	MainElement string
	// RowCounts lists records carrying a RowCount column.
	RowCounts []string
}

// IsEmpty reports whether the document describes no metadata.
func (d *Document) IsEmpty() bool {
	return d.Empty || (len(d.ResultSets) == 0 && len(d.Records) == 0)
}

// Build maps result sets and records into a metadata collection and converts
// system values. Errors from all result sets are reported together.
func (d *Document) Build() (*Model, error) {
	m := &Model{Name: d.Model}

	sys, err := d.systemValues()
	if err != nil {
		return nil, err
	}

	m.System = sys

	if d.IsEmpty() {
		return m, nil
	}

	b := metadata.NewBuilder()

	var errs []error

	for i, rs := range d.ResultSets {
		if err := b.AddResultSet(rs.Columns); err != nil {
			errs = append(errs, fmt.Errorf("result set %d: %w", i, err))
		}
	}

	for _, rd := range d.Records {
		if err := applyRecord(b.Collection(), rd); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if d.Main != "" {
		b.SetMain(d.Main)
	}

	m.Metadata = b.Collection()
	m.MainElement = b.MainElement()
	m.RowCounts = b.RowCounts()
	m.System = annotate(m.System, m.MainElement, m.RowCounts)

	return m, nil
}

// annotate reports the main element and the paged records to the client
// through the system values.
func annotate(sys *script.SystemValues, main string, rowCounts []string) *script.SystemValues {
	if main == "" && len(rowCounts) == 0 {
		return sys
	}

	if sys == nil {
		sys = script.NewSystemValues()
	}

	if _, ok := sys.Get(MainKey); !ok && main != "" {
		sys.Set(MainKey, script.Text(main))
	}

	if _, ok := sys.Get(RowCountKey); !ok && len(rowCounts) > 0 {
		sys.Set(RowCountKey, script.Structured{V: rowCounts})
	}

	return sys
}

func (d *Document) systemValues() (*script.SystemValues, error) {
	if !d.System.Present {
		return nil, nil
	}

	sys := script.NewSystemValues()

	for _, e := range d.System.Entries {
		v, err := script.ValueOf(e.Value)
		if err != nil {
			return nil, fmt.Errorf("system value %q: %w", e.Key, err)
		}

		sys.Set(e.Key, v)
	}

	return sys, nil
}

// applyRecord merges an explicit definition into the collection. Set
// attributes override, fields are added in order.
func applyRecord(c *metadata.Collection, rd RecordDef) error {
	if rd.Name == "" {
		return errors.New("record definition without a name")
	}

	r := c.Ensure(rd.Name)
	r.IsArrayType = r.IsArrayType || rd.Array
	r.IsGroup = r.IsGroup || rd.Group

	setIf(&r.Id, rd.Id)
	setIf(&r.NameField, rd.NameField)
	setIf(&r.RowNumber, rd.RowNumber)
	setIf(&r.HasChildren, rd.HasChildren)
	setIf(&r.Permissions, rd.Permissions)
	setIf(&r.Items, rd.Items)

	for _, f := range rd.Fields {
		if f.Name == "" {
			return fmt.Errorf("record %s: field without a name", rd.Name)
		}

		r.AddField(f)
	}

	return nil
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
