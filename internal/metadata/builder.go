package metadata

import (
	"errors"
	"fmt"
	"strings"

	"datamodel-generator/internal/field"
)

// ColumnType is the data type of a result-set column.
type ColumnType string

const (
	ColumnString  ColumnType = "string"
	ColumnNumber  ColumnType = "number"
	ColumnBoolean ColumnType = "boolean"
	ColumnDate    ColumnType = "date"
	ColumnPeriod  ColumnType = "period"
	ColumnObject  ColumnType = "object"
)

// LogicalType returns the logical object type for values of this column type.
func (t ColumnType) LogicalType() string {
	switch t {
	case ColumnString:
		return TypeString
	case ColumnNumber:
		return TypeNumber
	case ColumnBoolean:
		return TypeBoolean
	case ColumnDate:
		return TypeDate
	case ColumnPeriod:
		return TypePeriod
	default:
		return TypeObject
	}
}

// Column is one result-set column: an encoded field name plus its data type.
type Column struct {
	Name   string     `yaml:"name"`
	Type   ColumnType `yaml:"type,omitempty"`
	Length int        `yaml:"length,omitempty"`
}

// Property names that double as special-role markers.
const (
	nameField        = "Name"
	rowNumberField   = "RowNumber"
	hasChildrenField = "HasChildren"
	permissionsField = "Permissions"
)

// Builder aggregates result sets into a Collection. It is not safe for
// concurrent use; build one per model.
type Builder struct {
	coll      *Collection
	root      *Record
	main      string
	rowCounts []string
}

// NewBuilder creates a builder seeded with the root record.
func NewBuilder() *Builder {
	coll := NewCollection()

	return &Builder{
		coll: coll,
		root: coll.Ensure(RootTypeName),
	}
}

// Collection returns the collection built so far.
func (b *Builder) Collection() *Collection {
	return b.coll
}

// MainElement returns the property (or type, for hidden headers) marked Main,
// or "" when none is.
func (b *Builder) MainElement() string {
	return b.main
}

// SetMain overrides the main element annotation.
func (b *Builder) SetMain(name string) {
	b.main = name
}

// RowCounts returns the records that carry a RowCount column, in order.
func (b *Builder) RowCounts() []string {
	return append([]string(nil), b.rowCounts...)
}

type decodedColumn struct {
	column Column
	desc   field.Descriptor
}

// AddResultSet maps one result set. Column 0 is the header; all columns are
// decoded before anything is applied, so a malformed name rejects the whole set.
func (b *Builder) AddResultSet(columns []Column) error {
	if len(columns) == 0 {
		return errors.New("result set has no columns")
	}

	decoded := make([]decodedColumn, 0, len(columns))

	var errs []error

	for i, col := range columns {
		d, err := field.Decode(col.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("column %d: %w", i, err))
			continue
		}

		decoded = append(decoded, decodedColumn{column: col, desc: d})
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	header := decoded[0].desc
	if err := field.Validate(header); err != nil {
		return fmt.Errorf("header %q: %w", header.Raw(), err)
	}

	if header.Kind() == field.KindJson {
		b.addRootField(header, TypeJson)
		return nil
	}

	if header.TypeName() == "" {
		return fmt.Errorf("%w: header %q must name the row type", field.ErrConfiguration, header.Raw())
	}

	elem := b.coll.Ensure(header.TypeName())
	b.addRootField(header, b.objectTypeOf(header, elem))

	if header.IsMain() {
		if header.IsVisible() {
			b.main = header.PropertyName()
		} else {
			b.main = header.TypeName()
		}
	}

	for _, dc := range decoded[1:] {
		b.addColumn(elem, dc.desc, dc.column)
	}

	return nil
}

func (b *Builder) addRootField(header field.Descriptor, objectType string) {
	if !header.IsVisible() {
		return
	}

	b.root.AddField(FieldMeta{
		Name:       header.PropertyName(),
		ObjectType: objectType,
		IsLazy:     header.IsLazy(),
	})
}

// objectTypeOf marks rec according to the kind of d and returns the logical type
// of a property pointing at it.
func (b *Builder) objectTypeOf(d field.Descriptor, rec *Record) string {
	switch {
	case d.Kind().IsCollection():
		rec.IsArrayType = true
		return ArrayTypeName(rec.Name)
	case d.Kind() == field.KindGroup:
		rec.IsGroup = true
		return rec.Name
	default:
		return rec.Name
	}
}

func (b *Builder) addColumn(rec *Record, d field.Descriptor, col Column) {
	if d.IsComplex() {
		b.addComplexColumn(rec, d, col)
		return
	}

	if d.IsObjectLike() {
		if !d.IsVisible() || d.TypeName() == "" {
			return
		}

		nested := b.coll.Ensure(d.TypeName())
		rec.AddField(FieldMeta{
			Name:       d.PropertyName(),
			ObjectType: b.objectTypeOf(d, nested),
			IsLazy:     d.IsLazy(),
		})

		return
	}

	name := d.PropertyName()

	switch d.SpecRole() {
	case field.RoleRowCount:
		b.rowCounts = append(b.rowCounts, rec.Name)
		return
	case field.RoleParentId, field.RoleKey:
		return
	case field.RoleGroupMarker:
		rec.IsGroup = true
		return
	case field.RoleId:
		if name != "" {
			rec.Id = name
		}
	case field.RoleItems:
		if name != "" {
			rec.Items = name
		}
	}

	if name == "" {
		return
	}

	b.markNamedRole(rec, name)

	fm := FieldMeta{Name: name, IsLazy: d.IsLazy()}

	switch {
	case d.Kind() == field.KindJson || d.SpecRole() == field.RoleJson:
		fm.ObjectType = TypeJson
	case d.SpecRole() == field.RoleUtcDate:
		fm.ObjectType = TypeDate
	case d.SpecRole() == field.RoleRefId && d.TypeName() != "":
		fm.ObjectType = b.coll.Ensure(d.TypeName()).Name
	case d.SpecRole() == field.RoleItems && d.TypeName() != "":
		items := b.coll.Ensure(d.TypeName())
		items.IsArrayType = true
		fm.ObjectType = ArrayTypeName(items.Name)
	default:
		fm.ObjectType = col.Type.LogicalType()
		if col.Type == ColumnString {
			fm.Length = col.Length
		}
	}

	rec.AddField(fm)
}

// addComplexColumn walks a dotted name, creating one nested record per prefix
// ("Agent.Name" on TDocument declares TDocument.Agent as TDocumentAgent).
func (b *Builder) addComplexColumn(rec *Record, d field.Descriptor, col Column) {
	prefix, rest, _ := d.ComplexParts()
	current := rec

	for {
		if prefix == "" {
			return
		}

		nestedName := current.Name + prefix
		nested := b.coll.Ensure(nestedName)

		if !current.Fields.Has(prefix) {
			current.AddField(FieldMeta{Name: prefix, ObjectType: nestedName})
		}

		current = nested

		next, tail, more := strings.Cut(rest, field.ComplexSeparator)
		if !more {
			break
		}

		prefix, rest = next, tail
	}

	if rest == "" {
		return
	}

	b.addColumn(current, field.FromComplex(d, rest), col)
}

func (b *Builder) markNamedRole(rec *Record, name string) {
	switch name {
	case nameField:
		if rec.NameField == "" {
			rec.NameField = name
		}
	case rowNumberField:
		if rec.RowNumber == "" {
			rec.RowNumber = name
		}
	case hasChildrenField:
		if rec.HasChildren == "" {
			rec.HasChildren = name
		}
	case permissionsField:
		if rec.Permissions == "" {
			rec.Permissions = name
		}
	}
}
