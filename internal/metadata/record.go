package metadata

// Logical object types understood by the client runtime.
const (
	TypeString  = "String"
	TypeNumber  = "Number"
	TypeBoolean = "Boolean"
	TypeDate    = "Date"
	TypePeriod  = "TPeriod"
	TypeObject  = "Object"
	TypeJson    = "Json"
)

// RootTypeName is the constructor name of the model root.
const RootTypeName = "TRoot"

// ArraySuffix is appended to an element type name to form its array wrapper.
const ArraySuffix = "Array"

// BuiltinTypes are logical object types that need no record of their own.
var BuiltinTypes = map[string]struct{}{
	TypeString:  {},
	TypeNumber:  {},
	TypeBoolean: {},
	TypeDate:    {},
	TypePeriod:  {},
	TypeObject:  {},
	TypeJson:    {},
}

// ArrayTypeName returns the wrapper constructor name of an element type.
func ArrayTypeName(elem string) string {
	return elem + ArraySuffix
}

// FieldMeta describes one declared property of a record.
type FieldMeta struct {
	// Name is the public property name.
	Name string `yaml:"name"`
	// ObjectType is the logical type: a builtin or a record/array type name.
	ObjectType string `yaml:"type"`
	// Length bounds String fields.
	Length int `yaml:"length,omitempty"`
	// IsLazy marks fields loaded on demand.
	IsLazy bool `yaml:"lazy,omitempty"`
}

// FieldList is an insertion-ordered set of fields keyed by name.
type FieldList struct {
	items []FieldMeta
	index map[string]int
}

// Set adds f, or replaces the field of the same name keeping its position.
func (l *FieldList) Set(f FieldMeta) {
	if l.index == nil {
		l.index = make(map[string]int)
	}

	if i, ok := l.index[f.Name]; ok {
		l.items[i] = f
		return
	}

	l.index[f.Name] = len(l.items)
	l.items = append(l.items, f)
}

// Get returns the field called name.
func (l *FieldList) Get(name string) (FieldMeta, bool) {
	i, ok := l.index[name]
	if !ok {
		return FieldMeta{}, false
	}

	return l.items[i], true
}

// Has reports whether a field called name exists.
func (l *FieldList) Has(name string) bool {
	_, ok := l.index[name]
	return ok
}

// Len returns the number of fields.
func (l *FieldList) Len() int {
	return len(l.items)
}

// All returns the fields in insertion order. The slice is a copy.
func (l *FieldList) All() []FieldMeta {
	return append([]FieldMeta(nil), l.items...)
}

// Names returns the field names in insertion order.
func (l *FieldList) Names() []string {
	res := make([]string, len(l.items))
	for i, f := range l.items {
		res[i] = f.Name
	}

	return res
}

// Record is the shape of one generated type.
type Record struct {
	// Name is the constructor name.
	Name string
	// IsArrayType marks records that are collection elements.
	IsArrayType bool

	// Fields naming special roles. Empty means "not set".
	Id          string
	NameField   string
	RowNumber   string
	HasChildren string
	Permissions string
	Items       string

	// IsGroup marks group-by records.
	IsGroup bool

	Fields FieldList
}

// NewRecord creates an empty record.
func NewRecord(name string) *Record {
	return &Record{Name: name}
}

// AddField sets a field, see FieldList.Set.
func (r *Record) AddField(f FieldMeta) {
	r.Fields.Set(f)
}

// LazyFields returns the names of lazy fields in declaration order.
func (r *Record) LazyFields() []string {
	var names []string

	for _, f := range r.Fields.items {
		if f.IsLazy {
			names = append(names, f.Name)
		}
	}

	return names
}

// RoleFields returns the special-role attributes that name a field, keyed by
// role label, in a fixed order.
func (r *Record) RoleFields() []RoleField {
	all := []RoleField{
		{Role: "id", Field: r.Id},
		{Role: "name", Field: r.NameField},
		{Role: "rowNo", Field: r.RowNumber},
		{Role: "hasChildren", Field: r.HasChildren},
		{Role: "permissions", Field: r.Permissions},
		{Role: "items", Field: r.Items},
	}

	res := all[:0]

	for _, rf := range all {
		if rf.Field != "" {
			res = append(res, rf)
		}
	}

	return res
}

// RoleField pairs a special role label with the field that plays it.
type RoleField struct {
	Role  string
	Field string
}
