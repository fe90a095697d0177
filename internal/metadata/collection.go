package metadata

import (
	"errors"
	"fmt"
)

// Collection is an insertion-ordered mapping from type name to Record.
type Collection struct {
	order   []string
	records map[string]*Record
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{records: make(map[string]*Record)}
}

// Add appends r. Adding a second record with the same name is an error.
func (c *Collection) Add(r *Record) error {
	if r == nil || r.Name == "" {
		return errors.New("record without a name")
	}

	if _, ok := c.records[r.Name]; ok {
		return fmt.Errorf("duplicate record %q", r.Name)
	}

	c.order = append(c.order, r.Name)
	c.records[r.Name] = r

	return nil
}

// Ensure returns the record called name, appending an empty one if needed.
func (c *Collection) Ensure(name string) *Record {
	if r, ok := c.records[name]; ok {
		return r
	}

	r := NewRecord(name)
	c.order = append(c.order, name)
	c.records[name] = r

	return r
}

// Get returns the record called name.
func (c *Collection) Get(name string) (*Record, bool) {
	r, ok := c.records[name]
	return r, ok
}

// Has reports whether a record called name exists.
func (c *Collection) Has(name string) bool {
	_, ok := c.records[name]
	return ok
}

// Names returns type names in insertion order.
func (c *Collection) Names() []string {
	return append([]string(nil), c.order...)
}

// Each calls fn for every record in insertion order and stops at the first
// error.
func (c *Collection) Each(fn func(*Record) error) error {
	for _, name := range c.order {
		if err := fn(c.records[name]); err != nil {
			return err
		}
	}

	return nil
}

// typeNames lists every name IsKnownType accepts, builtins last.
func (c *Collection) typeNames() []string {
	res := make([]string, 0, 2*len(c.order)+len(BuiltinTypes))

	for _, name := range c.order {
		res = append(res, name)
		if c.records[name].IsArrayType {
			res = append(res, ArrayTypeName(name))
		}
	}

	for name := range BuiltinTypes {
		res = append(res, name)
	}

	return res
}

// Records returns records in insertion order.
func (c *Collection) Records() []*Record {
	res := make([]*Record, 0, len(c.order))
	for _, name := range c.order {
		res = append(res, c.records[name])
	}

	return res
}

// Len returns the number of records.
func (c *Collection) Len() int {
	return len(c.order)
}

// IsKnownType reports whether name resolves to a builtin, a record or the
// array wrapper of an array record.
func (c *Collection) IsKnownType(name string) bool {
	if _, ok := BuiltinTypes[name]; ok {
		return true
	}

	if c.Has(name) {
		return true
	}

	for _, r := range c.records {
		if r.IsArrayType && ArrayTypeName(r.Name) == name {
			return true
		}
	}

	return false
}
