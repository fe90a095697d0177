// Package ingest holds the tabular data file populated by external readers and
// the XML reader that fills it. Field names met while reading are the encoded
// names understood by package field.
package ingest

import (
	"errors"
	"fmt"

	"datamodel-generator/internal/field"
)

// DataFile is a set of records sharing one field index.
type DataFile struct {
	fields  []string
	index   map[string]int
	records []*Record
}

// NewDataFile creates an empty data file.
func NewDataFile() *DataFile {
	return &DataFile{index: make(map[string]int)}
}

// CreateRecord appends an empty record.
func (f *DataFile) CreateRecord() *Record {
	r := &Record{file: f}
	f.records = append(f.records, r)

	return r
}

// GetOrCreateField returns the index of the named field, registering it on
// first use.
func (f *DataFile) GetOrCreateField(name string) int {
	if ix, ok := f.index[name]; ok {
		return ix
	}

	ix := len(f.fields)
	f.fields = append(f.fields, name)
	f.index[name] = ix

	return ix
}

// Fields returns the field names in registration order.
func (f *DataFile) Fields() []string {
	return append([]string(nil), f.fields...)
}

// Records returns the records in creation order.
func (f *DataFile) Records() []*Record {
	return append([]*Record(nil), f.records...)
}

// Descriptors decodes every field name. All decoding failures are reported.
func (f *DataFile) Descriptors() ([]field.Descriptor, error) {
	res := make([]field.Descriptor, 0, len(f.fields))

	var errs []error

	for _, name := range f.fields {
		d, err := field.Decode(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		res = append(res, d)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return res, nil
}

// Record is one row of a data file.
type Record struct {
	file   *DataFile
	values []string
	set    []bool
}

// SetFieldValueString stores the textual value of field ix. name is the field
// name the index was created for.
func (r *Record) SetFieldValueString(ix int, name, value string) error {
	if ix < 0 || ix >= len(r.file.fields) || r.file.fields[ix] != name {
		return fmt.Errorf("field index %d does not belong to %q", ix, name)
	}

	for len(r.values) <= ix {
		r.values = append(r.values, "")
		r.set = append(r.set, false)
	}

	r.values[ix] = value
	r.set[ix] = true

	return nil
}

// Value returns the value of field ix.
func (r *Record) Value(ix int) (string, bool) {
	if ix < 0 || ix >= len(r.values) || !r.set[ix] {
		return "", false
	}

	return r.values[ix], true
}

// ValueOf returns the value of the named field.
func (r *Record) ValueOf(name string) (string, bool) {
	ix, ok := r.file.index[name]
	if !ok {
		return "", false
	}

	return r.Value(ix)
}
