package ingest

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Element depths of the expected document shape:
//
//	<Rows>                      1
//	  <Row Attr="value">        2  one record, attributes are fields
//	    <Field>text</Field>     3  one field value
const (
	recordLevel = 2
	valueLevel  = 3
)

// XMLReader fills a DataFile from an XML document.
type XMLReader struct {
	file *DataFile
}

// NewXMLReader creates a reader appending to file.
func NewXMLReader(file *DataFile) *XMLReader {
	return &XMLReader{file: file}
}

// Read consumes the document and returns the populated data file. Elements
// deeper than the value level are ignored. Value elements without text, or
// with child elements, set no value.
func (x *XMLReader) Read(r io.Reader) (*DataFile, error) {
	dec := xml.NewDecoder(r)

	var (
		level   int
		current *Record
		name    string
		text    strings.Builder
		hasText bool
		nested  bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			level++

			switch level {
			case recordLevel:
				current = x.file.CreateRecord()
				for _, attr := range t.Attr {
					if err := x.setValue(current, attr.Name.Local, attr.Value); err != nil {
						return nil, err
					}
				}
			case valueLevel:
				name = t.Name.Local
				text.Reset()
				hasText = false
				nested = false
			default:
				if level > valueLevel {
					nested = true
				}
			}
		case xml.CharData:
			if level == valueLevel {
				text.Write(t)
				hasText = true
			}
		case xml.EndElement:
			if level == valueLevel && current != nil && hasText && !nested {
				if err := x.setValue(current, name, text.String()); err != nil {
					return nil, err
				}
			}

			level--
		}
	}

	return x.file, nil
}

func (x *XMLReader) setValue(rec *Record, name, value string) error {
	ix := x.file.GetOrCreateField(name)
	return rec.SetFieldValueString(ix, name, value)
}
