package metadata

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datamodel-generator/internal/field"
)

func fieldNames(r *Record) []string {
	var names []string
	for _, f := range r.Fields.All() {
		names = append(names, f.Name)
	}

	return names
}

func mustGet(t *testing.T, c *Collection, name string) *Record {
	t.Helper()

	r, ok := c.Get(name)
	require.True(t, ok, "record %s not found in %v", name, c.Names())

	return r
}

func TestBuilder_ArrayResultSet(t *testing.T) {
	b := NewBuilder()

	err := b.AddResultSet([]Column{
		{Name: "Documents!TDocument!Array"},
		{Name: "Id!!Id", Type: ColumnNumber},
		{Name: "Name", Type: ColumnString, Length: 255},
		{Name: "Date!!UtcDate", Type: ColumnDate},
		{Name: "Agent!TAgent!RefId", Type: ColumnNumber},
		{Name: "Rows!TRow!LazyArray"},
		{Name: "!!RowCount", Type: ColumnNumber},
	})
	require.NoError(t, err)

	c := b.Collection()
	assert.Equal(t, []string{"TRoot", "TDocument", "TAgent", "TRow"}, c.Names())

	root := mustGet(t, c, "TRoot")
	docs, ok := root.Fields.Get("Documents")
	require.True(t, ok)
	assert.Equal(t, "TDocumentArray", docs.ObjectType)

	doc := mustGet(t, c, "TDocument")
	assert.True(t, doc.IsArrayType, spew.Sdump(doc))
	assert.Equal(t, "Id", doc.Id)
	assert.Equal(t, "Name", doc.NameField)
	assert.Equal(t, []string{"Id", "Name", "Date", "Agent", "Rows"}, fieldNames(doc))

	name, _ := doc.Fields.Get("Name")
	assert.Equal(t, FieldMeta{Name: "Name", ObjectType: TypeString, Length: 255}, name)

	date, _ := doc.Fields.Get("Date")
	assert.Equal(t, TypeDate, date.ObjectType)

	agent, _ := doc.Fields.Get("Agent")
	assert.Equal(t, "TAgent", agent.ObjectType)

	rows, _ := doc.Fields.Get("Rows")
	assert.Equal(t, "TRowArray", rows.ObjectType)
	assert.True(t, rows.IsLazy)
	assert.True(t, mustGet(t, c, "TRow").IsArrayType)

	assert.Equal(t, []string{"TDocument"}, b.RowCounts())
	assert.Equal(t, []string{"Rows"}, doc.LazyFields())
}

func TestBuilder_ObjectAndHiddenHeaders(t *testing.T) {
	b := NewBuilder()

	require.NoError(t, b.AddResultSet([]Column{
		{Name: "Document!TDocument!MainObject"},
		{Name: "Id!!Id", Type: ColumnNumber},
	}))
	require.NoError(t, b.AddResultSet([]Column{
		{Name: "!TAgent"},
		{Name: "Id!!Id", Type: ColumnNumber},
		{Name: "Code", Type: ColumnString, Length: 16},
	}))

	c := b.Collection()
	root := mustGet(t, c, "TRoot")
	assert.Equal(t, []string{"Document"}, fieldNames(root))
	assert.Equal(t, "Document", b.MainElement())

	doc := mustGet(t, c, "TDocument")
	assert.False(t, doc.IsArrayType)

	agent := mustGet(t, c, "TAgent")
	assert.Equal(t, []string{"Id", "Code"}, fieldNames(agent))

	b.SetMain("Other")
	assert.Equal(t, "Other", b.MainElement())
}

func TestBuilder_ComplexColumns(t *testing.T) {
	b := NewBuilder()

	require.NoError(t, b.AddResultSet([]Column{
		{Name: "Document!TDocument!Object"},
		{Name: "Agent.Id!!Id", Type: ColumnNumber},
		{Name: "Agent.Name", Type: ColumnString, Length: 100},
		{Name: "Agent.Address.City", Type: ColumnString, Length: 50},
	}))

	c := b.Collection()
	assert.Equal(t, []string{"TRoot", "TDocument", "TDocumentAgent", "TDocumentAgentAddress"}, c.Names())

	doc := mustGet(t, c, "TDocument")
	agentField, _ := doc.Fields.Get("Agent")
	assert.Equal(t, "TDocumentAgent", agentField.ObjectType)

	agent := mustGet(t, c, "TDocumentAgent")
	assert.Equal(t, []string{"Id", "Name", "Address"}, fieldNames(agent))
	assert.Equal(t, "Id", agent.Id)

	addr := mustGet(t, c, "TDocumentAgentAddress")
	assert.Equal(t, []string{"City"}, fieldNames(addr))
}

func TestBuilder_TreeGroupAndJson(t *testing.T) {
	b := NewBuilder()

	require.NoError(t, b.AddResultSet([]Column{
		{Name: "Folders!TFolder!Tree"},
		{Name: "Id!!Id", Type: ColumnNumber},
		{Name: "!!ParentId", Type: ColumnNumber},
		{Name: "HasChildren", Type: ColumnBoolean},
		{Name: "SubItems!TFolder!Items"},
	}))
	require.NoError(t, b.AddResultSet([]Column{
		{Name: "Groups!TGroup!Group"},
		{Name: "!!GroupMarker", Type: ColumnNumber},
		{Name: "Total", Type: ColumnNumber},
	}))
	require.NoError(t, b.AddResultSet([]Column{
		{Name: "Settings!!Json"},
	}))

	c := b.Collection()

	folder := mustGet(t, c, "TFolder")
	assert.True(t, folder.IsArrayType)
	assert.Equal(t, "HasChildren", folder.HasChildren)
	assert.Equal(t, "SubItems", folder.Items)
	assert.Equal(t, []string{"Id", "HasChildren", "SubItems"}, fieldNames(folder))

	sub, _ := folder.Fields.Get("SubItems")
	assert.Equal(t, "TFolderArray", sub.ObjectType)

	group := mustGet(t, c, "TGroup")
	assert.True(t, group.IsGroup)
	assert.Equal(t, []string{"Total"}, fieldNames(group))

	root := mustGet(t, c, "TRoot")
	settings, ok := root.Fields.Get("Settings")
	require.True(t, ok)
	assert.Equal(t, TypeJson, settings.ObjectType)
}

func TestBuilder_RejectsWholeResultSet(t *testing.T) {
	b := NewBuilder()

	err := b.AddResultSet([]Column{
		{Name: "Documents!TDocument!Array"},
		{Name: "Id!!Id"},
		{Name: "Parent"},
		{Name: "Foo!Id"},
	})
	require.ErrorIs(t, err, field.ErrDecoding)
	assert.Contains(t, err.Error(), "column 2")
	assert.Contains(t, err.Error(), "column 3")

	// Nothing from the rejected set was applied.
	assert.Equal(t, []string{"TRoot"}, b.Collection().Names())
}

func TestBuilder_HeaderErrors(t *testing.T) {
	b := NewBuilder()

	err := b.AddResultSet(nil)
	require.Error(t, err)

	err = b.AddResultSet([]Column{{Name: "Documents"}})
	require.ErrorIs(t, err, field.ErrConfiguration)

	err = b.AddResultSet([]Column{{Name: "!!Id"}})
	require.ErrorIs(t, err, field.ErrConfiguration)
}

func TestColumnType_LogicalType(t *testing.T) {
	assert.Equal(t, TypeString, ColumnString.LogicalType())
	assert.Equal(t, TypeNumber, ColumnNumber.LogicalType())
	assert.Equal(t, TypeBoolean, ColumnBoolean.LogicalType())
	assert.Equal(t, TypeDate, ColumnDate.LogicalType())
	assert.Equal(t, TypePeriod, ColumnPeriod.LogicalType())
	assert.Equal(t, TypeObject, ColumnType("").LogicalType())
}

func TestBuilder_MapKeysAreHidden(t *testing.T) {
	b := NewBuilder()

	require.NoError(t, b.AddResultSet([]Column{
		{Name: "Prices!TPrice!Map"},
		{Name: "Code!!Key", Type: ColumnString, Length: 16},
		{Name: "Value", Type: ColumnNumber},
	}))

	price, ok := b.Collection().Get("TPrice")
	require.True(t, ok)
	assert.False(t, price.Fields.Has("Code"))
	assert.True(t, price.Fields.Has("Value"))
	assert.False(t, price.IsArrayType)
}

func TestBuilder_ComplexColumnEmptyParts(t *testing.T) {
	b := NewBuilder()

	require.NoError(t, b.AddResultSet([]Column{
		{Name: "Document!TDocument!Object"},
		{Name: ".Name", Type: ColumnString, Length: 10},
		{Name: "Agent.", Type: ColumnString, Length: 10},
		{Name: "Agent..Code", Type: ColumnString, Length: 10},
		{Name: "Rows!TRow!Tree"},
	}))

	doc := mustGet(t, b.Collection(), "TDocument")
	assert.Equal(t, []string{"Agent", "Rows"}, fieldNames(doc))
	assert.Empty(t, fieldNames(mustGet(t, b.Collection(), "TDocumentAgent")))

	rows, _ := doc.Fields.Get("Rows")
	assert.Equal(t, "TRowArray", rows.ObjectType)
	assert.True(t, mustGet(t, b.Collection(), "TRow").IsArrayType)
}
