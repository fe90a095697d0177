package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invoiceYAML = `
model: Invoice
system:
  ReadOnly: false
resultSets:
  - columns:
      - name: Document!TDocument!Object
      - {name: "Id!!Id", type: number}
      - {name: Name, type: string, length: 100}
`

const brokenYAML = `
resultSets:
  - columns:
      - name: Document!TDocument!Object
records:
  - name: TDocument
    fields:
      - {name: Agent}
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0o600))

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDecode(t *testing.T) {
	out, err := run(t, "decode", "Rows!TRow!LazyArray", "Id!!Id")
	require.NoError(t, err)
	assert.Contains(t, out, "Rows (Array of TRow, lazy)")
	assert.Contains(t, out, "Id (Scalar, role Id)")

	out, err = run(t, "decode", "X!Key")
	require.Error(t, err)
	assert.Contains(t, out, "error:")
}

func TestDecode_XML(t *testing.T) {
	path := writeSource(t, "rows.xml", `<Rows><Row Id="1"><Name>a</Name></Row></Rows>`)

	out, err := run(t, "decode", "--xml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Name (Scalar)")
}

func TestCheck(t *testing.T) {
	good := writeSource(t, "invoice.yaml", invoiceYAML)

	out, err := run(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (2 types)")

	bad := writeSource(t, "broken.yaml", brokenYAML)

	out, err = run(t, "check", bad)
	require.Error(t, err)
	assert.Contains(t, out, "missing_object_type")
}

func TestGen(t *testing.T) {
	src := writeSource(t, "invoice.yaml", invoiceYAML)
	outDir := t.TempDir()

	_, err := run(t, "gen", "--out", outDir, src)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outDir, "Invoice.model.js"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "const ctors = {TRoot, TDocument};")
	assert.Contains(t, string(content), "cmn.setModelInfo(root, {ReadOnly: false}, rawData);")
}

func TestGen_DryRunKeepsOrder(t *testing.T) {
	a := writeSource(t, "a.yaml", "model: A\nempty: true\n")
	b := writeSource(t, "b.yaml", invoiceYAML)

	out, err := run(t, "gen", "--dry-run", a, b)
	require.NoError(t, err)

	ia := bytes.Index([]byte(out), []byte("// A.model.js"))
	ib := bytes.Index([]byte(out), []byte("// Invoice.model.js"))
	require.GreaterOrEqual(t, ia, 0)
	require.Greater(t, ib, ia)
}

func TestGen_Errors(t *testing.T) {
	bad := writeSource(t, "broken.yaml", brokenYAML)

	_, err := run(t, "gen", "--dry-run", bad)
	require.Error(t, err)

	src := writeSource(t, "invoice.yaml", invoiceYAML)

	_, err = run(t, "gen", "--dry-run", "--date-format", "rfc", src)
	require.Error(t, err)
}
