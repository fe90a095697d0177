package script

import (
	"strings"
	"text/template"
)

// The object literals of the script make the default "{{" delimiters awkward.
var modelTemplate = template.Must(template.New("model").
	Delims("[[", "]]").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(`function modelData(template, data) {
	const cmn = require('std:datamodel');
[[range .Types -]]
function [[.Name]](source, path, parent) {
	cmn.createObject(this, source, path, parent);
}
cmn.defineObject([[.Name]], {props: {[[join .Props ","]]}[[if .Special]],
[[join .Special ", "]][[end]]}, [[.IsArray]]);
[[if .IsArray -]]
function [[.ArrayName]](source, path, parent) {
	return cmn.createArray(source, path, [[.Name]], [[.ArrayName]], parent);
}
[[end]]
[[end -]]
const ctors = {[[join .Registry ", "]]};
	cmn.implementRoot([[.Root]], template, ctors);
	let root = new [[.Root]](data);
[[if .HasSystem]]	cmn.setModelInfo(root, {[[join .System ", "]]}, rawData);
[[end]]
	return root;
}
`))

// modelView is the template input for one compilation.
type modelView struct {
	Root      string
	Types     []typeView
	Registry  []string
	HasSystem bool
	System    []string
}

// typeView is the template input for one record.
type typeView struct {
	Name      string
	ArrayName string
	IsArray   bool
	// Props are "\n'name':type" entries.
	Props []string
	// Special are "$key: value" entries.
	Special []string
}
