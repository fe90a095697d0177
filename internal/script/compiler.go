package script

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"datamodel-generator/internal/field"
	"datamodel-generator/internal/metadata"
)

// FileSuffix is appended to the model name to form the output file name.
const FileSuffix = ".model.js"

// Fixed property type expressions.
const (
	periodTypeExpr = "{type: uPeriod.constructor}"
)

// GeneratedSource is the compiled script of one model.
type GeneratedSource struct {
	// Model is the model name passed to Compile.
	Model string
	// Filename is the suggested output file name.
	Filename string
	// Content is the script text.
	Content []byte
}

// Text returns the script as a string.
func (g *GeneratedSource) Text() string {
	return string(g.Content)
}

// Compiler turns metadata collections into model scripts.
type Compiler struct {
	dates      DateFormatter
	serializer Serializer
	logger     *zap.Logger
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithDateFormatter sets the capability used for DateTime system values.
func WithDateFormatter(f DateFormatter) Option {
	return func(c *Compiler) { c.dates = f }
}

// WithSerializer sets the capability used for Structured system values.
func WithSerializer(s Serializer) Option {
	return func(c *Compiler) { c.serializer = s }
}

// WithLogger sets the logger used for debug events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Compiler) { c.logger = l }
}

// NewCompiler creates a Compiler. Defaults: MSDateFormatter, JSONSerializer and
// a no-op logger.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		dates:      MSDateFormatter{},
		serializer: JSONSerializer{},
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile emits the model script for meta. A nil meta yields the empty-model
// skeleton; a nil sys omits the setModelInfo call.
func (c *Compiler) Compile(modelName string, sys *SystemValues, meta *metadata.Collection) (*GeneratedSource, error) {
	if meta == nil {
		c.logger.Debug("compiling empty model", zap.String("model", modelName))
		return c.CompileEmpty(modelName)
	}

	view := &modelView{Root: metadata.RootTypeName}

	for _, r := range meta.Records() {
		tv, err := c.typeView(r)
		if err != nil {
			return nil, err
		}

		view.Types = append(view.Types, tv)
		view.Registry = append(view.Registry, r.Name)

		if r.IsArrayType {
			view.Registry = append(view.Registry, tv.ArrayName)
		}

		c.logger.Debug("compiled type",
			zap.String("model", modelName),
			zap.String("type", r.Name),
			zap.Int("fields", r.Fields.Len()),
			zap.Bool("array", r.IsArrayType))
	}

	if sys != nil {
		entries, err := c.systemEntries(sys)
		if err != nil {
			return nil, err
		}

		view.HasSystem = true
		view.System = entries
	}

	return c.render(modelName, view)
}

// CompileEmpty emits the skeleton used when a model has no metadata: a TRoot
// without properties, a registry holding only TRoot and an empty system-info
// payload.
func (c *Compiler) CompileEmpty(modelName string) (*GeneratedSource, error) {
	return c.render(modelName, &modelView{
		Root:      metadata.RootTypeName,
		Types:     []typeView{{Name: metadata.RootTypeName}},
		Registry:  []string{metadata.RootTypeName},
		HasSystem: true,
	})
}

func (c *Compiler) render(modelName string, view *modelView) (*GeneratedSource, error) {
	var buf bytes.Buffer
	if err := modelTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return &GeneratedSource{
		Model:    modelName,
		Filename: Filename(modelName),
		Content:  buf.Bytes(),
	}, nil
}

// Filename returns the output file name of a model.
func Filename(modelName string) string {
	if modelName == "" {
		return "model.js"
	}

	return modelName + FileSuffix
}

func (c *Compiler) typeView(r *metadata.Record) (typeView, error) {
	tv := typeView{
		Name:    r.Name,
		IsArray: r.IsArrayType,
	}

	if r.IsArrayType {
		tv.ArrayName = metadata.ArrayTypeName(r.Name)
	}

	for _, f := range r.Fields.All() {
		expr, err := propertyType(r.Name, f)
		if err != nil {
			return typeView{}, err
		}

		tv.Props = append(tv.Props, "\n"+quote(f.Name)+":"+expr)
	}

	tv.Special = specialProperties(r)

	return tv, nil
}

// propertyType resolves the property-type expression of a field.
func propertyType(typeName string, f metadata.FieldMeta) (string, error) {
	switch f.ObjectType {
	case "":
		return "", fmt.Errorf("%w: object type for '%s.%s' not defined", field.ErrConfiguration, typeName, f.Name)
	case metadata.TypeString:
		return "{type:String, len:" + strconv.Itoa(f.Length) + "}", nil
	case metadata.TypePeriod:
		return periodTypeExpr, nil
	default:
		return f.ObjectType, nil
	}
}

// specialProperties renders the $-prefixed entries in their fixed order.
func specialProperties(r *metadata.Record) []string {
	var res []string

	for _, rf := range r.RoleFields() {
		res = append(res, "$"+rf.Role+": "+quote(rf.Field))
	}

	if r.IsGroup {
		res = append(res, "$group: true")
	}

	if lazy := r.LazyFields(); len(lazy) > 0 {
		quoted := make([]string, len(lazy))
		for i, name := range lazy {
			quoted[i] = quote(name)
		}

		res = append(res, "$lazy: ["+strings.Join(quoted, ", ")+"]")
	}

	return res
}

func (c *Compiler) systemEntries(sys *SystemValues) ([]string, error) {
	entries := make([]string, 0, sys.Len())

	for _, key := range sys.Keys() {
		v, _ := sys.Get(key)

		s, err := c.formatValue(v)
		if err != nil {
			return nil, fmt.Errorf("system value %q: %w", key, err)
		}

		entries = append(entries, objectKey(key)+": "+s)
	}

	return entries, nil
}
