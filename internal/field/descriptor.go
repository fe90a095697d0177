package field

import (
	"fmt"
	"strings"
)

// Separators of the encoded name grammar.
const (
	SegmentSeparator = "!"
	MapKeySeparator  = ":"
	ComplexSeparator = "."
)

// Descriptor is the decoded form of one encoded field name.
// It is an immutable value; use Decode or FromComplex to obtain one.
type Descriptor struct {
	raw          string
	propertyName string
	typeName     string
	kind         Kind
	specRole     SpecRole
	isLazy       bool
	isMain       bool
	isComplex    bool
	mapKeyFields []string
}

// Decode parses an encoded field name of the form
// Name[!Type[!SpecAndFlags[!MapKeys]]].
func Decode(raw string) (Descriptor, error) {
	parts := strings.Split(raw, SegmentSeparator)

	d := Descriptor{
		raw:          raw,
		propertyName: parts[0],
		kind:         KindScalar,
		specRole:     RoleUnknown,
	}

	// A spec role is only meaningful in the third segment.
	if len(parts) == 2 && parsesAsSpecRole(parts[1]) {
		return Descriptor{}, fmt.Errorf("%w: invalid field name %q: %q is a spec role, not a type name",
			ErrDecoding, raw, parts[1])
	}

	if len(parts) > 1 {
		d.typeName = parts[1]
		d.kind = KindObject
	}

	if len(parts) > 2 {
		spec := parts[2]

		d.kind = kindOf(spec)
		if d.kind.hasSpecRole() {
			d.specRole = specRoleOf(spec)
		}

		d.isLazy = strings.Contains(spec, ModifierLazy)
		d.isMain = strings.Contains(spec, ModifierMain)
	}

	if len(parts) > 3 {
		d.kind = KindMapObject
		d.mapKeyFields = strings.Split(parts[3], MapKeySeparator)
	}

	d.isComplex = strings.Contains(d.propertyName, ComplexSeparator)

	if IsReserved(d.propertyName) {
		return Descriptor{}, fmt.Errorf("%w: property name %q is a reserved word", ErrDecoding, d.propertyName)
	}

	return d, nil
}

// MustDecode is like Decode but panics on error. Intended for static tables.
func MustDecode(raw string) Descriptor {
	d, err := Decode(raw)
	if err != nil {
		panic(err)
	}

	return d
}

// FromComplex synthesizes the scalar descriptor for one part of a complex field.
// Only the spec role of source survives.
func FromComplex(source Descriptor, name string) Descriptor {
	return Descriptor{
		raw:          name,
		propertyName: name,
		kind:         KindScalar,
		specRole:     source.specRole,
	}
}

// Raw returns the encoded name the descriptor was decoded from.
func (d Descriptor) Raw() string { return d.raw }

// PropertyName returns the first segment.
func (d Descriptor) PropertyName() string { return d.propertyName }

// TypeName returns the second segment, or "" when absent.
func (d Descriptor) TypeName() string { return d.typeName }

// Kind returns the structural kind.
func (d Descriptor) Kind() Kind { return d.kind }

// SpecRole returns the spec role, RoleUnknown when none applies.
func (d Descriptor) SpecRole() SpecRole { return d.specRole }

// IsLazy reports the Lazy modifier.
func (d Descriptor) IsLazy() bool { return d.isLazy }

// IsMain reports the Main modifier as written in the encoded name.
func (d Descriptor) IsMain() bool { return d.isMain }

// IsComplex reports whether the property name is a dotted path.
func (d Descriptor) IsComplex() bool { return d.isComplex }

// MapKeyFields returns a copy of the fourth segment split on ':', or nil.
func (d Descriptor) MapKeyFields() []string {
	if d.mapKeyFields == nil {
		return nil
	}

	return append([]string(nil), d.mapKeyFields...)
}

// IsVisible reports whether the field appears in the output object.
func (d Descriptor) IsVisible() bool { return d.propertyName != "" }

// IsObjectLike reports whether the field points at a nested type.
func (d Descriptor) IsObjectLike() bool { return d.kind.IsObjectLike() }

// ComplexParts splits a complex property name at its first separator.
// ok is false for non-complex descriptors.
func (d Descriptor) ComplexParts() (prefix, rest string, ok bool) {
	if !d.isComplex {
		return "", "", false
	}

	return strings.Cut(d.propertyName, ComplexSeparator)
}

// String returns a readable summary used in diagnostics.
func (d Descriptor) String() string {
	var sb strings.Builder

	sb.WriteString(d.propertyName)
	sb.WriteString(" (")
	sb.WriteString(d.kind.String())

	if d.typeName != "" {
		sb.WriteString(" of ")
		sb.WriteString(d.typeName)
	}

	if d.specRole != RoleUnknown {
		sb.WriteString(", role ")
		sb.WriteString(d.specRole.String())
	}

	if d.isLazy {
		sb.WriteString(", lazy")
	}

	if d.isMain {
		sb.WriteString(", main")
	}

	if len(d.mapKeyFields) > 0 {
		sb.WriteString(", keys ")
		sb.WriteString(strings.Join(d.mapKeyFields, MapKeySeparator))
	}

	sb.WriteString(")")

	return sb.String()
}
