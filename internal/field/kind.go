package field

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go
//go:generate go tool stringer -type=SpecRole -trimprefix=Role -output=specrole_string.go

// Kind is the structural kind of a decoded field.
type Kind int

const (
	KindScalar Kind = iota
	KindObject
	KindArray
	KindMap
	KindMapObject
	KindTree
	KindGroup
	KindJson
)

// IsObjectLike reports whether fields of this kind point at a nested type.
func (k Kind) IsObjectLike() bool {
	switch k {
	default:
		return false
	case KindObject, KindArray, KindMap, KindMapObject, KindTree, KindGroup:
		return true
	}
}

// IsCollection reports whether the nested type is declared as an array element.
func (k Kind) IsCollection() bool {
	return k == KindArray || k == KindTree
}

// hasSpecRole reports whether the third segment is also read as a spec role.
func (k Kind) hasSpecRole() bool {
	return k == KindScalar || k == KindArray || k == KindJson
}

// SpecRole is the reserved semantic role a scalar, array or json field plays.
type SpecRole int

const (
	RoleUnknown SpecRole = iota
	RoleRefId
	RoleParentId
	RoleId
	RoleKey
	RoleRowCount
	RoleItems
	RoleGroupMarker
	RoleJson
	RoleUtcDate
)
