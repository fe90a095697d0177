package field

import (
	"strconv"
	"strings"
)

// VocabularyVersion identifies the closed token vocabulary below. Bump it when a
// token is added or removed so stored encodings can be re-checked.
const VocabularyVersion = "1"

// Modifier substrings recognized anywhere in the TypeSpec segment.
const (
	ModifierLazy = "Lazy"
	ModifierMain = "Main"
)

// StructuralTokens maps a TypeSpec token (modifiers removed) to a Kind.
// Tokens that are not listed resolve to KindScalar.
var StructuralTokens = map[string]Kind{
	"Object":    KindObject,
	"Array":     KindArray,
	"Map":       KindMap,
	"MapObject": KindMapObject,
	"Tree":      KindTree,
	"Group":     KindGroup,
	"Json":      KindJson,
}

// SpecRoleTokens maps a TypeSpec token (modifiers removed) to a SpecRole.
// RoleUnknown has no token.
var SpecRoleTokens = map[string]SpecRole{
	"RefId":       RoleRefId,
	"ParentId":    RoleParentId,
	"Id":          RoleId,
	"Key":         RoleKey,
	"RowCount":    RoleRowCount,
	"Items":       RoleItems,
	"GroupMarker": RoleGroupMarker,
	"Json":        RoleJson,
	"UtcDate":     RoleUtcDate,
}

// ReservedWords are property names owned by the client runtime.
var ReservedWords = map[string]struct{}{
	"Parent":          {},
	"Root":            {},
	"ParentId":        {},
	"CurrentyKey":     {},
	"ParentRowNumber": {},
	"ParentKey":       {},
	"ParentGUID":      {},
}

// IsReserved reports whether name collides with a runtime-owned property.
func IsReserved(name string) bool {
	_, ok := ReservedWords[name]
	return ok
}

// IsSpecRoleToken reports whether token is exactly a spec-role token.
func IsSpecRoleToken(token string) bool {
	_, ok := SpecRoleTokens[token]
	return ok
}

// RoleUnknownToken names the absence of a spec role. It never resolves a
// role but is still a spec-role name.
const RoleUnknownToken = "Unknown"

// parsesAsSpecRole reports whether token would be accepted as a spec role
// name or number: a table token, RoleUnknownToken or a decimal integer.
// Only the two-segment check uses it; role lookup stays on the table.
func parsesAsSpecRole(token string) bool {
	if token == RoleUnknownToken || IsSpecRoleToken(token) {
		return true
	}

	_, err := strconv.ParseInt(token, 10, 64)

	return err == nil
}

// kindOf resolves the structural kind of a TypeSpec segment.
func kindOf(spec string) Kind {
	if k, ok := StructuralTokens[stripModifiers(spec)]; ok {
		return k
	}

	return KindScalar
}

// specRoleOf resolves the spec role of a TypeSpec segment.
func specRoleOf(spec string) SpecRole {
	if r, ok := SpecRoleTokens[stripModifiers(spec)]; ok {
		return r
	}

	return RoleUnknown
}

func stripModifiers(spec string) string {
	spec = strings.ReplaceAll(spec, ModifierLazy, "")
	return strings.ReplaceAll(spec, ModifierMain, "")
}
