package metadata

import (
	"fmt"

	"datamodel-generator/internal/diagnostic"
	"datamodel-generator/internal/match"
)

// Diagnostic codes reported by Validate.
const (
	CodeCollectionNil        = "collection_is_nil"
	CodeMissingRoot          = "missing_root"
	CodeMissingObjectType    = "missing_object_type"
	CodeInvalidLength        = "invalid_length"
	CodeUnknownRoleField     = "unknown_role_field"
	CodeUnknownTypeReference = "unknown_type_reference"
	CodeLazyScalar           = "lazy_scalar"
)

// Validate performs a structural check of a collection before compilation.
// It does not alter the collection.
func Validate(c *Collection) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if c == nil {
		res.AddError(CodeCollectionNil, "metadata collection is nil", "", "")
		return res
	}

	if !c.Has(RootTypeName) {
		res.AddError(CodeMissingRoot, fmt.Sprintf("no %s record", RootTypeName), "", "")
	}

	types := c.typeNames()

	for _, r := range c.Records() {
		validateFields(res, c, r, types)
		validateRoles(res, r)
	}

	return res
}

func validateFields(res *diagnostic.Diagnostics, c *Collection, r *Record, types []string) {
	for _, f := range r.Fields.All() {
		if f.ObjectType == "" {
			res.AddError(CodeMissingObjectType, "field has no object type", r.Name, f.Name)
			continue
		}

		if f.ObjectType == TypeString && f.Length <= 0 {
			res.AddWarning(CodeInvalidLength,
				fmt.Sprintf("string field has no positive length (got %d), emitted as len:%d", f.Length, f.Length),
				r.Name, f.Name)
		}

		_, builtin := BuiltinTypes[f.ObjectType]

		if !builtin && !c.IsKnownType(f.ObjectType) {
			res.AddWarning(CodeUnknownTypeReference,
				fmt.Sprintf("type %q is neither builtin nor declared%s", f.ObjectType, match.Hint(f.ObjectType, types)),
				r.Name, f.Name)
		}

		if f.IsLazy && builtin {
			res.AddWarning(CodeLazyScalar,
				fmt.Sprintf("lazy field of builtin type %q", f.ObjectType), r.Name, f.Name)
		}
	}
}

func validateRoles(res *diagnostic.Diagnostics, r *Record) {
	for _, rf := range r.RoleFields() {
		if !r.Fields.Has(rf.Field) {
			res.AddError(CodeUnknownRoleField,
				fmt.Sprintf("$%s names unknown field %q%s", rf.Role, rf.Field, match.Hint(rf.Field, r.Fields.Names())),
				r.Name, rf.Field)
		}
	}
}
