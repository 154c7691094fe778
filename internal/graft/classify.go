package graft

import "graftt/internal/classfile"

// GraftableFields returns the donor's fields without the Mock marker, in
// declaration order.
func GraftableFields(donor *classfile.ClassDefinition, markers MarkerSource) []*classfile.FieldDefinition {
	if markers == nil {
		markers = DefaultMarkers()
	}

	var out []*classfile.FieldDefinition

	for _, f := range donor.Fields {
		if !markers.HasMarker(f, MarkerMock) {
			out = append(out, f)
		}
	}

	return out
}

// GraftableMethods returns the donor's methods except Mock-marked ones,
// constructors and the static initializer, in declaration order.
func GraftableMethods(donor *classfile.ClassDefinition, markers MarkerSource) []*classfile.MethodDefinition {
	if markers == nil {
		markers = DefaultMarkers()
	}

	var out []*classfile.MethodDefinition

	for _, m := range donor.Methods {
		if m.IsInitializer() || markers.HasMarker(m, MarkerMock) {
			continue
		}

		out = append(out, m)
	}

	return out
}
