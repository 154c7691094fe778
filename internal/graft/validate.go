package graft

import (
	"errors"

	"graftt/internal/classfile"
	"graftt/internal/diagnostic"
	"graftt/internal/remap"
)

// FieldTransplant carries a donor field through validation.
type FieldTransplant struct {
	// Origin is the donor's internal name. Once the field is accepted it is
	// the donor name as seen from the recipient, i.e. after remapping.
	Origin string
	// Field is the donor's declaration; it is copied when grafted.
	Field *classfile.FieldDefinition
	// Target is the recipient field a Fuse field merges into, nil otherwise.
	Target *classfile.FieldDefinition
}

// resolveInterfaces adds the donor's interfaces to the recipient. If any of
// them is already implemented, none are added and a warning is recorded per
// conflict; the transplant carries on either way. Repeated donor interfaces
// are added once.
func (t *Transplanter) resolveInterfaces(donor, recipient *classfile.ClassDefinition, diags *diagnostic.Diagnostics) {
	check := func(iface string) (string, error) {
		if recipient.HasInterface(iface) {
			return "", &Error{Kind: InterfaceAlreadyExists, Class: donor.Name, Member: iface}
		}

		return iface, nil
	}

	var candidates []string

	seen := make(map[string]struct{}, len(donor.Interfaces))
	for _, iface := range donor.Interfaces {
		if _, dup := seen[iface]; dup {
			diags.AddWarning("duplicate_interface", "donor lists this interface more than once", donor.Name, iface)
			continue
		}

		seen[iface] = struct{}{}
		candidates = append(candidates, iface)
	}

	accepted, errs := collectOrRecover(candidates, check, nil)
	for _, err := range errs {
		var e *Error
		if errors.As(err, &e) {
			diags.AddWarning(e.Kind.String(),
				"recipient already implements this interface; no donor interfaces were added",
				e.Class, e.Member)
			t.logger.Debug("interface conflict", "donor", e.Class, "interface", e.Member)
		}
	}

	recipient.Interfaces = append(recipient.Interfaces, accepted...)
}

// validateFields runs the field checks stage by stage over all graftable
// fields: default values first, then presence on the recipient. The first
// failure aborts.
func (t *Transplanter) validateFields(
	donor, recipient *classfile.ClassDefinition,
	r *remap.Remapper,
) ([]*FieldTransplant, error) {
	initialized := initializedFields(donor)

	fields, err := stopOnFirstError(GraftableFields(donor, t.markers),
		func(f *classfile.FieldDefinition) (*classfile.FieldDefinition, error) {
			if _, ok := initialized[f.Name]; ok {
				return nil, &Error{Kind: FieldDefaultValueNotSupported, Class: donor.Name, Member: f.Name}
			}

			return f, nil
		})
	if err != nil {
		return nil, err
	}

	transplants, err := stopOnFirstError(fields,
		func(f *classfile.FieldDefinition) (*FieldTransplant, error) {
			return t.verifyFieldNotPresent(recipient, &FieldTransplant{Origin: donor.Name, Field: f}, r)
		})
	if err != nil {
		return nil, err
	}

	origin := r.MapType(donor.Name)
	for _, ft := range transplants {
		ft.Origin = origin
	}

	return transplants, nil
}

// verifyFieldNotPresent rejects fields whose name the recipient already
// declares, unless the field is a Fuse field matching that declaration.
func (t *Transplanter) verifyFieldNotPresent(
	recipient *classfile.ClassDefinition,
	ft *FieldTransplant,
	r *remap.Remapper,
) (*FieldTransplant, error) {
	existing := recipient.Field(ft.Field.Name)
	fuse := t.markers.HasMarker(ft.Field, MarkerFuse)

	switch {
	case existing == nil && !fuse:
		return ft, nil
	case existing != nil && !fuse:
		return nil, &Error{Kind: FieldAlreadyExists, Class: ft.Origin, Member: ft.Field.Name}
	case existing != nil && existing.Desc == r.MapDesc(ft.Field.Desc):
		ft.Target = existing
		return ft, nil
	default:
		return nil, &Error{Kind: WrongFuseSignature, Class: ft.Origin, Member: ft.Field.Name}
	}
}

// graftField applies an accepted field transplant to the recipient.
func (t *Transplanter) graftField(recipient *classfile.ClassDefinition, ft *FieldTransplant, r *remap.Remapper) {
	f := ft.Field.Clone()
	r.MapField(f)

	if ft.Target == nil {
		recipient.Fields = append(recipient.Fields, f)
		return
	}

	// Fused fields only contribute their annotations.
	for _, a := range f.Annotations {
		if t.isMarker(a) {
			continue
		}

		replaced := false

		for i := range ft.Target.Annotations {
			if ft.Target.Annotations[i].Desc == a.Desc {
				ft.Target.Annotations[i] = a
				replaced = true

				break
			}
		}

		if !replaced {
			ft.Target.Annotations = append(ft.Target.Annotations, a)
		}
	}
}

// isMarker reports whether a is one of the engine's own markers.
func (t *Transplanter) isMarker(a classfile.Annotation) bool {
	one := annotationSet{a}

	return t.markers.HasMarker(one, MarkerRecipient) ||
		t.markers.HasMarker(one, MarkerMock) ||
		t.markers.HasMarker(one, MarkerFuse)
}

// initializedFields returns the names of fields assigned by the donor's
// constructors or static initializer.
func initializedFields(donor *classfile.ClassDefinition) map[string]struct{} {
	names := make(map[string]struct{})

	for _, m := range donor.Methods {
		if !m.IsInitializer() {
			continue
		}

		for _, fi := range m.FieldInsns(classfile.PUTFIELD, classfile.PUTSTATIC) {
			names[fi.Name] = struct{}{}
		}
	}

	return names
}

// annotationSet adapts a plain annotation list to classfile.Annotated.
type annotationSet []classfile.Annotation

func (s annotationSet) FindAnnotation(desc string) (classfile.Annotation, bool) {
	for _, a := range s {
		if a.Desc == desc {
			return a, true
		}
	}

	return classfile.Annotation{}, false
}
