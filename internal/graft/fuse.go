package graft

import (
	"graftt/internal/classfile"
	"graftt/internal/diagnostic"
	"graftt/internal/match"
	"graftt/internal/remap"
)

// OriginalSuffix is appended to the name of a recipient method replaced by a
// Fuse method.
const OriginalSuffix = "$original"

// maxSuggestions caps the recipient methods suggested for a failed fuse.
const maxSuggestions = 3

// MethodTransplant carries a donor method to the fusion engine.
type MethodTransplant struct {
	// Origin is the donor's internal name, before remapping.
	Origin string
	// Method is the donor's declaration; it is copied before rewriting.
	Method *classfile.MethodDefinition
	// Remapping is the type mapping applied to the copy.
	Remapping remap.TypeRemapping
}

// fuse adds the transplant's method to the recipient. A method colliding
// with a recipient method must carry the Fuse marker; it then replaces that
// method, which survives as <name>$original only if the new body calls it.
func (t *Transplanter) fuse(
	recipient *classfile.ClassDefinition,
	mt *MethodTransplant,
	diags *diagnostic.Diagnostics,
) error {
	r := remap.NewRemapper(mt.Remapping)

	m := mt.Method.Clone()
	donorKey := m.Key()
	r.MapMethod(m)

	key := m.Key().String()

	original := recipient.Method(m.Name, m.Desc)
	if original == nil && donorKey.Desc != m.Desc {
		original = recipient.Method(donorKey.Name, donorKey.Desc)
	}

	doFuse := t.markers.HasMarker(mt.Method, MarkerFuse)
	canFuse := original != nil

	switch {
	case !doFuse && canFuse:
		return &Error{Kind: MethodAlreadyExists, Class: mt.Origin, Member: key}
	case doFuse && !canFuse:
		suggestions := match.RankMethods(m.Key(), recipient.Methods, match.DefaultThreshold).Keys(maxSuggestions)
		diags.AddError(WrongFuseSignature.String(),
			"no recipient method with this signature to fuse with",
			mt.Origin, key, suggestions...)

		return &Error{Kind: WrongFuseSignature, Class: mt.Origin, Member: key}
	case !doFuse && !canFuse:
		recipient.Methods = append(recipient.Methods, m)
		t.logger.Debug("method added", "donor", mt.Origin, "method", key)

		return nil
	}

	renamed := originalName(recipient, original)
	originalKey := original.Key().String()
	self := r.MapType(mt.Origin)

	redirected := 0

	for _, mi := range m.MethodInsns() {
		if mi.Owner == self && mi.Name == m.Name && mi.Desc == m.Desc {
			mi.Name = renamed
			mi.Desc = original.Desc
			redirected++
		}
	}

	if redirected == 0 {
		recipient.RemoveMethod(original)
		diags.AddInfo("original_pruned",
			"fused method never calls the original; original removed",
			recipient.Name, originalKey)
	} else {
		original.Name = renamed
		diags.AddInfo("original_kept",
			"fused method calls the original; kept as "+renamed,
			recipient.Name, originalKey)
	}

	recipient.Methods = append(recipient.Methods, m)
	t.logger.Debug("method fused", "donor", mt.Origin, "method", key, "redirected", redirected)

	return nil
}

// originalName returns the name the replaced method is kept under, adding
// suffixes until it is free on the recipient.
func originalName(recipient *classfile.ClassDefinition, original *classfile.MethodDefinition) string {
	name := original.Name + OriginalSuffix
	for recipient.Method(name, original.Desc) != nil {
		name += OriginalSuffix
	}

	return name
}
