// Package remap rewrites type references inside class members according to a
// mapping of internal type names.
//
// Remapping is purely structural: names absent from the mapping pass through
// unchanged and malformed descriptors or signatures are returned as is, so
// every function here is total.
package remap

import (
	"maps"
	"strings"

	"graftt/internal/classfile"
)

// TypeRemapping maps internal type names ("com/acme/Helper") to the internal
// names they should have after remapping.
type TypeRemapping map[string]string

// New returns a TypeRemapping that maps donor to recipient, plus the
// auxiliary substitutions in aux. The donor entry always wins over aux.
func New(donor, recipient string, aux map[string]string) TypeRemapping {
	tr := make(TypeRemapping, len(aux)+1)
	maps.Copy(tr, aux)
	tr[donor] = recipient

	return tr
}

// Identity returns a TypeRemapping mapping every given name to itself.
func Identity(names ...string) TypeRemapping {
	tr := make(TypeRemapping, len(names))
	for _, n := range names {
		tr[n] = n
	}

	return tr
}

// Remapper applies a TypeRemapping to names, descriptors, signatures and
// class members.
type Remapper struct {
	mapping TypeRemapping
}

// NewRemapper creates a Remapper for the given mapping. A nil mapping
// behaves like an empty one.
func NewRemapper(mapping TypeRemapping) *Remapper {
	return &Remapper{mapping: mapping}
}

// MapType remaps an internal name. Array internal names ("[Lcom/acme/Foo;")
// are remapped as descriptors.
func (r *Remapper) MapType(name string) string {
	if strings.HasPrefix(name, "[") {
		return r.MapDesc(name)
	}

	if mapped, ok := r.mapping[name]; ok {
		return mapped
	}

	return name
}

// MapTypes remaps every internal name in names, returning a new slice.
func (r *Remapper) MapTypes(names []string) []string {
	if names == nil {
		return nil
	}

	out := make([]string, len(names))
	for i, n := range names {
		out[i] = r.MapType(n)
	}

	return out
}

// MapDesc remaps every object type of a field or method descriptor.
func (r *Remapper) MapDesc(desc string) string {
	if !strings.Contains(desc, "L") {
		return desc
	}

	var sb strings.Builder
	sb.Grow(len(desc))

	for i := 0; i < len(desc); i++ {
		c := desc[i]
		if c != 'L' {
			sb.WriteByte(c)
			continue
		}

		end := strings.IndexByte(desc[i:], ';')
		if end < 0 {
			// Malformed: copy the rest untouched.
			sb.WriteString(desc[i:])
			break
		}

		sb.WriteByte('L')
		sb.WriteString(r.MapType(desc[i+1 : i+end]))
		sb.WriteByte(';')

		i += end
	}

	return sb.String()
}

// MapSignature remaps a generic class, method or field signature. An empty
// signature yields an empty signature; a malformed one is returned unchanged.
func (r *Remapper) MapSignature(sig string) string {
	if sig == "" {
		return ""
	}

	p := &sigParser{src: sig, r: r}
	if !p.parse() {
		return sig
	}

	return p.out.String()
}

// MapValue remaps class literals inside an annotation or constant value.
func (r *Remapper) MapValue(v any) any {
	switch val := v.(type) {
	case classfile.TypeConstant:
		return classfile.TypeConstant(r.MapDesc(string(val)))
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = r.MapValue(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = r.MapValue(e)
		}

		return out
	case classfile.Annotation:
		return r.MapAnnotation(val)
	default:
		return v
	}
}

// MapAnnotation returns a copy of a with its type and values remapped.
func (r *Remapper) MapAnnotation(a classfile.Annotation) classfile.Annotation {
	out := classfile.Annotation{Desc: r.MapDesc(a.Desc), Visible: a.Visible}
	if a.Values != nil {
		out.Values = make(map[string]any, len(a.Values))
		for k, v := range a.Values {
			out.Values[k] = r.MapValue(v)
		}
	}

	return out
}

func (r *Remapper) mapAnnotations(in []classfile.Annotation) []classfile.Annotation {
	if in == nil {
		return nil
	}

	out := make([]classfile.Annotation, len(in))
	for i, a := range in {
		out[i] = r.MapAnnotation(a)
	}

	return out
}

// MapField rewrites the descriptor, signature and annotations of f in place.
func (r *Remapper) MapField(f *classfile.FieldDefinition) {
	f.Desc = r.MapDesc(f.Desc)
	f.Signature = r.MapSignature(f.Signature)
	f.Annotations = r.mapAnnotations(f.Annotations)
}

// MapMethod rewrites m in place: descriptor, signature, exceptions,
// annotations, instruction operands, local variables and handler types.
func (r *Remapper) MapMethod(m *classfile.MethodDefinition) {
	m.Desc = r.MapDesc(m.Desc)
	m.Signature = r.MapSignature(m.Signature)
	m.Exceptions = r.MapTypes(m.Exceptions)
	m.Annotations = r.mapAnnotations(m.Annotations)

	r.MapInstructions(m.Instructions)

	for i := range m.LocalVariables {
		lv := &m.LocalVariables[i]
		lv.Desc = r.MapDesc(lv.Desc)
		lv.Signature = r.MapSignature(lv.Signature)
	}

	for i := range m.TryCatchBlocks {
		if tc := &m.TryCatchBlocks[i]; tc.Type != "" {
			tc.Type = r.MapType(tc.Type)
		}
	}
}

// MapInstructions rewrites the type operands of every instruction in place.
func (r *Remapper) MapInstructions(insns []classfile.Instruction) {
	for _, insn := range insns {
		switch i := insn.(type) {
		case *classfile.FieldInsn:
			i.Owner = r.MapType(i.Owner)
			i.Desc = r.MapDesc(i.Desc)
		case *classfile.MethodInsn:
			i.Owner = r.MapType(i.Owner)
			i.Desc = r.MapDesc(i.Desc)
		case *classfile.TypeInsn:
			i.Type = r.MapType(i.Type)
		case *classfile.LdcInsn:
			i.Value = r.MapValue(i.Value)
		case *classfile.MultiANewArrayInsn:
			i.Desc = r.MapDesc(i.Desc)
		}
	}
}
