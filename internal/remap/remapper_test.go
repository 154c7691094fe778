package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graftt/internal/classfile"
)

func testRemapper() *Remapper {
	return NewRemapper(New("com/acme/FooTransplant", "com/acme/Foo", map[string]string{
		"com/acme/Helper":        "com/acme/TargetHelper",
		"com/acme/Outer$Inner":   "com/acme/NewOuter$Renamed",
		"com/acme/Outer":         "com/acme/NewOuter",
		"com/acme/FooTransplant": "ignored", // donor entry wins
	}))
}

func TestNew(t *testing.T) {
	tr := New("a/Donor", "a/Recipient", map[string]string{"a/Donor": "x", "a/Aux": "b/Aux"})
	assert.Equal(t, TypeRemapping{"a/Donor": "a/Recipient", "a/Aux": "b/Aux"}, tr)

	assert.Equal(t, TypeRemapping{"a/B": "a/B"}, Identity("a/B"))
}

func TestMapType(t *testing.T) {
	r := testRemapper()

	tests := []struct {
		in   string
		want string
	}{
		{"com/acme/FooTransplant", "com/acme/Foo"},
		{"com/acme/Helper", "com/acme/TargetHelper"},
		{"java/lang/String", "java/lang/String"},
		{"[Lcom/acme/Helper;", "[Lcom/acme/TargetHelper;"},
		{"[I", "[I"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, r.MapType(tt.in))
		})
	}

	assert.Nil(t, r.MapTypes(nil))
	assert.Equal(t, []string{"com/acme/Foo", "x/Y"}, r.MapTypes([]string{"com/acme/FooTransplant", "x/Y"}))
}

func TestMapDesc(t *testing.T) {
	r := testRemapper()

	tests := []struct {
		in   string
		want string
	}{
		{"I", "I"},
		{"()V", "()V"},
		{"Lcom/acme/FooTransplant;", "Lcom/acme/Foo;"},
		{"(ILcom/acme/Helper;[Lcom/acme/FooTransplant;)Lcom/acme/FooTransplant;",
			"(ILcom/acme/TargetHelper;[Lcom/acme/Foo;)Lcom/acme/Foo;"},
		{"(Ljava/lang/String;)J", "(Ljava/lang/String;)J"},
		{"(Lcom/acme/Broken", "(Lcom/acme/Broken"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, r.MapDesc(tt.in))
		})
	}
}

func TestMapSignature(t *testing.T) {
	r := testRemapper()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"field", "Ljava/util/List<Lcom/acme/Helper;>;", "Ljava/util/List<Lcom/acme/TargetHelper;>;"},
		{"wildcards", "Ljava/util/Map<*+Lcom/acme/Helper;-Lcom/acme/FooTransplant;>;",
			"Ljava/util/Map<*+Lcom/acme/TargetHelper;-Lcom/acme/Foo;>;"},
		{"type variable", "TT;", "TT;"},
		{"type params named like types", "<LT:Lcom/acme/Helper;>(TLT;)TLT;", "<LT:Lcom/acme/TargetHelper;>(TLT;)TLT;"},
		{"interface bound", "<T::Ljava/lang/Comparable<TT;>;>(TT;)V", "<T::Ljava/lang/Comparable<TT;>;>(TT;)V"},
		{"method with throws", "(Ljava/util/List<Lcom/acme/FooTransplant;>;)V^Lcom/acme/Helper;",
			"(Ljava/util/List<Lcom/acme/Foo;>;)V^Lcom/acme/TargetHelper;"},
		{"inner class", "Lcom/acme/Outer<TT;>.Inner<Lcom/acme/Helper;>;",
			"Lcom/acme/NewOuter<TT;>.Renamed<Lcom/acme/TargetHelper;>;"},
		{"class signature", "<T:Ljava/lang/Object;>Ljava/lang/Object;Ljava/lang/Comparable<Lcom/acme/FooTransplant;>;",
			"<T:Ljava/lang/Object;>Ljava/lang/Object;Ljava/lang/Comparable<Lcom/acme/Foo;>;"},
		{"malformed", "Ljava/util/List<Lcom/acme/Helper;", "Ljava/util/List<Lcom/acme/Helper;"},
		{"garbage", "<<<", "<<<"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.MapSignature(tt.in))
		})
	}
}

func TestIdentityRoundTrip(t *testing.T) {
	r := NewRemapper(Identity("com/acme/Helper", "com/acme/Outer", "com/acme/Outer$Inner"))

	descs := []string{
		"()V",
		"(IJ[[Lcom/acme/Helper;)Lcom/acme/Outer;",
		"Lcom/acme/Outer$Inner;",
	}
	for _, d := range descs {
		assert.Equal(t, d, r.MapDesc(d))
	}

	sigs := []string{
		"<T:Ljava/lang/Object;>(Ljava/util/List<+TT;>;)Lcom/acme/Helper;",
		"Lcom/acme/Outer<Ljava/lang/String;>.Inner<*>;",
		"<K::Ljava/lang/Comparable<TK;>;V:Ljava/lang/Object;>Ljava/lang/Object;",
	}
	for _, s := range sigs {
		assert.Equal(t, s, r.MapSignature(s))
	}
}

func TestNilMapping(t *testing.T) {
	r := NewRemapper(nil)
	assert.Equal(t, "a/B", r.MapType("a/B"))
	assert.Equal(t, "(La/B;)V", r.MapDesc("(La/B;)V"))
}

func TestMapMethod(t *testing.T) {
	r := testRemapper()

	m := &classfile.MethodDefinition{
		Name:       "self",
		Desc:       "(Lcom/acme/Helper;)Lcom/acme/FooTransplant;",
		Signature:  "(Lcom/acme/Helper;)Lcom/acme/FooTransplant;",
		Exceptions: []string{"com/acme/Helper"},
		Annotations: []classfile.Annotation{
			{Desc: "Lcom/acme/Helper;", Values: map[string]any{
				"value": classfile.TypeConstant("Lcom/acme/FooTransplant;"),
				"list":  []any{classfile.TypeConstant("Lcom/acme/Helper;"), 3},
			}},
		},
		Instructions: []classfile.Instruction{
			&classfile.TypeInsn{Op: classfile.NEW, Type: "com/acme/Helper"},
			&classfile.FieldInsn{Op: classfile.GETFIELD, Owner: "com/acme/FooTransplant", Name: "h", Desc: "Lcom/acme/Helper;"},
			&classfile.MethodInsn{Op: classfile.INVOKEVIRTUAL, Owner: "com/acme/FooTransplant", Name: "self", Desc: "(Lcom/acme/Helper;)Lcom/acme/FooTransplant;"},
			&classfile.LdcInsn{Value: classfile.TypeConstant("Lcom/acme/FooTransplant;")},
			&classfile.LdcInsn{Value: "Lcom/acme/FooTransplant;"},
			&classfile.MultiANewArrayInsn{Desc: "[[Lcom/acme/Helper;", Dims: 2},
			&classfile.Insn{Op: classfile.ARETURN},
		},
		LocalVariables: []classfile.LocalVariable{
			{Name: "this", Desc: "Lcom/acme/FooTransplant;", Index: 0},
		},
		TryCatchBlocks: []classfile.TryCatchBlock{
			{Start: "L0", End: "L1", Handler: "L2", Type: "com/acme/Helper"},
			{Start: "L0", End: "L1", Handler: "L3"},
		},
	}

	r.MapMethod(m)

	assert.Equal(t, "(Lcom/acme/TargetHelper;)Lcom/acme/Foo;", m.Desc)
	assert.Equal(t, "(Lcom/acme/TargetHelper;)Lcom/acme/Foo;", m.Signature)
	assert.Equal(t, []string{"com/acme/TargetHelper"}, m.Exceptions)

	require.Len(t, m.Annotations, 1)
	assert.Equal(t, "Lcom/acme/TargetHelper;", m.Annotations[0].Desc)
	assert.Equal(t, classfile.TypeConstant("Lcom/acme/Foo;"), m.Annotations[0].Values["value"])
	assert.Equal(t, []any{classfile.TypeConstant("Lcom/acme/TargetHelper;"), 3}, m.Annotations[0].Values["list"])

	assert.Equal(t, &classfile.TypeInsn{Op: classfile.NEW, Type: "com/acme/TargetHelper"}, m.Instructions[0])
	assert.Equal(t, &classfile.FieldInsn{Op: classfile.GETFIELD, Owner: "com/acme/Foo", Name: "h", Desc: "Lcom/acme/TargetHelper;"}, m.Instructions[1])
	assert.Equal(t, &classfile.MethodInsn{Op: classfile.INVOKEVIRTUAL, Owner: "com/acme/Foo", Name: "self", Desc: "(Lcom/acme/TargetHelper;)Lcom/acme/Foo;"}, m.Instructions[2])
	assert.Equal(t, &classfile.LdcInsn{Value: classfile.TypeConstant("Lcom/acme/Foo;")}, m.Instructions[3])
	assert.Equal(t, &classfile.LdcInsn{Value: "Lcom/acme/FooTransplant;"}, m.Instructions[4], "string constants are not types")
	assert.Equal(t, &classfile.MultiANewArrayInsn{Desc: "[[Lcom/acme/TargetHelper;", Dims: 2}, m.Instructions[5])

	assert.Equal(t, "Lcom/acme/Foo;", m.LocalVariables[0].Desc)
	assert.Equal(t, "com/acme/TargetHelper", m.TryCatchBlocks[0].Type)
	assert.Equal(t, "", m.TryCatchBlocks[1].Type)
}

func TestMapField(t *testing.T) {
	r := testRemapper()

	f := &classfile.FieldDefinition{
		Name:      "helpers",
		Desc:      "Ljava/util/List;",
		Signature: "Ljava/util/List<Lcom/acme/Helper;>;",
		Annotations: []classfile.Annotation{
			{Desc: "Lcom/acme/FooTransplant;"},
		},
	}

	r.MapField(f)

	assert.Equal(t, "Ljava/util/List;", f.Desc)
	assert.Equal(t, "Ljava/util/List<Lcom/acme/TargetHelper;>;", f.Signature)
	assert.Equal(t, "Lcom/acme/Foo;", f.Annotations[0].Desc)
}
