package graft

import (
	cf "graftt/internal/classfile"
)

const (
	helperName = "com/acme/Helper"
	targetName = "com/acme/Target"
)

var (
	fuseMarker = cf.Annotation{Desc: FuseDesc}
	mockMarker = cf.Annotation{Desc: MockDesc}
)

func recipientMarker(name string) cf.Annotation {
	return cf.Annotation{
		Desc:   RecipientDesc,
		Values: map[string]any{"value": cf.TypeConstant(cf.ObjectDescriptor(name))},
	}
}

// ctor returns a no-arg constructor running body after the super call.
func ctor(body ...cf.Instruction) *cf.MethodDefinition {
	insns := []cf.Instruction{
		&cf.VarInsn{Op: cf.ALOAD, Var: 0},
		&cf.MethodInsn{Op: cf.INVOKESPECIAL, Owner: cf.RootType, Name: "<init>", Desc: "()V"},
	}
	insns = append(insns, body...)
	insns = append(insns, &cf.Insn{Op: cf.RETURN})

	return &cf.MethodDefinition{Name: cf.ConstructorName, Desc: "()V", Access: cf.AccPublic, Instructions: insns}
}

// intMethod returns a public method "name()I" with the given body.
func intMethod(name string, body ...cf.Instruction) *cf.MethodDefinition {
	return &cf.MethodDefinition{Name: name, Desc: "()I", Access: cf.AccPublic, Instructions: body}
}

// returnZero is "return 0".
func returnZero() []cf.Instruction {
	return []cf.Instruction{&cf.Insn{Op: cf.ICONST_0}, &cf.Insn{Op: cf.IRETURN}}
}

// helper is the donor: a Recipient marker pointing at Target, an int field
// counter, and the given methods after its constructor.
func helper(methods ...*cf.MethodDefinition) *cf.ClassDefinition {
	return &cf.ClassDefinition{
		Name:        helperName,
		SuperName:   cf.RootType,
		Access:      cf.AccPublic,
		Annotations: []cf.Annotation{recipientMarker(targetName)},
		Fields:      []*cf.FieldDefinition{{Name: "counter", Desc: "I", Access: cf.AccPrivate}},
		Methods:     append([]*cf.MethodDefinition{ctor()}, methods...),
	}
}

// target is the recipient: a constructor and inc() returning 0.
func target() *cf.ClassDefinition {
	return &cf.ClassDefinition{
		Name:      targetName,
		SuperName: cf.RootType,
		Access:    cf.AccPublic,
		Methods: []*cf.MethodDefinition{
			ctor(),
			intMethod("inc", returnZero()...),
		},
	}
}

// fusedInc is a Fuse inc() returning counter, plus inc() itself if
// callsOriginal is set.
func fusedInc(callsOriginal bool) *cf.MethodDefinition {
	var body []cf.Instruction
	if callsOriginal {
		body = append(body,
			&cf.VarInsn{Op: cf.ALOAD, Var: 0},
			&cf.MethodInsn{Op: cf.INVOKEVIRTUAL, Owner: helperName, Name: "inc", Desc: "()I"},
		)
	}

	body = append(body,
		&cf.VarInsn{Op: cf.ALOAD, Var: 0},
		&cf.FieldInsn{Op: cf.GETFIELD, Owner: helperName, Name: "counter", Desc: "I"},
	)

	if callsOriginal {
		body = append(body, &cf.Insn{Op: cf.IADD})
	}

	body = append(body, &cf.Insn{Op: cf.IRETURN})

	m := intMethod("inc", body...)
	m.Annotations = []cf.Annotation{fuseMarker}

	return m
}

func methodNames(cd *cf.ClassDefinition) []string {
	var names []string
	for _, m := range cd.Methods {
		names = append(names, m.Name)
	}

	return names
}

func fieldNames(cd *cf.ClassDefinition) []string {
	var names []string
	for _, f := range cd.Fields {
		names = append(names, f.Name)
	}

	return names
}
