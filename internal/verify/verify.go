// Package verify performs structural checks on class definitions.
//
// The checks are local to one class: they catch malformed descriptors,
// duplicate members, dangling labels, return opcodes that disagree with the
// method's return type, and references to members the class itself should
// declare but does not. They do not type-check the operand stack.
package verify

import (
	"fmt"

	"graftt/internal/classfile"
	"graftt/internal/diagnostic"
)

// objectMethods are the members a class extending java/lang/Object may call
// on itself without declaring them.
var objectMethods = map[classfile.MethodKey]struct{}{
	{Name: "<init>", Desc: "()V"}:                    {},
	{Name: "equals", Desc: "(Ljava/lang/Object;)Z"}:  {},
	{Name: "hashCode", Desc: "()I"}:                  {},
	{Name: "toString", Desc: "()Ljava/lang/String;"}: {},
	{Name: "getClass", Desc: "()Ljava/lang/Class;"}:  {},
	{Name: "clone", Desc: "()Ljava/lang/Object;"}:    {},
	{Name: "finalize", Desc: "()V"}:                  {},
	{Name: "notify", Desc: "()V"}:                    {},
	{Name: "notifyAll", Desc: "()V"}:                 {},
	{Name: "wait", Desc: "()V"}:                      {},
	{Name: "wait", Desc: "(J)V"}:                     {},
	{Name: "wait", Desc: "(JI)V"}:                    {},
}

// Verifier checks class definitions.
type Verifier struct {
	// SkipSelfReferences disables resolution of the class's references to
	// its own members.
	SkipSelfReferences bool
}

// New creates a Verifier with all checks enabled.
func New() *Verifier {
	return &Verifier{}
}

// Verify returns an error describing every problem found, or nil.
func (v *Verifier) Verify(cd *classfile.ClassDefinition) error {
	if err := v.Check(cd).Error(); err != nil {
		return fmt.Errorf("class %s failed verification: %w", className(cd), err)
	}

	return nil
}

// Check runs all checks and returns the findings.
func (v *Verifier) Check(cd *classfile.ClassDefinition) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cd == nil {
		res.AddError("class_is_nil", "class definition is nil", "", "")
		return res
	}

	if cd.Name == "" {
		res.AddError("missing_name", "class has no name", "", "")
	}

	if cd.SuperName == "" && cd.Name != classfile.RootType {
		res.AddError("missing_super", "class has no superclass", cd.Name, "")
	}

	checkInterfaces(res, cd)
	checkFields(res, cd)

	seen := make(map[classfile.MethodKey]struct{}, len(cd.Methods))

	for _, m := range cd.Methods {
		key := m.Key()
		if _, dup := seen[key]; dup {
			res.AddError("duplicate_method", "method declared more than once", cd.Name, key.String())
		}

		seen[key] = struct{}{}

		checkMethod(res, cd, m)

		if !v.SkipSelfReferences && closed(cd) {
			checkSelfReferences(res, cd, m)
		}
	}

	return res
}

// closed reports whether every member cd may reach through its own name is
// declared in cd or java/lang/Object. Interfaces contribute default methods
// and constants, and abstract classes may call interface methods they leave
// undeclared.
func closed(cd *classfile.ClassDefinition) bool {
	return cd.SuperName == classfile.RootType &&
		len(cd.Interfaces) == 0 &&
		cd.Access&(classfile.AccAbstract|classfile.AccInterface) == 0
}

func checkInterfaces(res *diagnostic.Diagnostics, cd *classfile.ClassDefinition) {
	seen := make(map[string]struct{}, len(cd.Interfaces))

	for _, iface := range cd.Interfaces {
		if _, dup := seen[iface]; dup {
			res.AddError("duplicate_interface", "interface listed more than once", cd.Name, iface)
		}

		seen[iface] = struct{}{}
	}
}

func checkFields(res *diagnostic.Diagnostics, cd *classfile.ClassDefinition) {
	seen := make(map[string]struct{}, len(cd.Fields))

	for _, f := range cd.Fields {
		if _, dup := seen[f.Name]; dup {
			res.AddError("duplicate_field", "field declared more than once", cd.Name, f.Name)
		}

		seen[f.Name] = struct{}{}

		if !classfile.IsFieldDescriptor(f.Desc) {
			res.AddError("invalid_descriptor", fmt.Sprintf("invalid field descriptor %q", f.Desc), cd.Name, f.Name)
		}
	}
}

func checkMethod(res *diagnostic.Diagnostics, cd *classfile.ClassDefinition, m *classfile.MethodDefinition) {
	member := m.Key().String()

	if !classfile.IsMethodDescriptor(m.Desc) {
		res.AddError("invalid_descriptor", fmt.Sprintf("invalid method descriptor %q", m.Desc), cd.Name, member)
		return
	}

	if m.Access&(classfile.AccAbstract|classfile.AccNative) != 0 && len(m.Instructions) > 0 {
		res.AddError("unexpected_code", "abstract or native method has code", cd.Name, member)
	}

	labels := make(map[string]struct{})

	for _, insn := range m.Instructions {
		if l, ok := insn.(*classfile.Label); ok {
			if _, dup := labels[l.Name]; dup {
				res.AddError("duplicate_label", fmt.Sprintf("label %s defined more than once", l.Name), cd.Name, member)
			}

			labels[l.Name] = struct{}{}
		}
	}

	ref := func(name, where string) {
		if _, ok := labels[name]; !ok {
			res.AddError("undefined_label", fmt.Sprintf("%s refers to undefined label %s", where, name), cd.Name, member)
		}
	}

	want := returnOpcode(classfile.ReturnType(m.Desc))

	for _, insn := range m.Instructions {
		switch in := insn.(type) {
		case *classfile.JumpInsn:
			ref(in.Label, in.Op.String())
		case *classfile.FieldInsn:
			if !classfile.IsFieldDescriptor(in.Desc) {
				res.AddError("invalid_descriptor",
					fmt.Sprintf("%s %s.%s has invalid descriptor %q", in.Op, in.Owner, in.Name, in.Desc),
					cd.Name, member)
			}
		case *classfile.MethodInsn:
			if !classfile.IsMethodDescriptor(in.Desc) {
				res.AddError("invalid_descriptor",
					fmt.Sprintf("%s %s.%s has invalid descriptor %q", in.Op, in.Owner, in.Name, in.Desc),
					cd.Name, member)
			}
		case *classfile.Insn:
			if in.Op.IsReturn() && in.Op != want {
				res.AddError("return_mismatch",
					fmt.Sprintf("%s in method returning %s", in.Op, classfile.ReturnType(m.Desc)),
					cd.Name, member)
			}
		}
	}

	for _, tc := range m.TryCatchBlocks {
		ref(tc.Start, "try-catch start")
		ref(tc.End, "try-catch end")
		ref(tc.Handler, "try-catch handler")
	}

	for _, lv := range m.LocalVariables {
		if lv.Start != "" {
			ref(lv.Start, "local "+lv.Name)
		}

		if lv.End != "" {
			ref(lv.End, "local "+lv.Name)
		}
	}
}

// checkSelfReferences reports field and method instructions targeting the
// class itself that name members it does not declare.
func checkSelfReferences(res *diagnostic.Diagnostics, cd *classfile.ClassDefinition, m *classfile.MethodDefinition) {
	member := m.Key().String()

	for _, insn := range m.Instructions {
		switch in := insn.(type) {
		case *classfile.FieldInsn:
			if in.Owner != cd.Name {
				continue
			}

			if f := cd.Field(in.Name); f == nil || f.Desc != in.Desc {
				res.AddError("unresolved_field",
					fmt.Sprintf("%s refers to undeclared field %s:%s", in.Op, in.Name, in.Desc),
					cd.Name, member)
			}
		case *classfile.MethodInsn:
			if in.Owner != cd.Name || cd.Method(in.Name, in.Desc) != nil {
				continue
			}

			if _, ok := objectMethods[classfile.MethodKey{Name: in.Name, Desc: in.Desc}]; ok {
				continue
			}

			res.AddError("unresolved_method",
				fmt.Sprintf("%s refers to undeclared method %s%s", in.Op, in.Name, in.Desc),
				cd.Name, member)
		}
	}
}

// returnOpcode returns the return instruction matching a return descriptor.
func returnOpcode(ret string) classfile.Opcode {
	if ret == "" {
		return classfile.RETURN
	}

	switch ret[0] {
	case 'V':
		return classfile.RETURN
	case 'J':
		return classfile.LRETURN
	case 'F':
		return classfile.FRETURN
	case 'D':
		return classfile.DRETURN
	case 'L', '[':
		return classfile.ARETURN
	default:
		return classfile.IRETURN
	}
}

func className(cd *classfile.ClassDefinition) string {
	if cd == nil || cd.Name == "" {
		return "<unnamed>"
	}

	return cd.Name
}
