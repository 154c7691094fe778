// Package classfile provides the in-memory model of a compiled class that the
// grafting engine operates on, and a YAML text format for it.
//
// The model mirrors the structure of a JVM class file closely enough for
// member transplanting: a class has a name, a superclass, interfaces, fields
// and methods, and methods carry an instruction list whose operands reference
// other types by internal name (e.g. "com/acme/Foo") or descriptor
// (e.g. "Lcom/acme/Foo;", "(I)V").
//
// # Key capabilities
//
//   - ClassDefinition, FieldDefinition and MethodDefinition with deep Clone
//   - Instruction kinds for field/method references, type operands, constants,
//     jumps and labels
//   - Descriptor checks (IsFieldDescriptor, IsMethodDescriptor)
//   - LoadFile / Parse / Marshal / WriteFile for the YAML representation
//
// # YAML Overview
//
//	name: com/acme/Target
//	super: java/lang/Object
//	access: [public]
//	interfaces: [java/lang/Runnable]
//	fields:
//	  - name: counter
//	    desc: I
//	    access: [private]
//	methods:
//	  - name: inc
//	    desc: ()I
//	    access: [public]
//	    annotations:
//	      - desc: Lgraftt/Graft$Fuse;
//	    code:
//	      - {op: ALOAD, var: 0}
//	      - {op: INVOKEVIRTUAL, owner: com/acme/Target, name: inc, desc: ()I}
//	      - {op: ICONST_1}
//	      - {op: IADD}
//	      - {op: IRETURN}
//
// Binary class-file parsing is not part of this package; the YAML format is
// the interchange used by the graftt command and its tests.
package classfile
