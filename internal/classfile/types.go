package classfile

import (
	"maps"
	"slices"
)

const (
	// RootType is the internal name of the universal superclass.
	RootType = "java/lang/Object"
	// ConstructorName is the name of instance initializers.
	ConstructorName = "<init>"
	// StaticInitializerName is the name of the class initializer.
	StaticInitializerName = "<clinit>"
)

// ClassDefinition describes a compiled class.
type ClassDefinition struct {
	Name        string              `yaml:"name"`                  // Internal name, e.g. "com/acme/Foo"
	SuperName   string              `yaml:"super,omitempty"`       // Internal name of the superclass
	Access      AccessFlags         `yaml:"access,omitempty"`      // Class access flags
	Signature   string              `yaml:"signature,omitempty"`   // Generic signature (optional)
	Version     int                 `yaml:"version,omitempty"`     // Class file major version (informational)
	Interfaces  []string            `yaml:"interfaces,omitempty"`  // Implemented interfaces, internal names
	Annotations []Annotation        `yaml:"annotations,omitempty"` // Class-level annotations
	Fields      []*FieldDefinition  `yaml:"fields,omitempty"`      // Declared fields, in declaration order
	Methods     []*MethodDefinition `yaml:"methods,omitempty"`     // Declared methods, in declaration order
}

// FieldDefinition describes a declared field.
type FieldDefinition struct {
	Name        string       `yaml:"name"`
	Desc        string       `yaml:"desc"`
	Signature   string       `yaml:"signature,omitempty"`
	Access      AccessFlags  `yaml:"access,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty"`
}

// MethodDefinition describes a declared method and its code.
type MethodDefinition struct {
	Name           string
	Desc           string
	Signature      string
	Access         AccessFlags
	Exceptions     []string
	Annotations    []Annotation
	Instructions   []Instruction
	LocalVariables []LocalVariable
	TryCatchBlocks []TryCatchBlock
}

// MethodKey identifies a method within a class by name and descriptor.
type MethodKey struct {
	Name string
	Desc string
}

// String returns the key in "name desc" form, e.g. "inc()I".
func (k MethodKey) String() string {
	return k.Name + k.Desc
}

// LocalVariable is a debug entry of a method's local variable table.
type LocalVariable struct {
	Name      string `yaml:"name"`
	Desc      string `yaml:"desc"`
	Signature string `yaml:"signature,omitempty"`
	Index     int    `yaml:"index"`
	Start     string `yaml:"start,omitempty"` // Label name
	End       string `yaml:"end,omitempty"`   // Label name
}

// TryCatchBlock is an exception handler range. Type is empty for finally blocks.
type TryCatchBlock struct {
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
	Handler string `yaml:"handler"`
	Type    string `yaml:"type,omitempty"`
}

// Annotation is an annotation instance attached to a class or member.
type Annotation struct {
	Desc    string         // Annotation type descriptor, e.g. "Lgraftt/Graft$Fuse;"
	Visible bool           // Retained at runtime
	Values  map[string]any // Element values; class literals are TypeConstant
}

// TypeConstant is a class literal, held as a descriptor ("Lcom/acme/Foo;").
type TypeConstant string

// InternalName returns the internal name of an object type constant, or the
// raw descriptor for primitives and arrays.
func (t TypeConstant) InternalName() string {
	return InternalName(string(t))
}

// Key returns the identity of m for conflict detection.
func (m *MethodDefinition) Key() MethodKey {
	return MethodKey{Name: m.Name, Desc: m.Desc}
}

// IsInitializer reports whether m is a constructor or static initializer.
func (m *MethodDefinition) IsInitializer() bool {
	return m.Name == ConstructorName || m.Name == StaticInitializerName
}

// HasInterface returns true if the class lists iface among its interfaces.
func (c *ClassDefinition) HasInterface(iface string) bool {
	return slices.Contains(c.Interfaces, iface)
}

// Field returns the field with the given name, or nil if not found.
func (c *ClassDefinition) Field(name string) *FieldDefinition {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// Method returns the method with the given name and descriptor, or nil if not found.
func (c *ClassDefinition) Method(name, desc string) *MethodDefinition {
	for _, m := range c.Methods {
		if m.Name == name && m.Desc == desc {
			return m
		}
	}

	return nil
}

// RemoveMethod removes m (by identity) from the class. It returns false if m
// was not declared by the class.
func (c *ClassDefinition) RemoveMethod(m *MethodDefinition) bool {
	i := slices.Index(c.Methods, m)
	if i < 0 {
		return false
	}

	c.Methods = slices.Delete(c.Methods, i, i+1)

	return true
}

// Clone returns a deep copy of the class.
func (c *ClassDefinition) Clone() *ClassDefinition {
	if c == nil {
		return nil
	}

	out := *c
	out.Interfaces = slices.Clone(c.Interfaces)
	out.Annotations = cloneAnnotations(c.Annotations)

	if c.Fields != nil {
		out.Fields = make([]*FieldDefinition, len(c.Fields))
		for i, f := range c.Fields {
			out.Fields[i] = f.Clone()
		}
	}

	if c.Methods != nil {
		out.Methods = make([]*MethodDefinition, len(c.Methods))
		for i, m := range c.Methods {
			out.Methods[i] = m.Clone()
		}
	}

	return &out
}

// Clone returns a deep copy of the field.
func (f *FieldDefinition) Clone() *FieldDefinition {
	if f == nil {
		return nil
	}

	out := *f
	out.Annotations = cloneAnnotations(f.Annotations)

	return &out
}

// Clone returns a deep copy of the method, including its instructions.
func (m *MethodDefinition) Clone() *MethodDefinition {
	if m == nil {
		return nil
	}

	out := *m
	out.Exceptions = slices.Clone(m.Exceptions)
	out.Annotations = cloneAnnotations(m.Annotations)
	out.LocalVariables = slices.Clone(m.LocalVariables)
	out.TryCatchBlocks = slices.Clone(m.TryCatchBlocks)

	if m.Instructions != nil {
		out.Instructions = make([]Instruction, len(m.Instructions))
		for i, insn := range m.Instructions {
			out.Instructions[i] = insn.Clone()
		}
	}

	return &out
}

// Clone returns a deep copy of the annotation.
func (a Annotation) Clone() Annotation {
	out := a
	if a.Values != nil {
		out.Values = make(map[string]any, len(a.Values))
		for k, v := range a.Values {
			out.Values[k] = cloneValue(v)
		}
	}

	return out
}

func cloneAnnotations(in []Annotation) []Annotation {
	if in == nil {
		return nil
	}

	out := make([]Annotation, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}

	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}

		return out
	case map[string]any:
		return maps.Clone(val)
	case Annotation:
		return val.Clone()
	default:
		return v
	}
}

// Annotated is implemented by classes and members carrying annotations.
type Annotated interface {
	FindAnnotation(desc string) (Annotation, bool)
}

// FindAnnotation returns the class annotation of type desc.
func (c *ClassDefinition) FindAnnotation(desc string) (Annotation, bool) {
	return findAnnotation(c.Annotations, desc)
}

// FindAnnotation returns the field annotation of type desc.
func (f *FieldDefinition) FindAnnotation(desc string) (Annotation, bool) {
	return findAnnotation(f.Annotations, desc)
}

// FindAnnotation returns the method annotation of type desc.
func (m *MethodDefinition) FindAnnotation(desc string) (Annotation, bool) {
	return findAnnotation(m.Annotations, desc)
}

func findAnnotation(list []Annotation, desc string) (Annotation, bool) {
	for _, a := range list {
		if a.Desc == desc {
			return a, true
		}
	}

	return Annotation{}, false
}
