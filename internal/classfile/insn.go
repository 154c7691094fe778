package classfile

// Instruction is a single element of a method's instruction list.
type Instruction interface {
	Opcode() Opcode
	Clone() Instruction
}

// Insn is an instruction without operands (arithmetic, returns, constants).
type Insn struct {
	Op Opcode
}

// IntInsn carries a single int operand (BIPUSH, SIPUSH, NEWARRAY).
type IntInsn struct {
	Op      Opcode
	Operand int
}

// VarInsn loads or stores a local variable.
type VarInsn struct {
	Op  Opcode
	Var int
}

// TypeInsn takes an internal type name operand (NEW, ANEWARRAY, CHECKCAST, INSTANCEOF).
type TypeInsn struct {
	Op   Opcode
	Type string
}

// FieldInsn accesses a field of Owner.
type FieldInsn struct {
	Op    Opcode
	Owner string
	Name  string
	Desc  string
}

// MethodInsn invokes a method of Owner.
type MethodInsn struct {
	Op        Opcode
	Owner     string
	Name      string
	Desc      string
	Interface bool // Owner is an interface
}

// LdcInsn pushes a constant. Value is one of int, int64, float64, string or TypeConstant.
type LdcInsn struct {
	Value any
}

// JumpInsn branches to Label.
type JumpInsn struct {
	Op    Opcode
	Label string
}

// Label marks a branch target or a local variable range boundary.
type Label struct {
	Name string
}

// IincInsn increments a local int variable.
type IincInsn struct {
	Var       int
	Increment int
}

// MultiANewArrayInsn creates a multi-dimensional array of Desc.
type MultiANewArrayInsn struct {
	Desc string
	Dims int
}

func (i *Insn) Opcode() Opcode               { return i.Op }
func (i *IntInsn) Opcode() Opcode            { return i.Op }
func (i *VarInsn) Opcode() Opcode            { return i.Op }
func (i *TypeInsn) Opcode() Opcode           { return i.Op }
func (i *FieldInsn) Opcode() Opcode          { return i.Op }
func (i *MethodInsn) Opcode() Opcode         { return i.Op }
func (i *LdcInsn) Opcode() Opcode            { return LDC }
func (i *JumpInsn) Opcode() Opcode           { return i.Op }
func (i *Label) Opcode() Opcode              { return OpLabel }
func (i *IincInsn) Opcode() Opcode           { return IINC }
func (i *MultiANewArrayInsn) Opcode() Opcode { return MULTIANEWARRAY }

func (i *Insn) Clone() Instruction               { c := *i; return &c }
func (i *IntInsn) Clone() Instruction            { c := *i; return &c }
func (i *VarInsn) Clone() Instruction            { c := *i; return &c }
func (i *TypeInsn) Clone() Instruction           { c := *i; return &c }
func (i *FieldInsn) Clone() Instruction          { c := *i; return &c }
func (i *MethodInsn) Clone() Instruction         { c := *i; return &c }
func (i *LdcInsn) Clone() Instruction            { c := *i; return &c }
func (i *JumpInsn) Clone() Instruction           { c := *i; return &c }
func (i *Label) Clone() Instruction              { c := *i; return &c }
func (i *IincInsn) Clone() Instruction           { c := *i; return &c }
func (i *MultiANewArrayInsn) Clone() Instruction { c := *i; return &c }

// FieldInsns returns the field instructions of m matching any of ops.
func (m *MethodDefinition) FieldInsns(ops ...Opcode) []*FieldInsn {
	var out []*FieldInsn

	for _, insn := range m.Instructions {
		fi, ok := insn.(*FieldInsn)
		if !ok {
			continue
		}

		for _, op := range ops {
			if fi.Op == op {
				out = append(out, fi)
				break
			}
		}
	}

	return out
}

// MethodInsns returns all method invocation instructions of m.
func (m *MethodDefinition) MethodInsns() []*MethodInsn {
	var out []*MethodInsn

	for _, insn := range m.Instructions {
		if mi, ok := insn.(*MethodInsn); ok {
			out = append(out, mi)
		}
	}

	return out
}
