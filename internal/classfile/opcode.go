package classfile

import (
	"fmt"
	"strconv"
)

// Opcode is a JVM instruction opcode. Only the opcodes the model needs are
// declared; values match the JVM specification.
type Opcode int

// OpLabel is a pseudo opcode for label positions.
const OpLabel Opcode = -1

const (
	NOP         Opcode = 0
	ACONST_NULL Opcode = 1
	ICONST_M1   Opcode = 2
	ICONST_0    Opcode = 3
	ICONST_1    Opcode = 4
	ICONST_2    Opcode = 5
	ICONST_3    Opcode = 6
	ICONST_4    Opcode = 7
	ICONST_5    Opcode = 8
	LCONST_0    Opcode = 9
	LCONST_1    Opcode = 10
	FCONST_0    Opcode = 11
	DCONST_0    Opcode = 14
	BIPUSH      Opcode = 16
	SIPUSH      Opcode = 17
	LDC         Opcode = 18
	ILOAD       Opcode = 21
	LLOAD       Opcode = 22
	FLOAD       Opcode = 23
	DLOAD       Opcode = 24
	ALOAD       Opcode = 25
	ISTORE      Opcode = 54
	LSTORE      Opcode = 55
	FSTORE      Opcode = 56
	DSTORE      Opcode = 57
	ASTORE      Opcode = 58
	POP         Opcode = 87
	POP2        Opcode = 88
	DUP         Opcode = 89
	SWAP        Opcode = 95
	IADD        Opcode = 96
	LADD        Opcode = 97
	ISUB        Opcode = 100
	IMUL        Opcode = 104
	IDIV        Opcode = 108
	INEG        Opcode = 116
	IINC        Opcode = 132
	IFEQ        Opcode = 153
	IFNE        Opcode = 154
	IFLT        Opcode = 155
	IFGE        Opcode = 156
	IFGT        Opcode = 157
	IFLE        Opcode = 158
	IF_ICMPEQ   Opcode = 159
	IF_ICMPNE   Opcode = 160
	IF_ACMPEQ   Opcode = 165
	IF_ACMPNE   Opcode = 166
	GOTO        Opcode = 167
	IRETURN     Opcode = 172
	LRETURN     Opcode = 173
	FRETURN     Opcode = 174
	DRETURN     Opcode = 175
	ARETURN     Opcode = 176
	RETURN      Opcode = 177
	GETSTATIC   Opcode = 178
	PUTSTATIC   Opcode = 179
	GETFIELD    Opcode = 180
	PUTFIELD    Opcode = 181

	INVOKEVIRTUAL   Opcode = 182
	INVOKESPECIAL   Opcode = 183
	INVOKESTATIC    Opcode = 184
	INVOKEINTERFACE Opcode = 185
	NEW             Opcode = 187
	NEWARRAY        Opcode = 188
	ANEWARRAY       Opcode = 189
	ARRAYLENGTH     Opcode = 190
	ATHROW          Opcode = 191
	CHECKCAST       Opcode = 192
	INSTANCEOF      Opcode = 193
	MONITORENTER    Opcode = 194
	MONITOREXIT     Opcode = 195
	MULTIANEWARRAY  Opcode = 197
	IFNULL          Opcode = 198
	IFNONNULL       Opcode = 199
)

// OpKind groups opcodes by operand layout.
type OpKind int

const (
	OpKindUnknown OpKind = iota
	OpKindInsn           // no operands
	OpKindInt            // BIPUSH, SIPUSH, NEWARRAY
	OpKindVar            // local variable loads and stores
	OpKindType           // NEW, ANEWARRAY, CHECKCAST, INSTANCEOF
	OpKindField          // GET/PUT field and static
	OpKindMethod         // INVOKE*
	OpKindJump           // conditional and unconditional branches
	OpKindLdc            // LDC
	OpKindIinc           // IINC
	OpKindMultiANewArray // MULTIANEWARRAY
	OpKindLabel          // label pseudo instruction
)

type opcodeInfo struct {
	name string
	kind OpKind
}

var opcodes = map[Opcode]opcodeInfo{
	OpLabel:         {"LABEL", OpKindLabel},
	NOP:             {"NOP", OpKindInsn},
	ACONST_NULL:     {"ACONST_NULL", OpKindInsn},
	ICONST_M1:       {"ICONST_M1", OpKindInsn},
	ICONST_0:        {"ICONST_0", OpKindInsn},
	ICONST_1:        {"ICONST_1", OpKindInsn},
	ICONST_2:        {"ICONST_2", OpKindInsn},
	ICONST_3:        {"ICONST_3", OpKindInsn},
	ICONST_4:        {"ICONST_4", OpKindInsn},
	ICONST_5:        {"ICONST_5", OpKindInsn},
	LCONST_0:        {"LCONST_0", OpKindInsn},
	LCONST_1:        {"LCONST_1", OpKindInsn},
	FCONST_0:        {"FCONST_0", OpKindInsn},
	DCONST_0:        {"DCONST_0", OpKindInsn},
	BIPUSH:          {"BIPUSH", OpKindInt},
	SIPUSH:          {"SIPUSH", OpKindInt},
	LDC:             {"LDC", OpKindLdc},
	ILOAD:           {"ILOAD", OpKindVar},
	LLOAD:           {"LLOAD", OpKindVar},
	FLOAD:           {"FLOAD", OpKindVar},
	DLOAD:           {"DLOAD", OpKindVar},
	ALOAD:           {"ALOAD", OpKindVar},
	ISTORE:          {"ISTORE", OpKindVar},
	LSTORE:          {"LSTORE", OpKindVar},
	FSTORE:          {"FSTORE", OpKindVar},
	DSTORE:          {"DSTORE", OpKindVar},
	ASTORE:          {"ASTORE", OpKindVar},
	POP:             {"POP", OpKindInsn},
	POP2:            {"POP2", OpKindInsn},
	DUP:             {"DUP", OpKindInsn},
	SWAP:            {"SWAP", OpKindInsn},
	IADD:            {"IADD", OpKindInsn},
	LADD:            {"LADD", OpKindInsn},
	ISUB:            {"ISUB", OpKindInsn},
	IMUL:            {"IMUL", OpKindInsn},
	IDIV:            {"IDIV", OpKindInsn},
	INEG:            {"INEG", OpKindInsn},
	IINC:            {"IINC", OpKindIinc},
	IFEQ:            {"IFEQ", OpKindJump},
	IFNE:            {"IFNE", OpKindJump},
	IFLT:            {"IFLT", OpKindJump},
	IFGE:            {"IFGE", OpKindJump},
	IFGT:            {"IFGT", OpKindJump},
	IFLE:            {"IFLE", OpKindJump},
	IF_ICMPEQ:       {"IF_ICMPEQ", OpKindJump},
	IF_ICMPNE:       {"IF_ICMPNE", OpKindJump},
	IF_ACMPEQ:       {"IF_ACMPEQ", OpKindJump},
	IF_ACMPNE:       {"IF_ACMPNE", OpKindJump},
	GOTO:            {"GOTO", OpKindJump},
	IRETURN:         {"IRETURN", OpKindInsn},
	LRETURN:         {"LRETURN", OpKindInsn},
	FRETURN:         {"FRETURN", OpKindInsn},
	DRETURN:         {"DRETURN", OpKindInsn},
	ARETURN:         {"ARETURN", OpKindInsn},
	RETURN:          {"RETURN", OpKindInsn},
	GETSTATIC:       {"GETSTATIC", OpKindField},
	PUTSTATIC:       {"PUTSTATIC", OpKindField},
	GETFIELD:        {"GETFIELD", OpKindField},
	PUTFIELD:        {"PUTFIELD", OpKindField},
	INVOKEVIRTUAL:   {"INVOKEVIRTUAL", OpKindMethod},
	INVOKESPECIAL:   {"INVOKESPECIAL", OpKindMethod},
	INVOKESTATIC:    {"INVOKESTATIC", OpKindMethod},
	INVOKEINTERFACE: {"INVOKEINTERFACE", OpKindMethod},
	NEW:             {"NEW", OpKindType},
	NEWARRAY:        {"NEWARRAY", OpKindInt},
	ANEWARRAY:       {"ANEWARRAY", OpKindType},
	ARRAYLENGTH:     {"ARRAYLENGTH", OpKindInsn},
	ATHROW:          {"ATHROW", OpKindInsn},
	CHECKCAST:       {"CHECKCAST", OpKindType},
	INSTANCEOF:      {"INSTANCEOF", OpKindType},
	MONITORENTER:    {"MONITORENTER", OpKindInsn},
	MONITOREXIT:     {"MONITOREXIT", OpKindInsn},
	MULTIANEWARRAY:  {"MULTIANEWARRAY", OpKindMultiANewArray},
	IFNULL:          {"IFNULL", OpKindJump},
	IFNONNULL:       {"IFNONNULL", OpKindJump},
}

var opcodesByName = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodes))
	for op, info := range opcodes {
		m[info.name] = op
	}

	return m
}()

// String returns the mnemonic, e.g. "INVOKEVIRTUAL".
func (o Opcode) String() string {
	if info, ok := opcodes[o]; ok {
		return info.name
	}

	return "Opcode(" + strconv.Itoa(int(o)) + ")"
}

// Kind returns the operand layout of the opcode.
func (o Opcode) Kind() OpKind {
	return opcodes[o].kind
}

// IsReturn returns true for the xRETURN family.
func (o Opcode) IsReturn() bool {
	return o >= IRETURN && o <= RETURN
}

// ParseOpcode resolves a mnemonic to its Opcode.
func ParseOpcode(name string) (Opcode, error) {
	op, ok := opcodesByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown opcode %q", name)
	}

	return op, nil
}
