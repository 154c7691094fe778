package classfile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// typeTag marks class literal scalars, e.g. `value: !type Lcom/acme/Foo;`.
const typeTag = "!type"

// --- AccessFlags YAML methods ---

// UnmarshalYAML accepts either a single modifier or a list of modifiers.
func (a *AccessFlags) UnmarshalYAML(node *yaml.Node) error {
	var names []string

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value != "" {
			names = []string{node.Value}
		}
	case yaml.SequenceNode:
		if err := node.Decode(&names); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: expected access modifier or list of modifiers", node.Line)
	}

	flags, err := ParseAccess(names)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*a = flags

	return nil
}

// MarshalYAML outputs the modifier keywords as a flow sequence.
func (a AccessFlags) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, name := range a.Names() {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name})
	}

	return node, nil
}

// --- TypeConstant YAML methods ---

// MarshalYAML outputs the descriptor tagged as a class literal.
func (t TypeConstant) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: typeTag, Value: string(t)}, nil
}

// --- Annotation YAML methods ---

type annotationDoc struct {
	Desc    string               `yaml:"desc"`
	Visible bool                 `yaml:"visible,omitempty"`
	Values  map[string]yaml.Node `yaml:"values,omitempty"`
}

// UnmarshalYAML decodes an annotation, keeping `!type` scalars as TypeConstant.
func (a *Annotation) UnmarshalYAML(node *yaml.Node) error {
	var doc annotationDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}

	if doc.Desc == "" {
		return fmt.Errorf("line %d: annotation without desc", node.Line)
	}

	a.Desc = doc.Desc
	a.Visible = doc.Visible
	a.Values = nil

	for name, raw := range doc.Values {
		v, err := decodeValue(&raw)
		if err != nil {
			return fmt.Errorf("annotation %s value %q: %w", doc.Desc, name, err)
		}

		if a.Values == nil {
			a.Values = make(map[string]any, len(doc.Values))
		}

		a.Values[name] = v
	}

	return nil
}

// MarshalYAML encodes an annotation with its values.
func (a Annotation) MarshalYAML() (any, error) {
	type plain struct {
		Desc    string         `yaml:"desc"`
		Visible bool           `yaml:"visible,omitempty"`
		Values  map[string]any `yaml:"values,omitempty"`
	}

	return plain{Desc: a.Desc, Visible: a.Visible, Values: a.Values}, nil
}

func decodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == typeTag {
			return TypeConstant(node.Value), nil
		}

		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}

		return v, nil

	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := decodeValue(c)
			if err != nil {
				return nil, err
			}

			out = append(out, v)
		}

		return out, nil

	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			v, err := decodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}

			out[node.Content[i].Value] = v
		}

		return out, nil

	case yaml.AliasNode:
		return decodeValue(node.Alias)

	default:
		return nil, fmt.Errorf("line %d: unsupported value", node.Line)
	}
}

// --- MethodDefinition YAML methods ---

type methodDoc struct {
	Name        string          `yaml:"name"`
	Desc        string          `yaml:"desc"`
	Signature   string          `yaml:"signature,omitempty"`
	Access      AccessFlags     `yaml:"access,omitempty"`
	Exceptions  []string        `yaml:"exceptions,omitempty"`
	Annotations []Annotation    `yaml:"annotations,omitempty"`
	Code        []insnDoc       `yaml:"code,omitempty"`
	Locals      []LocalVariable `yaml:"locals,omitempty"`
	TryCatch    []TryCatchBlock `yaml:"try_catch,omitempty"`
}

// insnDoc is the flat YAML shape shared by all instruction kinds.
type insnDoc struct {
	Op        string     `yaml:"op,omitempty"`
	Label     string     `yaml:"label,omitempty"`
	Owner     string     `yaml:"owner,omitempty"`
	Name      string     `yaml:"name,omitempty"`
	Desc      string     `yaml:"desc,omitempty"`
	Type      string     `yaml:"type,omitempty"`
	Var       *int       `yaml:"var,omitempty"`
	Operand   *int       `yaml:"operand,omitempty"`
	Increment *int       `yaml:"incr,omitempty"`
	Dims      int        `yaml:"dims,omitempty"`
	Itf       bool       `yaml:"itf,omitempty"`
	Value     *yaml.Node `yaml:"value,omitempty"`
}

// UnmarshalYAML decodes a method and its instruction list.
func (m *MethodDefinition) UnmarshalYAML(node *yaml.Node) error {
	var doc methodDoc
	if err := node.Decode(&doc); err != nil {
		return err
	}

	*m = MethodDefinition{
		Name:           doc.Name,
		Desc:           doc.Desc,
		Signature:      doc.Signature,
		Access:         doc.Access,
		Exceptions:     doc.Exceptions,
		Annotations:    doc.Annotations,
		LocalVariables: doc.Locals,
		TryCatchBlocks: doc.TryCatch,
	}

	for i := range doc.Code {
		insn, err := doc.Code[i].instruction()
		if err != nil {
			return fmt.Errorf("method %s%s instruction %d: %w", doc.Name, doc.Desc, i, err)
		}

		m.Instructions = append(m.Instructions, insn)
	}

	return nil
}

// MarshalYAML encodes a method and its instruction list.
func (m *MethodDefinition) MarshalYAML() (any, error) {
	doc := methodDoc{
		Name:        m.Name,
		Desc:        m.Desc,
		Signature:   m.Signature,
		Access:      m.Access,
		Exceptions:  m.Exceptions,
		Annotations: m.Annotations,
		Locals:      m.LocalVariables,
		TryCatch:    m.TryCatchBlocks,
	}

	for i, insn := range m.Instructions {
		d, err := newInsnDoc(insn)
		if err != nil {
			return nil, fmt.Errorf("method %s%s instruction %d: %w", m.Name, m.Desc, i, err)
		}

		doc.Code = append(doc.Code, d)
	}

	return doc, nil
}

func (d *insnDoc) instruction() (Instruction, error) {
	if d.Op == "" {
		if d.Label == "" {
			return nil, errors.New("instruction needs op or label")
		}

		return &Label{Name: d.Label}, nil
	}

	op, err := ParseOpcode(d.Op)
	if err != nil {
		return nil, err
	}

	switch op.Kind() {
	case OpKindInsn:
		return &Insn{Op: op}, nil
	case OpKindInt:
		if d.Operand == nil {
			return nil, fmt.Errorf("%s requires operand", op)
		}

		return &IntInsn{Op: op, Operand: *d.Operand}, nil
	case OpKindVar:
		if d.Var == nil {
			return nil, fmt.Errorf("%s requires var", op)
		}

		return &VarInsn{Op: op, Var: *d.Var}, nil
	case OpKindType:
		if d.Type == "" {
			return nil, fmt.Errorf("%s requires type", op)
		}

		return &TypeInsn{Op: op, Type: d.Type}, nil
	case OpKindField:
		if d.Owner == "" || d.Name == "" || d.Desc == "" {
			return nil, fmt.Errorf("%s requires owner, name and desc", op)
		}

		return &FieldInsn{Op: op, Owner: d.Owner, Name: d.Name, Desc: d.Desc}, nil
	case OpKindMethod:
		if d.Owner == "" || d.Name == "" || d.Desc == "" {
			return nil, fmt.Errorf("%s requires owner, name and desc", op)
		}

		return &MethodInsn{Op: op, Owner: d.Owner, Name: d.Name, Desc: d.Desc, Interface: d.Itf}, nil
	case OpKindJump:
		if d.Label == "" {
			return nil, fmt.Errorf("%s requires label", op)
		}

		return &JumpInsn{Op: op, Label: d.Label}, nil
	case OpKindLdc:
		if d.Value == nil {
			return nil, errors.New("LDC requires value")
		}

		v, err := decodeValue(d.Value)
		if err != nil {
			return nil, err
		}

		return &LdcInsn{Value: v}, nil
	case OpKindIinc:
		if d.Var == nil || d.Increment == nil {
			return nil, errors.New("IINC requires var and incr")
		}

		return &IincInsn{Var: *d.Var, Increment: *d.Increment}, nil
	case OpKindMultiANewArray:
		if d.Desc == "" || d.Dims <= 0 {
			return nil, errors.New("MULTIANEWARRAY requires desc and dims")
		}

		return &MultiANewArrayInsn{Desc: d.Desc, Dims: d.Dims}, nil
	case OpKindLabel:
		if d.Label == "" {
			return nil, errors.New("LABEL requires label")
		}

		return &Label{Name: d.Label}, nil
	default:
		return nil, fmt.Errorf("unsupported opcode %s", op)
	}
}

func newInsnDoc(insn Instruction) (insnDoc, error) {
	switch i := insn.(type) {
	case *Insn:
		return insnDoc{Op: i.Op.String()}, nil
	case *IntInsn:
		return insnDoc{Op: i.Op.String(), Operand: &i.Operand}, nil
	case *VarInsn:
		return insnDoc{Op: i.Op.String(), Var: &i.Var}, nil
	case *TypeInsn:
		return insnDoc{Op: i.Op.String(), Type: i.Type}, nil
	case *FieldInsn:
		return insnDoc{Op: i.Op.String(), Owner: i.Owner, Name: i.Name, Desc: i.Desc}, nil
	case *MethodInsn:
		return insnDoc{Op: i.Op.String(), Owner: i.Owner, Name: i.Name, Desc: i.Desc, Itf: i.Interface}, nil
	case *JumpInsn:
		return insnDoc{Op: i.Op.String(), Label: i.Label}, nil
	case *Label:
		return insnDoc{Label: i.Name}, nil
	case *IincInsn:
		return insnDoc{Op: IINC.String(), Var: &i.Var, Increment: &i.Increment}, nil
	case *MultiANewArrayInsn:
		return insnDoc{Op: MULTIANEWARRAY.String(), Desc: i.Desc, Dims: i.Dims}, nil
	case *LdcInsn:
		var value yaml.Node
		if err := value.Encode(i.Value); err != nil {
			return insnDoc{}, err
		}

		return insnDoc{Op: LDC.String(), Value: &value}, nil
	default:
		return insnDoc{}, fmt.Errorf("unsupported instruction %T", insn)
	}
}
