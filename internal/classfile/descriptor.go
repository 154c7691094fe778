package classfile

import "strings"

// ObjectDescriptor returns the descriptor of an object type given its internal name.
func ObjectDescriptor(internalName string) string {
	if strings.HasPrefix(internalName, "[") {
		return internalName
	}

	return "L" + internalName + ";"
}

// InternalName returns the internal name for an object descriptor
// ("Lcom/acme/Foo;" -> "com/acme/Foo"). Other descriptors are returned as is.
func InternalName(desc string) string {
	if len(desc) > 2 && desc[0] == 'L' && desc[len(desc)-1] == ';' {
		return desc[1 : len(desc)-1]
	}

	return desc
}

// IsFieldDescriptor reports whether desc is a single well-formed field type.
func IsFieldDescriptor(desc string) bool {
	n, ok := scanFieldType(desc, 0, false)
	return ok && n == len(desc)
}

// IsMethodDescriptor reports whether desc is a well-formed method descriptor.
func IsMethodDescriptor(desc string) bool {
	if !strings.HasPrefix(desc, "(") {
		return false
	}

	pos := 1
	for pos < len(desc) && desc[pos] != ')' {
		n, ok := scanFieldType(desc, pos, false)
		if !ok {
			return false
		}

		pos = n
	}

	if pos >= len(desc) {
		return false
	}

	n, ok := scanFieldType(desc, pos+1, true)

	return ok && n == len(desc)
}

// ArgumentTypes returns the parameter descriptors of a method descriptor.
// It returns nil if desc is malformed.
func ArgumentTypes(desc string) []string {
	if !IsMethodDescriptor(desc) {
		return nil
	}

	var args []string

	pos := 1
	for desc[pos] != ')' {
		n, _ := scanFieldType(desc, pos, false)
		args = append(args, desc[pos:n])
		pos = n
	}

	return args
}

// ReturnType returns the return descriptor of a method descriptor, or "" if malformed.
func ReturnType(desc string) string {
	if !IsMethodDescriptor(desc) {
		return ""
	}

	return desc[strings.IndexByte(desc, ')')+1:]
}

// scanFieldType returns the position after the field type starting at pos.
func scanFieldType(desc string, pos int, allowVoid bool) (int, bool) {
	if pos >= len(desc) {
		return pos, false
	}

	switch desc[pos] {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z':
		return pos + 1, true
	case 'V':
		return pos + 1, allowVoid
	case '[':
		return scanFieldType(desc, pos+1, false)
	case 'L':
		end := strings.IndexByte(desc[pos:], ';')
		if end <= 1 {
			return pos, false
		}

		name := desc[pos+1 : pos+end]
		if strings.ContainsAny(name, ".[<>") {
			return pos, false
		}

		return pos + end + 1, true
	default:
		return pos, false
	}
}
