package graft

import (
	"errors"
	"strings"
)

// Error is a transplant failure, or a recorded non-fatal condition.
type Error struct {
	Kind   Kind
	Class  string // Donor internal name; the recipient for StructureInvalid
	Member string // Field name, method signature or interface involved
	Err    error  // Underlying cause, if any
}

// Sentinels for errors.Is; they match any Error of the same Kind.
var (
	ErrTransplantMustNotExtendClass  = &Error{Kind: TransplantMustNotExtendClass}
	ErrInterfaceAlreadyExists        = &Error{Kind: InterfaceAlreadyExists}
	ErrFieldAlreadyExists            = &Error{Kind: FieldAlreadyExists}
	ErrFieldDefaultValueNotSupported = &Error{Kind: FieldDefaultValueNotSupported}
	ErrMethodAlreadyExists           = &Error{Kind: MethodAlreadyExists}
	ErrWrongFuseSignature            = &Error{Kind: WrongFuseSignature}
	ErrMissingGraftTargetAnnotation  = &Error{Kind: MissingGraftTargetAnnotation}
	ErrStructureInvalid              = &Error{Kind: StructureInvalid}
)

// Error returns e.g. "FieldAlreadyExists: com/acme/FooTransplant: counter".
func (e *Error) Error() string {
	parts := []string{e.Kind.String()}
	if e.Class != "" {
		parts = append(parts, e.Class)
	}

	if e.Member != "" {
		parts = append(parts, e.Member)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same Kind. Class and Member of target
// must match too unless left empty.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind &&
		(t.Class == "" || t.Class == e.Class) &&
		(t.Member == "" || t.Member == e.Member)
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
