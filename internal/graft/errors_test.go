package graft

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: StructureInvalid},
			want: "StructureInvalid",
		},
		{
			name: "class and member",
			err:  &Error{Kind: FieldAlreadyExists, Class: "com/acme/FooTransplant", Member: "counter"},
			want: "FieldAlreadyExists: com/acme/FooTransplant: counter",
		},
		{
			name: "with cause",
			err:  &Error{Kind: StructureInvalid, Class: "com/acme/Foo", Err: errors.New("duplicate_field")},
			want: "StructureInvalid: com/acme/Foo: duplicate_field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("transplant: %w", &Error{Kind: MethodAlreadyExists, Class: helperName, Member: "inc()I"})

	assert.ErrorIs(t, err, ErrMethodAlreadyExists)
	assert.ErrorIs(t, err, &Error{Kind: MethodAlreadyExists, Member: "inc()I"})
	assert.ErrorIs(t, err, &Error{Kind: MethodAlreadyExists, Class: helperName})
	assert.NotErrorIs(t, err, ErrWrongFuseSignature)
	assert.NotErrorIs(t, err, &Error{Kind: MethodAlreadyExists, Member: "dec()I"})

	assert.Equal(t, MethodAlreadyExists, KindOf(err))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := &Error{Kind: StructureInvalid, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "WrongFuseSignature", WrongFuseSignature.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
