package graft

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies transplant failures and conditions.
type Kind int

const (
	_ Kind = iota // skip zero value, it marks errors that are not transplant errors

	// TransplantMustNotExtendClass: the donor's superclass is not the root type.
	TransplantMustNotExtendClass
	// InterfaceAlreadyExists: the recipient already implements a donor interface.
	InterfaceAlreadyExists
	// FieldAlreadyExists: the recipient already declares a donor field's name.
	FieldAlreadyExists
	// FieldDefaultValueNotSupported: the donor assigns the field in <init> or <clinit>.
	FieldDefaultValueNotSupported
	// MethodAlreadyExists: a method without Fuse collides with a recipient method.
	MethodAlreadyExists
	// WrongFuseSignature: a Fuse member has no recipient counterpart.
	WrongFuseSignature
	// MissingGraftTargetAnnotation: the donor has no readable Recipient marker.
	MissingGraftTargetAnnotation
	// StructureInvalid: the grafted recipient failed structural verification.
	StructureInvalid
)
