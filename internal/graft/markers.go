package graft

import (
	"strings"

	"graftt/internal/classfile"
)

//go:generate go tool stringer -type=MarkerKind -trimprefix=Marker -output=marker_string.go

// MarkerKind identifies an annotation interpreted by the grafting engine.
type MarkerKind int

const (
	_ MarkerKind = iota

	// MarkerRecipient names the class a donor is grafted into.
	MarkerRecipient
	// MarkerMock excludes a member from the transplant.
	MarkerMock
	// MarkerFuse marks a member replacing the recipient's member of the same signature.
	MarkerFuse
)

// Default marker annotation descriptors.
const (
	RecipientDesc = "Lgraftt/Graft$Recipient;"
	MockDesc      = "Lgraftt/Graft$Mock;"
	FuseDesc      = "Lgraftt/Graft$Fuse;"
)

// MarkerSource answers marker queries about classes and members.
type MarkerSource interface {
	// HasMarker reports whether member carries a marker of kind.
	HasMarker(member classfile.Annotated, kind MarkerKind) bool
	// MarkerValue returns the named element of a class marker, if present.
	MarkerValue(class *classfile.ClassDefinition, kind MarkerKind, name string) (any, bool)
}

// AnnotationMarkers is a MarkerSource backed by annotation descriptors.
type AnnotationMarkers struct {
	descriptors map[MarkerKind]string
}

// DefaultMarkers returns markers using the graftt annotation descriptors.
func DefaultMarkers() *AnnotationMarkers {
	return NewAnnotationMarkers(RecipientDesc, MockDesc, FuseDesc)
}

// NewAnnotationMarkers returns markers using custom annotation descriptors.
func NewAnnotationMarkers(recipient, mock, fuse string) *AnnotationMarkers {
	return &AnnotationMarkers{
		descriptors: map[MarkerKind]string{
			MarkerRecipient: recipient,
			MarkerMock:      mock,
			MarkerFuse:      fuse,
		},
	}
}

// HasMarker implements MarkerSource.
func (m *AnnotationMarkers) HasMarker(member classfile.Annotated, kind MarkerKind) bool {
	desc, ok := m.descriptors[kind]
	if !ok || member == nil {
		return false
	}

	_, found := member.FindAnnotation(desc)

	return found
}

// MarkerValue implements MarkerSource.
func (m *AnnotationMarkers) MarkerValue(class *classfile.ClassDefinition, kind MarkerKind, name string) (any, bool) {
	desc, ok := m.descriptors[kind]
	if !ok || class == nil {
		return nil, false
	}

	a, found := class.FindAnnotation(desc)
	if !found {
		return nil, false
	}

	v, ok := a.Values[name]

	return v, ok
}

// ReadRecipientType returns the internal name of the class the donor's
// Recipient marker points to.
func ReadRecipientType(donor *classfile.ClassDefinition, markers MarkerSource) (string, error) {
	if markers == nil {
		markers = DefaultMarkers()
	}

	missing := &Error{Kind: MissingGraftTargetAnnotation, Class: donor.Name}

	v, ok := markers.MarkerValue(donor, MarkerRecipient, "value")
	if !ok {
		return "", missing
	}

	var name string

	switch val := v.(type) {
	case classfile.TypeConstant:
		name = val.InternalName()
	case string:
		name = classfile.InternalName(val)
	}

	if name == "" || strings.HasPrefix(name, "[") || len(name) == 1 {
		return "", missing
	}

	return name, nil
}

// IsTransplant reports whether donor carries a readable Recipient marker.
func IsTransplant(donor *classfile.ClassDefinition, markers MarkerSource) bool {
	_, err := ReadRecipientType(donor, markers)
	return err == nil
}
