package graft

import (
	"errors"
	"fmt"
	"log/slog"

	"graftt/internal/classfile"
	"graftt/internal/diagnostic"
	"graftt/internal/remap"
	"graftt/internal/verify"
)

// Verifier checks the structural integrity of a grafted class.
type Verifier interface {
	Verify(cd *classfile.ClassDefinition) error
}

// VerifierFunc adapts a function to Verifier.
type VerifierFunc func(cd *classfile.ClassDefinition) error

// Verify implements Verifier.
func (f VerifierFunc) Verify(cd *classfile.ClassDefinition) error {
	return f(cd)
}

// Loader resolves a class definition by internal name.
type Loader func(name string) (*classfile.ClassDefinition, error)

// Outcome is the result of a transplant.
type Outcome struct {
	// Recipient is the class the donor was grafted into. On failure it may
	// be partially modified and must not be reused.
	Recipient *classfile.ClassDefinition
	// Diagnostics holds the recorded conditions, including any fatal error.
	Diagnostics diagnostic.Diagnostics
}

// Transplanter grafts donors into recipients.
type Transplanter struct {
	markers  MarkerSource
	verifier Verifier
	logger   *slog.Logger
}

// Option configures a Transplanter.
type Option func(*Transplanter)

// WithMarkers sets the marker source. Nil keeps the default.
func WithMarkers(m MarkerSource) Option {
	return func(t *Transplanter) {
		if m != nil {
			t.markers = m
		}
	}
}

// WithVerifier sets the structural verifier. Nil disables verification.
func WithVerifier(v Verifier) Option {
	return func(t *Transplanter) {
		t.verifier = v
	}
}

// WithLogger sets the logger. Nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(t *Transplanter) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a Transplanter using the default markers and verifier and a
// discarding logger.
func New(opts ...Option) *Transplanter {
	t := &Transplanter{
		markers:  DefaultMarkers(),
		verifier: verify.New(),
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Transplant grafts donor into recipient, mutating recipient in place.
//
// The remapping is applied to every grafted member. If it has no entry for
// the donor, one mapping the donor to the recipient is added to a copy.
func (t *Transplanter) Transplant(
	donor, recipient *classfile.ClassDefinition,
	remapping remap.TypeRemapping,
) (*Outcome, error) {
	out := &Outcome{Recipient: recipient}

	log := t.logger.With("donor", donor.Name, "recipient", recipient.Name)

	if donor.SuperName != classfile.RootType {
		return out, t.fail(out, &Error{Kind: TransplantMustNotExtendClass, Class: donor.Name, Member: donor.SuperName})
	}

	if _, ok := remapping[donor.Name]; !ok {
		remapping = remap.New(donor.Name, recipient.Name, remapping)
	}

	r := remap.NewRemapper(remapping)

	t.resolveInterfaces(donor, recipient, &out.Diagnostics)

	fields, err := t.validateFields(donor, recipient, r)
	if err != nil {
		return out, t.fail(out, err)
	}

	for _, ft := range fields {
		t.graftField(recipient, ft, r)
	}

	log.Debug("fields grafted", "count", len(fields))

	methods, err := stopOnFirstError(GraftableMethods(donor, t.markers),
		func(m *classfile.MethodDefinition) (*MethodTransplant, error) {
			mt := &MethodTransplant{Origin: donor.Name, Method: m, Remapping: remapping}
			return mt, t.fuse(recipient, mt, &out.Diagnostics)
		})
	if err != nil {
		return out, t.fail(out, err)
	}

	log.Debug("methods grafted", "count", len(methods))

	if t.verifier != nil {
		if err := t.verifier.Verify(recipient); err != nil {
			return out, t.fail(out, &Error{Kind: StructureInvalid, Class: recipient.Name, Err: err})
		}
	}

	log.Info("transplant complete")

	return out, nil
}

// TransplantFrom grafts donor into the class named by its Recipient marker,
// resolved through load.
func (t *Transplanter) TransplantFrom(
	donor *classfile.ClassDefinition,
	load Loader,
	remapping remap.TypeRemapping,
) (*Outcome, error) {
	name, err := ReadRecipientType(donor, t.markers)
	if err != nil {
		out := &Outcome{}
		return out, t.fail(out, err)
	}

	recipient, err := load(name)
	if err != nil {
		return &Outcome{}, fmt.Errorf("failed to load recipient %s: %w", name, err)
	}

	return t.Transplant(donor, recipient, remapping)
}

// fail records err in the outcome's diagnostics unless an error with the
// same code was recorded already, and returns err.
func (t *Transplanter) fail(out *Outcome, err error) error {
	var e *Error
	if errors.As(err, &e) && !out.Diagnostics.HasCode(e.Kind.String()) {
		out.Diagnostics.AddError(e.Kind.String(), err.Error(), e.Class, e.Member)
	}

	t.logger.Debug("transplant failed", "error", err)

	return err
}

// Transplant grafts donor into recipient with the default Transplanter and
// returns the mutated recipient.
func Transplant(
	donor, recipient *classfile.ClassDefinition,
	remapping remap.TypeRemapping,
) (*classfile.ClassDefinition, error) {
	out, err := New().Transplant(donor, recipient, remapping)
	if err != nil {
		return nil, err
	}

	return out.Recipient, nil
}

// TransplantFrom grafts donor into the class its Recipient marker names,
// using the default Transplanter.
func TransplantFrom(
	donor *classfile.ClassDefinition,
	load Loader,
	remapping remap.TypeRemapping,
) (*classfile.ClassDefinition, error) {
	out, err := New().TransplantFrom(donor, load, remapping)
	if err != nil {
		return nil, err
	}

	return out.Recipient, nil
}
