package plan

import (
	"fmt"
	"log/slog"

	"graftt/internal/classfile"
	"graftt/internal/diagnostic"
	"graftt/internal/graft"
)

// Result holds the recipients produced by a plan.
type Result struct {
	// Classes maps recipient names to their grafted definitions.
	Classes map[string]*classfile.ClassDefinition
	// Order lists recipient names in the order they were first grafted.
	Order []string
	// Diagnostics collects the conditions recorded by every transplant.
	Diagnostics diagnostic.Diagnostics
}

// Runner applies plans.
type Runner struct {
	load         graft.Loader
	transplanter *graft.Transplanter
	logger       *slog.Logger
}

// NewRunner creates a Runner resolving classes through load. A nil
// transplanter or logger uses the defaults.
func NewRunner(load graft.Loader, transplanter *graft.Transplanter, logger *slog.Logger) *Runner {
	if transplanter == nil {
		transplanter = graft.New()
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{load: load, transplanter: transplanter, logger: logger}
}

// Run applies every transplant of f in order and stops at the first error.
// The returned Result is never nil; on error it holds what was grafted so
// far, which must not be written out.
func (r *Runner) Run(f *File) (*Result, error) {
	res := &Result{Classes: make(map[string]*classfile.ClassDefinition)}

	if err := Validate(f, nil).Error(); err != nil {
		return res, fmt.Errorf("invalid plan: %w", err)
	}

	// Recipients grafted earlier are reused so donors accumulate.
	recipients := func(name string) (*classfile.ClassDefinition, error) {
		if cd, ok := res.Classes[name]; ok {
			return cd, nil
		}

		cd, err := r.load(name)
		if err != nil {
			return nil, err
		}

		res.Classes[name] = cd
		res.Order = append(res.Order, name)

		return cd, nil
	}

	for i, t := range f.Transplants {
		log := r.logger.With("index", i, "donor", t.Donor)

		donor, err := r.load(t.Donor)
		if err != nil {
			return res, fmt.Errorf("failed to load donor %s: %w", t.Donor, err)
		}

		var out *graft.Outcome

		if t.Recipient != "" {
			recipient, lerr := recipients(t.Recipient)
			if lerr != nil {
				return res, fmt.Errorf("failed to load recipient %s: %w", t.Recipient, lerr)
			}

			out, err = r.transplanter.Transplant(donor, recipient, f.Aux(t))
		} else {
			out, err = r.transplanter.TransplantFrom(donor, recipients, f.Aux(t))
		}

		if out != nil {
			res.Diagnostics.Merge(out.Diagnostics)
		}

		if err != nil {
			return res, fmt.Errorf("transplant %s failed: %w", t.Donor, err)
		}

		log.Info("grafted", "recipient", out.Recipient.Name)
	}

	return res, nil
}

// Write stores every recipient of res below dir using the class file
// layout, and returns the written paths.
func (r *Runner) Write(res *Result, dir string) ([]string, error) {
	paths := make([]string, 0, len(res.Order))

	for _, name := range res.Order {
		path := classfile.PathFor(dir, name)
		if err := classfile.WriteFile(res.Classes[name], path); err != nil {
			return paths, err
		}

		r.logger.Debug("wrote class", "class", name, "path", path)
		paths = append(paths, path)
	}

	return paths, nil
}
