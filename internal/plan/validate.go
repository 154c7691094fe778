package plan

import (
	"fmt"
	"strings"

	"graftt/internal/diagnostic"
)

// Validate checks a plan for structural problems. When exists is not nil it
// is used to check that named classes can be resolved.
func Validate(f *File, exists func(name string) bool) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("plan_is_nil", "plan file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported plan version %q", f.Version), "", "")
	}

	if len(f.Transplants) == 0 {
		res.AddWarning("empty_plan", "plan has no transplants", "", "")
	}

	validateRemap(res, "", f.Remap)

	seen := make(map[string]int, len(f.Transplants))

	for i, t := range f.Transplants {
		at := fmt.Sprintf("transplants[%d]", i)

		if t.Donor == "" {
			res.AddError("missing_donor", "transplant has no donor", at, "")
			continue
		}

		if prev, dup := seen[t.Donor]; dup {
			res.AddError("duplicate_donor",
				fmt.Sprintf("donor already listed at transplants[%d]", prev), at, t.Donor)
		}

		seen[t.Donor] = i

		if !validName(t.Donor) {
			res.AddError("invalid_name", fmt.Sprintf("invalid internal name %q", t.Donor), at, "donor")
		}

		if t.Recipient != "" && !validName(t.Recipient) {
			res.AddError("invalid_name", fmt.Sprintf("invalid internal name %q", t.Recipient), at, "recipient")
		}

		if t.Recipient == t.Donor {
			res.AddError("self_transplant", "donor and recipient are the same class", at, t.Donor)
		}

		validateRemap(res, at, t.Remap)

		if exists == nil {
			continue
		}

		if !exists(t.Donor) {
			res.AddError("class_not_found", fmt.Sprintf("donor %s not found", t.Donor), at, t.Donor)
		}

		if t.Recipient != "" && !exists(t.Recipient) {
			res.AddError("class_not_found", fmt.Sprintf("recipient %s not found", t.Recipient), at, t.Recipient)
		}
	}

	return res
}

func validateRemap(res *diagnostic.Diagnostics, at string, remap map[string]string) {
	for from, to := range remap {
		if !validName(from) || !validName(to) {
			res.AddError("invalid_remap", fmt.Sprintf("invalid remap entry %q: %q", from, to), at, from)
		}
	}
}

// validName reports whether name looks like a class internal name.
func validName(name string) bool {
	if name == "" || strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return false
	}

	return !strings.ContainsAny(name, ".;[<> ")
}
