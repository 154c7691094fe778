package plan

import "maps"

// File is the root of a YAML graft plan.
type File struct {
	// Version of the plan schema.
	Version string `yaml:"version,omitempty"`

	// Remap holds type substitutions applied to every transplant.
	Remap map[string]string `yaml:"remap,omitempty"`

	// Transplants are applied in order.
	Transplants []Transplant `yaml:"transplants"`
}

// Transplant grafts one donor into one recipient.
type Transplant struct {
	// Donor is the internal name of the donor class.
	Donor string `yaml:"donor"`

	// Recipient is the internal name of the recipient class. When empty the
	// donor's Recipient marker decides.
	Recipient string `yaml:"recipient,omitempty"`

	// Remap holds type substitutions for this transplant only; they take
	// precedence over the plan-wide ones.
	Remap map[string]string `yaml:"remap,omitempty"`
}

// Aux returns the plan-wide substitutions overlaid with the transplant's own.
func (f *File) Aux(t Transplant) map[string]string {
	aux := make(map[string]string, len(f.Remap)+len(t.Remap))
	maps.Copy(aux, f.Remap)
	maps.Copy(aux, t.Remap)

	return aux
}
