// Package inspect models the fact bundle produced by inspecting one guest
// root and adapts it to the resolver's fact source contract. The facts
// themselves come from outside; this package only carries and validates them.
package inspect

// Facts holds the inspected OS attributes of one guest root. Optional facts
// are pointers so a bundle keeps "absent" distinguishable from "empty".
//
// A Facts value is caller-owned, built once per inspection session, and
// implements osinfo.Source.
type Facts struct {
	Type           *string `yaml:"type" json:"type,omitempty"`
	DistroName     *string `yaml:"distro" json:"distro,omitempty"`
	Major          int     `yaml:"major_version" json:"major_version" validate:"min=0"`
	Minor          int     `yaml:"minor_version" json:"minor_version" validate:"min=0"`
	Product        *string `yaml:"product_name" json:"product_name,omitempty"`
	ProductEdition *string `yaml:"product_variant" json:"product_variant,omitempty"`
	Build          *string `yaml:"build_id" json:"build_id,omitempty"`
}

func optional(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// OSType implements osinfo.Source.
func (f *Facts) OSType() (string, bool) { return optional(f.Type) }

// Distro implements osinfo.Source.
func (f *Facts) Distro() (string, bool) { return optional(f.DistroName) }

// MajorVersion implements osinfo.Source.
func (f *Facts) MajorVersion() int { return f.Major }

// MinorVersion implements osinfo.Source.
func (f *Facts) MinorVersion() int { return f.Minor }

// ProductName implements osinfo.Source.
func (f *Facts) ProductName() (string, bool) { return optional(f.Product) }

// ProductVariant implements osinfo.Source.
func (f *Facts) ProductVariant() (string, bool) { return optional(f.ProductEdition) }

// BuildID implements osinfo.Source.
func (f *Facts) BuildID() (string, bool) { return optional(f.Build) }
