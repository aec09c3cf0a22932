package osinfo

import (
	"fmt"
	"strconv"
	"strings"
)

// LinuxRule maps a distribution, optionally floored at a minimum major
// version, to an identifier template. Rules are scanned in catalog order and
// the first match wins, so version-floored rules must sit above the unbounded
// rule for the same distro.
type LinuxRule struct {
	Distro string `yaml:"distro"`

	// Format is the identifier template. The placeholders {distro}, {major},
	// {minor} and {minor:02} (zero-padded to two digits) are substituted.
	// An empty format means the identifier is the distro name itself.
	Format string `yaml:"format,omitempty"`

	// MinMajor is the lowest major version this rule applies to.
	// Zero matches any version.
	MinMajor int `yaml:"min_major,omitempty"`
}

func (r LinuxRule) matches(distro string, major int) bool {
	return distro == r.Distro && major >= r.MinMajor
}

// render substitutes the version facts into the rule's format template.
func (r LinuxRule) render(distro string, major, minor int) string {
	if r.Format == "" {
		return distro
	}
	return strings.NewReplacer(
		"{distro}", distro,
		"{major}", strconv.Itoa(major),
		"{minor:02}", fmt.Sprintf("%02d", minor),
		"{minor}", strconv.Itoa(minor),
	).Replace(r.Format)
}

// WindowsRule maps an NT version pair, optionally narrowed by product variant
// and product name substrings, to a fixed identifier. Several rules share one
// version pair and are disambiguated only by their position in the table, so
// substring-narrowed rules must sit above their wildcard siblings.
type WindowsRule struct {
	Major int    `yaml:"major"`
	Minor int    `yaml:"minor"`
	ID    string `yaml:"id"`

	// VariantContains and NameContains are case-sensitive substring
	// conditions on the product variant and product name. Empty means any.
	VariantContains string `yaml:"variant_contains,omitempty"`
	NameContains    string `yaml:"name_contains,omitempty"`
}

func (r WindowsRule) matches(major, minor int, name, variant string) bool {
	if major != r.Major || minor != r.Minor {
		return false
	}
	if r.VariantContains != "" && !strings.Contains(variant, r.VariantContains) {
		return false
	}
	if r.NameContains != "" && !strings.Contains(name, r.NameContains) {
		return false
	}
	return true
}
