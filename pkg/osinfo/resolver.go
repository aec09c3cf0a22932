package osinfo

import (
	"fmt"
	"strings"
)

// Unknown is the result returned when every required fact was obtained but
// no classification rule matched. It is a terminal result, not an error.
const Unknown = "unknown"

// Resolver runs the ordered rule tables of one catalog over inspection
// facts. It holds no mutable state; one resolver may serve any number of
// concurrent Resolve calls.
type Resolver struct {
	catalog *Catalog
}

// NewResolver returns a resolver backed by the given catalog.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Catalog returns the catalog backing this resolver.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// Resolve maps the facts exposed by src to a canonical short OS identifier.
//
// The result is a pure function of src and the catalog tables: the same
// facts always yield the same identifier. Unknown is returned when the facts
// are complete but match no rule; an error wrapping ErrMissingFacts is
// returned only when a required fact cannot be obtained or parsed.
func (r *Resolver) Resolve(src Source) (string, error) {
	osType, ok := src.OSType()
	if !ok {
		return "", newMissingFactError("type")
	}
	distro, ok := src.Distro()
	if !ok {
		return "", newMissingFactError("distro")
	}
	major := src.MajorVersion()
	minor := src.MinorVersion()

	switch osType {
	case "linux":
		if id, ok := r.resolveLinux(distro, major, minor); ok {
			return id, nil
		}
	case "freebsd", "netbsd", "openbsd":
		return fmt.Sprintf("%s%d.%d", distro, major, minor), nil
	case "dos":
		// The catalog has a single DOS entry; detected version fields do
		// not influence it.
		if distro == "msdos" {
			return "msdos6.22", nil
		}
	case "windows":
		return r.resolveWindows(src, major, minor)
	}

	return Unknown, nil
}

func (r *Resolver) resolveLinux(distro string, major, minor int) (string, bool) {
	for _, rule := range r.catalog.Linux {
		if rule.matches(distro, major) {
			return rule.render(distro, major, minor), true
		}
	}

	// SLES changes naming shape at the major 15 boundary (sle15 vs
	// sles12sp1); that structural break keeps it out of the table.
	if distro == "sles" {
		base := "sles"
		if major >= 15 {
			base = "sle"
		}
		if minor == 0 {
			return fmt.Sprintf("%s%d", base, major), true
		}
		return fmt.Sprintf("%s%dsp%d", base, major, minor), true
	}

	// Untabled distros with any version information still get a usable
	// identifier.
	if distro != "unknown" && (major > 0 || minor > 0) {
		return fmt.Sprintf("%s%d.%d", distro, major, minor), true
	}

	return "", false
}

func (r *Resolver) resolveWindows(src Source, major, minor int) (string, error) {
	name, ok := src.ProductName()
	if !ok {
		return "", newMissingFactError("product name")
	}
	variant, ok := src.ProductVariant()
	if !ok {
		return "", newMissingFactError("product variant")
	}

	for _, rule := range r.catalog.Windows {
		if rule.matches(major, minor, name, variant) {
			return rule.ID, nil
		}
	}

	// Windows client releases from 10 onward all report version 10.0; only
	// the OS build number separates Windows 10 from Windows 11 (builds
	// 22000 and later).
	if major == 10 && minor == 0 && !strings.Contains(variant, "Server") {
		raw, ok := src.BuildID()
		if !ok {
			return "", newMissingFactError("build id")
		}
		build := ParseUnsignedInt(raw)
		if build == -1 {
			return "", newUnparsableFactError("build id", raw)
		}
		if build >= 22000 {
			return "win11", nil
		}
		return "win10", nil
	}

	return Unknown, nil
}
