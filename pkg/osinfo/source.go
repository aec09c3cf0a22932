// Package osinfo maps already-inspected guest OS facts to the canonical
// short identifiers used by the libosinfo catalog naming scheme
// (e.g. "fedora38", "win2k19", "sle15sp3").
//
// The core types include:
//   - Source: the contract with whatever gathered the facts about one
//     inspected guest root.
//   - Catalog: the ordered rule tables baked into the binary.
//   - Resolver: the deterministic decision procedure over those tables.
package osinfo

// Source exposes the facts gathered about one inspected guest root.
// String accessors report presence alongside the value so that a fact which
// is absent stays distinguishable from one that is present but empty.
//
// All accessors must be side-effect free; the resolver may call them in any
// order and calls BuildID only on the Windows 10.0 client path.
type Source interface {
	// OSType returns the OS family, one of "linux", "freebsd", "netbsd",
	// "openbsd", "dos", "windows", or another value for unrecognized guests.
	OSType() (string, bool)

	// Distro returns the distribution name. Meaningful for linux, BSD and
	// dos guests.
	Distro() (string, bool)

	// MajorVersion and MinorVersion return 0 when the version is unknown.
	MajorVersion() int
	MinorVersion() int

	// ProductName and ProductVariant are populated only for windows guests.
	ProductName() (string, bool)
	ProductVariant() (string, bool)

	// BuildID returns the OS build number as a string. Consulted only for
	// Windows 10.0 client guests, where the marketed version is encoded
	// solely in the build number.
	BuildID() (string, bool)
}
