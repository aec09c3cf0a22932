package osinfo

import (
	_ "embed"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

//go:embed data/os_catalog.yaml
var embeddedCatalogYAML []byte

// Catalog bundles the ordered per-family rule tables with catalog metadata.
// A loaded catalog is never mutated; concurrent resolvers may share one.
type Catalog struct {
	// Version identifies the catalog revision the tables were taken from.
	Version string `yaml:"version"`

	// MinAppVersion is the lowest application version that understands this
	// catalog. Empty means any.
	MinAppVersion string `yaml:"min_app_version,omitempty"`

	Linux   []LinuxRule   `yaml:"linux"`
	Windows []WindowsRule `yaml:"windows"`
}

// ParseCatalog parses raw catalog YAML and validates the rule tables.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, WithErrorCode(fmt.Errorf("%w: %v", ErrCatalogInvalid, err), errorCodeCatalogInvalid)
	}
	if err := c.validate(); err != nil {
		return nil, WithErrorCode(fmt.Errorf("%w: %v", ErrCatalogInvalid, err), errorCodeCatalogInvalid)
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Linux) == 0 {
		return fmt.Errorf("linux rule table is empty")
	}
	if len(c.Windows) == 0 {
		return fmt.Errorf("windows rule table is empty")
	}
	for i, r := range c.Linux {
		if r.Distro == "" {
			return fmt.Errorf("linux rule %d: missing distro", i)
		}
		if r.MinMajor < 0 {
			return fmt.Errorf("linux rule %d (%s): negative min_major", i, r.Distro)
		}
	}
	for i, r := range c.Windows {
		if r.ID == "" {
			return fmt.Errorf("windows rule %d: missing id", i)
		}
		if r.Major <= 0 || r.Minor < 0 {
			return fmt.Errorf("windows rule %d (%s): invalid version pair %d.%d", i, r.ID, r.Major, r.Minor)
		}
	}
	if c.MinAppVersion != "" {
		if _, err := semver.NewVersion(c.MinAppVersion); err != nil {
			return fmt.Errorf("min_app_version %q: %v", c.MinAppVersion, err)
		}
	}
	return nil
}

// Compatible reports whether this catalog may be used by the given
// application version. Dev builds accept any catalog.
func (c *Catalog) Compatible(appVersion string) error {
	if c.MinAppVersion == "" || appVersion == "" || appVersion == "dev" {
		return nil
	}
	floor, err := semver.NewVersion(c.MinAppVersion)
	if err != nil {
		return WithErrorCode(fmt.Errorf("%w: min_app_version %q: %v", ErrCatalogInvalid, c.MinAppVersion, err), errorCodeCatalogInvalid)
	}
	current, err := semver.NewVersion(appVersion)
	if err != nil {
		return WithErrorCode(fmt.Errorf("%w: application version %q: %v", ErrCatalogInvalid, appVersion, err), errorCodeCatalogInvalid)
	}
	if current.LessThan(floor) {
		return WithErrorCode(
			fmt.Errorf("%w: catalog %s needs application >= %s, have %s", ErrCatalogTooNew, c.Version, c.MinAppVersion, appVersion),
			errorCodeCatalogTooNew)
	}
	return nil
}

// loadBuiltinCatalog parses the catalog compiled into the binary.
// The embedded catalog ships with the binary, so a parse failure here is a
// packaging defect, not a runtime condition.
func loadBuiltinCatalog() *Catalog {
	c, err := ParseCatalog(embeddedCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded OS catalog is invalid: %v", err))
	}
	return c
}
