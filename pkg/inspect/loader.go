package inspect

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	goversion "github.com/hashicorp/go-version"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/virtforge/osid/pkg/osinfo"
)

var _ osinfo.Source = (*Facts)(nil)

var validate = validator.New()

// factsDoc is the on-disk shape of a fact bundle. Scalar facts that tools
// tend to write unquoted (version, build_id) are decoded loosely and coerced
// afterwards.
type factsDoc struct {
	Type           *string `yaml:"type"`
	Distro         *string `yaml:"distro"`
	Version        any     `yaml:"version"`
	MajorVersion   int     `yaml:"major_version"`
	MinorVersion   int     `yaml:"minor_version"`
	ProductName    *string `yaml:"product_name"`
	ProductVariant *string `yaml:"product_variant"`
	BuildID        any     `yaml:"build_id"`
}

// LoadFile reads a YAML fact bundle from path.
func LoadFile(path string) (*Facts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fact bundle: %w", err)
	}
	facts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fact bundle %s: %w", path, err)
	}
	return facts, nil
}

// Parse unmarshals and validates a YAML fact bundle.
//
// A bundle may carry either explicit major_version/minor_version fields or a
// combined version string ("22.04"), which is split into the two fields when
// they are absent.
func Parse(data []byte) (*Facts, error) {
	var doc factsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", osinfo.ErrFactsInvalid, err)
	}

	facts := &Facts{
		Type:           doc.Type,
		DistroName:     doc.Distro,
		Major:          doc.MajorVersion,
		Minor:          doc.MinorVersion,
		Product:        doc.ProductName,
		ProductEdition: doc.ProductVariant,
	}

	if doc.BuildID != nil {
		build := cast.ToString(doc.BuildID)
		facts.Build = &build
	}

	if doc.Version != nil && facts.Major == 0 && facts.Minor == 0 {
		splitVersion(cast.ToString(doc.Version), facts)
	}

	if err := validate.Struct(facts); err != nil {
		return nil, fmt.Errorf("%w: %w", osinfo.ErrFactsInvalid, err)
	}
	return facts, nil
}

// splitVersion fills the major/minor fields from a combined version string.
// Unparsable versions are left at zero; the resolver treats zero as unknown.
func splitVersion(version string, facts *Facts) {
	if version == "" {
		return
	}
	v, err := goversion.NewVersion(version)
	if err != nil {
		log.Warn().Str("version", version).Msg("ignoring unparsable version fact")
		return
	}
	segments := v.Segments()
	if len(segments) > 0 {
		facts.Major = segments[0]
	}
	if len(segments) > 1 {
		facts.Minor = segments[1]
	}
}
