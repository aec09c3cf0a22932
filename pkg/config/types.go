// pkg/config/types.go
package config

// Config is the root configuration structure for osid.
type Config struct {
	Log     LogConfig     `description:"Logging configuration" koanf:"log"`
	Catalog CatalogConfig `description:"OS catalog configuration" koanf:"catalog"`
	Output  OutputConfig  `description:"Output configuration" koanf:"output"`
}

// LogConfig holds logging related configuration.
type LogConfig struct {
	Level  string `description:"Log level: debug | info | warn | error" koanf:"level"`
	Format string `description:"Log format: json | text" koanf:"format"`
	File   string `description:"Log file path (empty for stderr)" koanf:"file"`
}

// CatalogConfig holds OS catalog configuration.
type CatalogConfig struct {
	// Path overrides the catalog embedded in the binary with a file on
	// disk. The override goes through the same parsing and validation.
	Path string `description:"Override OS catalog file path" koanf:"path"`
}

// OutputConfig holds CLI output configuration.
type OutputConfig struct {
	Format  string `description:"Output format: table | json" koanf:"format"`
	Quiet   bool   `description:"Suppress summary output" koanf:"quiet"`
	NoColor bool   `description:"Disable colored output" koanf:"no_color"`
}
