package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/virtforge/osid/cmd/osid/internal/format"
	"github.com/virtforge/osid/pkg/appctx"
	"github.com/virtforge/osid/pkg/config"
	"github.com/virtforge/osid/pkg/inspect"
	"github.com/virtforge/osid/pkg/osinfo"
	"github.com/virtforge/osid/pkg/version"
)

// resolveReport is the machine-readable result of one resolution.
type resolveReport struct {
	InspectionID   string `json:"inspection_id"`
	Identifier     string `json:"identifier"`
	CatalogVersion string `json:"catalog_version"`
}

func newResolveCommand() *cobra.Command {
	var factsPath string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a guest fact bundle to a canonical OS identifier",
		Long: `Resolve reads a YAML fact bundle describing one inspected guest root and
prints the canonical catalog identifier. "unknown" is a normal result for
guests the catalog does not classify; missing required facts are an error.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := currentConfig(cmd)
			out := newFormatter(cfg)

			facts, err := inspect.LoadFile(factsPath)
			if err != nil {
				emitError(out, cfg, err)
				return err
			}

			resolver, err := activeResolver(cfg)
			if err != nil {
				emitError(out, cfg, err)
				return err
			}

			id, err := resolver.Resolve(facts)
			if err != nil {
				emitError(out, cfg, err)
				for _, hint := range osinfo.Suggestions(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), "  "+hint)
				}
				return err
			}

			report := resolveReport{
				InspectionID:   uuid.NewString(),
				Identifier:     id,
				CatalogVersion: resolver.Catalog().Version,
			}
			log.Debug().
				Str("inspectionId", report.InspectionID).
				Str("identifier", id).
				Msg("fact bundle resolved")

			if cfg.Output.Format == string(format.ModeJSON) {
				return out.PrintJSON(report)
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
				return err
			}
			return out.PrintSummary(fmt.Sprintf("resolved with catalog %s", report.CatalogVersion))
		},
	}

	cmd.Flags().StringVarP(&factsPath, "facts", "f", "", "Path to the YAML fact bundle")
	_ = cmd.MarkFlagRequired("facts")

	return cmd
}

// currentConfig pulls the loaded configuration off the command context,
// falling back to defaults when the root PersistentPreRunE did not run
// (direct command construction in tests).
func currentConfig(cmd *cobra.Command) config.Config {
	if manager, ok := appctx.Config(cmd.Context()); ok {
		return manager.Get()
	}
	return config.DefaultConfig()
}

// emitError writes a machine-readable error object in JSON mode. In table
// mode the error is left to main, which prints it once to stderr.
func emitError(out format.Formatter, cfg config.Config, err error) {
	if cfg.Output.Format == string(format.ModeJSON) {
		_ = out.PrintError(err)
	}
}

func newFormatter(cfg config.Config) format.Formatter {
	mode := format.OutputMode(cfg.Output.Format)
	if format.ValidateMode(cfg.Output.Format) != nil {
		mode = format.ModeTable
	}
	return format.New(os.Stdout, os.Stderr, mode, cfg.Output.Quiet, !cfg.Output.NoColor)
}

// activeResolver returns the default embedded-catalog resolver, or one built
// from the configured catalog override file.
func activeResolver(cfg config.Config) (*osinfo.Resolver, error) {
	if cfg.Catalog.Path == "" {
		return osinfo.DefaultResolver(), nil
	}

	data, err := os.ReadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog override: %w", errors.Join(osinfo.ErrCatalogInvalid, err))
	}
	catalog, err := osinfo.ParseCatalog(data)
	if err != nil {
		return nil, err
	}
	if err := catalog.Compatible(version.Version); err != nil {
		return nil, err
	}
	log.Info().Str("path", cfg.Catalog.Path).Str("catalogVersion", catalog.Version).Msg("using catalog override")
	return osinfo.NewResolver(catalog), nil
}
