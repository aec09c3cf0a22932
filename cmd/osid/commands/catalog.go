package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/virtforge/osid/pkg/osinfo"
	"github.com/virtforge/osid/pkg/version"
)

// newCatalogCommand wires CLI helpers for inspecting the OS rule catalog.
func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate OS identifier catalogs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newCatalogShowCommand())
	cmd.AddCommand(newCatalogCheckCommand())

	return cmd
}

func newCatalogShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "List the active rule tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := currentConfig(cmd)
			out := newFormatter(cfg)

			resolver, err := activeResolver(cfg)
			if err != nil {
				emitError(out, cfg, err)
				return err
			}
			catalog := resolver.Catalog()

			linuxRows := make([][]string, 0, len(catalog.Linux))
			for _, r := range catalog.Linux {
				minMajor := "any"
				if r.MinMajor > 0 {
					minMajor = strconv.Itoa(r.MinMajor)
				}
				form := r.Format
				if form == "" {
					form = "{distro}"
				}
				linuxRows = append(linuxRows, []string{r.Distro, form, minMajor})
			}
			if err := out.PrintTable([]string{"distro", "format", "min major"}, linuxRows); err != nil {
				return err
			}

			windowsRows := make([][]string, 0, len(catalog.Windows))
			for _, r := range catalog.Windows {
				windowsRows = append(windowsRows, []string{
					fmt.Sprintf("%d.%d", r.Major, r.Minor),
					r.ID,
					anySubstring(r.VariantContains),
					anySubstring(r.NameContains),
				})
			}
			if err := out.PrintTable([]string{"version", "id", "variant contains", "name contains"}, windowsRows); err != nil {
				return err
			}

			return out.PrintSummary(fmt.Sprintf("catalog %s: %d linux rules, %d windows rules",
				catalog.Version, len(catalog.Linux), len(catalog.Windows)))
		},
	}
}

func newCatalogCheckCommand() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a catalog file before using it as an override",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := currentConfig(cmd)
			out := newFormatter(cfg)

			data, err := os.ReadFile(filePath)
			if err != nil {
				emitError(out, cfg, err)
				return err
			}
			catalog, err := osinfo.ParseCatalog(data)
			if err != nil {
				emitError(out, cfg, err)
				return err
			}
			if err := catalog.Compatible(version.Version); err != nil {
				emitError(out, cfg, err)
				return err
			}

			return out.PrintSummary(fmt.Sprintf("catalog %s is valid (%d linux rules, %d windows rules)",
				catalog.Version, len(catalog.Linux), len(catalog.Windows)))
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Catalog file to validate")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func anySubstring(s string) string {
	if s == "" {
		return "*"
	}
	return s
}
