package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/virtforge/osid/pkg/appctx"
	"github.com/virtforge/osid/pkg/config"
	"github.com/virtforge/osid/pkg/logging"
	"github.com/virtforge/osid/pkg/version"
)

const cliExecutable = "osid"

// NewCommand constructs the top-level osid CLI command, wiring global flags,
// configuration loading, and logging setup.
func NewCommand() *cobra.Command {
	var (
		configFile string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   cliExecutable,
		Short: "osid resolves inspected guest OS facts to canonical catalog identifiers",
		Long: `osid takes the facts gathered by guest inspection (OS family, distro,
version numbers, Windows product fields) and maps them to a short canonical
identifier from the libosinfo catalog naming scheme, such as fedora38,
ubuntu22.04, sle15sp3 or win2k19.`,
		Version: version.Info(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			manager := config.NewManager()
			sources := config.DefaultSources(configFile, cmd.Flags(), debug)
			if err := manager.Load(sources); err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			if err := logging.ConfigureGlobalLogging(manager.Get().Log); err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			ctx := appctx.WithConfig(cmd.Context(), manager)
			cmd.SetContext(ctx)
			if root := cmd.Root(); root != nil && root != cmd {
				root.SetContext(ctx)
			}
			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file path")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	config.BindFlags(cmd.PersistentFlags())

	cmd.AddCommand(newResolveCommand())
	cmd.AddCommand(newCatalogCommand())
	cmd.AddCommand(newVersionCommand())

	return cmd
}
