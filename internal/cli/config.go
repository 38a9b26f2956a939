package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/confuse-labs/simpkg/internal/branding"
	"github.com/confuse-labs/simpkg/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change where packages are looked up",
	Long: `Without a subcommand, print every setting and its effective value.

Settings live in ` + config.FilePath() + ` and can be overridden per
invocation with environment variables (` + branding.EnvVar(config.KeyHome) + `, ` + branding.EnvVar(config.KeyLogLevel) + `).

Keys:
  ` + config.KeyHome + `        installation root used when --home is not given
  ` + config.KeyLogLevel + `   debug, info, warn or error`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSettings(cmd.OutOrStdout())
	},
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Persist a setting",
	Example: "  simpkg config set home /opt/simics\n  simpkg config set log-level debug",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if key == config.KeyLogLevel {
			if _, err := log.ParseLevel(value); err != nil {
				return fmt.Errorf("invalid log level %q: %w", value, err)
			}
		}
		if err := config.Set(key, value); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (saved to %s)\n", key, value, config.FilePath())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(config.Keys(), args[0]) {
			return fmt.Errorf("unknown config key %q (known keys: %s)", args[0], strings.Join(config.Keys(), ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd, configGetCmd)
	rootCmd.AddCommand(configCmd)
}

func printSettings(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE")
	for _, k := range config.Keys() {
		fmt.Fprintf(tw, "%s\t%s\n", k, orDash(config.Get(k)))
	}
	return tw.Flush()
}
