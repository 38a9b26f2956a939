package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/confuse-labs/simpkg/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionOut   outputFlags
)

// buildInfo is the version report of this binary.
type buildInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	Go      string `json:"go" yaml:"go"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the " + branding.CLIName() + " build",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionShort {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
			return err
		}

		info := buildInfo{Version: buildVersion, Commit: buildCommit, Date: buildDate, Go: runtime.Version()}
		return versionOut.render(cmd.OutOrStdout(), info, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s %s (commit %s, built %s, %s)\n",
				branding.DisplayName(), orDash(info.Version), orDash(info.Commit), orDash(info.Date), info.Go)
			return err
		})
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionOut.register(versionCmd)
	rootCmd.AddCommand(versionCmd)
}
