package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/confuse-labs/simpkg/internal/pkginfo"
	"github.com/spf13/cobra"
)

var numbersOut outputFlags

var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "List the public package numbers",
	Long:  `List the well-known public package numbers and the names accepted in their place.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		type numberEntry struct {
			Number int64  `json:"number" yaml:"number"`
			Name   string `json:"name" yaml:"name"`
		}
		var entries []numberEntry
		for _, p := range pkginfo.Publics() {
			entries = append(entries, numberEntry{Number: p.Int64(), Name: p.String()})
		}

		return numbersOut.render(cmd.OutOrStdout(), entries, func(w io.Writer) error {
			tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "NUMBER\tNAME")
			for _, e := range entries {
				fmt.Fprintf(tw, "%d\t%s\n", e.Number, e.Name)
			}
			return tw.Flush()
		})
	},
}

func init() {
	numbersOut.register(numbersCmd)
	rootCmd.AddCommand(numbersCmd)
}
