package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/confuse-labs/simpkg/internal/branding"
	"github.com/confuse-labs/simpkg/internal/pkginfo"
	"github.com/confuse-labs/simpkg/internal/registry"
	"github.com/spf13/cobra"
)

var (
	listNumber string
	listOut    outputFlags
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages",
	Long: `List every package installed under the installation root, grouped by
package number and ordered by version.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listNumber, "number", "", "Only list one package number or public package name (e.g. 1000, qsp-x86)")
	listOut.register(listCmd)
	rootCmd.AddCommand(listCmd)
}

// listEntry represents an installed package for display.
type listEntry struct {
	Number  int64  `json:"package-number" yaml:"package-number"`
	Public  string `json:"public,omitempty" yaml:"public,omitempty"`
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
	BuildID uint64 `json:"build-id" yaml:"build-id"`
	Host    string `json:"host" yaml:"host"`
	Type    string `json:"type" yaml:"type"`
	Path    string `json:"path" yaml:"path"`
}

func runList(cmd *cobra.Command, args []string) error {
	home, err := resolveHome()
	if err != nil {
		return err
	}

	reg, diags, err := registry.Discover(home, registry.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("discovering packages: %w", err)
	}

	entries, err := listEntries(reg, listNumber)
	if err != nil {
		return err
	}

	if len(entries) == 0 && !listOut.json && !listOut.yaml {
		if listNumber != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No installed packages matching --number=%s under %s\n", listNumber, home)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "No packages installed under %s\n", home)
		}
		return nil
	}

	if err := listOut.render(cmd.OutOrStdout(), entries, func(w io.Writer) error {
		return printListTable(w, entries)
	}); err != nil {
		return err
	}

	if len(diags) > 0 && !listOut.json && !listOut.yaml {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d installation problem(s) found; run '%s doctor' for details.\n", len(diags), branding.CLIName())
	}
	return nil
}

// listEntries flattens the registry, optionally keeping one package number.
func listEntries(reg registry.Registry, number string) ([]listEntry, error) {
	var (
		want   int64
		filter = number != ""
	)
	if filter {
		n, err := pkginfo.ParseNumberArg(number)
		if err != nil {
			return nil, err
		}
		want = n
	}

	entries := []listEntry{}
	for _, p := range reg.Packages() {
		if filter && p.PackageNumber != want {
			continue
		}
		e := listEntry{
			Number:  p.PackageNumber,
			Name:    p.Name,
			Version: p.Version,
			BuildID: p.BuildID,
			Host:    p.Host,
			Type:    p.Type,
			Path:    p.Path,
		}
		if n := p.Public(); n.Known() {
			e.Public = n.Public.String()
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func printListTable(w io.Writer, entries []listEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tNAME\tVERSION\tBUILD\tPATH")
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = "-"
		}
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", strconv.FormatInt(e.Number, 10), name, version, e.BuildID, e.Path)
	}
	return tw.Flush()
}
