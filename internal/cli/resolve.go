package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/confuse-labs/simpkg/internal/pkginfo"
	"github.com/confuse-labs/simpkg/internal/registry"
	"github.com/spf13/cobra"
)

var (
	resolveVersion  string
	resolvePathOnly bool
	resolveOut      outputFlags
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <package>",
	Short: "Resolve the best installed version of a package",
	Long: `Resolve the highest installed version of a package that satisfies a version
constraint. <package> is a package number (e.g. 1000) or a public package
name (e.g. base, qsp-x86).

Constraints use semantic-version comparator syntax: "*", "=6.0.157",
">=6.0.100", "<6.0.100", "~6.0", "^6".`,
	Example: `  simpkg resolve 1000
  simpkg resolve base --version "<6.0.100"
  simpkg resolve qsp-x86 --path`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveVersion, "version", "v", registry.AnyVersion, "Version constraint")
	resolveCmd.Flags().BoolVar(&resolvePathOnly, "path", false, "Print only the install directory")
	resolveOut.register(resolveCmd)
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	number, err := pkginfo.ParseNumberArg(args[0])
	if err != nil {
		return err
	}

	pkg, err := registry.NewBuilder(rootResolver(), registry.WithLogger(logger)).
		Number(number).
		Version(resolveVersion).
		Build()
	if err != nil {
		return err
	}

	if resolvePathOnly {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), pkg.Path)
		return err
	}

	return resolveOut.render(cmd.OutOrStdout(), pkg, func(w io.Writer) error {
		return printPackage(w, pkg)
	})
}

// printPackage writes a package handle as aligned key/value lines.
func printPackage(w io.Writer, pkg *registry.Package) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Name", pkg.Name},
		{"Package number", pkg.Public().String()},
		{"Version", pkg.Version},
		{"Extra version", pkg.ExtraVersion},
		{"Build ID", fmt.Sprintf("%d (%s)", pkg.BuildID, orDash(pkg.BuildIDNamespace))},
		{"Type", pkg.Type},
		{"Host", pkg.Host},
		{"Confidentiality", pkg.Confidentiality},
		{"Full name", pkg.PackageNameFull},
		{"Description", pkg.Description},
		{"Path", pkg.Path},
		{"Home", pkg.Home},
		{"Constraint", pkg.Constraint},
		{"Files", strconv.Itoa(len(pkg.Files))},
	}
	for _, r := range rows {
		if r[0] != "Name" && r[0] != "Version" && strings.TrimSpace(r[1]) == "" {
			continue
		}
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], orDash(r[1]))
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
