package cli

import (
	"fmt"
	"io"

	"github.com/confuse-labs/simpkg/internal/pkginfo"
	"github.com/confuse-labs/simpkg/internal/registry"
	"github.com/confuse-labs/simpkg/internal/scan"
	"github.com/spf13/cobra"
)

var doctorStrict bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorStrict, "strict", false, "Exit with an error when any problem is found")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the installation root",
	Long: `Scan the installation root and report packages that could not be read,
duplicate package versions, incomplete metadata, and packages whose files do
not live in their install directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		problems, err := runDoctor(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if doctorStrict && problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		return nil
	},
}

// runDoctor prints every check and returns the number of problems found.
func runDoctor(w io.Writer) (int, error) {
	fmt.Fprintln(w, "Installation root:")
	home, err := resolveHome()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 0, err
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", home)

	reg, diags, err := registry.Discover(home, registry.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 0, err
	}

	problems := len(diags)
	fmt.Fprintln(w, "Package scan:")
	fmt.Fprintf(w, "  [ OK ] %d package(s) across %d package number(s)\n", reg.Len(), len(reg))
	for _, d := range diags {
		tag := "[WARN]"
		if d.Severity == scan.SeverityError {
			tag = "[FAIL]"
		}
		fmt.Fprintf(w, "  %s %s: %s (%s)\n", tag, d.Code, d.Error(), d.Path)
	}

	fmt.Fprintln(w, "Package metadata:")
	metaProblems, err := checkMetadata(w, reg)
	if err != nil {
		return problems, err
	}
	problems += metaProblems
	if metaProblems == 0 {
		fmt.Fprintln(w, "  [ OK ] all package metadata is complete")
	}

	return problems, nil
}

// checkMetadata validates each record and cross-checks its install directory.
func checkMetadata(w io.Writer, reg registry.Registry) (int, error) {
	problems := 0
	for _, p := range reg.Packages() {
		label := fmt.Sprintf("%s %s (%s)", orDash(p.Name), orDash(p.Version), p.Path)

		result, err := pkginfo.Validate(p.Info)
		if err != nil {
			return problems, fmt.Errorf("validating %s: %w", p.Path, err)
		}
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  [WARN] %s: %s\n", label, issue)
			problems++
		}

		dir, err := p.InstallDir(p.Home)
		if err != nil {
			continue // already reported by the schema check
		}
		if dir != p.Path {
			fmt.Fprintf(w, "  [WARN] %s: files belong to %s\n", label, dir)
			problems++
		}
	}
	return problems, nil
}
