package cli

import (
	"fmt"
	"io"

	"github.com/confuse-labs/simpkg/internal/pkginfo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	infoValidate bool
	infoOut      outputFlags
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Parse a single package metadata file",
	Long: `Parse one packageinfo metadata file and print the record it describes.
With --validate the record is also checked against the schema for an
installable package.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoValidate, "validate", false, "Check the record against the installable-package schema")
	infoOut.register(infoCmd)
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := pkginfo.ParseFile(afero.NewOsFs(), args[0])
	if err != nil {
		return err
	}

	if err := infoOut.render(cmd.OutOrStdout(), info, func(w io.Writer) error {
		return printInfo(w, info)
	}); err != nil {
		return err
	}

	if !infoValidate {
		return nil
	}

	result, err := pkginfo.Validate(info)
	if err != nil {
		return fmt.Errorf("validating %s: %w", args[0], err)
	}
	if result.Valid {
		fmt.Fprintln(cmd.ErrOrStderr(), "  [ OK ] valid package metadata")
		return nil
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "    - %s\n", issue)
	}
	return fmt.Errorf("package metadata %s has %d validation issue(s)", args[0], len(result.Issues))
}

func printInfo(w io.Writer, info pkginfo.Info) error {
	fmt.Fprintf(w, "%s %s (package %s)\n", orDash(info.Name), orDash(info.Version), info.Public())
	if info.Description != "" {
		fmt.Fprintf(w, "  %s\n", info.Description)
	}
	fmt.Fprintf(w, "  type=%s host=%s build-id=%d\n", orDash(info.Type), orDash(info.Host), info.BuildID)
	fmt.Fprintf(w, "  %d file(s)\n", len(info.Files))
	for _, f := range info.Files {
		fmt.Fprintf(w, "    %s\n", f)
	}
	return nil
}
