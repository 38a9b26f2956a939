package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/confuse-labs/simpkg/internal/branding"
	"github.com/confuse-labs/simpkg/internal/config"
	"github.com/confuse-labs/simpkg/internal/registry"
	"github.com/confuse-labs/simpkg/internal/simhome"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	homeFlag     string
	logLevelFlag string

	// logger is replaced in PersistentPreRunE once the level is known.
	logger = log.New(io.Discard)
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` discovers the packages installed under a simulator installation
root, reads their package metadata, and resolves the best installed version
of a package for a version constraint.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		level := config.LogLevel()
		if logLevelFlag != "" {
			level = logLevelFlag
		}
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
			Prefix: branding.CLIName(),
			Level:  lvl,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "",
		"Installation root (default: home config key, then $"+simhome.EnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, error (default: log-level config key, then "+config.DefaultLogLevel+")")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// rootResolver returns the installation-root lookup for this invocation:
// --home, then the home config key, then $SIMICS_HOME.
func rootResolver() registry.RootResolver {
	configured := homeFlag
	if configured == "" {
		configured = config.Home()
	}
	return simhome.Resolver{Configured: configured}
}

// resolveHome returns the installation root or a descriptive error.
func resolveHome() (string, error) {
	home, err := rootResolver().Root()
	if err != nil {
		return "", fmt.Errorf("resolving installation root: %w", err)
	}
	return home, nil
}
