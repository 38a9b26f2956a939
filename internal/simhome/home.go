package simhome

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvVar is the environment variable the simulator itself uses for its
// installation root.
const EnvVar = "SIMICS_HOME"

// ErrNotFound is returned when no installation root is configured.
var ErrNotFound = errors.New("no installation root configured")

// Resolver finds the installation root. Configured (from the --home flag or
// the "home" config key) wins over the SIMICS_HOME environment variable.
type Resolver struct {
	// Configured is an explicitly configured root; empty means unset.
	Configured string
	// Getenv reads the environment. Nil means os.Getenv.
	Getenv func(string) string
}

// Root returns the installation root, with a leading "~/" expanded.
func (r Resolver) Root() (string, error) {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := strings.TrimSpace(r.Configured); v != "" {
		return expandHome(v)
	}
	if v := strings.TrimSpace(getenv(EnvVar)); v != "" {
		return expandHome(v)
	}
	return "", fmt.Errorf("%w: set %s or the home config key", ErrNotFound, EnvVar)
}

// Static always resolves to path.
type Static string

// Root returns the static path.
func (s Static) Root() (string, error) {
	if s == "" {
		return "", ErrNotFound
	}
	return expandHome(string(s))
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
