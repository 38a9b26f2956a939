package registry

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/confuse-labs/simpkg/internal/pkginfo"
	"github.com/spf13/afero"
)

// Sentinel errors for resolution and configuration failures. Builder wraps
// them in a *ResolveError; use errors.Is to test for them.
var (
	ErrNoHome            = errors.New("installation root could not be determined")
	ErrNoPackageNumber   = errors.New("no package number set")
	ErrInvalidConstraint = errors.New("invalid version constraint")
	ErrPackageNotFound   = errors.New("no package found")
	ErrNoMatchingVersion = errors.New("no installed version satisfies constraint")
)

// Package is a resolved package: its metadata plus where it was found and
// which constraint selected it.
type Package struct {
	pkginfo.Info `yaml:",inline"`

	Home       string `json:"home" yaml:"home"`                                 // installation root
	Path       string `json:"path" yaml:"path"`                                 // install directory
	Constraint string `json:"constraint,omitempty" yaml:"constraint,omitempty"` // provenance only
}

// Registry maps package number to raw version string to package.
type Registry map[int64]map[string]*Package

// RootResolver supplies the default installation root.
type RootResolver interface {
	Root() (string, error)
}

// RootFunc adapts a function to RootResolver.
type RootFunc func() (string, error)

// Root calls f.
func (f RootFunc) Root() (string, error) { return f() }

// ResolveError describes a failed resolution with enough context to
// diagnose it without re-running.
type ResolveError struct {
	Number     int64
	Home       string
	Constraint string
	Err        error
}

func (e *ResolveError) Error() string {
	var b strings.Builder
	b.WriteString("resolving package")
	if !errors.Is(e.Err, ErrNoPackageNumber) {
		fmt.Fprintf(&b, " %d", e.Number)
	}
	fmt.Fprintf(&b, " (version %q", e.Constraint)
	if e.Home != "" {
		fmt.Fprintf(&b, " in %s", e.Home)
	}
	b.WriteString(")")
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ResolveError) Unwrap() error { return e.Err }

// Option configures Discover and Builder.
type Option func(*settings)

type settings struct {
	fs     afero.Fs
	logger *log.Logger
}

// WithFs reads packages from fsys instead of the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(s *settings) { s.fs = fsys }
}

// WithLogger sends scan and grouping warnings to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

func newSettings(opts []Option) settings {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}
