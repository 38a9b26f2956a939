package registry

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/confuse-labs/simpkg/internal/pkginfo"
)

// AnyVersion is the constraint used when none is given.
const AnyVersion = "*"

// Builder resolves one package. The package number is required; the
// installation root defaults to the RootResolver and the version constraint
// defaults to AnyVersion.
type Builder struct {
	opts       []Option
	roots      RootResolver
	home       string
	number     int64
	hasNumber  bool
	constraint string
}

// NewBuilder returns a Builder that falls back to roots for the installation
// root. roots may be nil when Home is always set.
func NewBuilder(roots RootResolver, opts ...Option) *Builder {
	return &Builder{roots: roots, opts: opts}
}

// Home sets the installation root, overriding the RootResolver.
func (b *Builder) Home(path string) *Builder {
	b.home = path
	return b
}

// Number sets the package number to resolve.
func (b *Builder) Number(n int64) *Builder {
	b.number = n
	b.hasNumber = true
	return b
}

// Public sets the package number from a public package variant.
func (b *Builder) Public(p pkginfo.Public) *Builder {
	return b.Number(p.Int64())
}

// Version sets the version constraint, e.g. ">=6.0.100".
func (b *Builder) Version(constraint string) *Builder {
	b.constraint = constraint
	return b
}

// Build scans the installation root and returns the highest installed
// version of the package that satisfies the constraint. All failures are
// returned as *ResolveError.
func (b *Builder) Build() (*Package, error) {
	constraint := b.constraint
	if constraint == "" {
		constraint = AnyVersion
	}
	fail := func(home string, err error) error {
		return &ResolveError{Number: b.number, Home: home, Constraint: constraint, Err: err}
	}

	home := b.home
	if home == "" {
		if b.roots == nil {
			return nil, fail("", ErrNoHome)
		}
		root, err := b.roots.Root()
		if err != nil {
			return nil, fail("", fmt.Errorf("%w: %w", ErrNoHome, err))
		}
		if root == "" {
			return nil, fail("", ErrNoHome)
		}
		home = root
	}

	if !b.hasNumber {
		return nil, fail(home, ErrNoPackageNumber)
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fail(home, fmt.Errorf("%w %q: %w", ErrInvalidConstraint, constraint, err))
	}

	reg, _, err := Discover(home, b.opts...)
	if err != nil {
		return nil, fail(home, err)
	}

	pkg, err := reg.Resolve(b.number, c)
	if err != nil {
		return nil, fail(home, err)
	}
	pkg.Constraint = constraint
	return pkg, nil
}
