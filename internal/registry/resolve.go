package registry

import (
	"fmt"
	"slices"

	"github.com/Masterminds/semver/v3"
)

// Resolve selects the highest installed version of number that satisfies c.
// A nil constraint matches any version. Version strings that are not valid
// semantic versions are never selected. The returned Package is a copy owned
// by the caller.
func (r Registry) Resolve(number int64, c *semver.Constraints) (*Package, error) {
	versions, ok := r[number]
	if !ok {
		return nil, fmt.Errorf("%w with number %d", ErrPackageNotFound, number)
	}

	var best *semver.Version
	for raw := range versions {
		v, err := semver.NewVersion(raw)
		if err != nil {
			continue
		}
		if c != nil && !c.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) || (v.Equal(best) && raw < best.Original()) {
			best = v
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w (package %d has versions %v)", ErrNoMatchingVersion, number, r.Versions(number))
	}

	// Ordering is computed on parsed versions, storage is keyed by the raw string.
	pkg, ok := versions[best.Original()]
	if !ok {
		return nil, fmt.Errorf("%w: version %s of package %d vanished", ErrNoMatchingVersion, best.Original(), number)
	}

	cp := *pkg
	cp.Files = slices.Clone(pkg.Files)
	if c != nil {
		cp.Constraint = c.String()
	}
	return &cp, nil
}

// versionLess orders raw version strings by semantic version, with
// unparsable strings after all parsable ones.
func versionLess(a, b string) bool {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if cmp := va.Compare(vb); cmp != 0 {
			return cmp < 0
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
