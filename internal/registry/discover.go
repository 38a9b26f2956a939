package registry

import (
	"path/filepath"
	"slices"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/confuse-labs/simpkg/internal/pkginfo"
	"github.com/confuse-labs/simpkg/internal/scan"
	"github.com/spf13/afero"
)

// Discover scans home and returns every installed package grouped by number
// and version, along with the diagnostics for packages that were skipped or
// shadowed. Only a failure to read home itself is an error. home is made
// absolute only on the OS filesystem; other filesystems get it as given.
func Discover(home string, opts ...Option) (Registry, []scan.Diagnostic, error) {
	s := newSettings(opts)
	if _, ok := s.fs.(*afero.OsFs); ok {
		if abs, err := filepath.Abs(home); err == nil {
			home = abs
		}
	}

	entries, diags, err := scan.New(s.fs, s.logger).Scan(home)
	if err != nil {
		return nil, diags, err
	}

	reg, groupDiags := Group(home, entries, s.logger)
	return reg, append(diags, groupDiags...), nil
}

// Group parses each scanned entry and files it under its package number and
// raw version string. Version strings are not normalized. When two entries
// share both keys the later one wins and a duplicate_version diagnostic is
// returned.
func Group(home string, entries []scan.Entry, logger *log.Logger) (Registry, []scan.Diagnostic) {
	reg := make(Registry)
	var diags []scan.Diagnostic

	for _, e := range entries {
		info := pkginfo.Parse(e.Text)

		versions, ok := reg[info.PackageNumber]
		if !ok {
			versions = make(map[string]*Package)
			reg[info.PackageNumber] = versions
		}

		if prev, dup := versions[info.Version]; dup {
			d := scan.Diagnostic{
				Severity: scan.SeverityWarning,
				Code:     scan.CodeDuplicateVersion,
				Message:  "duplicate package version, later install shadows " + prev.Path,
				Path:     e.Dir,
			}
			if logger != nil {
				logger.Warn("duplicate package version",
					"number", info.PackageNumber,
					"version", info.Version,
					"kept", e.Dir,
					"shadowed", prev.Path)
			}
			diags = append(diags, d)
		}

		versions[info.Version] = &Package{
			Info: info,
			Home: home,
			Path: e.Dir,
		}
	}

	return reg, diags
}

// Numbers returns the package numbers in ascending order.
func (r Registry) Numbers() []int64 {
	nums := make([]int64, 0, len(r))
	for n := range r {
		nums = append(nums, n)
	}
	slices.Sort(nums)
	return nums
}

// Versions returns the raw version strings of a package number in ascending
// semantic-version order. Strings that do not parse sort last, lexically.
func (r Registry) Versions(number int64) []string {
	versions := make([]string, 0, len(r[number]))
	for v := range r[number] {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return versionLess(versions[i], versions[j])
	})
	return versions
}

// Len returns the total number of packages in the registry.
func (r Registry) Len() int {
	n := 0
	for _, versions := range r {
		n += len(versions)
	}
	return n
}

// Packages returns every package ordered by number, then version.
func (r Registry) Packages() []*Package {
	var out []*Package
	for _, n := range r.Numbers() {
		for _, v := range r.Versions(n) {
			out = append(out, r[n][v])
		}
	}
	return out
}
