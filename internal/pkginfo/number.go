package pkginfo

import (
	"fmt"
	"strconv"
	"strings"
)

// Public identifies one of the publicly released packages.
type Public int

// Public package variants. PublicUnknown is the catch-all for any number not
// in the table; the raw value is kept alongside it in Number.
const (
	PublicUnknown Public = iota
	PublicBase
	PublicOssSources
	PublicQspX86
	PublicQspClearLinux
	PublicTraining
	PublicDoceaBase
	PublicQspCpu
	PublicViewer
	PublicQspIsim
)

type publicEntry struct {
	number int64
	name   string
}

var publicTable = map[Public]publicEntry{
	PublicBase:          {1000, "base"},
	PublicOssSources:    {1020, "oss-sources"},
	PublicQspX86:        {2096, "qsp-x86"},
	PublicQspClearLinux: {4094, "qsp-clear-linux"},
	PublicTraining:      {6010, "training"},
	PublicDoceaBase:     {7801, "docea-base"},
	PublicQspCpu:        {8112, "qsp-cpu"},
	PublicViewer:        {8126, "viewer"},
	PublicQspIsim:       {8144, "qsp-isim"},
}

var publicByNumber = func() map[int64]Public {
	m := make(map[int64]Public, len(publicTable))
	for p, e := range publicTable {
		m[e.number] = p
	}
	return m
}()

// Publics returns every known public variant in package-number order.
func Publics() []Public {
	return []Public{
		PublicBase,
		PublicOssSources,
		PublicQspX86,
		PublicQspClearLinux,
		PublicTraining,
		PublicDoceaBase,
		PublicQspCpu,
		PublicViewer,
		PublicQspIsim,
	}
}

// Int64 returns the package number of a known variant. PublicUnknown has no
// number of its own and reports NumberUnknown.
func (p Public) Int64() int64 {
	if e, ok := publicTable[p]; ok {
		return e.number
	}
	return NumberUnknown
}

// String returns the symbolic name, e.g. "qsp-x86".
func (p Public) String() string {
	if e, ok := publicTable[p]; ok {
		return e.name
	}
	return "unknown"
}

// Number is a package number classified against the public table. Raw always
// holds the original integer, so an unknown number is never confused with a
// real one.
type Number struct {
	Public Public
	Raw    int64
}

// Classify maps an integer onto its public variant. It never fails: numbers
// outside the table become PublicUnknown carrying the raw value.
func Classify(n int64) Number {
	if p, ok := publicByNumber[n]; ok {
		return Number{Public: p, Raw: n}
	}
	return Number{Public: PublicUnknown, Raw: n}
}

// Known reports whether the number is one of the public packages.
func (n Number) Known() bool {
	return n.Public != PublicUnknown
}

func (n Number) String() string {
	if n.Known() {
		return fmt.Sprintf("%d (%s)", n.Raw, n.Public)
	}
	return strconv.FormatInt(n.Raw, 10)
}

// ParsePublic looks up a public variant by symbolic name. Matching ignores
// case and treats underscores as dashes.
func ParsePublic(name string) (Public, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for p, e := range publicTable {
		if e.name == norm {
			return p, nil
		}
	}
	return PublicUnknown, fmt.Errorf("unknown public package %q", name)
}

// ParseNumberArg accepts either a decimal package number or a public package
// name and returns the package number.
func ParseNumberArg(arg string) (int64, error) {
	if n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64); err == nil {
		return n, nil
	}
	p, err := ParsePublic(arg)
	if err != nil {
		return 0, fmt.Errorf("%q is neither a package number nor a public package name", arg)
	}
	return p.Int64(), nil
}
