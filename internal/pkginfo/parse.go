package pkginfo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// Parse turns the text of a metadata file into an Info. It never fails:
// unknown keys and lines without a colon are ignored, and fields that do not
// parse fall back to their defaults.
//
// Lines starting with whitespace carry one file path each, whatever key
// precedes them; every other line is "key: value", split on the first colon.
func Parse(text string) Info {
	p := parser{info: Blank()}
	for _, line := range strings.Split(text, "\n") {
		p.line(strings.TrimSuffix(line, "\r"))
	}
	return p.info
}

// ParseFile reads path from fsys and parses it. Only I/O errors are returned.
func ParseFile(fsys afero.Fs, path string) (Info, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Info{}, fmt.Errorf("reading package info %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// parser is the two-state line machine behind Parse: a line is either a
// key/value pair or an indented file entry.
type parser struct {
	info Info
}

func (p *parser) line(l string) {
	if strings.TrimSpace(l) == "" {
		return
	}
	if strings.TrimLeft(l, " \t") != l {
		p.continuation(strings.TrimSpace(l))
		return
	}

	k, v, ok := strings.Cut(l, ":")
	if !ok {
		return
	}
	p.set(strings.TrimSpace(k), strings.TrimSpace(v))
}

// continuation handles an indented line. The only list-valued section the
// format has is the file list, which carries no key of its own.
func (p *parser) continuation(v string) {
	p.info.Files = append(p.info.Files, v)
}

func (p *parser) set(key, v string) {
	switch key {
	case "name":
		p.info.Name = v
	case "description":
		p.info.Description = v
	case "version":
		p.info.Version = v
	case "extra-version":
		p.info.ExtraVersion = v
	case "host":
		p.info.Host = v
	case "confidentiality":
		p.info.Confidentiality = v
	case "package-name":
		p.info.PackageName = v
	case "package-number":
		p.info.PackageNumber = parseNumber(v)
	case "build-id":
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			id = 0
		}
		p.info.BuildID = id
	case "build-id-namespace":
		p.info.BuildIDNamespace = v
	case "type":
		p.info.Type = v
	case "package-name-full":
		p.info.PackageNameFull = v
	}
}

// parseNumber parses a package-number value, degrading to NumberUnknown.
func parseNumber(v string) int64 {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return NumberUnknown
	}
	return n
}
