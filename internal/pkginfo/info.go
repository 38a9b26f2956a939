package pkginfo

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NumberUnknown is the package number recorded when a metadata file has no
// usable package-number line.
const NumberUnknown int64 = -1

// InfoDirName is the directory inside each installed package that holds its
// metadata file.
const InfoDirName = "packageinfo"

// Info is the parsed contents of one package metadata file.
type Info struct {
	Name             string   `json:"name" yaml:"name"`
	Description      string   `json:"description" yaml:"description"`
	Version          string   `json:"version" yaml:"version"`
	ExtraVersion     string   `json:"extra-version" yaml:"extra-version"`
	Host             string   `json:"host" yaml:"host"`                       // e.g. linux64
	Confidentiality  string   `json:"confidentiality" yaml:"confidentiality"` // public or private
	PackageName      string   `json:"package-name" yaml:"package-name"`
	PackageNumber    int64    `json:"package-number" yaml:"package-number"`
	BuildID          uint64   `json:"build-id" yaml:"build-id"`
	BuildIDNamespace string   `json:"build-id-namespace" yaml:"build-id-namespace"`
	Type             string   `json:"type" yaml:"type"` // base or addon
	PackageNameFull  string   `json:"package-name-full" yaml:"package-name-full"`
	Files            []string `json:"files" yaml:"files"`
}

// Blank returns an Info with every field at its default value.
func Blank() Info {
	return Info{PackageNumber: NumberUnknown}
}

// InstallDir returns the directory the package is installed in, derived from
// the leading path segment of its first file entry and joined onto home.
func (i Info) InstallDir(home string) (string, error) {
	if len(i.Files) == 0 {
		return "", fmt.Errorf("package %d has no files", i.PackageNumber)
	}
	first := strings.TrimLeft(i.Files[0], "/")
	base, _, _ := strings.Cut(first, "/")
	if base == "" {
		return "", fmt.Errorf("package %d: no base path in %q", i.PackageNumber, i.Files[0])
	}
	return filepath.Join(home, base), nil
}

// Public returns the public package classification of the record's number.
func (i Info) Public() Number {
	return Classify(i.PackageNumber)
}
