package scan

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/confuse-labs/simpkg/internal/pkginfo"
	"github.com/spf13/afero"
)

// Entry is one installed package instance found under the root.
type Entry struct {
	Dir      string // install directory, e.g. <root>/simics-6.0.157
	InfoPath string // the metadata file inside Dir/packageinfo
	Text     string // raw metadata file contents
}

// Scanner lists installed packages on a filesystem.
type Scanner struct {
	fs     afero.Fs
	logger *log.Logger
}

// New returns a Scanner reading from fsys. A nil fsys means the OS
// filesystem; a nil logger discards output.
func New(fsys afero.Fs, logger *log.Logger) *Scanner {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scanner{fs: fsys, logger: logger}
}

// Scan lists the immediate subdirectories of root and reads the metadata file
// of each. Entries come back in directory name order. Only a failure to list
// root itself is an error.
func (s *Scanner) Scan(root string) ([]Entry, []Diagnostic, error) {
	children, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return nil, nil, fmt.Errorf("reading installation root %s: %w", root, err)
	}

	var (
		entries []Entry
		diags   []Diagnostic
	)
	for _, child := range children {
		dir := filepath.Join(root, child.Name())
		if !child.IsDir() {
			s.logger.Debug("skipping non-directory entry", "path", dir)
			continue
		}

		entry, diag, ok := s.scanPackage(dir)
		if !ok {
			s.logger.Warn(diag.Message, "path", diag.Path, "err", diag.Cause)
			diags = append(diags, diag)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, diags, nil
}

// scanPackage reads the metadata of one install directory. When ok is false
// the diagnostic explains why the package was skipped.
func (s *Scanner) scanPackage(dir string) (Entry, Diagnostic, bool) {
	infoDir := filepath.Join(dir, pkginfo.InfoDirName)
	if isDir, _ := afero.IsDir(s.fs, infoDir); !isDir {
		return Entry{}, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeInfoDirMissing,
			Message:  "package info path is not a directory",
			Path:     infoDir,
		}, false
	}

	files, err := afero.ReadDir(s.fs, infoDir)
	if err != nil {
		return Entry{}, Diagnostic{
			Severity: SeverityError,
			Code:     CodeInfoUnreadable,
			Message:  "could not list package info directory",
			Path:     infoDir,
			Cause:    err,
		}, false
	}
	if len(files) == 0 {
		return Entry{}, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeInfoDirEmpty,
			Message:  "no contents in package info directory",
			Path:     infoDir,
		}, false
	}

	// One metadata file per package instance; extras are ignored.
	infoPath := filepath.Join(infoDir, files[0].Name())
	data, err := afero.ReadFile(s.fs, infoPath)
	if err != nil {
		return Entry{}, Diagnostic{
			Severity: SeverityError,
			Code:     CodeInfoUnreadable,
			Message:  "could not read package info file",
			Path:     infoPath,
			Cause:    err,
		}, false
	}

	return Entry{Dir: dir, InfoPath: infoPath, Text: string(data)}, Diagnostic{}, true
}
