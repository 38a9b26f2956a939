package scan

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/confuse-labs/simpkg/internal/pkginfo"
	"github.com/spf13/afero"
)

const root = "/opt/simics"

func writeInfo(t *testing.T, fsys afero.Fs, pkgDir, file, text string) {
	t.Helper()
	path := filepath.Join(root, pkgDir, pkginfo.InfoDirName, file)
	if err := afero.WriteFile(fsys, path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanFindsPackages(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeInfo(t, fsys, "simics-6.0.157", "Simics-Base-linux64", "name: Simics-Base\nversion: 6.0.157\n")
	writeInfo(t, fsys, "simics-6.0.50", "Simics-Base-linux64", "name: Simics-Base\nversion: 6.0.50\n")

	entries, diags, err := New(fsys, nil).Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.Dir != filepath.Join(root, "simics-6.0.157") {
		t.Errorf("Dir = %q", first.Dir)
	}
	if first.InfoPath != filepath.Join(root, "simics-6.0.157", "packageinfo", "Simics-Base-linux64") {
		t.Errorf("InfoPath = %q", first.InfoPath)
	}
	if !strings.Contains(first.Text, "version: 6.0.157") {
		t.Errorf("Text = %q", first.Text)
	}
}

func TestScanSkipsBrokenPackages(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeInfo(t, fsys, "good", "info", "name: good\n")
	// No packageinfo directory at all.
	if err := fsys.MkdirAll(filepath.Join(root, "partial", "bin"), 0755); err != nil {
		t.Fatal(err)
	}
	// Empty packageinfo directory.
	if err := fsys.MkdirAll(filepath.Join(root, "empty", pkginfo.InfoDirName), 0755); err != nil {
		t.Fatal(err)
	}
	// packageinfo is a file, not a directory.
	if err := afero.WriteFile(fsys, filepath.Join(root, "flat", pkginfo.InfoDirName), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	// Loose file at the root is not a package.
	if err := afero.WriteFile(fsys, filepath.Join(root, "README"), []byte("hi"), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	entries, diags, err := New(fsys, logger).Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 1 || filepath.Base(entries[0].Dir) != "good" {
		t.Fatalf("entries = %+v, want only good", entries)
	}

	codes := map[string]string{}
	for _, d := range diags {
		codes[filepath.Base(filepath.Dir(d.Path))] = d.Code
	}
	want := map[string]string{
		"partial": CodeInfoDirMissing,
		"empty":   CodeInfoDirEmpty,
		"flat":    CodeInfoDirMissing,
	}
	for dir, code := range want {
		if codes[dir] != code {
			t.Errorf("diagnostic for %s = %q, want %q", dir, codes[dir], code)
		}
	}
	if len(diags) != len(want) {
		t.Errorf("got %d diagnostics, want %d: %v", len(diags), len(want), diags)
	}

	if !strings.Contains(buf.String(), "package info path is not a directory") {
		t.Errorf("expected warning in log output, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "README") {
		t.Errorf("loose root files should not be warned about: %q", buf.String())
	}
}

func TestScanTakesFirstInfoFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeInfo(t, fsys, "pkg", "b-second", "name: second\n")
	writeInfo(t, fsys, "pkg", "a-first", "name: first\n")

	entries, _, err := New(fsys, nil).Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if filepath.Base(entries[0].InfoPath) != "a-first" {
		t.Errorf("InfoPath = %q, want a-first", entries[0].InfoPath)
	}
}

func TestScanUnreadableInfoFile(t *testing.T) {
	home := t.TempDir()
	// A directory where the metadata file should be cannot be read as text.
	if err := os.MkdirAll(filepath.Join(home, "odd", pkginfo.InfoDirName, "nested"), 0755); err != nil {
		t.Fatal(err)
	}
	fineDir := filepath.Join(home, "fine", pkginfo.InfoDirName)
	if err := os.MkdirAll(fineDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(fineDir, "info"), []byte("name: fine\n"), 0644); err != nil {
		t.Fatal(err)
	}

	entries, diags, err := New(afero.NewOsFs(), nil).Scan(home)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("got %d entries, want 1", len(entries))
	}
	if len(diags) != 1 || diags[0].Code != CodeInfoUnreadable {
		t.Fatalf("diags = %v, want one %s", diags, CodeInfoUnreadable)
	}
	if diags[0].Cause == nil {
		t.Error("expected a cause on the unreadable diagnostic")
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, _, err := New(afero.NewMemMapFs(), nil).Scan("/nowhere")
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !strings.Contains(err.Error(), "/nowhere") {
		t.Errorf("error %q does not mention the root", err)
	}
}

func TestScanOnDisk(t *testing.T) {
	home := t.TempDir()
	infoDir := filepath.Join(home, "simics-qsp-x86-6.0.70", "packageinfo")
	if err := os.MkdirAll(infoDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(infoDir, "QSP-x86-linux64"), []byte("package-number: 2096\n"), 0644); err != nil {
		t.Fatal(err)
	}

	entries, diags, err := New(nil, nil).Scan(home)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(diags) != 0 || len(entries) != 1 {
		t.Fatalf("entries=%v diags=%v", entries, diags)
	}
	if entries[0].Text != "package-number: 2096\n" {
		t.Errorf("Text = %q", entries[0].Text)
	}
}
